package voxel

import "errors"

// ErrBadDims is returned when a requested bin count is non-positive.
var ErrBadDims = errors.New("voxel: bin counts must be positive")

// ErrKernelTooLarge is returned when a convolution kernel does not fit
// within the grid it is applied to.
var ErrKernelTooLarge = errors.New("voxel: kernel larger than grid")

// ErrBadAxis is returned when a slice or isosurface axis is outside 0..2.
var ErrBadAxis = errors.New("voxel: axis out of range")

// ErrBadFraction is returned when a slice fractional offset is outside [0,1].
var ErrBadFraction = errors.New("voxel: fraction out of [0,1]")
