package stream

import (
	"github.com/ionfield/apt3d/rangetbl"
	"github.com/ionfield/apt3d/voxel"
)

// Representation selects how a VoxelStream's grid should be rendered
// by an out-of-scope display subsystem.
type Representation int

const (
	CloudRepresentation Representation = iota
	IsosurfaceRepresentation
	AxialSliceRepresentation
)

// VoxelStream pairs a grid with rendering parameters; the core never
// interprets ColourMap beyond carrying it.
type VoxelStream struct {
	Grid           *voxel.Grid
	Representation Representation
	IsoLevel       float64
	Colour         rangetbl.Colour
	ColourMap      string
}
