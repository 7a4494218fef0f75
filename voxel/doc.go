// Package voxel builds regular 3D scalar grids over a labelled point
// cloud: raw/density/fraction/ratio counting, separable Gaussian
// smoothing, axis-aligned slicing, and marching-tetrahedra isosurface
// extraction.
//
// Each grid cube is split into six tetrahedra for isosurface
// extraction; each tetrahedron's intersection with the isosurface is
// resolved directly from its count of inside corners, so no large
// precomputed triangulation table is needed.
package voxel
