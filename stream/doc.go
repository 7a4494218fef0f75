// Package stream models the tagged union of data a filter stage can
// produce: ion lists, range-table references, voxel grids, plots, and
// drawable geometry.
//
// Rather than a virtual hierarchy of stream types, this package
// defines one Bundle struct with a Kind discriminant and one populated
// payload field, so a consumer type switches on Kind rather than on a
// dynamic type assertion.
package stream
