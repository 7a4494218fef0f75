// Package rangetbl implements the range table: an ordered list of
// species (name, colour) and a set of disjoint half-open intervals
// [lo,hi) mapping a scalar mass-to-charge value to a species index, or
// to the Unranged sentinel.
//
// The on-disk range-file format and its loader are out of scope; this
// package is the in-memory contract a loader populates.
package rangetbl
