// Package hull wraps a convex-hull computation behind a narrow,
// testable interface: it takes a slice of points and returns a Hull
// exposing the hull's vertices (Points), face count, volume, centroid
// and inward reduction; the triangle list itself is not exposed, so
// callers never see the algorithm's internal state.
//
// The incremental 3D quickhull implemented here is original code
// written to satisfy that narrow interface, not a port of any
// specific external library.
package hull
