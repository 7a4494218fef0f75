// Package ioninfo computes textual summary reports over a classified
// ion population: per-species counts or fractional composition
// (including an "unranged" bucket), volume by rectilinear bounds or
// convex hull, and density when both count and volume were requested.
//
// Per-species counting keeps an "unranged" trailing bin for ions whose
// mass-to-charge fell outside every range; volume-by-hull uses this
// module's own hull.ConvexHull and hull.Hull.Volume.
package ioninfo
