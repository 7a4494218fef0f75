// Package ion holds the single foundational data unit shared by every
// downstream analytical component: a point plus a mass-to-charge
// scalar. It is deliberately tiny and depends on nothing but geom and
// rangetbl, so
// cluster, rdf, voxel, density and ioninfo can all import it without
// forming a cycle through any of their own package boundaries.
package ion
