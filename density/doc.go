// Package density classifies ions by local point density, either from
// the distance to their nnMax-th nearest neighbour or from the count
// of neighbours within a fixed radius, and retains the upper or lower
// half of the resulting distribution against a cutoff.
//
// Neighbour search reuses kdtree.Tree's tag-peek-untag idiom, the same
// tagged-nearest-neighbour protocol used elsewhere in this module.
package density
