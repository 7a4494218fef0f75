package rdf

import (
	"github.com/ionfield/apt3d/geom"
	"github.com/ionfield/apt3d/kdtree"
)

// selfMatchSqr is the squared-distance floor below which a candidate is
// treated as an exact coincident match (the source itself, when source
// and target are drawn from the same population) and skipped rather
// than counted as a neighbour — mirrors rdf.cpp's deadDistSqr guard.
const selfMatchSqr = 1e-9

// kNearest returns the tree indices and squared distances of the first
// k untagged points nearest queryPt, excluding any coincident
// (distance-zero) match. Tags touched during the search are cleared
// before returning, so repeated calls against the same tree are
// independent (the peek idiom used throughout cluster/pipeline.go).
func kNearest(tree *kdtree.Tree, queryPt geom.Point, k int) (indices []int, sqrDists []float64) {
	var touched []int
	for len(indices) < k {
		idx, ok := tree.FindNearestUntagged(queryPt, tree.Bounds(), true)
		if !ok {
			break
		}
		touched = append(touched, idx)
		d2 := queryPt.SqrDist(tree.PointAt(idx))
		if d2 < selfMatchSqr {
			continue
		}
		indices = append(indices, idx)
		sqrDists = append(sqrDists, d2)
	}
	tree.ClearTags(touched)
	return indices, sqrDists
}
