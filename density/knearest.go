package density

import (
	"github.com/ionfield/apt3d/geom"
	"github.com/ionfield/apt3d/kdtree"
)

// kNearest returns the tree indices and squared distances of the first
// k untagged points nearest queryPt, excluding any coincident match,
// clearing its own tags before returning (the tag-peek-untag idiom
// shared with rdf/knearest.go and cluster/pipeline.go).
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
