package density

import (
	"math"

	"github.com/ionfield/apt3d/geom"
	"github.com/ionfield/apt3d/ion"
	"github.com/ionfield/apt3d/kdtree"
)

const fourThirdsPi = 4.0 / 3.0 * math.Pi

// selfMatchSqr excludes a point matching itself when the tree was built
// from the same ion population being filtered, mirroring rdf's
// equivalent guard (rdf/knearest.go).
const selfMatchSqr = 1e-9

// Filter evaluates a local density for each of ions (whose points are
// exactly the points tree was built from, in the same order) and
// returns the indices of ions to keep, plus a count of ions dropped
// for having too few neighbours.
func Filter(tree *kdtree.Tree, ions []ion.Hit, opts Options) (kept []int, dropped int, err error) {
	if err := opts.validate(); err != nil {
		return nil, 0, err
	}

	for i, hit := range ions {
		density, ok := evaluateDensity(tree, hit.Point, opts)
		if !ok {
			dropped++
			continue
		}

		retain := density >= opts.Cutoff
		if !opts.RetainUpper {
			retain = !retain
		}
		if retain {
			kept = append(kept, i)
		}
	}
	return kept, dropped, nil
}

func evaluateDensity(tree *kdtree.Tree, p geom.Point, opts Options) (float64, bool) {
	if opts.NNMax > 0 {
		_, sqrDists := kNearest(tree, p, opts.NNMax)
		if len(sqrDists) < opts.NNMax {
			return 0, false
		}
		r := math.Sqrt(sqrDists[opts.NNMax-1])
		if r == 0 {
			return 0, false
		}
		return float64(opts.NNMax) / (fourThirdsPi * r * r * r), true
	}

	count := countWithinRadius(tree, p, opts.DistMax)
	vol := fourThirdsPi * opts.DistMax * opts.DistMax * opts.DistMax
	return float64(count) / vol, true
}

func countWithinRadius(tree *kdtree.Tree, centre geom.Point, distMax float64) int {
	r2 := distMax * distMax
	count := 0
	for _, run := range tree.GetTreesInSphere(centre, r2, tree.Bounds()) {
		for ti := run.Lo; ti <= run.Hi; ti++ {
			d2 := centre.SqrDist(tree.PointAt(ti))
			if d2 < selfMatchSqr || d2 > r2 {
				continue
			}
			count++
		}
	}
	return count
}
