package rdf

import (
	"math"

	"github.com/ionfield/apt3d/geom"
	"github.com/ionfield/apt3d/kdtree"
	"github.com/ionfield/apt3d/progress"
)

// RadiusRadial accumulates a single 1D histogram over [0, distMax] with
// numBins bins: for each source, successive nearest untagged targets
// are pulled and counted until one lands at or beyond distMax. A
// source whose target tree is exhausted before distMax is reached
// increments biasWarned rather than being binned at all.
func RadiusRadial(sources []geom.Point, target *kdtree.Tree, distMax float64, numBins int, tracker *progress.Tracker) (histogram []int, biasWarned int, err error) {
	histogram = make([]int, numBins)
	maxSqr := distMax * distMax

	for _, src := range sources {
		var touched []int
		for {
			idx, ok := target.FindNearestUntagged(src, target.Bounds(), true)
			if !ok {
				biasWarned++
				break
			}
			touched = append(touched, idx)

			d2 := src.SqrDist(target.PointAt(idx))
			if d2 >= maxSqr {
				break
			}

			bin := int(math.Sqrt(d2/maxSqr) * float64(numBins))
			if bin >= numBins {
				bin = numBins - 1
			}
			histogram[bin]++
		}
		target.ClearTags(touched)

		if !tracker.Tick() {
			return nil, 0, progress.ErrAborted
		}
	}

	return histogram, biasWarned, nil
}
