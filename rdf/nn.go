package rdf

import (
	"math"

	"github.com/ionfield/apt3d/geom"
	"github.com/ionfield/apt3d/kdtree"
	"github.com/ionfield/apt3d/progress"
)

// NNRadial computes one histogram per neighbour rank 0..nnMax-1: for
// every source point, its rank-th nearest target point contributes its
// distance to histogram[rank]. Bin widths are chosen per-rank by a
// two-pass scheme: a first pass records the maximum observed distance
// at each rank, then 1.05x that maximum is divided into numBins
// equal-width bins.
func NNRadial(sources []geom.Point, target *kdtree.Tree, nnMax, numBins int, tracker *progress.Tracker) (histogram [][]int, binWidth []float64, err error) {
	if target.Size() <= nnMax {
		return nil, nil, ErrInsufficientPoints
	}

	maxSqr := make([]float64, nnMax)
	for _, src := range sources {
		_, sqrDists := kNearest(target, src, nnMax)
		for rank, d2 := range sqrDists {
			if d2 > maxSqr[rank] {
				maxSqr[rank] = d2
			}
		}
		if !tracker.Tick() {
			return nil, nil, progress.ErrAborted
		}
	}

	binWidth = make([]float64, nnMax)
	for rank, d2 := range maxSqr {
		binWidth[rank] = 1.05 * math.Sqrt(d2) / float64(numBins)
	}

	histogram = make([][]int, nnMax)
	for i := range histogram {
		histogram[i] = make([]int, numBins)
	}

	for _, src := range sources {
		_, sqrDists := kNearest(target, src, nnMax)
		for rank, d2 := range sqrDists {
			if binWidth[rank] == 0 {
				continue
			}
			bin := int(math.Sqrt(d2) / binWidth[rank])
			if bin >= numBins {
				bin = numBins - 1
			}
			histogram[rank][bin]++
		}
		if !tracker.Tick() {
			return nil, nil, progress.ErrAborted
		}
	}

	return histogram, binWidth, nil
}
