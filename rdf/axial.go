package rdf

import (
	"math"

	"github.com/ionfield/apt3d/geom"
	"github.com/ionfield/apt3d/kdtree"
	"github.com/ionfield/apt3d/progress"
)

// AxialRadius bins the signed projection, onto cyl's axis, of every
// target displacement within distMax of each source, into numBins bins
// spanning [-distMax, +distMax]. Targets are enumerated with the same
// widening-search technique as RadiusRadial; a source whose target tree
// is exhausted before distMax is reached increments biasWarned.
func AxialRadius(sources []geom.Point, cyl Cylinder, target *kdtree.Tree, distMax float64, numBins int, tracker *progress.Tracker) (histogram []int, biasWarned int, err error) {
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

			tgt := target.PointAt(idx)
			d2 := src.SqrDist(tgt)
			if d2 >= maxSqr {
				break
			}

			proj := cyl.projection(src, tgt)
			bin := int((proj + distMax) / (2 * distMax) * float64(numBins))
			if bin < 0 {
				bin = 0
			}
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

// AxialNN is AxialRadius's NN-terminated counterpart: per rank 0..nnMax-1,
// the rank-th nearest target's signed axial projection is histogrammed
// into numBins bins spanning [-1.05*maxAbsProj[rank], +1.05*maxAbsProj[rank]],
// using the same two-pass 5%-padded bin-width scheme as NNRadial.
func AxialNN(sources []geom.Point, cyl Cylinder, target *kdtree.Tree, nnMax, numBins int, tracker *progress.Tracker) (histogram [][]int, binWidth []float64, err error) {
	if target.Size() <= nnMax {
		return nil, nil, ErrInsufficientPoints
	}

	maxAbsProj := make([]float64, nnMax)
	for _, src := range sources {
		idxs, _ := kNearest(target, src, nnMax)
		for rank, idx := range idxs {
			p := math.Abs(cyl.projection(src, target.PointAt(idx)))
			if p > maxAbsProj[rank] {
				maxAbsProj[rank] = p
			}
		}
		if !tracker.Tick() {
			return nil, nil, progress.ErrAborted
		}
	}

	binWidth = make([]float64, nnMax)
	halfBins := float64(numBins) / 2
	for rank, p := range maxAbsProj {
		binWidth[rank] = 1.05 * p / halfBins
	}

	histogram = make([][]int, nnMax)
	for i := range histogram {
		histogram[i] = make([]int, numBins)
	}

	for _, src := range sources {
		idxs, _ := kNearest(target, src, nnMax)
		for rank, idx := range idxs {
			if binWidth[rank] == 0 {
				continue
			}
			signed := cyl.projection(src, target.PointAt(idx))
			bin := int(signed/binWidth[rank] + halfBins)
			if bin < 0 {
				bin = 0
			}
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
