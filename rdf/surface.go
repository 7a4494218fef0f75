package rdf

import (
	"github.com/ionfield/apt3d/geom"
	"github.com/ionfield/apt3d/hull"
)

// ExcludeSurface returns the subset of points lying inside their own
// convex hull once shrunk by reductionDistance about the hull's
// mass-weighted centroid. Surface-adjacent sources are dropped from an
// RDF's source set before the target tree is built, avoiding
// artificial truncation bias at the edge of the sampled volume.
//
// The three documented failure modes surface unchanged from hull:
// ErrTooFewPoints (fewer than 4 points), ErrDegenerateHull (coplanar
// points), and ErrNegativeScale (reductionDistance exceeds the
// centroid-to-hull minimum distance).
func ExcludeSurface(points []geom.Point, reductionDistance float64) ([]geom.Point, error) {
	h, err := hull.ConvexHull(points)
	if err != nil {
		return nil, err
	}
	_, retained, err := h.Reduce(reductionDistance)
	if err != nil {
		return nil, err
	}
	out := make([]geom.Point, len(retained))
	for i, idx := range retained {
		out[i] = points[idx]
	}
	return out, nil
}
