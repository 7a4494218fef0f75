package hull

import "github.com/ionfield/apt3d/geom"

// Volume returns the hull's volume via pyramid decomposition: each
// facet paired with the apex at the hull's mass-weighted centroid.
func (h *Hull) Volume() float64 {
	var total float64
	for _, f := range h.faces {
		total += geom.PyramidVolume(h.centroid, h.pts[f.a], h.pts[f.b], h.pts[f.c])
	}
	return total
}

// faceDist returns the perpendicular distance from h.centroid to the
// plane of face f, along f's outward normal.
func (h *Hull) faceDist(f face) float64 {
	n := f.normal
	unit := n.Scale(1.0 / n.Norm())
	return unit.Dot(h.pts[f.a].Sub(h.centroid))
}

// minFaceDist returns the smallest perpendicular distance from the
// centroid to any hull face: the centroid-to-hull minimum distance
// referenced by ErrNegativeScale.
func (h *Hull) minFaceDist() float64 {
	min := h.faceDist(h.faces[0])
	for _, f := range h.faces[1:] {
		if d := h.faceDist(f); d < min {
			min = d
		}
	}
	return min
}

// Reduce returns a new Hull scaled inward about the centroid so that
// every face moves inward by at least d, together with the indices
// (into h.Points()) of the original points that lie inside the shrunk
// hull. Used for surface exclusion ahead of a radial distribution
// query.
//
// Reduction is a uniform homothety about the centroid: scaling every
// hull vertex by factor s = (hMin-d)/hMin, where hMin is the
// centroid-to-nearest-face distance, moves every face's plane inward by
// exactly (1-s)*faceDist >= (1-s)*hMin = d, so the nearest face moves
// inward by exactly d and every other face by at least d.
func (h *Hull) Reduce(d float64) (*Hull, []int, error) {
	hMin := h.minFaceDist()
	if d >= hMin {
		return nil, nil, ErrNegativeScale
	}
	s := (hMin - d) / hMin

	shrunkPts := make([]geom.Point, len(h.pts))
	for i, p := range h.pts {
		shrunkPts[i] = h.centroid.Add(p.Sub(h.centroid).Scale(s))
	}
	shrunkFaces := make([]face, len(h.faces))
	for i, f := range h.faces {
		shrunkFaces[i] = face{a: f.a, b: f.b, c: f.c, normal: f.normal}
	}
	shrunk := &Hull{pts: shrunkPts, faces: shrunkFaces}
	shrunk.centroid = h.centroid

	var retained []int
	for i, p := range h.pts {
		if shrunk.contains(p) {
			retained = append(retained, i)
		}
	}
	return shrunk, retained, nil
}

// contains reports whether p lies inside (or on) every face half-space
// of h. h must be convex with outward-pointing face normals.
func (h *Hull) contains(p geom.Point) bool {
	for _, f := range h.faces {
		if f.normal.Dot(p.Sub(h.pts[f.a])) > epsilon {
			return false
		}
	}
	return true
}
