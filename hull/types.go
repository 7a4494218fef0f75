package hull

import "github.com/ionfield/apt3d/geom"

const epsilon = 1e-9

// face is a hull triangle, storing indices into the Hull's owned point
// slice and an outward-pointing (unnormalised) normal.
type face struct {
	a, b, c int
	normal  geom.Point
}

// Hull is an owned, triangulated convex hull over a fixed point set.
// Points passed to ConvexHull are copied in; Hull never aliases the
// caller's slice.
type Hull struct {
	pts      []geom.Point
	faces    []face
	centroid geom.Point
}

// Points returns the full point set the hull was built over (not just
// the extreme/vertex points), in the order ConvexHull received them.
func (h *Hull) Points() []geom.Point {
	return h.pts
}

// NumFaces returns the number of triangular facets in the hull.
func (h *Hull) NumFaces() int {
	return len(h.faces)
}

// Centroid returns the hull's mass-weighted centroid, computed once at
// construction as the pyramid-volume-weighted mean over the facet
// decomposition, used as the apex for Volume and as the scale origin
// for Reduce.
func (h *Hull) Centroid() geom.Point {
	return h.centroid
}

// ConvexHull computes the 3D convex hull of points via incremental
// insertion: an initial non-degenerate tetrahedron is found, then every
// remaining point either lies inside the current hull (dropped) or
// outside one or more faces, in which case the faces it sees are
// removed and replaced by a fan connecting the horizon to the new
// point. The returned Hull owns a copy of points.
func ConvexHull(points []geom.Point) (*Hull, error) {
	if len(points) < 4 {
		return nil, ErrTooFewPoints
	}
	pts := make([]geom.Point, len(points))
	copy(pts, points)

	a, b, c, d, err := initialTetrahedron(pts)
	if err != nil {
		return nil, err
	}

	interior := pts[a].Add(pts[b]).Add(pts[c]).Add(pts[d]).Scale(0.25)

	h := &Hull{pts: pts}
	h.faces = []face{
		newFace(pts, a, b, c, interior),
		newFace(pts, a, d, b, interior),
		newFace(pts, a, c, d, interior),
		newFace(pts, b, d, c, interior),
	}

	used := map[int]bool{a: true, b: true, c: true, d: true}
	for i := range pts {
		if used[i] {
			continue
		}
		h.insert(i)
	}

	h.centroid = h.massWeightedCentroid()
	return h, nil
}

func newFace(pts []geom.Point, a, b, c int, interior geom.Point) face {
	n := pts[b].Sub(pts[a]).Cross(pts[c].Sub(pts[a]))
	mid := pts[a].Add(pts[b]).Add(pts[c]).Scale(1.0 / 3.0)
	if n.Dot(mid.Sub(interior)) < 0 {
		a, b = b, a
		n = n.Scale(-1)
	}
	return face{a: a, b: b, c: c, normal: n}
}

// insert adds point i to the hull if it lies outside any current face,
// replacing the visible faces with a fan of new triangles joining the
// horizon edges to i.
func (h *Hull) insert(i int) {
	p := h.pts[i]

	visible := make([]bool, len(h.faces))
	anyVisible := false
	for fi, f := range h.faces {
		if f.normal.Dot(p.Sub(h.pts[f.a])) > epsilon {
			visible[fi] = true
			anyVisible = true
		}
	}
	if !anyVisible {
		return
	}

	type edge struct{ u, v int }
	edgeCount := map[edge]int{}
	canon := func(u, v int) edge {
		if u < v {
			return edge{u, v}
		}
		return edge{v, u}
	}
	// Record each visible face's 3 directed edges; an edge is a horizon
	// edge when its undirected form appears on exactly one visible face.
	type directedEdge struct{ u, v int }
	var horizon []directedEdge
	for fi, f := range h.faces {
		if !visible[fi] {
			continue
		}
		edgeCount[canon(f.a, f.b)]++
		edgeCount[canon(f.b, f.c)]++
		edgeCount[canon(f.c, f.a)]++
	}
	for fi, f := range h.faces {
		if !visible[fi] {
			continue
		}
		tri := [3][2]int{{f.a, f.b}, {f.b, f.c}, {f.c, f.a}}
		for _, e := range tri {
			if edgeCount[canon(e[0], e[1])] == 1 {
				horizon = append(horizon, directedEdge{e[0], e[1]})
			}
		}
	}

	kept := h.faces[:0]
	for fi, f := range h.faces {
		if !visible[fi] {
			kept = append(kept, f)
		}
	}
	h.faces = kept

	for _, e := range horizon {
		// Horizon edges are recorded in the winding order of their
		// (now-removed) visible face, so (e.u, e.v, i) is already
		// correctly oriented outward without needing an interior probe.
		n := h.pts[e.v].Sub(h.pts[e.u]).Cross(p.Sub(h.pts[e.u]))
		h.faces = append(h.faces, face{a: e.u, b: e.v, c: i, normal: n})
	}
}

func (h *Hull) massWeightedCentroid() geom.Point {
	approx := geom.Point{}
	seen := map[int]bool{}
	var unique []int
	for _, f := range h.faces {
		for _, idx := range [3]int{f.a, f.b, f.c} {
			if !seen[idx] {
				seen[idx] = true
				unique = append(unique, idx)
			}
		}
	}
	for _, idx := range unique {
		approx = approx.Add(h.pts[idx])
	}
	approx = approx.Scale(1.0 / float64(len(unique)))

	var totalVol float64
	weighted := geom.Point{}
	for _, f := range h.faces {
		vol := geom.PyramidVolume(approx, h.pts[f.a], h.pts[f.b], h.pts[f.c])
		pc := approx.Add(h.pts[f.a]).Add(h.pts[f.b]).Add(h.pts[f.c]).Scale(0.25)
		weighted = weighted.Add(pc.Scale(vol))
		totalVol += vol
	}
	if totalVol == 0 {
		return approx
	}
	return weighted.Scale(1.0 / totalVol)
}

// initialTetrahedron picks 4 non-coplanar points: the extremes along X,
// the point farthest from that line, then the point farthest from the
// plane of the first three.
func initialTetrahedron(pts []geom.Point) (a, b, c, d int, err error) {
	n := len(pts)
	a, b = 0, 1
	for i := 2; i < n; i++ {
		if pts[i].X < pts[a].X {
			a = i
		}
		if pts[i].X > pts[b].X {
			b = i
		}
	}
	if a == b {
		b = 1
		if a == 1 {
			b = 0
		}
	}

	bestLineDist := -1.0
	for i := 0; i < n; i++ {
		if i == a || i == b {
			continue
		}
		dist := pointLineDist(pts[i], pts[a], pts[b])
		if dist > bestLineDist {
			bestLineDist = dist
			c = i
		}
	}
	if bestLineDist < epsilon {
		return 0, 0, 0, 0, ErrDegenerateHull
	}

	bestPlaneDist := -1.0
	for i := 0; i < n; i++ {
		if i == a || i == b || i == c {
			continue
		}
		dist := pointPlaneDist(pts[i], pts[a], pts[b], pts[c])
		if dist < 0 {
			dist = -dist
		}
		if dist > bestPlaneDist {
			bestPlaneDist = dist
			d = i
		}
	}
	if bestPlaneDist < epsilon {
		return 0, 0, 0, 0, ErrDegenerateHull
	}
	return a, b, c, d, nil
}

func pointLineDist(p, a, b geom.Point) float64 {
	ab := b.Sub(a)
	denom := ab.Norm()
	if denom < epsilon {
		return 0
	}
	return p.Sub(a).Cross(ab).Norm() / denom
}

func pointPlaneDist(p, a, b, c geom.Point) float64 {
	n := b.Sub(a).Cross(c.Sub(a))
	denom := n.Norm()
	if denom < epsilon {
		return 0
	}
	return p.Sub(a).Dot(n) / denom
}
