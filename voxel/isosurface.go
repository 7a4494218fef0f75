package voxel

import "github.com/ionfield/apt3d/geom"

// Triangle is one marching-cubes output facet, with a linearly
// interpolated position and a central-difference gradient normal at
// each vertex (isoSurface.h's TriangleWithVertexNorm, adapted from a
// 3-element array to named fields since Go lacks Point3D's aggregate
// literal convenience).
type Triangle struct {
	P      [3]geom.Point
	Normal [3]geom.Point
}

// cubeCorner is one of a unit cube's 8 corners as (dx,dy,dz) offsets.
var cubeCorner = [8][3]int{
	{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
	{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1},
}

// cubeTetra lists the 6 tetrahedra (as corner indices into cubeCorner)
// that partition one unit cube, the standard Freudenthal subdivision.
var cubeTetra = [6][4]int{
	{0, 1, 2, 6}, {0, 1, 5, 6}, {0, 3, 2, 6},
	{0, 3, 7, 6}, {0, 4, 5, 6}, {0, 4, 7, 6},
}

// Isosurface extracts a triangulated surface at value isoValue using
// marching tetrahedra: each grid cube is split into 6 tetrahedra
// (isoSurface.h declares marchingCubes but ships no body, so the
// triangulation here follows the tetrahedral variant of the same
// algorithm family - it resolves the classic cube table's face/vertex
// ambiguities for free, at the cost of roughly twice the triangle
// count). Per-vertex normals are central-difference gradients of the
// scalar field, negated so they point toward decreasing value.
func Isosurface(g *Grid, isoValue float64) []Triangle {
	var tris []Triangle

	for x := 0; x < g.NX-1; x++ {
		for y := 0; y < g.NY-1; y++ {
			for z := 0; z < g.NZ-1; z++ {
				var val [8]float64
				var pos [8]geom.Point
				var grad [8]geom.Point
				for c := 0; c < 8; c++ {
					cx := x + cubeCorner[c][0]
					cy := y + cubeCorner[c][1]
					cz := z + cubeCorner[c][2]
					val[c] = g.At(cx, cy, cz)
					pos[c] = g.Centre(cx, cy, cz)
					grad[c] = gradientAt(g, cx, cy, cz)
				}

				for _, tet := range cubeTetra {
					tris = appendTetraTriangles(tris, isoValue,
						val[tet[0]], val[tet[1]], val[tet[2]], val[tet[3]],
						pos[tet[0]], pos[tet[1]], pos[tet[2]], pos[tet[3]],
						grad[tet[0]], grad[tet[1]], grad[tet[2]], grad[tet[3]])
				}
			}
		}
	}
	return tris
}

func gradientAt(g *Grid, x, y, z int) geom.Point {
	xm, xp := x-1, x+1
	if xm < 0 {
		xm = 0
	}
	if xp >= g.NX {
		xp = g.NX - 1
	}
	ym, yp := y-1, y+1
	if ym < 0 {
		ym = 0
	}
	if yp >= g.NY {
		yp = g.NY - 1
	}
	zm, zp := z-1, z+1
	if zm < 0 {
		zm = 0
	}
	if zp >= g.NZ {
		zp = g.NZ - 1
	}

	pitch := g.Pitch()
	gx := (g.At(xp, y, z) - g.At(xm, y, z)) / (2 * pitch.X)
	gy := (g.At(x, yp, z) - g.At(x, ym, z)) / (2 * pitch.Y)
	gz := (g.At(x, y, zp) - g.At(x, y, zm)) / (2 * pitch.Z)
	n := geom.Point{X: -gx, Y: -gy, Z: -gz}
	if l := n.Norm(); l > 0 {
		n = n.Scale(1 / l)
	}
	return n
}

func lerpEdge(isoValue, va, vb float64, pa, pb geom.Point) geom.Point {
	if vb == va {
		return pa
	}
	t := (isoValue - va) / (vb - va)
	return pa.Add(pb.Sub(pa).Scale(t))
}

func lerpNormal(isoValue, va, vb float64, na, nb geom.Point) geom.Point {
	if vb == va {
		return na
	}
	t := (isoValue - va) / (vb - va)
	n := na.Add(nb.Sub(na).Scale(t))
	if l := n.Norm(); l > 0 {
		n = n.Scale(1 / l)
	}
	return n
}

// appendTetraTriangles handles one tetrahedron's 16-case table. Cases
// are classified purely by how many of the 4 corners are inside the
// isosurface (below isoValue); no static lookup table is needed since
// a tetrahedron's cut is always a single triangle (1 or 3 corners
// inside) or a quad split into 2 triangles (2 corners inside).
func appendTetraTriangles(tris []Triangle, isoValue float64,
	v0, v1, v2, v3 float64,
	p0, p1, p2, p3 geom.Point,
	n0, n1, n2, n3 geom.Point) []Triangle {

	vals := [4]float64{v0, v1, v2, v3}
	pts := [4]geom.Point{p0, p1, p2, p3}
	norms := [4]geom.Point{n0, n1, n2, n3}

	var inside [4]bool
	count := 0
	for i, v := range vals {
		inside[i] = v < isoValue
		if inside[i] {
			count++
		}
	}
	if count == 0 || count == 4 {
		return tris
	}

	edge := func(a, b int) (geom.Point, geom.Point) {
		return lerpEdge(isoValue, vals[a], vals[b], pts[a], pts[b]),
			lerpNormal(isoValue, vals[a], vals[b], norms[a], norms[b])
	}

	if count == 1 || count == 3 {
		var apex int
		for i := 0; i < 4; i++ {
			if (count == 1) == inside[i] {
				apex = i
				break
			}
		}
		others := [3]int{}
		k := 0
		for i := 0; i < 4; i++ {
			if i != apex {
				others[k] = i
				k++
			}
		}
		pA, nA := edge(apex, others[0])
		pB, nB := edge(apex, others[1])
		pC, nC := edge(apex, others[2])
		tri := Triangle{P: [3]geom.Point{pA, pB, pC}, Normal: [3]geom.Point{nA, nB, nC}}
		if count == 3 {
			tri.P[1], tri.P[2] = tri.P[2], tri.P[1]
			tri.Normal[1], tri.Normal[2] = tri.Normal[2], tri.Normal[1]
		}
		return append(tris, tri)
	}

	// count == 2: the two inside corners and two outside corners form a
	// quad of four edge intersections; split it into two triangles.
	var in, out [2]int
	ki, ko := 0, 0
	for i := 0; i < 4; i++ {
		if inside[i] {
			in[ki] = i
			ki++
		} else {
			out[ko] = i
			ko++
		}
	}

	pA, nA := edge(in[0], out[0])
	pB, nB := edge(in[0], out[1])
	pC, nC := edge(in[1], out[1])
	pD, nD := edge(in[1], out[0])

	tris = append(tris,
		Triangle{P: [3]geom.Point{pA, pB, pC}, Normal: [3]geom.Point{nA, nB, nC}},
		Triangle{P: [3]geom.Point{pA, pC, pD}, Normal: [3]geom.Point{nA, nC, nD}},
	)
	return tris
}
