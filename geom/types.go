package geom

import "math"

// Point is a point in 3D space. Equality is bit-exact.
type Point struct {
	X, Y, Z float64
}

// Axis indexes a coordinate of a Point.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// Get returns the coordinate of p along the given axis.
func (p Point) Get(a Axis) float64 {
	switch a {
	case AxisX:
		return p.X
	case AxisY:
		return p.Y
	default:
		return p.Z
	}
}

// Set returns p with the coordinate along a replaced by v.
func (p Point) Set(a Axis, v float64) Point {
	switch a {
	case AxisX:
		p.X = v
	case AxisY:
		p.Y = v
	default:
		p.Z = v
	}
	return p
}

// Sub returns p-q componentwise.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y, p.Z - q.Z}
}

// Add returns p+q componentwise.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y, p.Z + q.Z}
}

// Scale returns p scaled by s.
func (p Point) Scale(s float64) Point {
	return Point{p.X * s, p.Y * s, p.Z * s}
}

// Dot returns the dot product of p and q.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y + p.Z*q.Z
}

// Cross returns the cross product p×q.
func (p Point) Cross(q Point) Point {
	return Point{
		X: p.Y*q.Z - p.Z*q.Y,
		Y: p.Z*q.X - p.X*q.Z,
		Z: p.X*q.Y - p.Y*q.X,
	}
}

// SqrDist returns the squared Euclidean distance between p and q.
// Used in hot loops across kdtree, cluster, and rdf to avoid a sqrt.
func (p Point) SqrDist(q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	dz := p.Z - q.Z
	return dx*dx + dy*dy + dz*dz
}

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Sqrt(p.SqrDist(q))
}

// Norm returns the Euclidean length of p treated as a vector from the origin.
func (p Point) Norm() float64 {
	return math.Sqrt(p.Dot(p))
}

// IsFinite reports whether every component of p is finite.
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0) &&
		!math.IsNaN(p.Z) && !math.IsInf(p.Z, 0)
}

// Box is an axis-aligned bounding box, valid when Lo[i] <= Hi[i] for all i.
type Box struct {
	Lo, Hi Point
}

// MaxCoordinate bounds the magnitude a Box or Point is considered numerically
// sane at; beyond this, IsSane reports false. Mirrors the source's guard
// against corrupted or uninitialised point data propagating silently.
const MaxCoordinate = 1e12

// InverseBox returns a Box initialised for incremental construction:
// Lo = +Inf, Hi = -Inf on every axis, so that the first ExpandByPoint
// call establishes real bounds.
func InverseBox() Box {
	inf := math.Inf(1)
	return Box{
		Lo: Point{inf, inf, inf},
		Hi: Point{-inf, -inf, -inf},
	}
}

// BoxFromPoints computes the AABB of pts. Returns InverseBox() (an
// invalid box) for an empty input.
func BoxFromPoints(pts []Point) Box {
	b := InverseBox()
	for _, p := range pts {
		b = b.ExpandByPoint(p)
	}
	return b
}

// Valid reports whether Lo[i] <= Hi[i] on every axis.
func (b Box) Valid() bool {
	return b.Lo.X <= b.Hi.X && b.Lo.Y <= b.Hi.Y && b.Lo.Z <= b.Hi.Z
}

// IsFlat reports whether any axis of b has zero thickness.
func (b Box) IsFlat() bool {
	return b.Lo.X == b.Hi.X || b.Lo.Y == b.Hi.Y || b.Lo.Z == b.Hi.Z
}

// IsSane rejects non-finite or implausibly large boxes; used to reject
// corrupted point data before it propagates into a kd-tree or voxel grid.
func (b Box) IsSane() bool {
	if !b.Lo.IsFinite() || !b.Hi.IsFinite() {
		return false
	}
	abs := math.Abs
	return abs(b.Lo.X) < MaxCoordinate && abs(b.Lo.Y) < MaxCoordinate && abs(b.Lo.Z) < MaxCoordinate &&
		abs(b.Hi.X) < MaxCoordinate && abs(b.Hi.Y) < MaxCoordinate && abs(b.Hi.Z) < MaxCoordinate
}

// Contains reports whether p lies within b, inclusive of both bounds.
func (b Box) Contains(p Point) bool {
	return p.X >= b.Lo.X && p.X <= b.Hi.X &&
		p.Y >= b.Lo.Y && p.Y <= b.Hi.Y &&
		p.Z >= b.Lo.Z && p.Z <= b.Hi.Z
}

// ExpandByPoint returns the smallest box containing both b and p.
func (b Box) ExpandByPoint(p Point) Box {
	return Box{
		Lo: Point{min(b.Lo.X, p.X), min(b.Lo.Y, p.Y), min(b.Lo.Z, p.Z)},
		Hi: Point{max(b.Hi.X, p.X), max(b.Hi.Y, p.Y), max(b.Hi.Z, p.Z)},
	}
}

// ExpandByBox returns the smallest box containing both b and o.
func (b Box) ExpandByBox(o Box) Box {
	return Box{
		Lo: Point{min(b.Lo.X, o.Lo.X), min(b.Lo.Y, o.Lo.Y), min(b.Lo.Z, o.Lo.Z)},
		Hi: Point{max(b.Hi.X, o.Hi.X), max(b.Hi.Y, o.Hi.Y), max(b.Hi.Z, o.Hi.Z)},
	}
}

// ExpandByDist returns b grown by d on every face.
func (b Box) ExpandByDist(d float64) Box {
	delta := Point{d, d, d}
	return Box{Lo: b.Lo.Sub(delta), Hi: b.Hi.Add(delta)}
}

// IntersectsSphere reports whether b overlaps the sphere of squared radius
// r2 centred at c: the closest point in b to c is within r2.
func (b Box) IntersectsSphere(c Point, r2 float64) bool {
	var d float64
	if v := closestAxisDelta(c.X, b.Lo.X, b.Hi.X); v != 0 {
		d += v * v
	}
	if v := closestAxisDelta(c.Y, b.Lo.Y, b.Hi.Y); v != 0 {
		d += v * v
	}
	if v := closestAxisDelta(c.Z, b.Lo.Z, b.Hi.Z); v != 0 {
		d += v * v
	}
	return d <= r2
}

func closestAxisDelta(c, lo, hi float64) float64 {
	if c < lo {
		return lo - c
	}
	if c > hi {
		return c - hi
	}
	return 0
}

// ContainedInSphere reports whether every point of b lies within the
// sphere of squared radius r2 centred at c: the farthest corner of b
// from c must be within r2.
func (b Box) ContainedInSphere(c Point, r2 float64) bool {
	var d float64
	d += farAxisDelta(c.X, b.Lo.X, b.Hi.X)
	d += farAxisDelta(c.Y, b.Lo.Y, b.Hi.Y)
	d += farAxisDelta(c.Z, b.Lo.Z, b.Hi.Z)
	return d <= r2
}

func farAxisDelta(c, lo, hi float64) float64 {
	dl := c - lo
	dh := c - hi
	if dl < 0 {
		dl = -dl
	}
	if dh < 0 {
		dh = -dh
	}
	far := dl
	if dh > far {
		far = dh
	}
	return far * far
}

func min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// PyramidVolume returns the volume of the tetrahedron formed by apex and
// the triangle (a,b,c), used to decompose a convex hull's facets into
// simplices anchored at a shared apex (spec: ion-info hull volume, hull
// centroid weighting).
func PyramidVolume(apex, a, b, c Point) float64 {
	ab := a.Sub(apex)
	bb := b.Sub(apex)
	cb := c.Sub(apex)
	// scalar triple product / 6
	return math.Abs(ab.Dot(bb.Cross(cb))) / 6.0
}
