package rdf

import (
	"math"

	"github.com/ionfield/apt3d/geom"
)

// Cylinder restricts the axial RDF variant to a user-chosen region: a
// finite cylinder of the given half-length along Axis, centred at
// Centre, with the given Radius.
type Cylinder struct {
	Centre     geom.Point
	Axis       geom.Point
	HalfLength float64
	Radius     float64
}

// unitAxis returns Axis normalised; a zero Axis is returned unchanged
// (callers constructing a degenerate Cylinder get a degenerate result,
// not a panic).
func (c Cylinder) unitAxis() geom.Point {
	n := math.Sqrt(c.Axis.X*c.Axis.X + c.Axis.Y*c.Axis.Y + c.Axis.Z*c.Axis.Z)
	if n == 0 {
		return c.Axis
	}
	return c.Axis.Scale(1 / n)
}

// contains reports whether p lies within the cylinder expanded by pad
// on both the half-length and the radius.
func (c Cylinder) contains(p geom.Point, pad float64) bool {
	axis := c.unitAxis()
	d := p.Sub(c.Centre)
	along := d.X*axis.X + d.Y*axis.Y + d.Z*axis.Z
	if math.Abs(along) > c.HalfLength+pad {
		return false
	}
	radial := d.Sub(axis.Scale(along))
	r2 := radial.X*radial.X + radial.Y*radial.Y + radial.Z*radial.Z
	rad := c.Radius + pad
	return r2 <= rad*rad
}

// SelectSources returns the subset of pts inside c, boundary included
// (no padding): the axial RDF's source population.
func (c Cylinder) SelectSources(pts []geom.Point) []geom.Point {
	var out []geom.Point
	for _, p := range pts {
		if c.contains(p, 0) {
			out = append(out, p)
		}
	}
	return out
}

// SelectTargets returns the subset of pts inside c expanded by distMax
// on both ends and the radius: the axial RDF's target population (spec
// §4.3 "Target points = all ions within distMax of the cylinder").
func (c Cylinder) SelectTargets(pts []geom.Point, distMax float64) []geom.Point {
	var out []geom.Point
	for _, p := range pts {
		if c.contains(p, distMax) {
			out = append(out, p)
		}
	}
	return out
}

func (c Cylinder) projection(src, pt geom.Point) float64 {
	axis := c.unitAxis()
	d := pt.Sub(src)
	return d.X*axis.X + d.Y*axis.Y + d.Z*axis.Z
}
