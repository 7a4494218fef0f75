package stream

import (
	"github.com/ionfield/apt3d/geom"
	"github.com/ionfield/apt3d/rangetbl"
)

// DrawableKind selects which fields of a Drawable are meaningful.
type DrawableKind int

const (
	VectorDrawable DrawableKind = iota
	SphereDrawable
	TriangleDrawable
	TexturedQuadDrawable
	ColourBarDrawable
)

// Drawable is one piece of overlay geometry, carried as pure data: the
// core never dereferences or interprets it beyond construction and
// storage.
type Drawable struct {
	Kind DrawableKind

	// VectorDrawable: an arrow from Origin along Direction.
	Origin    geom.Point
	Direction geom.Point

	// SphereDrawable: a sphere at Origin with this Radius.
	Radius float64

	// TriangleDrawable: three vertices and their per-vertex normals.
	Triangle [3]geom.Point
	Normal   [3]geom.Point

	// TexturedQuadDrawable: four corners plus an opaque texture
	// reference the core never resolves.
	Corners    [4]geom.Point
	TextureRef string

	// ColourBarDrawable: a label for an out-of-scope legend renderer.
	Label string

	Colour rangetbl.Colour
}

// DrawStream is an ordered list of drawables: vectors, spheres,
// triangles, textured quads, and colour bars.
type DrawStream struct {
	Drawables []Drawable
}
