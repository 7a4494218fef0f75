package kdtree

import "github.com/ionfield/apt3d/geom"

// None is the child-index / result sentinel used throughout kdtree in
// place of a null pointer.
const None = -1

// IndexedPoint pairs a point with its position in the caller's original
// (pre-build) slice. Points are permuted during Build; OrigIndex
// remembers where each one started.
type IndexedPoint struct {
	Point     geom.Point
	OrigIndex int
}

// node holds the tree-structural fields for one entry in Tree's arrays:
// child indices (into the same arrays, or None) and an ephemeral tag.
type node struct {
	Left, Right int
	Tagged      bool
}

// Tree is a balanced, tagged, index-based 3D k-d tree. The zero value
// is not usable; construct with New.
type Tree struct {
	indexedPoints []IndexedPoint
	nodes         []node

	root     int
	bounds   geom.Box
	maxDepth int
	built    bool
}

// New returns an empty, unbuilt Tree.
func New() *Tree {
	return &Tree{root: None}
}

// Size returns the number of points currently held by t.
func (t *Tree) Size() int {
	return len(t.indexedPoints)
}

// Bounds returns the AABB of the points passed to Reset.
func (t *Tree) Bounds() geom.Box {
	return t.bounds
}

// MaxDepth returns the observed maximum tree depth after Build.
func (t *Tree) MaxDepth() int {
	return t.maxDepth
}

// Root returns the index of the root node, or None if the tree is
// empty.
func (t *Tree) Root() int {
	return t.root
}

// PointAt returns the point stored at tree index i (post-build; permuted
// relative to the slice given to Reset).
func (t *Tree) PointAt(i int) geom.Point {
	return t.indexedPoints[i].Point
}

// OrigIndexAt returns the pre-build index of the point stored at tree
// index i.
func (t *Tree) OrigIndexAt(i int) int {
	return t.indexedPoints[i].OrigIndex
}

// Left returns the left-child tree index of node i, or None.
func (t *Tree) Left(i int) int {
	return t.nodes[i].Left
}

// Right returns the right-child tree index of node i, or None.
func (t *Tree) Right(i int) int {
	return t.nodes[i].Right
}

// Reset copies points into the tree's internal array together with
// their original indices, and records the input's AABB. It does not
// build the tree; call Build afterward.
func (t *Tree) Reset(points []geom.Point) {
	t.indexedPoints = make([]IndexedPoint, len(points))
	t.nodes = make([]node, len(points))
	b := geom.InverseBox()
	for i, p := range points {
		t.indexedPoints[i] = IndexedPoint{Point: p, OrigIndex: i}
		t.nodes[i] = node{Left: None, Right: None}
		b = b.ExpandByPoint(p)
	}
	t.bounds = b
	t.root = None
	t.maxDepth = 0
	t.built = false
}

// Run is a contiguous range [Lo,Hi] (inclusive) of tree-array indices,
// as emitted by GetTreesInSphere.
type Run struct {
	Lo, Hi int
}
