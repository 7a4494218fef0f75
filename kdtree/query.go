package kdtree

import (
	"math"

	"github.com/ionfield/apt3d/geom"
)

// visitState names which step of the iterative nearest-untagged
// traversal a stack frame is about to perform: visitFirst descends
// into the near child, visitSecond (after the near subtree has fully
// returned) considers the far child, visitThird (after both children
// have been handled) tests the frame's own point against the running
// best and pops. Each frame owns its own domain Box by value, so there
// is nothing to restore on pop.
type visitState int

const (
	visitFirst visitState = iota
	visitSecond
	visitThird
)

type queryFrame struct {
	node   int
	axis   geom.Axis
	domain geom.Box
	visit  visitState

	// computed once during visitFirst, consumed during visitSecond.
	farNode   int
	farDomain geom.Box
}

// tagReader/tagWriter abstract over tags living on the tree itself
// (FindNearestUntagged) versus an external scratch slice
// (FindNearestUntaggedWith), so both share one traversal.
type tagReader func(i int) bool
type tagWriter func(i int, v bool)

// FindNearestUntagged returns the tree index of the closest untagged
// point to queryPt whose squared distance is strictly greater than
// zero relative to the initial +Inf best bound — i.e. a coincident
// query point is never spuriously excluded, but is also never itself
// returned unless the only remaining untagged point. domainBox bounds
// the search (typically the tree's own Bounds()). If shouldTag is true
// and a point is found, it is tagged before returning. Returns
// (None, false) on an empty tree or when every point is tagged.
func (t *Tree) FindNearestUntagged(queryPt geom.Point, domainBox geom.Box, shouldTag bool) (int, bool) {
	return t.findNearestUntagged(queryPt, domainBox,
		func(i int) bool { return t.nodes[i].Tagged },
		func(i int, v bool) { t.nodes[i].Tagged = v },
		shouldTag)
}

// FindNearestUntaggedWith behaves like FindNearestUntagged but reads
// and (optionally) writes tags through an external []bool scratch
// buffer the caller owns, rather than the tree's own node array. This
// makes the query reentrant across goroutines each holding a distinct
// tag buffer over the same *Tree.
func (t *Tree) FindNearestUntaggedWith(queryPt geom.Point, domainBox geom.Box, tags []bool, shouldTag bool) (int, error) {
	if len(tags) != len(t.indexedPoints) {
		return None, ErrTagSliceLength
	}
	idx, _ := t.findNearestUntagged(queryPt, domainBox,
		func(i int) bool { return tags[i] },
		func(i int, v bool) { tags[i] = v },
		shouldTag)
	return idx, nil
}

func (t *Tree) findNearestUntagged(queryPt geom.Point, domainBox geom.Box, tagged tagReader, setTag tagWriter, shouldTag bool) (int, bool) {
	if t.root == None || len(t.indexedPoints) == 0 {
		return None, false
	}

	bestIdx := None
	bestDist := math.Inf(1)

	stack := []queryFrame{{node: t.root, axis: 0, domain: domainBox, visit: visitFirst}}

	for len(stack) > 0 {
		idx := len(stack) - 1
		f := stack[idx]

		switch f.visit {
		case visitFirst:
			splitVal := t.indexedPoints[f.node].Point.Get(f.axis)
			nearLeft := queryPt.Get(f.axis) < splitVal

			var nearNode, farNode int
			var nearDomain, farDomain geom.Box
			if nearLeft {
				nearNode, farNode = t.nodes[f.node].Left, t.nodes[f.node].Right
				nearDomain = shrinkHi(f.domain, f.axis, splitVal)
				farDomain = shrinkLo(f.domain, f.axis, splitVal)
			} else {
				nearNode, farNode = t.nodes[f.node].Right, t.nodes[f.node].Left
				nearDomain = shrinkLo(f.domain, f.axis, splitVal)
				farDomain = shrinkHi(f.domain, f.axis, splitVal)
			}

			stack[idx].visit = visitSecond
			stack[idx].farNode = farNode
			stack[idx].farDomain = farDomain

			if nearNode != None && nearDomain.IntersectsSphere(queryPt, bestDist) {
				stack = append(stack, queryFrame{
					node: nearNode, axis: geom.Axis((int(f.axis) + 1) % 3),
					domain: nearDomain, visit: visitFirst,
				})
			}

		case visitSecond:
			stack[idx].visit = visitThird
			if f.farNode != None && f.farDomain.IntersectsSphere(queryPt, bestDist) {
				stack = append(stack, queryFrame{
					node: f.farNode, axis: geom.Axis((int(f.axis) + 1) % 3),
					domain: f.farDomain, visit: visitFirst,
				})
			}

		case visitThird:
			if !tagged(f.node) {
				d := t.indexedPoints[f.node].Point.SqrDist(queryPt)
				if d < bestDist {
					bestDist = d
					bestIdx = f.node
				}
			}
			stack = stack[:idx]
		}
	}

	if bestIdx != None && shouldTag {
		setTag(bestIdx, true)
	}
	return bestIdx, bestIdx != None
}

func shrinkHi(b geom.Box, axis geom.Axis, v float64) geom.Box {
	b.Hi = b.Hi.Set(axis, v)
	return b
}

func shrinkLo(b geom.Box, axis geom.Axis, v float64) geom.Box {
	b.Lo = b.Lo.Set(axis, v)
	return b
}

// GetTreesInSphere performs a breadth-first traversal emitting
// contiguous tree-index Runs that together cover every point inside
// the sphere of squared radius r2 centred at centre. A
// subtree wholly contained in the sphere is emitted as one run without
// recursing further; a subtree merely intersecting the sphere emits its
// own split point as a single-index run when that point lies inside the
// sphere, and is refined into its children; a disjoint subtree is
// dropped. Tags are not consulted. Callers scan each run linearly and
// filter.
func (t *Tree) GetTreesInSphere(centre geom.Point, r2 float64, domainBox geom.Box) []Run {
	if t.root == None {
		return nil
	}

	type bfsFrame struct {
		node   int
		axis   geom.Axis
		domain geom.Box
		lo, hi int
	}

	var runs []Run
	queue := []bfsFrame{{node: t.root, axis: 0, domain: domainBox, lo: 0, hi: len(t.indexedPoints) - 1}}

	for len(queue) > 0 {
		f := queue[0]
		queue = queue[1:]

		if f.domain.ContainedInSphere(centre, r2) {
			runs = append(runs, Run{Lo: f.lo, Hi: f.hi})
			continue
		}
		if !f.domain.IntersectsSphere(centre, r2) {
			continue
		}
		if centre.SqrDist(t.indexedPoints[f.node].Point) <= r2 {
			runs = append(runs, Run{Lo: f.node, Hi: f.node})
		}

		nextAxis := geom.Axis((int(f.axis) + 1) % 3)
		splitVal := t.indexedPoints[f.node].Point.Get(f.axis)

		if left := t.nodes[f.node].Left; left != None {
			childDomain := shrinkHi(f.domain, f.axis, splitVal)
			if childDomain.IntersectsSphere(centre, r2) {
				queue = append(queue, bfsFrame{node: left, axis: nextAxis, domain: childDomain, lo: f.lo, hi: f.node - 1})
			}
		}
		if right := t.nodes[f.node].Right; right != None {
			childDomain := shrinkLo(f.domain, f.axis, splitVal)
			if childDomain.IntersectsSphere(centre, r2) {
				queue = append(queue, bfsFrame{node: right, axis: nextAxis, domain: childDomain, lo: f.node + 1, hi: f.hi})
			}
		}
	}

	return runs
}
