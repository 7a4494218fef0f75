package kdtree

import (
	"sort"

	"github.com/ionfield/apt3d/geom"
	"github.com/ionfield/apt3d/progress"
)

// buildState is the per-frame state of the explicit-stack build
// traversal: none visited yet, left child pushed, both children pushed.
type buildState int

const (
	frameNone buildState = iota
	frameLeft
	frameBoth
)

// buildFrame is one explicit-stack frame covering the inclusive
// sub-range [lo,hi] of t.indexedPoints being split at the current
// depth's axis. parentNode/parentSide record where this frame's
// eventual split index must be written as a child link once computed
// (parentNode == None for the root frame).
type buildFrame struct {
	lo, hi     int
	state      buildState
	split      int
	parentNode int
	parentSide int // 0 = left child, 1 = right child
}

// Build constructs the tree in place from the points passed to Reset,
// without recursion, using an explicit stack of (lo,hi,state,split)
// frames. Progress is reported at a fixed quantum; tr, if non-nil, may
// cancel the build, in which case Build returns progress.ErrAborted
// and the tree is left unbuilt.
func (t *Tree) Build(tr *progress.Tracker) error {
	t.maxDepth = 0
	t.clearAllTagsLocked()

	n := len(t.indexedPoints)
	if n == 0 {
		t.root = None
		t.built = true
		return nil
	}

	stack := []buildFrame{{lo: 0, hi: n - 1, state: frameNone, parentNode: None}}

	if tr == nil {
		tr = progress.NewTracker(nil, nil)
	}

	for len(stack) > 0 {
		idx := len(stack) - 1
		depth := idx // stack size - 1 at time of NONE processing below

		switch stack[idx].state {
		case frameNone:
			axis := geom.Axis(depth % 3)
			lo, hi := stack[idx].lo, stack[idx].hi
			sortByAxis(t.indexedPoints[lo:hi+1], axis)

			split := (lo + hi) / 2
			for split != hi && t.indexedPoints[split].Point.Get(axis) == t.indexedPoints[split+1].Point.Get(axis) {
				split++
			}
			stack[idx].split = split

			if stack[idx].parentNode == None {
				t.root = split
			} else if stack[idx].parentSide == 0 {
				t.nodes[stack[idx].parentNode].Left = split
			} else {
				t.nodes[stack[idx].parentNode].Right = split
			}

			stack[idx].state = frameLeft
			if split > lo {
				stack = append(stack, buildFrame{lo: lo, hi: split - 1, state: frameNone, parentNode: split, parentSide: 0})
			} else {
				t.nodes[split].Left = None
			}

		case frameLeft:
			split, hi := stack[idx].split, stack[idx].hi
			stack[idx].state = frameBoth
			if split < hi {
				stack = append(stack, buildFrame{lo: split + 1, hi: hi, state: frameNone, parentNode: split, parentSide: 1})
			} else {
				t.nodes[split].Right = None
			}

		case frameBoth:
			if depth+1 > t.maxDepth {
				t.maxDepth = depth + 1
			}
			stack = stack[:idx]

			if !tr.Tick() {
				t.root = None
				t.built = false
				return progress.ErrAborted
			}
		}
	}

	t.built = true
	return nil
}

func sortByAxis(pts []IndexedPoint, axis geom.Axis) {
	sort.Slice(pts, func(i, j int) bool {
		return pts[i].Point.Get(axis) < pts[j].Point.Get(axis)
	})
}
