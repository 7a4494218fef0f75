package kdtree

// Tag sets (or clears) the tagged flag on tree index i. Tags are an
// ephemeral per-query annotation: they mark a point as "do not return
// from further nearest-untagged queries" and are not part of the
// tree's structural invariant.
func (t *Tree) Tag(i int, tagged bool) {
	t.nodes[i].Tagged = tagged
}

// Tagged reports whether tree index i is currently tagged.
func (t *Tree) Tagged(i int) bool {
	return t.nodes[i].Tagged
}

// ClearTags resets the tagged flag for exactly the indices in list.
func (t *Tree) ClearTags(list []int) {
	for _, i := range list {
		t.nodes[i].Tagged = false
	}
}

// ClearAllTags resets every tag in the tree. Algorithms call this at
// the start of a fresh pass.
func (t *Tree) ClearAllTags() {
	t.clearAllTagsLocked()
}

func (t *Tree) clearAllTagsLocked() {
	for i := range t.nodes {
		t.nodes[i].Tagged = false
	}
}

// TagCount returns the number of currently tagged points.
func (t *Tree) TagCount() int {
	n := 0
	for _, nd := range t.nodes {
		if nd.Tagged {
			n++
		}
	}
	return n
}
