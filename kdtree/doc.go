// Package kdtree implements a flat-array balanced 3D k-d tree: two
// parallel arrays indexed identically, supporting iterative
// (non-recursive) construction, tagged nearest-neighbour search with
// exclusion, and bulk extraction of contiguous index runs covering
// every point inside a sphere.
//
// Construction and the nearest-untagged search are both implemented as
// explicit-stack state machines rather than recursively, so deep trees
// never grow the Go call stack. The stack is local to each call; a
// traversal cannot be paused or resumed.
//
// Tags are ephemeral per-query annotations stored on the node array
// (ClearAllTags resets them at the start of an algorithm); concurrent
// tagged queries on one *Tree are not safe. A caller needing reentrant queries across
// goroutines should use FindNearestUntaggedWith, which takes an
// external []bool scratch buffer instead of mutating the tree.
package kdtree
