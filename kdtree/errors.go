package kdtree

import "errors"

// Sentinel errors for kdtree operations.
var (
	// ErrNotBuilt names the state of a tree whose Build has not
	// succeeded. No kdtree function returns it: queries on an unbuilt
	// tree report no result instead.
	ErrNotBuilt = errors.New("kdtree: tree not built")

	// ErrTagSliceLength indicates an external tag slice passed to
	// FindNearestUntaggedWith does not match the tree's size.
	ErrTagSliceLength = errors.New("kdtree: external tag slice length mismatch")
)
