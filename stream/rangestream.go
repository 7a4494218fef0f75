package stream

import "github.com/ionfield/apt3d/rangetbl"

// RangeStream is a reference to a shared range table plus a caller-
// editable enabled mask. Table is never mutated through this stream;
// Mask captures per-consumer filtering state instead.
type RangeStream struct {
	Table *rangetbl.Table
	Mask  *rangetbl.EnabledMask
}
