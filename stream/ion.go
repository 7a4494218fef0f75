package stream

import (
	"github.com/ionfield/apt3d/ion"
	"github.com/ionfield/apt3d/rangetbl"
)

// IonStream is a list of ion hits plus display hints.
type IonStream struct {
	Hits   []ion.Hit
	Colour rangetbl.Colour
	Size   float64
}
