package rdf

import "errors"

// ErrInsufficientPoints is returned by NNRadial when the target
// population is too small to supply nnMax neighbours for every source.
var ErrInsufficientPoints = errors.New("rdf: fewer target points than nnMax")
