package rangetbl

import "errors"

// Sentinel errors for rangetbl operations.
var (
	// ErrOverlappingRange indicates two ranges share scalar values; the
	// range table invariant requires disjoint intervals.
	ErrOverlappingRange = errors.New("rangetbl: overlapping range")

	// ErrEmptyName indicates a Species with an empty Name was added.
	ErrEmptyName = errors.New("rangetbl: species name is empty")

	// ErrDuplicateName indicates two species share a Name.
	ErrDuplicateName = errors.New("rangetbl: duplicate species name")

	// ErrInvalidInterval indicates Hi <= Lo for a proposed range.
	ErrInvalidInterval = errors.New("rangetbl: range Hi must be > Lo")

	// ErrUnknownSpecies indicates a range referenced a species index
	// outside [0, len(Species)).
	ErrUnknownSpecies = errors.New("rangetbl: unknown species index")
)
