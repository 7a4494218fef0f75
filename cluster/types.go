package cluster

import (
	"fmt"

	"github.com/ionfield/apt3d/ion"
	"github.com/ionfield/apt3d/progress"
)

// Option configures a Run invocation via functional arguments. An
// invalid Option (e.g. a non-positive LinkDist) is recorded internally
// and surfaced as ErrOptionViolation when Run is invoked.
type Option func(*Options)

// Options holds every tunable of the core-link-erode pipeline (spec
// §4.2). Zero-value bools disable their stage; DefaultOptions sets the
// minimum viable pipeline (backbone growth only, no size bound).
type Options struct {
	CoreSpecies []bool // indexed by species; true = core-capable
	BulkSpecies []bool // indexed by species; true = bulk-capable

	EnableCoreClassify bool
	CoreDist           float64
	CoreKNN            int

	LinkDist float64

	EnableBulkLink bool
	BulkLink       float64

	EnableErosion bool
	DErosion      float64

	WantCropSize bool
	NMin, NMax   int

	Tracker *progress.Tracker

	err error
}

// DefaultOptions returns an Options with every optional stage disabled
// and LinkDist at a placeholder that must be overridden with
// WithLinkDist — a zero link distance would make every cluster a
// singleton.
func DefaultOptions() Options {
	return Options{
		LinkDist: 1.0,
		NMax:     int(^uint(0) >> 1),
	}
}

// WithCoreSpecies marks the given species indices as core-capable.
func WithCoreSpecies(numSpecies int, species ...int) Option {
	return func(o *Options) {
		o.CoreSpecies = make([]bool, numSpecies)
		for _, s := range species {
			if s >= 0 && s < numSpecies {
				o.CoreSpecies[s] = true
			}
		}
	}
}

// WithBulkSpecies marks the given species indices as bulk-capable.
func WithBulkSpecies(numSpecies int, species ...int) Option {
	return func(o *Options) {
		o.BulkSpecies = make([]bool, numSpecies)
		for _, s := range species {
			if s >= 0 && s < numSpecies {
				o.BulkSpecies[s] = true
			}
		}
	}
}

// WithCoreClassify enables the k-th-nearest-core-neighbour
// reclassification stage: a core ion whose k-th nearest core neighbour
// lies beyond dist is demoted to bulk.
func WithCoreClassify(dist float64, k int) Option {
	return func(o *Options) {
		if dist <= 0 || k < 1 {
			o.err = fmt.Errorf("%w: CoreClassify requires dist>0 and k>=1 (got %v, %d)", ErrOptionViolation, dist, k)
			return
		}
		o.EnableCoreClassify = true
		o.CoreDist = dist
		o.CoreKNN = k
	}
}

// WithLinkDist sets the backbone-growth link distance.
func WithLinkDist(d float64) Option {
	return func(o *Options) {
		if d <= 0 {
			o.err = fmt.Errorf("%w: LinkDist must be positive (got %v)", ErrOptionViolation, d)
			return
		}
		o.LinkDist = d
	}
}

// WithBulkLink enables the bulk-envelope stage at the given radius.
func WithBulkLink(d float64) Option {
	return func(o *Options) {
		if d <= 0 {
			o.err = fmt.Errorf("%w: BulkLink must be positive (got %v)", ErrOptionViolation, d)
			return
		}
		o.EnableBulkLink = true
		o.BulkLink = d
	}
}

// WithErosion enables the boundary-erosion stage (requires bulk
// envelope) at the given radius.
func WithErosion(d float64) Option {
	return func(o *Options) {
		if d <= 0 {
			o.err = fmt.Errorf("%w: DErosion must be positive (got %v)", ErrOptionViolation, d)
			return
		}
		o.EnableErosion = true
		o.DErosion = d
	}
}

// WithSizeCrop enables dropping clusters outside [nMin, nMax] total
// membership (core+bulk).
func WithSizeCrop(nMin, nMax int) Option {
	return func(o *Options) {
		if nMin < 0 || nMax < nMin {
			o.err = fmt.Errorf("%w: invalid size crop bounds [%d,%d]", ErrOptionViolation, nMin, nMax)
			return
		}
		o.WantCropSize = true
		o.NMin, o.NMax = nMin, nMax
	}
}

// WithTracker attaches a progress tracker; Run aborts with
// progress.ErrAborted if the tracker's token declines to continue.
func WithTracker(t *progress.Tracker) Option {
	return func(o *Options) {
		o.Tracker = t
	}
}

// Cluster is one connected backbone plus its (possibly empty) bulk
// envelope. Every ion in core and bulk are drawn from the input; an
// ion appears in at most one Cluster, and Core/Bulk are disjoint
// within a Cluster.
type Cluster struct {
	Core []ion.Hit
	Bulk []ion.Hit
}

// Size returns the cluster's total membership (core+bulk).
func (c Cluster) Size() int {
	return len(c.Core) + len(c.Bulk)
}

// Result is the full decomposition produced by Run.
type Result struct {
	Clusters []Cluster
}
