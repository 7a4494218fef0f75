package density

// Options configures Filter's stop mode, cutoff, and retention
// direction.
type Options struct {
	// NNMax selects neighbour-count stop mode: density is derived from
	// the distance to the NNMax-th nearest neighbour. Zero disables
	// this mode; exactly one of NNMax or DistMax must be set.
	NNMax int

	// DistMax selects radius stop mode: density is the count of
	// neighbours within DistMax divided by the sphere volume. Zero
	// disables this mode.
	DistMax float64

	// Cutoff is the density threshold used to retain or drop each ion.
	Cutoff float64

	// RetainUpper keeps ions at or above Cutoff when true, and ions
	// below Cutoff when false.
	RetainUpper bool
}

func (o Options) validate() error {
	nnSet := o.NNMax > 0
	distSet := o.DistMax > 0
	if nnSet == distSet {
		return ErrBadOptions
	}
	return nil
}
