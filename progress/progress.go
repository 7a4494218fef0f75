package progress

import "errors"

// Quantum is the fixed work interval (inner iterations) at which a
// long-running subsystem polls its cancellation Token and updates Data.
const Quantum = 5000

// ErrAborted is returned by any entry point whose Token trips during
// the operation. Partial outputs are always discarded.
var ErrAborted = errors.New("progress: aborted by cancellation")

// Data is a progress-reporting snapshot. Equality and assignment are
// member-wise, which a plain struct gives for free in Go.
type Data struct {
	Step           int
	MaxStep        int
	StepName       string
	FilterProgress float64 // in [0,100]
	CurFilter      int
	TotalProgress  int
}

// Equal reports member-wise equality between d and o.
func (d Data) Equal(o Data) bool {
	return d == o
}

// Reporter receives Data updates from a running subsystem. A nil
// Reporter is valid and simply discards updates.
type Reporter func(Data)

// Token is the cancellation predicate passed down from the external
// scheduler: it is polled at a fixed Quantum, and its side effect may
// pump a UI event loop. A nil Token never cancels.
type Token func() (cont bool)

// ShouldContinue reports whether work should keep going. A nil Token
// always continues.
func (tok Token) ShouldContinue() bool {
	if tok == nil {
		return true
	}
	return tok()
}

// Always is a Token that never cancels.
func Always() Token { return func() bool { return true } }

// Tracker bundles a Reporter and Token and counts inner-loop iterations,
// invoking the Token exactly once per Quantum iterations. Subsystems
// construct one per refresh and call Tick() from their hot loops.
type Tracker struct {
	Report Reporter
	Tok    Token

	n int
}

// NewTracker builds a Tracker; either argument may be nil.
func NewTracker(report Reporter, tok Token) *Tracker {
	return &Tracker{Report: report, Tok: tok}
}

// Tick advances the iteration counter and, every Quantum calls, polls
// the Token. Returns false once cancellation is observed; callers must
// stop and return ErrAborted upward.
func (tr *Tracker) Tick() bool {
	tr.n++
	if tr.n%Quantum != 0 {
		return true
	}
	return tr.Tok.ShouldContinue()
}

// Emit forwards d to the Reporter, if any.
func (tr *Tracker) Emit(d Data) {
	if tr.Report != nil {
		tr.Report(d)
	}
}
