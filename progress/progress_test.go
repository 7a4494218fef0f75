package progress_test

import (
	"testing"

	"github.com/ionfield/apt3d/progress"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataEqual(t *testing.T) {
	a := progress.Data{Step: 1, MaxStep: 10, StepName: "build"}
	b := a
	assert.True(t, a.Equal(b))
	b.Step = 2
	assert.False(t, a.Equal(b))
}

func TestTrackerCancelsAtQuantum(t *testing.T) {
	calls := 0
	tok := progress.Token(func() bool {
		calls++
		return calls < 2 // cancel on second poll
	})
	tr := progress.NewTracker(nil, tok)

	cont := true
	for i := 0; i < progress.Quantum*3 && cont; i++ {
		cont = tr.Tick()
	}
	assert.False(t, cont)
	assert.Equal(t, 2, calls)
}

func TestNilTokenNeverCancels(t *testing.T) {
	tr := progress.NewTracker(nil, nil)
	for i := 0; i < progress.Quantum*2; i++ {
		require.True(t, tr.Tick())
	}
}
