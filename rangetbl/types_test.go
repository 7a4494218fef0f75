package rangetbl_test

import (
	"testing"

	"github.com/ionfield/apt3d/rangetbl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTable(t *testing.T) *rangetbl.Table {
	t.Helper()
	tab := rangetbl.NewTable()
	a, err := tab.AddSpecies(rangetbl.Species{Name: "Al"})
	require.NoError(t, err)
	b, err := tab.AddSpecies(rangetbl.Species{Name: "O"})
	require.NoError(t, err)

	require.NoError(t, tab.AddRange(10, 20, a))
	require.NoError(t, tab.AddRange(30, 35, b))
	return tab
}

func TestLookup(t *testing.T) {
	tab := buildTable(t)

	sp, ranged := tab.Lookup(15)
	require.True(t, ranged)
	assert.Equal(t, 0, sp)

	sp, ranged = tab.Lookup(25)
	assert.False(t, ranged)
	assert.Equal(t, rangetbl.Unranged, sp)

	// half-open: Hi is excluded
	_, ranged = tab.Lookup(20)
	assert.False(t, ranged)

	_, ranged = tab.Lookup(30)
	assert.True(t, ranged)
}

func TestOverlapRejected(t *testing.T) {
	tab := buildTable(t)
	err := tab.AddRange(15, 25, 0)
	assert.ErrorIs(t, err, rangetbl.ErrOverlappingRange)

	// touching but not overlapping is fine (half-open)
	require.NoError(t, tab.AddRange(20, 30, 0))
}

func TestDuplicateSpeciesName(t *testing.T) {
	tab := rangetbl.NewTable()
	_, err := tab.AddSpecies(rangetbl.Species{Name: "Fe"})
	require.NoError(t, err)
	_, err = tab.AddSpecies(rangetbl.Species{Name: "Fe"})
	assert.ErrorIs(t, err, rangetbl.ErrDuplicateName)
}

func TestEnabledMaskIdempotent(t *testing.T) {
	tab := buildTable(t)
	mask := rangetbl.NewEnabledMask(tab)

	sp1, r1 := mask.LookupFiltered(15)
	sp2, r2 := mask.LookupFiltered(15)
	assert.Equal(t, sp1, sp2)
	assert.Equal(t, r1, r2)

	mask.SetSpeciesEnabled(0, false)
	_, ranged := mask.LookupFiltered(15)
	assert.False(t, ranged)
	// underlying table is untouched
	_, stillRanged := tab.Lookup(15)
	assert.True(t, stillRanged)
}
