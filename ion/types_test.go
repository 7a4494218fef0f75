package ion_test

import (
	"testing"

	"github.com/ionfield/apt3d/geom"
	"github.com/ionfield/apt3d/ion"
	"github.com/ionfield/apt3d/rangetbl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTable(t *testing.T) *rangetbl.Table {
	t.Helper()
	tbl := rangetbl.NewTable()
	fe, err := tbl.AddSpecies(rangetbl.Species{Name: "Fe"})
	require.NoError(t, err)
	require.NoError(t, tbl.AddRange(55.0, 57.0, fe))
	return tbl
}

func TestClassifyRangedHit(t *testing.T) {
	tbl := buildTable(t)
	hits := []ion.Hit{{Point: geom.Point{X: 1}, MassToCharge: 56.0}}

	species := ion.Classify(hits, tbl)

	require.Len(t, species, 1)
	assert.Equal(t, 0, species[0])
}

func TestClassifyUnrangedHit(t *testing.T) {
	tbl := buildTable(t)
	hits := []ion.Hit{{Point: geom.Point{X: 1}, MassToCharge: 12.0}}

	species := ion.Classify(hits, tbl)

	require.Len(t, species, 1)
	assert.Equal(t, ion.Unranged, species[0])
}

func TestClassifyPreservesOrderAndLength(t *testing.T) {
	tbl := buildTable(t)
	hits := []ion.Hit{
		{MassToCharge: 56.0},
		{MassToCharge: 12.0},
		{MassToCharge: 55.5},
	}

	species := ion.Classify(hits, tbl)

	assert.Equal(t, []int{0, ion.Unranged, 0}, species)
}
