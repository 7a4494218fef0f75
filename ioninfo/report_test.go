package ioninfo_test

import (
	"testing"

	"github.com/ionfield/apt3d/geom"
	"github.com/ionfield/apt3d/ioninfo"
	"github.com/ionfield/apt3d/rangetbl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pt(x, y, z float64) geom.Point { return geom.Point{X: x, Y: y, Z: z} }

func buildTable(t *testing.T) *rangetbl.Table {
	tbl := rangetbl.NewTable()
	a, err := tbl.AddSpecies(rangetbl.Species{Name: "A"})
	require.NoError(t, err)
	b, err := tbl.AddSpecies(rangetbl.Species{Name: "B"})
	require.NoError(t, err)
	require.NoError(t, tbl.AddRange(0, 1, a))
	require.NoError(t, tbl.AddRange(1, 2, b))
	return tbl
}

func TestComputeCountsAndComposition(t *testing.T) {
	tbl := buildTable(t)
	points := []geom.Point{pt(0, 0, 0), pt(0, 0, 0), pt(0, 0, 0), pt(1, 1, 1)}
	species := []int{0, 0, 0, 1} // three A, one B

	r, err := ioninfo.Compute(tbl, points, species, ioninfo.Options{WantCounts: true, WantComposition: true})
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1}, r.Counts)
	assert.Equal(t, 0, r.UnrangedCount)
	assert.InDelta(t, 0.75, r.Composition[0], 1e-9)
	assert.InDelta(t, 0.25, r.Composition[1], 1e-9)
}

func TestComputeUnrangedBucket(t *testing.T) {
	tbl := buildTable(t)
	points := []geom.Point{pt(0, 0, 0), pt(5, 5, 5)}
	species := []int{0, rangetbl.Unranged}

	r, err := ioninfo.Compute(tbl, points, species, ioninfo.Options{WantCounts: true})
	require.NoError(t, err)
	assert.Equal(t, 1, r.UnrangedCount)
	assert.Equal(t, []int{1, 0}, r.Counts)
}

func TestComputeRectilinearVolumeAndDensity(t *testing.T) {
	tbl := buildTable(t)
	points := []geom.Point{pt(0, 0, 0), pt(2, 2, 2)}
	species := []int{0, 0}

	r, err := ioninfo.Compute(tbl, points, species, ioninfo.Options{WantCounts: true, Volume: ioninfo.Rectilinear})
	require.NoError(t, err)
	assert.InDelta(t, 8.0, r.VolumeRectilinear, 1e-9)
	assert.InDelta(t, 2.0/8.0, r.Density, 1e-9)
}

func TestComputeHullVolume(t *testing.T) {
	tbl := buildTable(t)
	var points []geom.Point
	for _, x := range []float64{0, 2} {
		for _, y := range []float64{0, 2} {
			for _, z := range []float64{0, 2} {
				points = append(points, pt(x, y, z))
			}
		}
	}
	species := make([]int, len(points))

	r, err := ioninfo.Compute(tbl, points, species, ioninfo.Options{WantCounts: true, Volume: ioninfo.ConvexHullVolume})
	require.NoError(t, err)
	assert.InDelta(t, 8.0, r.VolumeHull, 1e-6)
}

func TestComputeNoIons(t *testing.T) {
	tbl := buildTable(t)
	_, err := ioninfo.Compute(tbl, nil, nil, ioninfo.Options{WantCounts: true})
	assert.ErrorIs(t, err, ioninfo.ErrNoIons)
}
