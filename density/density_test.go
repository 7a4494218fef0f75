package density_test

import (
	"testing"

	"github.com/ionfield/apt3d/density"
	"github.com/ionfield/apt3d/geom"
	"github.com/ionfield/apt3d/ion"
	"github.com/ionfield/apt3d/kdtree"
	"github.com/ionfield/apt3d/progress"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pt(x, y, z float64) geom.Point { return geom.Point{X: x, Y: y, Z: z} }

// sphereShell builds a dense cluster near the origin and a single
// sparse, isolated ion far away, so density-based retention has a
// clear high/low split to assert against.
func sphereShell(t *testing.T) ([]ion.Hit, *kdtree.Tree) {
	var hits []ion.Hit
	for x := -1; x <= 1; x++ {
		for y := -1; y <= 1; y++ {
			for z := -1; z <= 1; z++ {
				hits = append(hits, ion.Hit{Point: pt(float64(x)*0.1, float64(y)*0.1, float64(z)*0.1)})
			}
		}
	}
	hits = append(hits, ion.Hit{Point: pt(1000, 1000, 1000)})

	pts := make([]geom.Point, len(hits))
	for i, h := range hits {
		pts[i] = h.Point
	}
	tree := kdtree.New()
	tree.Reset(pts)
	require.NoError(t, tree.Build(progress.NewTracker(nil, nil)))
	return hits, tree
}

func TestFilterNNModeRetainsUpper(t *testing.T) {
	hits, tree := sphereShell(t)
	kept, dropped, err := density.Filter(tree, hits, density.Options{
		NNMax: 2, Cutoff: 1.0, RetainUpper: true,
	})
	require.NoError(t, err)
	// the far-flung singleton has too few neighbours within the tree to
	// ever beat the dense cluster's density, and should end up dropped
	// or excluded rather than retained.
	assert.Less(t, len(kept), len(hits))
	assert.GreaterOrEqual(t, dropped, 0)
}

func TestFilterRadiusModeDropsNothingOnZeroCount(t *testing.T) {
	hits, tree := sphereShell(t)
	kept, dropped, err := density.Filter(tree, hits, density.Options{
		DistMax: 0.5, Cutoff: 0.0, RetainUpper: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, dropped, "radius mode never reports insufficient neighbours")
	assert.NotEmpty(t, kept)
}

func TestFilterRetainLowerInvertsSelection(t *testing.T) {
	hits, tree := sphereShell(t)
	upper, _, err := density.Filter(tree, hits, density.Options{
		DistMax: 0.5, Cutoff: 5.0, RetainUpper: true,
	})
	require.NoError(t, err)
	lower, _, err := density.Filter(tree, hits, density.Options{
		DistMax: 0.5, Cutoff: 5.0, RetainUpper: false,
	})
	require.NoError(t, err)
	assert.Equal(t, len(hits), len(upper)+len(lower))
}

func TestFilterBadOptionsNeitherModeSet(t *testing.T) {
	hits, tree := sphereShell(t)
	_, _, err := density.Filter(tree, hits, density.Options{Cutoff: 1.0})
	assert.ErrorIs(t, err, density.ErrBadOptions)
}

func TestFilterBadOptionsBothModesSet(t *testing.T) {
	hits, tree := sphereShell(t)
	_, _, err := density.Filter(tree, hits, density.Options{NNMax: 2, DistMax: 0.5, Cutoff: 1.0})
	assert.ErrorIs(t, err, density.ErrBadOptions)
}

func TestFilterNNModeDropsWhenFewerNeighboursThanNNMax(t *testing.T) {
	hits := []ion.Hit{
		{Point: pt(0, 0, 0)},
		{Point: pt(1, 0, 0)},
	}
	pts := []geom.Point{hits[0].Point, hits[1].Point}
	tree := kdtree.New()
	tree.Reset(pts)
	require.NoError(t, tree.Build(progress.NewTracker(nil, nil)))

	_, dropped, err := density.Filter(tree, hits, density.Options{NNMax: 5, Cutoff: 0, RetainUpper: true})
	require.NoError(t, err)
	assert.Equal(t, len(hits), dropped)
}
