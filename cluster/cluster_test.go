package cluster_test

import (
	"testing"

	"github.com/ionfield/apt3d/cluster"
	"github.com/ionfield/apt3d/geom"
	"github.com/ionfield/apt3d/ion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pt(x, y, z float64) geom.Point { return geom.Point{X: x, Y: y, Z: z} }

// TestS1IsolatedCluster covers five A-ions, no bulk, linkDist=1.1 —
// expect one cluster of all five.
func TestS1IsolatedCluster(t *testing.T) {
	hits := []ion.Hit{
		{Point: pt(0, 0, 0), MassToCharge: 27},
		{Point: pt(0, 0, 1), MassToCharge: 27},
		{Point: pt(0, 1, 1), MassToCharge: 27},
		{Point: pt(0, 1, 2), MassToCharge: 27},
		{Point: pt(1, 1, 2), MassToCharge: 27},
	}
	species := make([]int, len(hits)) // all species 0 ("A")

	res, err := cluster.Run(hits, species,
		cluster.WithCoreSpecies(1, 0),
		cluster.WithLinkDist(1.1),
	)
	require.NoError(t, err)
	require.Len(t, res.Clusters, 1)
	assert.Equal(t, 5, res.Clusters[0].Size())
	assert.Len(t, res.Clusters[0].Core, 5)
	assert.Empty(t, res.Clusters[0].Bulk)
}

// TestS2ClusterWithBulk extends the S1 five A-ions with six B-ions,
// three of which are far enough to be excluded from the bulk envelope.
func TestS2ClusterWithBulk(t *testing.T) {
	hits := []ion.Hit{
		{Point: pt(0, 0, 0), MassToCharge: 27},
		{Point: pt(0, 0, 1), MassToCharge: 27},
		{Point: pt(0, 1, 1), MassToCharge: 27},
		{Point: pt(0, 1, 2), MassToCharge: 27},
		{Point: pt(1, 1, 2), MassToCharge: 27},
		{Point: pt(2, 2, 4), MassToCharge: 16},
		{Point: pt(4, 0, 1), MassToCharge: 16},
		{Point: pt(-3, 1, 1), MassToCharge: 16},
		{Point: pt(-2, 1, 2), MassToCharge: 16},
		{Point: pt(-2, -1, 2), MassToCharge: 16},
		{Point: pt(-2, 1, -2), MassToCharge: 16},
	}
	species := []int{0, 0, 0, 0, 0, 1, 1, 1, 1, 1, 1}

	res, err := cluster.Run(hits, species,
		cluster.WithCoreSpecies(2, 0),
		cluster.WithBulkSpecies(2, 1),
		cluster.WithLinkDist(1.1),
		cluster.WithBulkLink(1.1),
	)
	require.NoError(t, err)
	require.Len(t, res.Clusters, 1)
	assert.Equal(t, 9, res.Clusters[0].Size())
}

// TestS3CoreClassificationRejectsStragglers checks that the ion at
// (0,0,2), which has no core neighbour within coreDist, is demoted to
// bulk, splitting the backbone into two clusters summing to 5 core
// ions.
func TestS3CoreClassificationRejectsStragglers(t *testing.T) {
	hits := []ion.Hit{
		{Point: pt(0, 0, 0), MassToCharge: 27},
		{Point: pt(0, 1, 0), MassToCharge: 27},
		{Point: pt(1, 0, 0), MassToCharge: 27},
		{Point: pt(0, 0, 2), MassToCharge: 27},
		{Point: pt(0, 0, 4), MassToCharge: 27},
		{Point: pt(0, -1, 4), MassToCharge: 27},
	}
	species := make([]int, len(hits))

	res, err := cluster.Run(hits, species,
		cluster.WithCoreSpecies(1, 0),
		cluster.WithCoreClassify(1.1, 1),
		cluster.WithLinkDist(2.0),
	)
	require.NoError(t, err)

	total := 0
	for _, c := range res.Clusters {
		total += len(c.Core)
	}
	assert.Equal(t, 5, total)
}

// TestClusterPartitioning checks that no ion appears in two clusters,
// and that core/bulk are disjoint within a cluster.
func TestClusterPartitioning(t *testing.T) {
	hits := []ion.Hit{
		{Point: pt(0, 0, 0), MassToCharge: 1},
		{Point: pt(0, 0, 1), MassToCharge: 1},
		{Point: pt(10, 10, 10), MassToCharge: 1},
		{Point: pt(10, 10, 11), MassToCharge: 1},
		{Point: pt(0.5, 0.5, 0.5), MassToCharge: 2},
		{Point: pt(10.5, 10.5, 10.5), MassToCharge: 2},
	}
	species := []int{0, 0, 0, 0, 1, 1}

	res, err := cluster.Run(hits, species,
		cluster.WithCoreSpecies(2, 0),
		cluster.WithBulkSpecies(2, 1),
		cluster.WithLinkDist(1.5),
		cluster.WithBulkLink(1.0),
	)
	require.NoError(t, err)

	seen := map[geom.Point]bool{}
	for _, c := range res.Clusters {
		local := map[geom.Point]bool{}
		for _, h := range c.Core {
			assert.False(t, local[h.Point], "point %v duplicated within one cluster's core", h.Point)
			local[h.Point] = true
			assert.False(t, seen[h.Point], "point %v appears in more than one cluster", h.Point)
			seen[h.Point] = true
		}
		for _, h := range c.Bulk {
			assert.False(t, local[h.Point], "point %v appears in both core and bulk of one cluster", h.Point)
			local[h.Point] = true
			assert.False(t, seen[h.Point], "point %v appears in more than one cluster", h.Point)
			seen[h.Point] = true
		}
	}
}

// TestDeterminism checks that, with core classification disabled and
// bulkLink <= linkDist/2, two runs on identical input produce
// identical cluster decompositions up to ordering.
func TestDeterminism(t *testing.T) {
	hits := []ion.Hit{
		{Point: pt(0, 0, 0), MassToCharge: 1},
		{Point: pt(0, 0, 1), MassToCharge: 1},
		{Point: pt(5, 5, 5), MassToCharge: 1},
		{Point: pt(5, 5, 6), MassToCharge: 1},
		{Point: pt(0.2, 0.1, 0.9), MassToCharge: 2},
		{Point: pt(5.1, 5.2, 5.9), MassToCharge: 2},
	}
	species := []int{0, 0, 0, 0, 1, 1}

	run := func() []int {
		res, err := cluster.Run(hits, species,
			cluster.WithCoreSpecies(2, 0),
			cluster.WithBulkSpecies(2, 1),
			cluster.WithLinkDist(2.0),
			cluster.WithBulkLink(1.0),
		)
		require.NoError(t, err)
		sizes := make([]int, len(res.Clusters))
		for i, c := range res.Clusters {
			sizes[i] = c.Size()
		}
		return sizes
	}

	a := run()
	b := run()
	assert.ElementsMatch(t, a, b)
}

func TestNoCoreIonsError(t *testing.T) {
	hits := []ion.Hit{{Point: pt(0, 0, 0), MassToCharge: 1}}
	_, err := cluster.Run(hits, []int{0}, cluster.WithCoreSpecies(1), cluster.WithLinkDist(1.0))
	assert.ErrorIs(t, err, cluster.ErrNoCoreIons)
}

func TestNoBulkIonsError(t *testing.T) {
	hits := []ion.Hit{
		{Point: pt(0, 0, 0), MassToCharge: 1},
		{Point: pt(0, 0, 0.5), MassToCharge: 1},
	}
	_, err := cluster.Run(hits, []int{0, 0},
		cluster.WithCoreSpecies(1, 0),
		cluster.WithLinkDist(1.0),
		cluster.WithBulkLink(1.0),
	)
	assert.ErrorIs(t, err, cluster.ErrNoBulkIons)
}

func TestSizeCropDropsOutliers(t *testing.T) {
	hits := []ion.Hit{
		// pair forming a 2-ion cluster
		{Point: pt(0, 0, 0), MassToCharge: 1},
		{Point: pt(0, 0, 0.5), MassToCharge: 1},
		// isolated singleton far away
		{Point: pt(50, 50, 50), MassToCharge: 1},
	}
	species := []int{0, 0, 0}

	res, err := cluster.Run(hits, species,
		cluster.WithCoreSpecies(1, 0),
		cluster.WithLinkDist(1.0),
		cluster.WithSizeCrop(2, 10),
	)
	require.NoError(t, err)
	require.Len(t, res.Clusters, 1)
	assert.Equal(t, 2, res.Clusters[0].Size())
}

func TestMorphologyAndClusterIDOverwrite(t *testing.T) {
	hits := []ion.Hit{
		{Point: pt(0, 0, 0), MassToCharge: 1},
		{Point: pt(1, 0, 0), MassToCharge: 1},
		{Point: pt(0, 1, 0), MassToCharge: 1},
		{Point: pt(0, 0, 1), MassToCharge: 1},
	}
	species := []int{0, 0, 0, 0}

	res, err := cluster.Run(hits, species,
		cluster.WithCoreSpecies(1, 0),
		cluster.WithLinkDist(2.0),
	)
	require.NoError(t, err)
	require.Len(t, res.Clusters, 1)

	morphs, err := res.Morphologies()
	require.NoError(t, err)
	require.Len(t, morphs, 1)
	assert.GreaterOrEqual(t, morphs[0].Axes[0].SingularValue, morphs[0].Axes[1].SingularValue)
	assert.GreaterOrEqual(t, morphs[0].Axes[1].SingularValue, morphs[0].Axes[2].SingularValue)

	overwritten := res.OverwriteClusterID()
	require.Len(t, overwritten, 4)
	for _, h := range overwritten {
		assert.Equal(t, float64(0), h.MassToCharge)
	}
}
