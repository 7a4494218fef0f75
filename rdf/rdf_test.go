package rdf_test

import (
	"testing"

	"github.com/ionfield/apt3d/geom"
	"github.com/ionfield/apt3d/kdtree"
	"github.com/ionfield/apt3d/progress"
	"github.com/ionfield/apt3d/rdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pt(x, y, z float64) geom.Point { return geom.Point{X: x, Y: y, Z: z} }

func gridPoints() []geom.Point {
	var pts []geom.Point
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			for z := 0; z < 4; z++ {
				pts = append(pts, pt(float64(x), float64(y), float64(z)))
			}
		}
	}
	return pts
}

func buildTree(t *testing.T, pts []geom.Point) *kdtree.Tree {
	tree := kdtree.New()
	tree.Reset(pts)
	require.NoError(t, tree.Build(progress.NewTracker(nil, nil)))
	return tree
}

func TestNNRadialHistogramsSumToSourceCount(t *testing.T) {
	pts := gridPoints()
	tree := buildTree(t, pts)

	const nnMax, numBins = 3, 10
	hist, widths, err := rdf.NNRadial(pts, tree, nnMax, numBins, progress.NewTracker(nil, nil))
	require.NoError(t, err)
	require.Len(t, hist, nnMax)
	require.Len(t, widths, nnMax)

	for rank, h := range hist {
		total := 0
		for _, c := range h {
			total += c
		}
		assert.Equal(t, len(pts), total, "rank %d histogram should have one entry per source", rank)
		assert.Greater(t, widths[rank], 0.0)
	}

	// Rank 0 (nearest neighbour): the grid spacing is 1, so the
	// first-rank distance is always exactly 1 and its bin width is
	// 1.05*1/numBins.
	assert.InDelta(t, 1.05/float64(numBins), widths[0], 1e-9)
}

func TestNNRadialInsufficientPoints(t *testing.T) {
	pts := []geom.Point{pt(0, 0, 0), pt(1, 0, 0)}
	tree := buildTree(t, pts)
	_, _, err := rdf.NNRadial(pts, tree, 5, 10, progress.NewTracker(nil, nil))
	assert.ErrorIs(t, err, rdf.ErrInsufficientPoints)
}

func TestRadiusRadialCountsWithinRange(t *testing.T) {
	pts := gridPoints()
	tree := buildTree(t, pts)

	hist, biasWarned, err := rdf.RadiusRadial(pts, tree, 1.5, 20, progress.NewTracker(nil, nil))
	require.NoError(t, err)
	assert.Len(t, hist, 20)

	total := 0
	for _, c := range hist {
		total += c
	}
	assert.Greater(t, total, 0)
	// The grid is bounded (4x4x4), so every source eventually finds a
	// neighbour beyond 1.5 without exhausting the tree.
	assert.Equal(t, 0, biasWarned)
}

func TestRadiusRadialBiasWarnedOnExhaustion(t *testing.T) {
	pts := []geom.Point{pt(0, 0, 0), pt(0, 0, 1)}
	tree := buildTree(t, pts)

	_, biasWarned, err := rdf.RadiusRadial(pts, tree, 100.0, 10, progress.NewTracker(nil, nil))
	require.NoError(t, err)
	assert.Equal(t, len(pts), biasWarned)
}

func TestCylinderSelectSourcesAndTargets(t *testing.T) {
	cyl := rdf.Cylinder{Centre: pt(0, 0, 0), Axis: pt(0, 0, 1), HalfLength: 2, Radius: 1}
	pts := []geom.Point{
		pt(0, 0, 0),   // inside
		pt(0.5, 0, 1), // inside
		pt(0, 0, 3),   // beyond half-length
		pt(2.5, 0, 0), // beyond radius, even with padding
		pt(0, 0, 2.5), // within distMax=1 padding of half-length
	}

	sources := cyl.SelectSources(pts)
	assert.Len(t, sources, 2)

	targets := cyl.SelectTargets(pts, 1.0)
	assert.Contains(t, targets, pt(0, 0, 2.5))
	assert.NotContains(t, targets, pt(2.5, 0, 0))
}

func TestAxialRadiusHistogramHasNumBins(t *testing.T) {
	cyl := rdf.Cylinder{Centre: pt(0, 0, 0), Axis: pt(0, 0, 1), HalfLength: 5, Radius: 1}
	pts := gridPoints()
	sources := cyl.SelectSources(pts)
	require.NotEmpty(t, sources)

	targets := cyl.SelectTargets(pts, 2.0)
	tree := buildTree(t, targets)

	hist, _, err := rdf.AxialRadius(sources, cyl, tree, 2.0, 16, progress.NewTracker(nil, nil))
	require.NoError(t, err)
	assert.Len(t, hist, 16)
}

func TestExcludeSurfaceDropsBoundaryPoints(t *testing.T) {
	var pts []geom.Point
	for x := 0; x <= 4; x++ {
		for y := 0; y <= 4; y++ {
			for z := 0; z <= 4; z++ {
				pts = append(pts, pt(float64(x), float64(y), float64(z)))
			}
		}
	}

	retained, err := rdf.ExcludeSurface(pts, 1.0)
	require.NoError(t, err)
	assert.Less(t, len(retained), len(pts))
	for _, p := range retained {
		assert.True(t, p.X > 0 && p.X < 4, "retained point %v should not be on the cube boundary", p)
	}
}

func TestExcludeSurfaceTooFewPoints(t *testing.T) {
	_, err := rdf.ExcludeSurface([]geom.Point{pt(0, 0, 0), pt(1, 0, 0), pt(0, 1, 0)}, 0.1)
	assert.Error(t, err)
}
