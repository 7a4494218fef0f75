package geom_test

import (
	"math"
	"testing"

	"github.com/ionfield/apt3d/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSqrDist(t *testing.T) {
	p := geom.Point{X: 0, Y: 0, Z: 0}
	q := geom.Point{X: 1, Y: 2, Z: 2}
	require.Equal(t, 9.0, p.SqrDist(q))
	require.Equal(t, 3.0, p.Dist(q))
}

func TestInverseBoxExpand(t *testing.T) {
	b := geom.InverseBox()
	assert.False(t, b.Valid())

	pts := []geom.Point{{1, 2, 3}, {-1, 5, 0}, {4, -2, 7}}
	for _, p := range pts {
		b = b.ExpandByPoint(p)
	}
	require.True(t, b.Valid())
	assert.Equal(t, geom.Point{-1, -2, 0}, b.Lo)
	assert.Equal(t, geom.Point{4, 5, 7}, b.Hi)
}

func TestBoxContains(t *testing.T) {
	b := geom.Box{Lo: geom.Point{0, 0, 0}, Hi: geom.Point{10, 10, 10}}
	assert.True(t, b.Contains(geom.Point{0, 0, 0}))
	assert.True(t, b.Contains(geom.Point{10, 10, 10}))
	assert.False(t, b.Contains(geom.Point{10.0001, 0, 0}))
}

func TestIntersectsSphere(t *testing.T) {
	b := geom.Box{Lo: geom.Point{0, 0, 0}, Hi: geom.Point{1, 1, 1}}
	// centre outside box, closest corner within radius
	assert.True(t, b.IntersectsSphere(geom.Point{2, 0.5, 0.5}, 1.01))
	assert.False(t, b.IntersectsSphere(geom.Point{10, 0.5, 0.5}, 1.0))
}

func TestContainedInSphere(t *testing.T) {
	b := geom.Box{Lo: geom.Point{-1, -1, -1}, Hi: geom.Point{1, 1, 1}}
	// farthest corner distance is sqrt(3) ~ 1.732
	assert.True(t, b.ContainedInSphere(geom.Point{0, 0, 0}, 3.1))
	assert.False(t, b.ContainedInSphere(geom.Point{0, 0, 0}, 2.9))
}

func TestIsFlatAndSane(t *testing.T) {
	flat := geom.Box{Lo: geom.Point{0, 0, 0}, Hi: geom.Point{1, 0, 1}}
	assert.True(t, flat.IsFlat())

	huge := geom.Box{Lo: geom.Point{0, 0, 0}, Hi: geom.Point{1e20, 0, 0}}
	assert.False(t, huge.IsSane())

	nanBox := geom.Box{Lo: geom.Point{math.NaN(), 0, 0}, Hi: geom.Point{1, 1, 1}}
	assert.False(t, nanBox.IsSane())
}

func TestPyramidVolumeUnitCube(t *testing.T) {
	// apex at origin, triangle spanning a right angle in the XY plane at z=1.
	apex := geom.Point{0, 0, 0}
	a := geom.Point{1, 0, 1}
	b := geom.Point{0, 1, 1}
	c := geom.Point{0, 0, 1}
	vol := geom.PyramidVolume(apex, a, b, c)
	assert.InDelta(t, 1.0/6.0, vol, 1e-9)
}
