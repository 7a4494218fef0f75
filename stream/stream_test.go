package stream_test

import (
	"testing"

	"github.com/ionfield/apt3d/geom"
	"github.com/ionfield/apt3d/ion"
	"github.com/ionfield/apt3d/rangetbl"
	"github.com/ionfield/apt3d/stream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBundleKindSelectsPopulatedPayload(t *testing.T) {
	b := stream.NewIonBundle(&stream.IonStream{
		Hits: []ion.Hit{{Point: geom.Point{X: 1}, MassToCharge: 2}},
	})
	assert.Equal(t, stream.IonKind, b.Kind)
	require.NotNil(t, b.Ion)
	assert.Nil(t, b.Plot)
	assert.Equal(t, "ion", b.Kind.String())
}

func TestRangeStreamReferencesTableWithoutMutating(t *testing.T) {
	tbl := rangetbl.NewTable()
	sp, err := tbl.AddSpecies(rangetbl.Species{Name: "A"})
	require.NoError(t, err)
	require.NoError(t, tbl.AddRange(0, 1, sp))

	mask := rangetbl.NewEnabledMask(tbl)
	mask.SetSpeciesEnabled(sp, false)

	b := stream.NewRangeBundle(&stream.RangeStream{Table: tbl, Mask: mask})
	assert.Equal(t, stream.RangeKind, b.Kind)
	assert.Equal(t, 1, b.Range.Table.NumSpecies(), "mask edits must not mutate the shared table")
}

func TestPlotAutoSetHardBoundsTracksRunningMax(t *testing.T) {
	p := &stream.PlotStream{}
	p.AutoSetHardBounds(1.0)
	p.AutoSetHardBounds(5.0)
	p.AutoSetHardBounds(3.0) // must not pull hardMaxX back down to 3

	lo, hi, ok := p.HardBounds()
	require.True(t, ok)
	assert.Equal(t, 1.0, lo)
	assert.Equal(t, 5.0, hi, "hardMaxX should track the running maximum, not hardMinX")
}

func TestPlotAutoSetHardBoundsFirstCallEstablishesBothBounds(t *testing.T) {
	p := &stream.PlotStream{}
	_, _, ok := p.HardBounds()
	assert.False(t, ok)

	p.AutoSetHardBounds(42.0)
	lo, hi, ok := p.HardBounds()
	require.True(t, ok)
	assert.Equal(t, 42.0, lo)
	assert.Equal(t, 42.0, hi)
}

func TestDrawStreamCarriesDataOpaquely(t *testing.T) {
	d := stream.DrawStream{Drawables: []stream.Drawable{
		{Kind: stream.SphereDrawable, Origin: geom.Point{X: 1, Y: 2, Z: 3}, Radius: 0.5},
		{Kind: stream.TexturedQuadDrawable, TextureRef: "opaque-handle"},
	}}
	b := stream.NewDrawBundle(&d)
	assert.Equal(t, stream.DrawKind, b.Kind)
	assert.Len(t, b.Draw.Drawables, 2)
}
