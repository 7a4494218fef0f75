package voxel

import (
	"runtime"
	"sync"

	"github.com/ionfield/apt3d/geom"
	"github.com/ionfield/apt3d/progress"
)

// Grid is a regular rectilinear 3D scalar field over Bounds, with NX,
// NY, NZ bins per axis, stored flat in column-major order matching
// voxels.h's z*ny*nx + y*nx + x indexing.
type Grid struct {
	NX, NY, NZ int
	Bounds     geom.Box
	Data       []float64
}

// NewGrid allocates a zeroed grid with the given bin counts over bounds.
func NewGrid(nx, ny, nz int, bounds geom.Box) (*Grid, error) {
	if nx <= 0 || ny <= 0 || nz <= 0 {
		return nil, ErrBadDims
	}
	return &Grid{
		NX: nx, NY: ny, NZ: nz,
		Bounds: bounds,
		Data:   make([]float64, nx*ny*nz),
	}, nil
}

// Pitch returns the per-axis bin width.
func (g *Grid) Pitch() geom.Point {
	d := g.Bounds.Hi.Sub(g.Bounds.Lo)
	return geom.Point{
		X: d.X / float64(g.NX),
		Y: d.Y / float64(g.NY),
		Z: d.Z / float64(g.NZ),
	}
}

func (g *Grid) offset(x, y, z int) int {
	return z*g.NY*g.NX + y*g.NX + x
}

// At returns the value of bin (x,y,z).
func (g *Grid) At(x, y, z int) float64 {
	return g.Data[g.offset(x, y, z)]
}

// Set assigns the value of bin (x,y,z).
func (g *Grid) Set(x, y, z int, v float64) {
	g.Data[g.offset(x, y, z)] = v
}

// Index returns the bin coordinate containing p, clamping to the grid's
// valid range.
func (g *Grid) Index(p geom.Point) (x, y, z int) {
	pitch := g.Pitch()
	x = clampIndex(int((p.X-g.Bounds.Lo.X)/pitch.X), g.NX)
	y = clampIndex(int((p.Y-g.Bounds.Lo.Y)/pitch.Y), g.NY)
	z = clampIndex(int((p.Z-g.Bounds.Lo.Z)/pitch.Z), g.NZ)
	return x, y, z
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// Centre returns the world-space centre of bin (x,y,z).
func (g *Grid) Centre(x, y, z int) geom.Point {
	pitch := g.Pitch()
	return geom.Point{
		X: g.Bounds.Lo.X + (float64(x)+0.5)*pitch.X,
		Y: g.Bounds.Lo.Y + (float64(y)+0.5)*pitch.Y,
		Z: g.Bounds.Lo.Z + (float64(z)+0.5)*pitch.Z,
	}
}

// BinVolume returns the volume of a single bin.
func (g *Grid) BinVolume() float64 {
	p := g.Pitch()
	return p.X * p.Y * p.Z
}

// Sum returns the total of all bin values.
func (g *Grid) Sum() float64 {
	var total float64
	for _, v := range g.Data {
		total += v
	}
	return total
}

// NormaliseMode selects Count's post-processing.
type NormaliseMode int

const (
	// Raw leaves the numerator bin counts untouched.
	Raw NormaliseMode = iota
	// Density divides each bin's count by its volume.
	Density
	// Fraction divides the numerator count by the total count in that bin.
	Fraction
	// Ratio divides the numerator count by the denominator count
	// (undefined, i.e. denominator zero, yields 0).
	Ratio
)

// Count builds a Grid of bin counts over points, optionally split by a
// numerator species predicate. isNumerator may be nil, in which case
// every point counts as numerator. Fraction and Ratio both divide the
// numerator count by the total point count of the bin here; CountSplit
// takes a separate denominator population for Ratio.
func Count(points []geom.Point, isNumerator []bool, nx, ny, nz int, bounds geom.Box, mode NormaliseMode) (*Grid, error) {
	grid, err := NewGrid(nx, ny, nz, bounds)
	if err != nil {
		return nil, err
	}

	total, err := NewGrid(nx, ny, nz, bounds)
	if err != nil {
		return nil, err
	}

	for i, p := range points {
		x, y, z := grid.Index(p)
		off := grid.offset(x, y, z)
		total.Data[off]++
		if isNumerator == nil || (i < len(isNumerator) && isNumerator[i]) {
			grid.Data[off]++
		}
	}

	return applyNormalise(grid, total, mode)
}

// CountSplit is Count's two-population form: it tallies a numerator and
// denominator set independently, for cases (e.g. Ratio mode) where the
// denominator is not simply "everything else".
func CountSplit(numeratorPts, denominatorPts []geom.Point, nx, ny, nz int, bounds geom.Box, mode NormaliseMode) (*Grid, error) {
	num, err := NewGrid(nx, ny, nz, bounds)
	if err != nil {
		return nil, err
	}
	den, err := NewGrid(nx, ny, nz, bounds)
	if err != nil {
		return nil, err
	}

	for _, p := range numeratorPts {
		x, y, z := num.Index(p)
		num.Data[num.offset(x, y, z)]++
	}
	for _, p := range denominatorPts {
		x, y, z := den.Index(p)
		den.Data[den.offset(x, y, z)]++
	}

	return applyNormalise(num, den, mode)
}

func applyNormalise(numerator, other *Grid, mode NormaliseMode) (*Grid, error) {
	switch mode {
	case Raw:
		return numerator, nil
	case Density:
		vol := numerator.BinVolume()
		out := &Grid{NX: numerator.NX, NY: numerator.NY, NZ: numerator.NZ, Bounds: numerator.Bounds, Data: make([]float64, len(numerator.Data))}
		for i, c := range numerator.Data {
			out.Data[i] = c / vol
		}
		return out, nil
	case Fraction, Ratio:
		out := &Grid{NX: numerator.NX, NY: numerator.NY, NZ: numerator.NZ, Bounds: numerator.Bounds, Data: make([]float64, len(numerator.Data))}
		for i, c := range numerator.Data {
			d := other.Data[i]
			if d == 0 {
				out.Data[i] = 0
				continue
			}
			out.Data[i] = c / d
		}
		return out, nil
	default:
		return numerator, nil
	}
}

// CountParallel is Count's raw-mode fan-out: each worker goroutine
// tallies into its own shadow grid over a disjoint slice of points,
// then all shadows are summed into the result serially, avoiding any
// locking in the hot per-point loop.
func CountParallel(points []geom.Point, nx, ny, nz int, bounds geom.Box, tracker *progress.Tracker) (*Grid, error) {
	grid, err := NewGrid(nx, ny, nz, bounds)
	if err != nil {
		return nil, err
	}
	if len(points) == 0 {
		return grid, nil
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > len(points) {
		workers = len(points)
	}
	if workers < 1 {
		workers = 1
	}

	shadows := make([][]float64, workers)
	var wg sync.WaitGroup
	chunk := (len(points) + workers - 1) / workers

	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > len(points) {
			hi = len(points)
		}
		if lo >= hi {
			continue
		}
		shadows[w] = make([]float64, len(grid.Data))

		wg.Add(1)
		go func(shadow []float64, pts []geom.Point) {
			defer wg.Done()
			for _, p := range pts {
				x, y, z := grid.Index(p)
				shadow[grid.offset(x, y, z)]++
			}
		}(shadows[w], points[lo:hi])
	}
	wg.Wait()

	for _, shadow := range shadows {
		for i, v := range shadow {
			grid.Data[i] += v
		}
		if !tracker.Tick() {
			return nil, progress.ErrAborted
		}
	}

	return grid, nil
}
