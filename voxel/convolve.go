package voxel

import (
	"math"

	"github.com/ionfield/apt3d/geom"
)

// Boundary selects how Convolve treats samples beyond the grid edge.
type Boundary int

const (
	// ZeroExtend treats out-of-range samples as zero.
	ZeroExtend Boundary = iota
	// Mirror reflects the index back into range at the boundary.
	Mirror
)

// GaussianKernel1D returns a normalised 1D Gaussian kernel of the given
// odd size and standard deviation, centred on its middle tap. Convolve
// applies this kernel along each axis in turn rather than building a
// full 3D kernel.
func GaussianKernel1D(sigma float64, size int) []float64 {
	k := make([]float64, size)
	half := size / 2
	var sum float64
	for i := range k {
		d := float64(i - half)
		v := math.Exp(-d * d / (2 * sigma * sigma))
		k[i] = v
		sum += v
	}
	for i := range k {
		k[i] /= sum
	}
	return k
}

// Convolve smooths g with a separable Gaussian kernel of the given size
// and standard deviation, applied as three successive 1D passes along
// X, Y, and Z. When clip is true, the output is cropped by
// kernelSize-1 bins per axis, so the result never synthesises edge
// data; when false, out-of-range samples are supplied by boundary.
func Convolve(g *Grid, kernelSize int, sigma float64, boundary Boundary, clip bool) (*Grid, error) {
	if kernelSize > g.NX || kernelSize > g.NY || kernelSize > g.NZ {
		return nil, ErrKernelTooLarge
	}

	kernel := GaussianKernel1D(sigma, kernelSize)

	pass := g
	pass = convolveAxis(pass, kernel, 0, boundary)
	pass = convolveAxis(pass, kernel, 1, boundary)
	pass = convolveAxis(pass, kernel, 2, boundary)

	if clip {
		pass = clipGrid(pass, kernelSize-1)
	}
	return pass, nil
}

func sampleAt(g *Grid, x, y, z int, boundary Boundary) float64 {
	switch boundary {
	case Mirror:
		x = mirrorIndex(x, g.NX)
		y = mirrorIndex(y, g.NY)
		z = mirrorIndex(z, g.NZ)
		return g.At(x, y, z)
	default: // ZeroExtend
		if x < 0 || x >= g.NX || y < 0 || y >= g.NY || z < 0 || z >= g.NZ {
			return 0
		}
		return g.At(x, y, z)
	}
}

func mirrorIndex(i, n int) int {
	if n == 1 {
		return 0
	}
	period := 2 * n
	i %= period
	if i < 0 {
		i += period
	}
	if i >= n {
		i = period - 1 - i
	}
	return i
}

func convolveAxis(g *Grid, kernel []float64, axis int, boundary Boundary) *Grid {
	out := &Grid{NX: g.NX, NY: g.NY, NZ: g.NZ, Bounds: g.Bounds, Data: make([]float64, len(g.Data))}
	half := len(kernel) / 2

	for x := 0; x < g.NX; x++ {
		for y := 0; y < g.NY; y++ {
			for z := 0; z < g.NZ; z++ {
				var acc float64
				for k, w := range kernel {
					d := k - half
					var v float64
					switch axis {
					case 0:
						v = sampleAt(g, x+d, y, z, boundary)
					case 1:
						v = sampleAt(g, x, y+d, z, boundary)
					default:
						v = sampleAt(g, x, y, z+d, boundary)
					}
					acc += v * w
				}
				out.Set(x, y, z, acc)
			}
		}
	}
	return out
}

func clipGrid(g *Grid, trim int) *Grid {
	lo := trim / 2
	nx := g.NX - trim
	ny := g.NY - trim
	nz := g.NZ - trim
	if nx < 1 {
		nx = 1
	}
	if ny < 1 {
		ny = 1
	}
	if nz < 1 {
		nz = 1
	}

	hi := trim - lo
	pitch := g.Pitch()
	bounds := g.Bounds
	bounds.Lo = geom.Point{
		X: bounds.Lo.X + pitch.X*float64(lo),
		Y: bounds.Lo.Y + pitch.Y*float64(lo),
		Z: bounds.Lo.Z + pitch.Z*float64(lo),
	}
	bounds.Hi = geom.Point{
		X: bounds.Hi.X - pitch.X*float64(hi),
		Y: bounds.Hi.Y - pitch.Y*float64(hi),
		Z: bounds.Hi.Z - pitch.Z*float64(hi),
	}

	out := &Grid{NX: nx, NY: ny, NZ: nz, Bounds: bounds, Data: make([]float64, nx*ny*nz)}
	for x := 0; x < nx; x++ {
		for y := 0; y < ny; y++ {
			for z := 0; z < nz; z++ {
				out.Set(x, y, z, g.At(x+lo, y+lo, z+lo))
			}
		}
	}
	return out
}
