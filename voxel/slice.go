package voxel

// Interpolation selects how Slice samples between bin centres.
type Interpolation int

const (
	// Nearest snaps to the containing bin's value.
	Nearest Interpolation = iota
	// Bilinear interpolates linearly between the two bin planes that
	// bracket the sample position along the slice axis.
	Bilinear
)

// Slice extracts a 2D plane perpendicular to axis (0=X, 1=Y, 2=Z) at the
// given fractional offset in [0,1] along that axis, returning row-major
// values only (no positions); colour-map rendering is not this
// package's concern. dimA, dimB are the returned plane's width and
// height, matching the grid's two off-axis dimensions.
func Slice(g *Grid, axis int, fraction float64, interp Interpolation) (values []float64, dimA, dimB int, err error) {
	if axis < 0 || axis > 2 {
		return nil, 0, 0, ErrBadAxis
	}
	if fraction < 0 || fraction > 1 {
		return nil, 0, 0, ErrBadFraction
	}

	var n, nA, nB int
	switch axis {
	case 0:
		n, nA, nB = g.NX, g.NY, g.NZ
	case 1:
		n, nA, nB = g.NY, g.NX, g.NZ
	default:
		n, nA, nB = g.NZ, g.NX, g.NY
	}

	pos := fraction * float64(n-1)
	lo := int(pos)
	if lo >= n-1 {
		lo = n - 2
		if lo < 0 {
			lo = 0
		}
	}
	frac := pos - float64(lo)
	hi := lo + 1
	if hi >= n {
		hi = lo
	}

	out := make([]float64, nA*nB)
	for a := 0; a < nA; a++ {
		for b := 0; b < nB; b++ {
			var vLo, vHi float64
			switch axis {
			case 0:
				vLo, vHi = g.At(lo, a, b), g.At(hi, a, b)
			case 1:
				vLo, vHi = g.At(a, lo, b), g.At(a, hi, b)
			default:
				vLo, vHi = g.At(a, b, lo), g.At(a, b, hi)
			}

			var v float64
			if interp == Bilinear {
				v = vLo*(1-frac) + vHi*frac
			} else if frac < 0.5 {
				v = vLo
			} else {
				v = vHi
			}
			out[b*nA+a] = v
		}
	}
	return out, nA, nB, nil
}
