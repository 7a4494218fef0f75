package ioninfo

import (
	"github.com/ionfield/apt3d/geom"
	"github.com/ionfield/apt3d/hull"
	"github.com/ionfield/apt3d/rangetbl"
)

// VolumeMode selects how Report estimates the occupied volume.
type VolumeMode int

const (
	// NoVolume skips volume (and therefore density) computation.
	NoVolume VolumeMode = iota
	// Rectilinear expands an initially-invalid box by every point.
	Rectilinear
	// ConvexHullVolume decomposes the point set's convex hull into
	// centroid-apexed pyramids and sums their volumes.
	ConvexHullVolume
)

// Options selects which sections of the report to compute.
type Options struct {
	WantCounts      bool
	WantComposition bool
	Volume          VolumeMode
}

// Report is ioninfo's textual summary: species counts/fractions, an
// unranged bucket, volume, and density.
type Report struct {
	// Counts holds one entry per species in tbl, in tbl.SpeciesList order.
	Counts []int
	// UnrangedCount is the number of ions whose mass-to-charge fell in
	// no range.
	UnrangedCount int
	// Composition holds each species' fraction of the ranged total
	// (unranged ions excluded from the denominator), aligned with Counts.
	Composition []float64

	VolumeRectilinear float64
	VolumeHull        float64
	// Density is TotalIons / the requested volume, or 0 when Volume was
	// NoVolume or WantCounts was false.
	Density float64
}

// Compute builds a Report over points classified by species (species[i]
// is points[i]'s species index, or rangetbl.Unranged), per opts.
func Compute(tbl *rangetbl.Table, points []geom.Point, species []int, opts Options) (*Report, error) {
	if len(points) == 0 {
		return nil, ErrNoIons
	}

	r := &Report{}

	if opts.WantCounts || opts.WantComposition {
		r.Counts = make([]int, tbl.NumSpecies())
		for _, sp := range species {
			if sp == rangetbl.Unranged {
				r.UnrangedCount++
				continue
			}
			r.Counts[sp]++
		}
	}

	if opts.WantComposition {
		var rangedTotal int
		for _, c := range r.Counts {
			rangedTotal += c
		}
		r.Composition = make([]float64, len(r.Counts))
		if rangedTotal > 0 {
			for i, c := range r.Counts {
				r.Composition[i] = float64(c) / float64(rangedTotal)
			}
		}
	}

	var volume float64
	switch opts.Volume {
	case Rectilinear:
		box := geom.BoxFromPoints(points)
		d := box.Hi.Sub(box.Lo)
		r.VolumeRectilinear = d.X * d.Y * d.Z
		volume = r.VolumeRectilinear
	case ConvexHullVolume:
		h, err := hull.ConvexHull(points)
		if err != nil {
			return nil, err
		}
		r.VolumeHull = h.Volume()
		volume = r.VolumeHull
	}

	if opts.WantCounts && opts.Volume != NoVolume && volume > 0 {
		r.Density = float64(len(points)) / volume
	}

	return r, nil
}
