package cluster

import (
	"math"
	"sort"

	"github.com/ionfield/apt3d/geom"
	"github.com/ionfield/apt3d/ion"
)

// minMorphologyPoints is the smallest cluster size morphology is
// computed for; fewer points cannot determine three independent axes.
const minMorphologyPoints = 4

// Axis is one principal axis of a cluster's point scatter: a singular
// value (the scatter's extent along Vector) and the unit direction it
// was measured along, anchored at the cluster centroid.
type Axis struct {
	SingularValue float64
	Vector        geom.Point
}

// Morphology is a cluster's shape descriptor: three orthogonal
// singular values (Axes[0].SingularValue >= Axes[1] >= Axes[2]) and
// vectors derived from the eigendecomposition of the centroid-referenced
// scatter matrix of its points, plus the centroid itself.
type Morphology struct {
	Centroid geom.Point
	Axes     [3]Axis
}

// AspectRatios returns (λ1/λ2, λ2/λ3), a scatter-plot shape summary;
// returns +Inf for either ratio when the denominator singular value is
// zero (a perfectly flat or linear cluster).
func (m Morphology) AspectRatios() (float64, float64) {
	r1 := ratio(m.Axes[0].SingularValue, m.Axes[1].SingularValue)
	r2 := ratio(m.Axes[1].SingularValue, m.Axes[2].SingularValue)
	return r1, r2
}

func ratio(a, b float64) float64 {
	if b == 0 {
		return math.Inf(1)
	}
	return a / b
}

// Segments returns three orthogonal line segments from the centroid,
// each along one principal axis and scaled by its singular value (spec
// §4.2 "emit three orthogonal segments ... scaled by the singular
// values").
func (m Morphology) Segments() [3][2]geom.Point {
	var segs [3][2]geom.Point
	for i, ax := range m.Axes {
		tip := m.Centroid.Add(ax.Vector.Scale(ax.SingularValue))
		segs[i] = [2]geom.Point{m.Centroid, tip}
	}
	return segs
}

// Morphologies computes a Morphology for every cluster with at least
// minMorphologyPoints total (core+bulk) members; smaller clusters are
// skipped and contribute no entry, so callers index by the returned
// slice only, not by cluster index. The error is non-nil only when a
// decomposition fails.
func (r *Result) Morphologies() ([]Morphology, error) {
	var out []Morphology
	for _, c := range r.Clusters {
		pts := allPoints(c)
		if len(pts) < minMorphologyPoints {
			continue
		}
		m, err := morphologyOf(pts)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

func allPoints(c Cluster) []geom.Point {
	pts := make([]geom.Point, 0, c.Size())
	for _, h := range c.Core {
		pts = append(pts, h.Point)
	}
	for _, h := range c.Bulk {
		pts = append(pts, h.Point)
	}
	return pts
}

// morphologyOf builds the 3x3 scatter matrix AᵀA of pts about their
// centroid (A being the N x 3 displacement matrix) and runs it through
// the Jacobi eigendecomposition adapted from matrix/ops.Eigen: its
// eigenvalues are the squared singular values of A and its eigenvectors
// are the right singular vectors directly (no separate SVD needed).
func morphologyOf(pts []geom.Point) (Morphology, error) {
	centroid := geom.Point{}
	for _, p := range pts {
		centroid = centroid.Add(p)
	}
	centroid = centroid.Scale(1.0 / float64(len(pts)))

	var cov [3][3]float64
	for _, p := range pts {
		d := p.Sub(centroid)
		v := [3]float64{d.X, d.Y, d.Z}
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				cov[i][j] += v[i] * v[j]
			}
		}
	}

	eigVals, eigVecs := jacobiEigen3(cov)

	order := []int{0, 1, 2}
	sort.Slice(order, func(a, b int) bool { return eigVals[order[a]] > eigVals[order[b]] })

	var morph Morphology
	morph.Centroid = centroid
	for rank, idx := range order {
		val := eigVals[idx]
		if val < 0 {
			val = 0
		}
		morph.Axes[rank] = Axis{
			SingularValue: math.Sqrt(val),
			Vector:        geom.Point{X: eigVecs[0][idx], Y: eigVecs[1][idx], Z: eigVecs[2][idx]},
		}
	}
	return morph, nil
}

// jacobiEigen3 computes eigenvalues and eigenvectors (columns of the
// returned matrix) of a symmetric 3x3 matrix by cyclic Jacobi
// rotation: each sweep zeroes the largest off-diagonal entry with a
// plane rotation until every off-diagonal entry is below tol or
// maxSweeps is reached.
func jacobiEigen3(a [3][3]float64) (vals [3]float64, vecs [3][3]float64) {
	const (
		maxSweeps = 100
		tol       = 1e-12
	)
	q := [3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

	for sweep := 0; sweep < maxSweeps; sweep++ {
		maxOff := 0.0
		p, qi := 0, 1
		for i := 0; i < 3; i++ {
			for j := i + 1; j < 3; j++ {
				if v := math.Abs(a[i][j]); v > maxOff {
					maxOff, p, qi = v, i, j
				}
			}
		}
		if maxOff < tol {
			break
		}

		theta := (a[qi][qi] - a[p][p]) / (2 * a[p][qi])
		t := math.Copysign(1.0/(math.Abs(theta)+math.Sqrt(theta*theta+1)), theta)
		c := 1.0 / math.Sqrt(t*t+1)
		s := t * c

		app, aqq, apq := a[p][p], a[qi][qi], a[p][qi]
		a[p][p] = c*c*app - 2*c*s*apq + s*s*aqq
		a[qi][qi] = s*s*app + 2*c*s*apq + c*c*aqq
		a[p][qi] = 0
		a[qi][p] = 0
		for i := 0; i < 3; i++ {
			if i != p && i != qi {
				aip, aiq := a[i][p], a[i][qi]
				a[i][p] = c*aip - s*aiq
				a[p][i] = a[i][p]
				a[i][qi] = s*aip + c*aiq
				a[qi][i] = a[i][qi]
			}
		}
		for i := 0; i < 3; i++ {
			qip, qiq := q[i][p], q[i][qi]
			q[i][p] = c*qip - s*qiq
			q[i][qi] = s*qip + c*qiq
		}
	}

	for i := 0; i < 3; i++ {
		vals[i] = a[i][i]
		for j := 0; j < 3; j++ {
			vecs[j][i] = q[j][i]
		}
	}
	return vals, vecs
}

// OverwriteClusterID flattens the decomposition into a single ion.Hit
// slice with each hit's MassToCharge replaced by its integer cluster
// index, mutually exclusive with composition/morphology reporting on
// the same pass.
func (r *Result) OverwriteClusterID() []ion.Hit {
	var out []ion.Hit
	for ci, c := range r.Clusters {
		for _, h := range c.Core {
			out = append(out, ion.Hit{Point: h.Point, MassToCharge: float64(ci)})
		}
		for _, h := range c.Bulk {
			out = append(out, ion.Hit{Point: h.Point, MassToCharge: float64(ci)})
		}
	}
	return out
}
