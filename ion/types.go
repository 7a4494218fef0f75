package ion

import (
	"github.com/ionfield/apt3d/geom"
	"github.com/ionfield/apt3d/rangetbl"
)

// Unranged marks an ion whose mass-to-charge falls outside every range
// in the table it was classified against.
const Unranged = rangetbl.Unranged

// Hit is a single point plus its mass-to-charge scalar. Species is
// resolved lazily by Classify, not stored eagerly, so the same hit can
// be re-ranged against a different table without mutation.
type Hit struct {
	Point        geom.Point
	MassToCharge float64
}

// Classify ranges every hit in hits against tbl, returning one species
// index (or Unranged) per hit in the same order.
func Classify(hits []Hit, tbl *rangetbl.Table) []int {
	species := make([]int, len(hits))
	for i, h := range hits {
		sp, ranged := tbl.Lookup(h.MassToCharge)
		if !ranged {
			species[i] = Unranged
		} else {
			species[i] = sp
		}
	}
	return species
}
