package cluster

import (
	"sort"

	"github.com/ionfield/apt3d/rangetbl"
)

// SizeBucket is one entry in a SizeDistribution: the count of clusters
// whose total membership equals Size.
type SizeBucket struct {
	Size  int
	Count int
}

// SizeDistribution histograms cluster sizes, one bucket per distinct
// size observed, sorted ascending.
func (r *Result) SizeDistribution() []SizeBucket {
	counts := map[int]int{}
	for _, c := range r.Clusters {
		counts[c.Size()]++
	}
	buckets := make([]SizeBucket, 0, len(counts))
	for size, n := range counts {
		buckets = append(buckets, SizeBucket{Size: size, Count: n})
	}
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].Size < buckets[j].Size })
	return buckets
}

// CompositionBucket is one entry in a CompositionDistribution: for
// clusters of Size, Counts[s] is the number (or fraction, when
// normalised) of species-s ions across all such clusters. The final
// entry, Counts[len(Counts)-1], is the unranged bucket.
type CompositionBucket struct {
	Size   int
	Counts []float64
}

// CompositionDistribution groups clusters by total size and, within
// each size, tallies species membership across core and bulk by
// re-ranging each ion's mass-to-charge against tbl. When normalize is
// true, each bucket's counts are divided by that bucket's total ion
// count, turning them into fractions.
func (r *Result) CompositionDistribution(tbl *rangetbl.Table, normalize bool) []CompositionBucket {
	numSpecies := tbl.NumSpecies()
	byBucketSize := map[int][]float64{}

	add := func(size int, mz float64) {
		counts, ok := byBucketSize[size]
		if !ok {
			counts = make([]float64, numSpecies+1)
			byBucketSize[size] = counts
		}
		sp, ranged := tbl.Lookup(mz)
		if !ranged {
			counts[numSpecies]++
		} else {
			counts[sp]++
		}
	}

	for _, c := range r.Clusters {
		size := c.Size()
		for _, h := range c.Core {
			add(size, h.MassToCharge)
		}
		for _, h := range c.Bulk {
			add(size, h.MassToCharge)
		}
	}

	sizes := make([]int, 0, len(byBucketSize))
	for size := range byBucketSize {
		sizes = append(sizes, size)
	}
	sort.Ints(sizes)

	buckets := make([]CompositionBucket, 0, len(sizes))
	for _, size := range sizes {
		counts := byBucketSize[size]
		if normalize {
			total := 0.0
			for _, n := range counts {
				total += n
			}
			if total > 0 {
				for i := range counts {
					counts[i] /= total
				}
			}
		}
		buckets = append(buckets, CompositionBucket{Size: size, Counts: counts})
	}
	return buckets
}
