package cluster

import (
	"math"

	"github.com/ionfield/apt3d/geom"
	"github.com/ionfield/apt3d/ion"
	"github.com/ionfield/apt3d/kdtree"
	"github.com/ionfield/apt3d/progress"
	"github.com/ionfield/apt3d/xlog"
)

// spherePresearchCutoff is the expected-points-in-sphere threshold
// above which the bulk-envelope stage prefers emitting whole subtree
// runs (GetTreesInSphere) before falling back to point-by-point
// nearest-untagged extraction.
const spherePresearchCutoff = 75.0

// Run executes the core-link-erode pipeline over hits, whose species
// (one entry per hit, aligned by index) classify each ion as
// core-capable, bulk-capable, or neither per the supplied Options.
func Run(hits []ion.Hit, species []int, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, apply := range opts {
		apply(&o)
		if o.err != nil {
			return nil, o.err
		}
	}

	tracker := o.Tracker
	if tracker == nil {
		tracker = progress.NewTracker(nil, nil)
	}

	// Stage 1: collate.
	var coreHits, bulkHits []ion.Hit
	for i, h := range hits {
		sp := species[i]
		if sp >= 0 && sp < len(o.CoreSpecies) && o.CoreSpecies[sp] {
			coreHits = append(coreHits, h)
			continue
		}
		if sp >= 0 && sp < len(o.BulkSpecies) && o.BulkSpecies[sp] {
			bulkHits = append(bulkHits, h)
		}
	}

	// Stage 2: core classification (optional).
	if o.EnableCoreClassify {
		var err error
		coreHits, bulkHits, err = reclassifyCore(coreHits, bulkHits, o.CoreDist, o.CoreKNN, tracker)
		if err != nil {
			return nil, err
		}
	}

	if len(coreHits) == 0 {
		return nil, ErrNoCoreIons
	}
	if o.EnableBulkLink && len(bulkHits) == 0 {
		return nil, ErrNoBulkIons
	}

	coreTree := kdtree.New()
	coreTree.Reset(pointsOf(coreHits))
	if err := coreTree.Build(tracker); err != nil {
		return nil, err
	}

	// Stage 3: backbone growth.
	coreGroups := growBackbone(coreTree, o.LinkDist)

	clusters := make([]Cluster, len(coreGroups))
	for i, g := range coreGroups {
		core := make([]ion.Hit, len(g))
		for j, ti := range g {
			core[j] = coreHits[coreTree.OrigIndexAt(ti)]
		}
		clusters[i] = Cluster{Core: core}
	}

	// Stage 4: pre-filter (speedup), only when bulk linkage is disabled.
	if !o.EnableBulkLink && o.WantCropSize {
		clusters = cropBySize(clusters, o.NMin, o.NMax)
	}

	// Stage 5: bulk envelope (optional).
	if o.EnableBulkLink {
		if o.BulkLink > o.LinkDist/2 {
			xlog.Named("cluster").Warnw("bulk-link radius exceeds half the backbone link distance; "+
				"bulk-point ownership between adjacent clusters is traversal-order dependent",
				"bulkLink", o.BulkLink, "linkDist", o.LinkDist)
		}

		bulkTree := kdtree.New()
		bulkTree.Reset(pointsOf(bulkHits))
		if err := bulkTree.Build(tracker); err != nil {
			return nil, err
		}

		clusterBulkIdx := envelopeBulk(clusters, bulkTree, o.BulkLink)

		// Stage 6: erosion (optional, requires bulk envelope).
		if o.EnableErosion {
			clusterBulkIdx = erodeBulk(clusterBulkIdx, bulkTree, o.DErosion)
		}

		for ci := range clusters {
			for _, ti := range clusterBulkIdx[ci] {
				clusters[ci].Bulk = append(clusters[ci].Bulk, bulkHits[bulkTree.OrigIndexAt(ti)])
			}
		}

		// Stage 7 (Open Question 6 resolution): when bulk linkage is
		// enabled, the core-only pre-filter above was skipped and size
		// cropping runs here, post-envelope, on the true core+bulk
		// size.
		if o.WantCropSize {
			clusters = cropBySize(clusters, o.NMin, o.NMax)
		}
	}

	return &Result{Clusters: clusters}, nil
}

func pointsOf(hits []ion.Hit) []geom.Point {
	pts := make([]geom.Point, len(hits))
	for i, h := range hits {
		pts[i] = h.Point
	}
	return pts
}

// reclassifyCore demotes any core ion whose k-th nearest core neighbour
// lies beyond dist to the bulk population, using the tag-self →
// repeated findNearestUntagged → untag idiom.
func reclassifyCore(coreHits, bulkHits []ion.Hit, dist float64, k int, tracker *progress.Tracker) ([]ion.Hit, []ion.Hit, error) {
	tree := kdtree.New()
	tree.Reset(pointsOf(coreHits))
	if err := tree.Build(tracker); err != nil {
		return nil, nil, err
	}

	distSqr := dist * dist
	keep := make([]bool, tree.Size())
	for ti := 0; ti < tree.Size(); ti++ {
		tree.Tag(ti, true)
		touched := []int{ti}

		kthSqr := math.Inf(1)
		for step := 0; step < k; step++ {
			idx, ok := tree.FindNearestUntagged(tree.PointAt(ti), tree.Bounds(), true)
			if !ok {
				kthSqr = math.Inf(1)
				break
			}
			touched = append(touched, idx)
			kthSqr = tree.PointAt(ti).SqrDist(tree.PointAt(idx))
		}

		tree.ClearTags(touched)
		keep[ti] = kthSqr <= distSqr

		if !tracker.Tick() {
			return nil, nil, progress.ErrAborted
		}
	}

	newCore := coreHits[:0:0]
	newBulk := append([]ion.Hit{}, bulkHits...)
	for ti := 0; ti < tree.Size(); ti++ {
		orig := tree.OrigIndexAt(ti)
		if keep[ti] {
			newCore = append(newCore, coreHits[orig])
		} else {
			newBulk = append(newBulk, coreHits[orig])
		}
	}
	return newCore, newBulk, nil
}

// growBackbone partitions tree into connected backbone clusters: each
// group is grown from a seed point breadth-first: each member taken
// from the front of a FIFO queue repeatedly pulls its nearest untagged
// point until that candidate is farther than linkDist, and every point
// pulled joins the group and the back of the queue. Unlike the source's
// tag-then-undo-on-rejection dance, the distance check here peeks
// (shouldTag=false) before committing, since Go's value-returning
// FindNearestUntagged makes a reject-and-untag round trip unnecessary.
func growBackbone(tree *kdtree.Tree, linkDist float64) [][]int {
	tree.ClearAllTags()
	linkSqr := linkDist * linkDist

	var groups [][]int
	for seed := 0; seed < tree.Size(); seed++ {
		if tree.Tagged(seed) {
			continue
		}
		tree.Tag(seed, true)
		group := []int{seed}
		queue := []int{seed}

		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]

			for {
				nxt, ok := tree.FindNearestUntagged(tree.PointAt(cur), tree.Bounds(), false)
				if !ok {
					break
				}
				if tree.PointAt(cur).SqrDist(tree.PointAt(nxt)) > linkSqr {
					break
				}
				tree.Tag(nxt, true)
				group = append(group, nxt)
				queue = append(queue, nxt)
			}
		}
		groups = append(groups, group)
	}
	return groups
}

// envelopeBulk gathers, for each cluster's core points, all bulk points
// within bulkLink, using a hybrid tree-run/nearest-untagged strategy.
// A bulk point claimed by one cluster is tagged and never revisited by
// a later cluster or core point.
func envelopeBulk(clusters []Cluster, bulkTree *kdtree.Tree, bulkLink float64) [][]int {
	bulkTree.ClearAllTags()
	bulkLinkSqr := bulkLink * bulkLink

	density := 0.0
	if vol := boxVolume(bulkTree.Bounds()); vol > 0 {
		density = float64(bulkTree.Size()) / vol
	}
	sphereVol := 4.0 / 3.0 * math.Pi * bulkLink * bulkLink * bulkLink
	useHybrid := density*sphereVol > spherePresearchCutoff

	claimedByCluster := make([][]int, len(clusters))
	for ci := range clusters {
		for _, corePt := range clusters[ci].Core {
			claimedByCluster[ci] = append(claimedByCluster[ci], collectBulkNear(bulkTree, corePt.Point, bulkLinkSqr, useHybrid)...)
		}
	}
	return claimedByCluster
}

func collectBulkNear(tree *kdtree.Tree, centre geom.Point, r2 float64, useHybrid bool) []int {
	var claimed []int

	if useHybrid {
		for _, run := range tree.GetTreesInSphere(centre, r2, tree.Bounds()) {
			for ti := run.Lo; ti <= run.Hi; ti++ {
				if tree.Tagged(ti) {
					continue
				}
				if centre.SqrDist(tree.PointAt(ti)) <= r2 {
					tree.Tag(ti, true)
					claimed = append(claimed, ti)
				}
			}
		}
	}

	for {
		nxt, ok := tree.FindNearestUntagged(centre, tree.Bounds(), false)
		if !ok {
			break
		}
		if centre.SqrDist(tree.PointAt(nxt)) > r2 {
			break
		}
		tree.Tag(nxt, true)
		claimed = append(claimed, nxt)
	}
	return claimed
}

func boxVolume(b geom.Box) float64 {
	d := b.Hi.Sub(b.Lo)
	return d.X * d.Y * d.Z
}

// erodeBulk drops, in a single pass, any claimed bulk tree index that
// has an unclaimed bulk neighbour within dErosion: such a point is
// judged to sit at the envelope's noisy boundary rather than solidly
// inside it.
func erodeBulk(claimedByCluster [][]int, bulkTree *kdtree.Tree, dErosion float64) [][]int {
	dSqr := dErosion * dErosion

	eroded := make([][]int, len(claimedByCluster))
	for ci, indices := range claimedByCluster {
		kept := make([]int, 0, len(indices))
		for _, ti := range indices {
			nxt, ok := bulkTree.FindNearestUntagged(bulkTree.PointAt(ti), bulkTree.Bounds(), false)
			if ok && bulkTree.PointAt(ti).SqrDist(bulkTree.PointAt(nxt)) <= dSqr {
				continue
			}
			kept = append(kept, ti)
		}
		eroded[ci] = kept
	}
	return eroded
}

func cropBySize(clusters []Cluster, nMin, nMax int) []Cluster {
	kept := clusters[:0]
	for _, c := range clusters {
		if c.Size() >= nMin && c.Size() <= nMax {
			kept = append(kept, c)
		}
	}
	return kept
}
