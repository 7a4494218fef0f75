// Package apt3d is your toolbox for turning a raw atom-probe point
// cloud into range-identified ions, spatial statistics, and 3D
// visualisations.
//
// 🔬 What is apt3d?
//
//	A concurrent, modular analysis pipeline covering:
//
//	  • Ranging: mass-to-charge spectra -> species via a range table
//	  • Spatial statistics: radial/axial distribution functions, kNN
//	    density filtering, voxel counting and smoothing
//	  • Segmentation: core-link-erode cluster decomposition
//	  • Reporting: per-species counts, composition, volume, density
//	  • Visualisation plumbing: a tagged-union stream bundle feeding
//	    plots, voxel iso-surfaces, and drawable primitives
//
// ✨ Why apt3d?
//
//   - Concurrent where it counts — voxel counting (CountParallel)
//     shards across goroutines into per-worker shadow grids
//   - Cacheable — every producer's output is keyed by a fingerprint of
//     its options, so re-running with identical parameters is free
//   - Pure Go core — geometry and the kd-tree carry no third-party
//     dependency; the ambient stack (logging, which clustering and
//     caching use, cache fingerprinting, testing) reaches for the wider
//     ecosystem instead of hand-rolling
//
// Everything is organized under focused subpackages:
//
//	geom/      — Point, Box, and the small vector algebra everything else builds on
//	rangetbl/  — species and mass-to-charge range tables
//	ion/       — ion hits and range-based classification
//	kdtree/    — a tag-aware k-d tree for nearest-neighbour and sphere queries
//	hull/      — convex hull construction and pyramid-decomposition volume
//	cluster/   — core-link-erode cluster decomposition
//	rdf/       — radial and axial distribution functions
//	voxel/     — binning, Gaussian smoothing, slicing, isosurface extraction
//	density/   — nearest-neighbour and radius density filtering
//	ioninfo/   — per-species counts, composition, volume, and density reports
//	stream/    — the tagged-union bundle shared by every producer's output
//	cache/     — fingerprint-keyed caching of producer output
//	progress/  — cooperative cancellation and progress reporting
//	xlog/      — structured logging
package apt3d
