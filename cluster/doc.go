// Package cluster implements the core-link-erode cluster decomposition
// pipeline: ions are split into core- and bulk-capable populations,
// core points optionally reclassified by a k-th-nearest-neighbour
// distance test, grown into connected "backbone" clusters via repeated
// nearest-untagged extraction, optionally enveloped with nearby bulk
// ions, optionally eroded at the boundary, and optionally cropped by
// size. Size, composition and morphology descriptors are derived from
// the resulting decomposition.
package cluster
