// Package geom provides the shared 3D geometry primitives used across
// apt3d: points, axis-aligned bounding boxes, sphere intersection tests,
// and the pyramid-volume helper used by the convex-hull and ion-info
// subsystems.
//
// Distance is always reported squared (SqrDist) in hot paths to avoid a
// sqrt; Dist is provided for reporting only. Box containment is closed
// on both ends ([lo,hi]); this matters at voxel and kd-tree boundaries
// where points may sit exactly on a split or bin edge.
package geom
