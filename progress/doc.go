// Package progress implements the spec's progress-reporting contract
// (§6): a member-wise-comparable Data struct updated by a subsystem
// between work quanta, and a cancellation Token polled at a fixed work
// quantum (every ~5000 inner iterations) by kdtree's Build, the cluster
// pipeline, the rdf histograms and voxel's CountParallel.
//
// The scheduler that drives apt3d's subsystems is out of scope (spec
// §1); this package defines only the contract a subsystem honours, not
// the scheduler itself.
package progress
