// Package cache holds each producer's most recent output stream,
// keyed by a fingerprint of the parameters that produced it, so an
// unrelated parameter change elsewhere in the pipeline never forces
// recomputation.
//
// Ownership is explicit rather than via raw pointers: Share returns a
// read-only handle to an entry that remains cached, while Take
// transfers the entry out, removing it from the cache entirely.
//
// Fingerprinting uses cespare/xxhash for a stable, collision-resistant
// record identity; invalidation and purge events are logged through
// xlog.
package cache
