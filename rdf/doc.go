// Package rdf computes radial and axial distribution functions over a
// labelled point cloud: per-neighbour-index histograms (NN-terminated),
// single binned-distance histograms (radius-terminated), and their
// cylinder-restricted axial counterparts, with an optional convex-hull
// surface exclusion applied to the source set before either mode runs.
//
// Every query runs against a tagged kdtree.Tree: sources pull
// successive nearest untagged targets, tagging each as it's consumed,
// so no target is counted twice for the same source.
package rdf
