// Package testutil provides testing utilities for kcluster.
//
// This package is intended for use in tests, examples and benchmarks only.
// It provides a seeded random source and generators for 2-D point sets.
//
// # Random Points
//
//	rng := testutil.NewRNG(seed)
//	pts := rng.UniformPoints(100, 0, 1)   // uniform in [0, 1) on both axes
//
// # Blobs
//
//	pts, labels := rng.Blobs(300, 3, 1.0)  // three Gaussian blobs
//
// # Cluster Quality
//
//	purity := testutil.Purity(labels, assignments)
//
// RNG satisfies centroid.Source, so it can seed Random initialization.
package testutil
