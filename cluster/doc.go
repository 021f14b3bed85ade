// Package cluster implements single relocation steps for centroid-based
// clustering of 2-D points.
//
// Every variant satisfies Stepper. A step reads the dataset, moves the
// centroids in place and returns the mean distance the centroids moved
// (the displacement), which drives convergence.
//
// # Variants
//
//   - PivotThreshold weights points by inverse distance and lets only the
//     points above the pivot weight pull the centroid. Updates are applied
//     sequentially in point order, so later points see the centroid already
//     moved by earlier ones.
//   - Fuzzy is Fuzzy C-Means with fuzziness m = 2. Every centroid is
//     recomputed from the same snapshot, optionally in parallel.
//
// # Failure
//
// Steps never leave NaN or Inf in the centroid set. When a step cannot
// produce finite positions it returns a *NonFiniteError and restores the
// centroids to their state before the step.
package cluster
