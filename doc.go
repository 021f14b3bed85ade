// Package kcluster partitions 2-D point data into a fixed number of
// centroids by iterative centroid relocation.
//
// # Quick Start
//
//	data, bounds, _ := kcluster.Normalize(points)
//	centroids, _ := kcluster.InitializeCentroids(centroid.Ring, 3, nil)
//
//	c, _ := kcluster.New(&cluster.Fuzzy{})
//	iterations, _ := c.Fit(ctx, data, centroids, 300, 1e-6)
//
//	fmt.Println(iterations, bounds.InvertAll(centroids))
//
// Or in one call:
//
//	res, _ := kcluster.Run(ctx, points, kcluster.DefaultConfig())
//	fmt.Println(res.SourceCentroids(), res.Sizes())
//
// # Variants
//
// Relocation is pluggable through cluster.Stepper:
//
//   - cluster.Fuzzy: Fuzzy C-Means with fuzziness m = 2.
//   - cluster.PivotThreshold: inverse-distance weighting restricted to the
//     points above a pivot weight, applied sequentially.
//
// # Lifecycle
//
// Normalize once, initialize centroids, then call StepOnce repeatedly or Fit.
// The dataset is never written by a step and may be shared across runs; each
// concurrent run needs its own centroid slice.
//
// # Errors
//
// Precondition violations (empty dataset, no centroids, k < 1, pivot rate
// outside (0, 1)) fail fast. Steps never leave NaN or Inf in the centroid
// set; they return an error wrapping ErrNonFinite instead. All errors from
// sub-packages are wrapped so errors.Is matches the sentinels declared here.
//
// # Observability
//
// Use WithLogger for structured slog output and WithMetricsCollector for
// metrics; promcollector adapts MetricsCollector to Prometheus.
package kcluster
