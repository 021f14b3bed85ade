// Package kmeans implements hard nearest-centroid partitioning.
//
// Used by the root package to turn a relocated centroid set into cluster
// labels for each data point.
package kmeans
