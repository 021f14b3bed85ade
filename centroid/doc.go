// Package centroid produces initial centroid sets.
//
// Two strategies are available:
//
//   - Random: each coordinate drawn uniformly from [0, 1) using an injected Source.
//   - Ring: k points evenly spaced on the circle of radius 0.5 centered at
//     (0.5, 0.5). Deterministic.
//
// Both assume the data has already been normalized into the unit square.
package centroid
