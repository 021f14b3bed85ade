package kmeans

import (
	"math"
	"sort"

	"github.com/hupe1980/kcluster/vector"
)

// AssignPartition finds the closest centroid for a point.
// Ties go to the lowest index. Returns -1 when centroids is empty.
func AssignPartition(point vector.Vec2, centroids []vector.Vec2) int {
	bestCluster := -1
	minDist := math.MaxFloat64

	for j, center := range centroids {
		d := vector.Distance(point, center)
		if d < minDist {
			minDist = d
			bestCluster = j
		}
	}

	return bestCluster
}

// AssignAll labels every point with the index of its closest centroid.
func AssignAll(points, centroids []vector.Vec2) []int {
	assignments := make([]int, len(points))
	for i, p := range points {
		assignments[i] = AssignPartition(p, centroids)
	}
	return assignments
}

// Sizes counts the points assigned to each of k clusters.
// A negative k is treated as zero.
func Sizes(assignments []int, k int) []int {
	counts := make([]int, max(k, 0))
	for _, a := range assignments {
		if a >= 0 && a < k {
			counts[a]++
		}
	}
	return counts
}

type centroidDist struct {
	id   int
	dist float64
}

// FindClosestCentroids returns the indices of the n closest centroids to the point.
func FindClosestCentroids(point vector.Vec2, centroids []vector.Vec2, n int) []int {
	k := len(centroids)
	n = min(max(n, 0), k)

	dists := make([]centroidDist, k)
	for i, center := range centroids {
		dists[i] = centroidDist{id: i, dist: vector.Distance(point, center)}
	}

	sort.SliceStable(dists, func(i, j int) bool {
		return dists[i].dist < dists[j].dist
	})

	result := make([]int, n)
	for i := 0; i < n; i++ {
		result[i] = dists[i].id
	}

	return result
}

// RunnerUps labels every point with the index of its second closest
// centroid, using the same tie order as AssignPartition. Every label is -1
// when there are fewer than two centroids.
func RunnerUps(points, centroids []vector.Vec2) []int {
	runnerUps := make([]int, len(points))
	for i, p := range points {
		runnerUps[i] = -1
		if closest := FindClosestCentroids(p, centroids, 2); len(closest) == 2 {
			runnerUps[i] = closest[1]
		}
	}
	return runnerUps
}
