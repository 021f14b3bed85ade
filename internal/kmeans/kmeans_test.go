package kmeans

import (
	"testing"

	"github.com/hupe1980/kcluster/vector"
	"github.com/stretchr/testify/assert"
)

func TestAssignPartition(t *testing.T) {
	centroids := []vector.Vec2{
		vector.New(0, 0),
		vector.New(10, 10),
	}

	assert.Equal(t, 0, AssignPartition(vector.New(0.5, 0.5), centroids))
	assert.Equal(t, 1, AssignPartition(vector.New(10.5, 10.5), centroids))
	// tie goes to the lower index
	assert.Equal(t, 0, AssignPartition(vector.New(5, 5), centroids))
	assert.Equal(t, -1, AssignPartition(vector.New(1, 1), nil))
}

func TestAssignAllAndSizes(t *testing.T) {
	points := []vector.Vec2{
		vector.New(0, 0), vector.New(0, 1), vector.New(1, 0), // near 0,0
		vector.New(10, 10), vector.New(10, 11), // near 10,10
	}
	centroids := []vector.Vec2{vector.New(0, 0), vector.New(10, 10)}

	got := AssignAll(points, centroids)
	assert.Equal(t, []int{0, 0, 0, 1, 1}, got)
	assert.Equal(t, []int{3, 2}, Sizes(got, 2))
	assert.Equal(t, []int{0, 0, 0}, Sizes([]int{-1, 5}, 3))
	assert.Empty(t, Sizes(got, -1))
}

func TestFindClosestCentroids(t *testing.T) {
	centroids := []vector.Vec2{
		vector.New(0, 0),   // 0
		vector.New(10, 10), // 1
		vector.New(20, 20), // 2
	}

	res := FindClosestCentroids(vector.New(1, 1), centroids, 2)
	assert.Equal(t, []int{0, 1}, res)

	res = FindClosestCentroids(vector.New(19, 19), centroids, 1)
	assert.Equal(t, []int{2}, res)

	// n larger than k is clamped
	res = FindClosestCentroids(vector.New(11, 11), centroids, 10)
	assert.Equal(t, []int{1, 2, 0}, res)

	assert.Empty(t, FindClosestCentroids(vector.New(1, 1), centroids, -1))
}

func TestRunnerUps(t *testing.T) {
	centroids := []vector.Vec2{
		vector.New(0, 0),
		vector.New(10, 10),
		vector.New(20, 20),
	}
	points := []vector.Vec2{
		vector.New(1, 1),
		vector.New(14, 14),
		vector.New(19, 19),
		vector.New(5, 5), // equidistant from 0 and 1
	}

	assert.Equal(t, []int{1, 2, 1, 1}, RunnerUps(points, centroids))
	assert.Equal(t, []int{0, 1, 2, 0}, AssignAll(points, centroids))

	assert.Equal(t, []int{-1, -1}, RunnerUps(points[:2], centroids[:1]))
	assert.Empty(t, RunnerUps(nil, centroids))
}
