package testutil

import (
	"math/rand"
	"sync"

	"github.com/hupe1980/kcluster/vector"
)

// BlobBox is the half-width of the square blob centers are drawn from.
const BlobBox = 10.0

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// UniformPoints generates num points with both coordinates in [minVal, maxVal).
func (r *RNG) UniformPoints(num int, minVal, maxVal float64) []vector.Vec2 {
	r.mu.Lock()
	defer r.mu.Unlock()

	span := maxVal - minVal
	points := make([]vector.Vec2, num)
	for i := range points {
		points[i] = vector.Vec2{
			X: minVal + r.rand.Float64()*span,
			Y: minVal + r.rand.Float64()*span,
		}
	}

	return points
}

// Blobs generates num points spread over the given number of isotropic
// Gaussian blobs. Centers are uniform in [-BlobBox, BlobBox) and points are
// dealt to blobs as evenly as possible. The returned labels hold the blob
// index of each point.
func (r *RNG) Blobs(num, centers int, stddev float64) ([]vector.Vec2, []int) {
	if centers < 1 {
		centers = 1
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	cs := make([]vector.Vec2, centers)
	for i := range cs {
		cs[i] = vector.Vec2{
			X: (r.rand.Float64()*2 - 1) * BlobBox,
			Y: (r.rand.Float64()*2 - 1) * BlobBox,
		}
	}

	points := make([]vector.Vec2, num)
	labels := make([]int, num)
	for i := range points {
		c := i % centers
		points[i] = vector.Vec2{
			X: cs[c].X + r.rand.NormFloat64()*stddev,
			Y: cs[c].Y + r.rand.NormFloat64()*stddev,
		}
		labels[i] = c
	}

	return points, labels
}

// SeparatedBlobs generates blobs around caller-chosen centers.
// Useful when a test needs a known layout.
func (r *RNG) SeparatedBlobs(perCenter int, centers []vector.Vec2, stddev float64) ([]vector.Vec2, []int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	points := make([]vector.Vec2, 0, perCenter*len(centers))
	labels := make([]int, 0, perCenter*len(centers))
	for c, center := range centers {
		for range perCenter {
			points = append(points, vector.Vec2{
				X: center.X + r.rand.NormFloat64()*stddev,
				Y: center.Y + r.rand.NormFloat64()*stddev,
			})
			labels = append(labels, c)
		}
	}

	return points, labels
}

// Purity measures how well assignments reproduce labels: every predicted
// cluster votes for its most frequent true label and the matching points
// are counted. Returns a value in [0, 1].
func Purity(labels, assignments []int) float64 {
	if len(labels) == 0 || len(labels) != len(assignments) {
		return 0
	}

	votes := make(map[int]map[int]int)
	for i, a := range assignments {
		if votes[a] == nil {
			votes[a] = make(map[int]int)
		}
		votes[a][labels[i]]++
	}

	hits := 0
	for _, counts := range votes {
		best := 0
		for _, c := range counts {
			best = max(best, c)
		}
		hits += best
	}

	return float64(hits) / float64(len(labels))
}
