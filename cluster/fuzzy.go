package cluster

import (
	"context"
	"math"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	"github.com/hupe1980/kcluster/vector"
)

// Fuzziness is the Fuzzy C-Means exponent m.
const Fuzziness = 2.0

// Fuzzy is Fuzzy C-Means with m = 2.
//
// A point's membership in centroid c is
//
//	1 / Σ_c2 (d(v,c) / d(v,c2))^2
//
// and each centroid moves to the membership²-weighted mean of all points.
// A point lying exactly on one or more centroids belongs to them in equal
// shares and to no other centroid.
type Fuzzy struct {
	// Workers bounds the number of centroids updated concurrently.
	// Values <= 1 update serially.
	Workers int
}

// Name implements Stepper.
func (f *Fuzzy) Name() string { return "fuzzy" }

// Step implements Stepper.
func (f *Fuzzy) Step(ctx context.Context, data, centroids []vector.Vec2) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if err := validate(data, centroids); err != nil {
		return 0, err
	}

	prev := vector.Clone(centroids)

	weights, err := memberships(data, centroids)
	if err != nil {
		return 0, err
	}

	next := make([]vector.Vec2, len(centroids))

	if f.Workers <= 1 {
		for c := range centroids {
			if next[c], err = relocate(data, weights[c], prev[c], c); err != nil {
				return 0, err
			}
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(f.Workers)

		for c := range centroids {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				pos, err := relocate(data, weights[c], prev[c], c)
				if err != nil {
					return err
				}
				next[c] = pos
				return nil
			})
		}

		if err := g.Wait(); err != nil {
			return 0, err
		}
	}

	copy(centroids, next)

	return displacement(centroids, prev), nil
}

// Memberships returns the k×n membership matrix of data against centroids.
// Each column (one point across all centroids) sums to 1.
func Memberships(data, centroids []vector.Vec2) ([][]float64, error) {
	if err := validate(data, centroids); err != nil {
		return nil, err
	}
	return memberships(data, centroids)
}

func memberships(data, centroids []vector.Vec2) ([][]float64, error) {
	k := len(centroids)
	weights := make([][]float64, k)
	for c := range weights {
		weights[c] = make([]float64, len(data))
	}

	dist := make([]float64, k)
	ratio := make([]float64, k)
	exponent := 2 / (Fuzziness - 1)

	for v, point := range data {
		coincident := 0
		nearest := 0
		for c, centroid := range centroids {
			dist[c] = vector.Distance(point, centroid)
			if dist[c] == 0 {
				coincident++
			}
			if dist[c] < dist[nearest] {
				nearest = c
			}
		}

		if coincident > 0 {
			share := 1 / float64(coincident)
			for c := range centroids {
				if dist[c] == 0 {
					weights[c][v] = share
				}
			}
			continue
		}

		// Ratios against the nearest centroid stay in (0, 1], so the sum is
		// at least 1 and cannot overflow.
		for c := range centroids {
			ratio[c] = pow(dist[nearest]/dist[c], exponent)
		}
		total := floats.Sum(ratio)

		for c := range centroids {
			w := ratio[c] / total
			if !isFinite(w) {
				return nil, &NonFiniteError{Stage: "membership", Index: c}
			}
			weights[c][v] = w
		}
	}

	return weights, nil
}

// relocate computes the membership^m weighted mean of data. A centroid that
// no point belongs to keeps its current position.
func relocate(data []vector.Vec2, weights []float64, current vector.Vec2, c int) (vector.Vec2, error) {
	var sum vector.Vec2
	var norm float64

	for v, point := range data {
		w := pow(weights[v], Fuzziness)
		sum = sum.Add(point.Scale(w))
		norm += w
	}

	if norm == 0 {
		return current, nil
	}

	pos := sum.Scale(1 / norm)
	if !pos.IsFinite() {
		return vector.Vec2{}, &NonFiniteError{Stage: "fuzzy update", Index: c}
	}
	return pos, nil
}

// pow special-cases the square, which is the only exponent m = 2 produces.
func pow(x, y float64) float64 {
	if y == 2 {
		return x * x
	}
	return math.Pow(x, y)
}
