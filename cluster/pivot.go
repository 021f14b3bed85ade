package cluster

import (
	"context"
	"fmt"
	"slices"

	"gonum.org/v1/gonum/floats"

	"github.com/hupe1980/kcluster/vector"
)

// DefaultPivotRate is the fraction of points excluded by default.
const DefaultPivotRate = 0.8

// PivotThreshold relocates each centroid toward the points it weighs
// strictly above its pivot weight.
//
// For centroid c, a point's influence is maxDistance(c) - distance(c, v),
// normalized to a weight by the sum of influences. The weights are sorted
// ascending and the one at floor(n*Rate) becomes the pivot. The centroid is
// then pulled toward each heavier point in index order by that point's
// weight, each pull starting from where the previous one left it.
type PivotThreshold struct {
	// Rate is the fraction of points excluded per centroid, in (0, 1).
	Rate float64
}

// NewPivotThreshold returns a PivotThreshold with a validated rate.
func NewPivotThreshold(rate float64) (*PivotThreshold, error) {
	p := &PivotThreshold{Rate: rate}
	if err := p.validateRate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Name implements Stepper.
func (p *PivotThreshold) Name() string { return "pivot" }

func (p *PivotThreshold) validateRate() error {
	if !(p.Rate > 0 && p.Rate < 1) {
		return fmt.Errorf("%w: %v", ErrInvalidPivotRate, p.Rate)
	}
	return nil
}

// Step implements Stepper.
func (p *PivotThreshold) Step(ctx context.Context, data, centroids []vector.Vec2) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if err := p.validateRate(); err != nil {
		return 0, err
	}
	if err := validate(data, centroids); err != nil {
		return 0, err
	}

	n := len(data)
	influence, sums := p.influence(data, centroids)

	prev := vector.Clone(centroids)

	pivotIndex := int(float64(n) * p.Rate)
	weights := make([]float64, n)
	sorted := make([]float64, n)

	for c := range centroids {
		// Every point equidistant: no direction to move in.
		if sums[c] == 0 {
			continue
		}

		for v, inf := range influence[c] {
			weights[v] = inf / sums[c]
		}

		copy(sorted, weights)
		slices.Sort(sorted)
		pivot := sorted[pivotIndex]

		for v, w := range weights {
			if w > pivot {
				centroids[c] = vector.Lerp(centroids[c], data[v], w)
			}
		}

		if !centroids[c].IsFinite() {
			copy(centroids, prev)
			return 0, &NonFiniteError{Stage: "pivot update", Index: c}
		}
	}

	return displacement(centroids, prev), nil
}

// influence returns, per centroid, maxDistance - distance for every point
// together with the row sums.
func (p *PivotThreshold) influence(data, centroids []vector.Vec2) ([][]float64, []float64) {
	influence := make([][]float64, len(centroids))
	sums := make([]float64, len(centroids))

	for c, centroid := range centroids {
		row := make([]float64, len(data))
		for v, point := range data {
			row[v] = vector.Distance(centroid, point)
		}

		maxDistance := floats.Max(row)
		for v := range row {
			row[v] = maxDistance - row[v]
		}

		influence[c] = row
		sums[c] = floats.Sum(row)
	}

	return influence, sums
}
