package cluster

import (
	"context"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/hupe1980/kcluster/vector"
)

// Stepper performs one centroid relocation step.
//
// Step mutates centroids in place and returns the mean displacement.
// data is never modified, so one dataset may back several concurrent runs
// as long as each run owns its centroid slice. A canceled ctx fails the
// step with ctx.Err() before anything is mutated.
type Stepper interface {
	Step(ctx context.Context, data, centroids []vector.Vec2) (float64, error)

	// Name identifies the variant in logs and metrics.
	Name() string
}

func validate(data, centroids []vector.Vec2) error {
	if len(data) == 0 {
		return ErrEmptyDataset
	}
	if len(centroids) == 0 {
		return ErrNoCentroids
	}
	if i := vector.AllFinite(data); i >= 0 {
		return &NonFiniteError{Stage: "input", Index: i}
	}
	if i := vector.AllFinite(centroids); i >= 0 {
		return &NonFiniteError{Stage: "centroids", Index: i}
	}
	return nil
}

// displacement is the mean distance between matching centroids.
func displacement(current, prev []vector.Vec2) float64 {
	moved := make([]float64, len(current))
	for i := range current {
		moved[i] = vector.Distance(current[i], prev[i])
	}
	return stat.Mean(moved, nil)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
