package kcluster

import (
	"context"
	"time"

	"github.com/hupe1980/kcluster/centroid"
	"github.com/hupe1980/kcluster/cluster"
	"github.com/hupe1980/kcluster/internal/kmeans"
	"github.com/hupe1980/kcluster/normalize"
	"github.com/hupe1980/kcluster/vector"
)

// Clusterer drives one relocation variant. It holds no per-run state:
// the centroid slice passed to StepOnce and Fit carries the progress.
type Clusterer struct {
	stepper cluster.Stepper
	logger  *Logger
	metrics MetricsCollector
}

// FitResult describes a finished convergence loop.
type FitResult struct {
	// Iterations is the number of steps executed, including the one that
	// met the goal.
	Iterations int
	// Displacement is the value returned by the last executed step.
	Displacement float64
	// Converged reports whether a step reached the goal displacement.
	Converged bool
}

// New creates a Clusterer for the given variant.
func New(stepper cluster.Stepper, optFns ...Option) (*Clusterer, error) {
	if stepper == nil {
		return nil, ErrNilStepper
	}

	opts := applyOptions(optFns)

	return &Clusterer{
		stepper: stepper,
		logger:  opts.logger.WithVariant(stepper.Name()),
		metrics: opts.metricsCollector,
	}, nil
}

// Variant returns the name of the underlying stepper.
func (c *Clusterer) Variant() string {
	return c.stepper.Name()
}

// StepOnce performs a single relocation step, mutating centroids, and
// returns the mean centroid displacement.
func (c *Clusterer) StepOnce(ctx context.Context, data, centroids []vector.Vec2) (float64, error) {
	return c.step(ctx, 0, data, centroids)
}

func (c *Clusterer) step(ctx context.Context, iteration int, data, centroids []vector.Vec2) (float64, error) {
	start := time.Now()

	d, err := c.stepper.Step(ctx, data, centroids)
	err = translateError(err)

	c.metrics.RecordStep(c.stepper.Name(), d, time.Since(start), err)
	c.logger.LogStep(ctx, iteration, d, err)

	return d, err
}

// Fit repeats StepOnce up to maxIterations times and stops after the first
// step whose displacement is <= goalDiff. It returns the number of steps
// executed. A failed step is not counted; it leaves centroids as they were
// before that step. Cancellation surfaces as the failing step's ctx.Err().
func (c *Clusterer) Fit(ctx context.Context, data, centroids []vector.Vec2, maxIterations int, goalDiff float64) (int, error) {
	res, err := c.FitDetailed(ctx, data, centroids, maxIterations, goalDiff)
	return res.Iterations, err
}

// FitDetailed is Fit reporting the final displacement and whether the goal
// was reached.
func (c *Clusterer) FitDetailed(ctx context.Context, data, centroids []vector.Vec2, maxIterations int, goalDiff float64) (FitResult, error) {
	if maxIterations < 0 {
		return FitResult{}, ErrInvalidMaxIterations
	}

	start := time.Now()

	var (
		res FitResult
		err error
	)

	for res.Iterations < maxIterations {
		var d float64
		d, err = c.step(ctx, res.Iterations+1, data, centroids)
		if err != nil {
			break
		}

		res.Iterations++
		res.Displacement = d

		if d <= goalDiff {
			res.Converged = true
			break
		}
	}

	c.metrics.RecordFit(c.stepper.Name(), res.Iterations, res.Converged, time.Since(start), err)
	if maxIterations > 0 {
		c.logger.LogFit(ctx, res.Iterations, res.Displacement, res.Converged, err)
	}

	return res, err
}

// Fit runs the convergence loop with default options.
func Fit(ctx context.Context, stepper cluster.Stepper, data, centroids []vector.Vec2, maxIterations int, goalDiff float64) (int, error) {
	c, err := New(stepper)
	if err != nil {
		return 0, err
	}
	return c.Fit(ctx, data, centroids, maxIterations, goalDiff)
}

// StepOnce performs a single relocation step with default options.
func StepOnce(ctx context.Context, stepper cluster.Stepper, data, centroids []vector.Vec2) (float64, error) {
	c, err := New(stepper)
	if err != nil {
		return 0, err
	}
	return c.StepOnce(ctx, data, centroids)
}

// Normalize returns a copy of data rescaled into the unit square together
// with the bounds needed to map results back.
func Normalize(data []vector.Vec2, opts ...normalize.Option) ([]vector.Vec2, normalize.Bounds, error) {
	out, b, err := normalize.Copy(data, opts...)
	return out, b, translateError(err)
}

// InitializeCentroids places k centroids with the given strategy.
// src is only used by centroid.Random.
func InitializeCentroids(strategy centroid.Strategy, k int, src centroid.Source) ([]vector.Vec2, error) {
	centroids, err := centroid.Initialize(strategy, k, src)
	return centroids, translateError(err)
}

// Assign labels every point with the index of its nearest centroid.
func Assign(data, centroids []vector.Vec2) ([]int, error) {
	if len(data) == 0 {
		return nil, ErrEmptyDataset
	}
	if len(centroids) == 0 {
		return nil, ErrNoCentroids
	}
	return kmeans.AssignAll(data, centroids), nil
}

// RunnerUps labels every point with the index of its second nearest
// centroid, or -1 when there is only one centroid. Together with Assign it
// shows which points sit on a cluster border.
func RunnerUps(data, centroids []vector.Vec2) ([]int, error) {
	if len(data) == 0 {
		return nil, ErrEmptyDataset
	}
	if len(centroids) == 0 {
		return nil, ErrNoCentroids
	}
	return kmeans.RunnerUps(data, centroids), nil
}

// Sizes counts the points per cluster in an assignment. A negative k yields
// an empty slice.
func Sizes(assignments []int, k int) []int {
	return kmeans.Sizes(assignments, k)
}
