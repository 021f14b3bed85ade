package kcluster

import (
	"context"
	"math/rand"

	"github.com/hupe1980/kcluster/centroid"
	"github.com/hupe1980/kcluster/internal/kmeans"
	"github.com/hupe1980/kcluster/normalize"
	"github.com/hupe1980/kcluster/vector"
)

// Result is the outcome of Run. Centroids and Normalized live in the unit
// square; Bounds maps them back to the units of the input. RunnerUps holds
// the second nearest centroid per point, -1 when K is 1.
type Result struct {
	FitResult

	Centroids   []vector.Vec2
	Normalized  []vector.Vec2
	Bounds      normalize.Bounds
	Assignments []int
	RunnerUps   []int
}

// SourceCentroids returns the centroids in the units of the input data.
func (r *Result) SourceCentroids() []vector.Vec2 {
	return r.Bounds.InvertAll(r.Centroids)
}

// Sizes returns the number of points assigned to each centroid.
func (r *Result) Sizes() []int {
	return Sizes(r.Assignments, len(r.Centroids))
}

// Run normalizes a copy of data, places cfg.K centroids, fits them and
// labels every point with its nearest centroid. data is not modified.
func Run(ctx context.Context, data []vector.Vec2, cfg Config, optFns ...Option) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	opts := applyOptions(optFns)
	logger := opts.logger.WithCount(len(data)).WithK(cfg.K)

	normalized, bounds, err := normalize.Copy(data, opts.normalizeOptions...)
	err = translateError(err)
	logger.LogNormalize(ctx, len(data), err)
	if err != nil {
		return nil, err
	}

	var src centroid.Source
	if cfg.Strategy == centroid.Random {
		src = rand.New(rand.NewSource(cfg.Seed))
	}

	centroids, err := InitializeCentroids(cfg.Strategy, cfg.K, src)
	logger.LogInitialize(ctx, cfg.Strategy.String(), cfg.K, err)
	if err != nil {
		return nil, err
	}

	stepper, err := cfg.Stepper()
	if err != nil {
		return nil, err
	}

	c, err := New(stepper, WithLogger(logger), WithMetricsCollector(opts.metricsCollector))
	if err != nil {
		return nil, err
	}

	fit, err := c.FitDetailed(ctx, normalized, centroids, cfg.MaxIterations, cfg.GoalDiff)
	if err != nil {
		return nil, err
	}

	return &Result{
		FitResult:   fit,
		Centroids:   centroids,
		Normalized:  normalized,
		Bounds:      bounds,
		Assignments: kmeans.AssignAll(normalized, centroids),
		RunnerUps:   kmeans.RunnerUps(normalized, centroids),
	}, nil
}
