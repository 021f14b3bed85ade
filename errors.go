package kcluster

import (
	"errors"
	"fmt"

	"github.com/hupe1980/kcluster/centroid"
	"github.com/hupe1980/kcluster/cluster"
	"github.com/hupe1980/kcluster/normalize"
)

var (
	// ErrEmptyDataset is returned when an operation receives no data points.
	ErrEmptyDataset = errors.New("dataset is empty")

	// ErrNoCentroids is returned when an operation receives no centroids.
	ErrNoCentroids = errors.New("centroid set is empty")

	// ErrInvalidK is returned when the centroid count is not positive.
	ErrInvalidK = errors.New("k must be positive")

	// ErrInvalidPivotRate is returned when the pivot rate is outside (0, 1).
	ErrInvalidPivotRate = errors.New("pivot rate must be in (0, 1)")

	// ErrInvalidMaxIterations is returned for a negative iteration cap.
	ErrInvalidMaxIterations = errors.New("max iterations must not be negative")

	// ErrZeroSpan is returned when normalization rejects an axis without extent.
	ErrZeroSpan = errors.New("zero span")

	// ErrNonFinite is returned when NaN or Inf is detected in input or results.
	ErrNonFinite = errors.New("non-finite value")

	// ErrNilStepper is returned when a Clusterer is built without a variant.
	ErrNilStepper = errors.New("stepper must not be nil")
)

// ErrInvalidConfig indicates a Config field outside its allowed range.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidConfig struct {
	Field string
	Value any
	cause error
}

func (e *ErrInvalidConfig) Error() string {
	return fmt.Sprintf("invalid config: %s = %v", e.Field, e.Value)
}

func (e *ErrInvalidConfig) Unwrap() error { return e.cause }

func translateError(err error) error {
	if err == nil {
		return nil
	}

	// Precondition unification.
	if errors.Is(err, cluster.ErrEmptyDataset) || errors.Is(err, normalize.ErrEmpty) {
		return fmt.Errorf("%w: %w", ErrEmptyDataset, err)
	}
	if errors.Is(err, cluster.ErrNoCentroids) {
		return fmt.Errorf("%w: %w", ErrNoCentroids, err)
	}
	if errors.Is(err, centroid.ErrInvalidK) {
		return fmt.Errorf("%w: %w", ErrInvalidK, err)
	}
	if errors.Is(err, cluster.ErrInvalidPivotRate) {
		return fmt.Errorf("%w: %w", ErrInvalidPivotRate, err)
	}

	// Degenerate geometry and numerics.
	if errors.Is(err, normalize.ErrZeroSpan) {
		return fmt.Errorf("%w: %w", ErrZeroSpan, err)
	}
	if errors.Is(err, cluster.ErrNonFinite) || errors.Is(err, normalize.ErrNonFinite) {
		return fmt.Errorf("%w: %w", ErrNonFinite, err)
	}

	return err
}
