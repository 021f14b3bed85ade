package cluster

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyDataset is returned when a step receives no data points.
	ErrEmptyDataset = errors.New("dataset is empty")

	// ErrNoCentroids is returned when a step receives no centroids.
	ErrNoCentroids = errors.New("centroid set is empty")

	// ErrInvalidPivotRate is returned when the pivot rate is outside (0, 1).
	ErrInvalidPivotRate = errors.New("pivot rate must be in (0, 1)")

	// ErrNonFinite is the sentinel wrapped by NonFiniteError.
	ErrNonFinite = errors.New("non-finite value")
)

// NonFiniteError reports where a NaN or Inf was detected.
// Index is the offending point (stage "input") or centroid.
type NonFiniteError struct {
	Stage string
	Index int
}

func (e *NonFiniteError) Error() string {
	return fmt.Sprintf("non-finite value during %s at index %d", e.Stage, e.Index)
}

func (e *NonFiniteError) Unwrap() error { return ErrNonFinite }
