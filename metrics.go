package kcluster

import (
	"math"
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting clustering metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus; see package promcollector for a ready-made adapter.
type MetricsCollector interface {
	// RecordStep is called after each relocation step.
	// displacement is the mean centroid movement, err is nil if successful.
	RecordStep(variant string, displacement float64, duration time.Duration, err error)

	// RecordFit is called after each convergence loop.
	// iterations is the number of steps executed.
	RecordFit(variant string, iterations int, converged bool, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordStep(string, float64, time.Duration, error)  {}
func (NoopMetricsCollector) RecordFit(string, int, bool, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	StepCount      atomic.Int64
	StepErrors     atomic.Int64
	StepTotalNanos atomic.Int64
	FitCount       atomic.Int64
	FitErrors      atomic.Int64
	FitConverged   atomic.Int64
	FitIterations  atomic.Int64
	lastDisp       atomic.Uint64
}

// RecordStep implements MetricsCollector.
func (b *BasicMetricsCollector) RecordStep(variant string, displacement float64, duration time.Duration, err error) {
	b.StepCount.Add(1)
	b.StepTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.StepErrors.Add(1)
		return
	}
	b.lastDisp.Store(math.Float64bits(displacement))
}

// RecordFit implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFit(variant string, iterations int, converged bool, duration time.Duration, err error) {
	b.FitCount.Add(1)
	b.FitIterations.Add(int64(iterations))
	if err != nil {
		b.FitErrors.Add(1)
	}
	if converged {
		b.FitConverged.Add(1)
	}
}

// Stats is a point-in-time snapshot of BasicMetricsCollector.
type Stats struct {
	StepCount        int64
	StepErrors       int64
	StepAvgNanos     int64
	LastDisplacement float64
	FitCount         int64
	FitErrors        int64
	FitConverged     int64
	FitIterations    int64
}

// GetStats returns a snapshot of the collected metrics.
func (b *BasicMetricsCollector) GetStats() Stats {
	s := Stats{
		StepCount:        b.StepCount.Load(),
		StepErrors:       b.StepErrors.Load(),
		LastDisplacement: math.Float64frombits(b.lastDisp.Load()),
		FitCount:         b.FitCount.Load(),
		FitErrors:        b.FitErrors.Load(),
		FitConverged:     b.FitConverged.Load(),
		FitIterations:    b.FitIterations.Load(),
	}
	if s.StepCount > 0 {
		s.StepAvgNanos = b.StepTotalNanos.Load() / s.StepCount
	}
	return s
}
