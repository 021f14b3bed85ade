// Package promcollector exports kcluster metrics to Prometheus.
//
//	reg := prometheus.NewRegistry()
//	pc, _ := promcollector.New(reg)
//	res, _ := kcluster.Run(ctx, points, cfg, kcluster.WithMetricsCollector(pc))
package promcollector

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hupe1980/kcluster"
)

const namespace = "kcluster"

var _ kcluster.MetricsCollector = (*Collector)(nil)

// Collector implements kcluster.MetricsCollector with Prometheus metrics.
type Collector struct {
	stepLatency  *prometheus.HistogramVec
	displacement *prometheus.GaugeVec
	steps        *prometheus.CounterVec
	fits         *prometheus.CounterVec
	iterations   *prometheus.HistogramVec
}

// New creates a Collector and registers its metrics with reg.
// A nil reg registers with prometheus.DefaultRegisterer.
func New(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	c := &Collector{
		stepLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "step_latency_seconds",
			Help:      "Latency of single relocation steps",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10),
		}, []string{"variant", "status"}),
		displacement: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "step_displacement",
			Help:      "Mean centroid displacement of the latest successful step",
		}, []string{"variant"}),
		steps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "steps_total",
			Help:      "Total relocation steps executed",
		}, []string{"variant", "status"}),
		fits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fits_total",
			Help:      "Total convergence loops by outcome",
		}, []string{"variant", "outcome"}),
		iterations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "fit_iterations",
			Help:      "Steps executed per convergence loop",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
		}, []string{"variant"}),
	}

	for _, col := range []prometheus.Collector{c.stepLatency, c.displacement, c.steps, c.fits, c.iterations} {
		if err := reg.Register(col); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// RecordStep implements kcluster.MetricsCollector.
func (c *Collector) RecordStep(variant string, displacement float64, d time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	c.stepLatency.WithLabelValues(variant, status).Observe(d.Seconds())
	c.steps.WithLabelValues(variant, status).Inc()
	if err == nil {
		c.displacement.WithLabelValues(variant).Set(displacement)
	}
}

// RecordFit implements kcluster.MetricsCollector.
func (c *Collector) RecordFit(variant string, iterations int, converged bool, d time.Duration, err error) {
	outcome := "capped"
	switch {
	case err != nil:
		outcome = "error"
	case converged:
		outcome = "converged"
	}
	c.fits.WithLabelValues(variant, outcome).Inc()
	c.iterations.WithLabelValues(variant).Observe(float64(iterations))
}
