package kcluster

import (
	"log/slog"

	"github.com/hupe1980/kcluster/normalize"
)

type options struct {
	metricsCollector MetricsCollector
	logger           *Logger
	normalizeOptions []normalize.Option
}

// Option configures Clusterer and Run behavior.
type Option func(*options)

// WithMetricsCollector configures a metrics collector for monitoring steps
// and fits. Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &kcluster.BasicMetricsCollector{}
//	c, _ := kcluster.New(&cluster.Fuzzy{}, kcluster.WithMetricsCollector(metrics))
//	// ... fit ...
//	stats := metrics.GetStats()
//	fmt.Printf("Steps: %d, last displacement: %g\n", stats.StepCount, stats.LastDisplacement)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := kcluster.NewJSONLogger(slog.LevelInfo)
//	c, _ := kcluster.New(&cluster.Fuzzy{}, kcluster.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithNormalizeOptions forwards options to normalization in Run and Normalize.
func WithNormalizeOptions(opts ...normalize.Option) Option {
	return func(o *options) {
		o.normalizeOptions = append(o.normalizeOptions, opts...)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
