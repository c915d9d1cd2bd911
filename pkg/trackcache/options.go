package trackcache

import "log/slog"

// Option configures a cache or tracker.
type Option func(*options)

type options struct {
	name    string
	logger  *slog.Logger
	metrics *Metrics
}

// WithName sets the name used in log records and metric labels.
// Trackers append ".values" and ".shape" for their two caches.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithLogger sets the logger (default: slog.Default()).
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithMetrics records cache activity in m.
func WithMetrics(m *Metrics) Option {
	return func(o *options) {
		o.metrics = m
	}
}

func applyOptions(opts []Option) options {
	o := options{name: "cache"}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	return o
}
