package collections

import (
	"log/slog"

	"github.com/vango-dev/signaled/pkg/trackcache"
)

// Option configures a collection's caches.
type Option = trackcache.Option

// WithName sets the name used in log records and metric labels.
func WithName(name string) Option {
	return trackcache.WithName(name)
}

// WithLogger sets the logger for cache debug output.
func WithLogger(l *slog.Logger) Option {
	return trackcache.WithLogger(l)
}

// WithMetrics records cache activity in m.
func WithMetrics(m *trackcache.Metrics) Option {
	return trackcache.WithMetrics(m)
}

// named puts a default name ahead of the caller's options.
func named(name string, opts []Option) []Option {
	return append([]Option{trackcache.WithName(name)}, opts...)
}
