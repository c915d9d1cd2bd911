package trackcache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsConfig configures cache metrics.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "signaled").
	Namespace string

	// Subsystem is the metrics subsystem (default: "trackcache").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures cache metrics.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "signaled",
		Subsystem: "trackcache",
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics holds the Prometheus collectors shared by every cache created
// with WithMetrics. Series are labelled by cache name, so names should be
// per collection kind ("todos.values"), not per instance.
//
// Metrics registers its collectors on creation; create it once per
// registry.
type Metrics struct {
	cellsCreated   *prometheus.CounterVec
	tracks         *prometheus.CounterVec
	invalidations  *prometheus.CounterVec
	cellsReclaimed *prometheus.CounterVec
}

// NewMetrics creates and registers the cache metrics.
//
// Metrics collected:
//   - signaled_trackcache_cells_created_total: cells allocated by first Track
//   - signaled_trackcache_tracks_total: Track calls
//   - signaled_trackcache_invalidations_total: cells notified, by scope (key|all)
//   - signaled_trackcache_cells_reclaimed_total: weak cells dropped by the GC
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}

	factory := promauto.With(config.Registry)

	return &Metrics{
		cellsCreated: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "cells_created_total",
			Help:        "Total number of reactive cells allocated",
			ConstLabels: config.ConstLabels,
		}, []string{"cache"}),

		tracks: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "tracks_total",
			Help:        "Total number of dependency-registering reads",
			ConstLabels: config.ConstLabels,
		}, []string{"cache"}),

		invalidations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "invalidations_total",
			Help:        "Total number of cells notified",
			ConstLabels: config.ConstLabels,
		}, []string{"cache", "scope"}),

		cellsReclaimed: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "cells_reclaimed_total",
			Help:        "Total number of weak-keyed cells dropped after their key was collected",
			ConstLabels: config.ConstLabels,
		}, []string{"cache"}),
	}
}

// cacheMetrics is Metrics bound to one cache name. The zero value records
// nothing.
type cacheMetrics struct {
	cellsCreated   prometheus.Counter
	tracks         prometheus.Counter
	invalidKey     prometheus.Counter
	invalidAll     prometheus.Counter
	cellsReclaimed prometheus.Counter
}

func (m *Metrics) bind(cache string) cacheMetrics {
	if m == nil {
		return cacheMetrics{}
	}
	return cacheMetrics{
		cellsCreated:   m.cellsCreated.WithLabelValues(cache),
		tracks:         m.tracks.WithLabelValues(cache),
		invalidKey:     m.invalidations.WithLabelValues(cache, "key"),
		invalidAll:     m.invalidations.WithLabelValues(cache, "all"),
		cellsReclaimed: m.cellsReclaimed.WithLabelValues(cache),
	}
}

func inc(c prometheus.Counter) {
	if c != nil {
		c.Inc()
	}
}

func add(c prometheus.Counter, n int) {
	if c != nil && n > 0 {
		c.Add(float64(n))
	}
}
