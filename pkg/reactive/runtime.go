package reactive

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/signaled/pkg/trackcache"
)

// Runtime adapts this package to trackcache.Runtime. Cells are Triggers
// and batches are reactive Batches, optionally wrapped in a span.
type Runtime struct {
	name    string
	logger  *slog.Logger
	tracer  trace.Tracer
	tracing bool
}

// RuntimeOption configures a Runtime.
type RuntimeOption func(*Runtime)

// WithRuntimeName names the runtime. Batch spans are named "<name>.batch".
func WithRuntimeName(name string) RuntimeOption {
	return func(r *Runtime) {
		r.name = name
	}
}

// WithLogger sets the logger used for debug output of batches.
func WithLogger(l *slog.Logger) RuntimeOption {
	return func(r *Runtime) {
		r.logger = l
	}
}

// WithTracer sets the tracer used when tracing is enabled.
// Default: otel.Tracer from the global provider.
func WithTracer(t trace.Tracer) RuntimeOption {
	return func(r *Runtime) {
		r.tracer = t
	}
}

// WithTracing wraps every Batch in a span.
func WithTracing(enabled bool) RuntimeOption {
	return func(r *Runtime) {
		r.tracing = enabled
	}
}

// NewRuntime creates a runtime for trackcache and collections.
func NewRuntime(opts ...RuntimeOption) *Runtime {
	r := &Runtime{name: "reactive"}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = logger()
	}
	if r.tracer == nil {
		r.tracer = otel.Tracer(defaultTracerName)
	}
	return r
}

// Name returns the runtime name.
func (r *Runtime) Name() string {
	return r.name
}

// NewCell implements trackcache.Runtime.
func (r *Runtime) NewCell() trackcache.Cell {
	return NewTrigger()
}

// Batch implements trackcache.Runtime.
func (r *Runtime) Batch(fn func()) {
	r.TxContext(context.Background(), r.name+".batch", fn)
}

// TxContext runs fn as a batch named name. With tracing enabled the batch
// is recorded as a span, a child of any span in ctx.
func (r *Runtime) TxContext(ctx context.Context, name string, fn func()) {
	if r.tracing {
		txContext(ctx, r.tracer, name, fn)
		return
	}
	if !DebugMode {
		Batch(fn)
		return
	}
	notified, outermost := batch(fn)
	r.logger.Debug("reactive: batch done", "tx", name, "listeners", notified, "nested", !outermost)
}

var _ trackcache.Runtime = (*Runtime)(nil)
