package reactive

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// defaultTracerName is the tracer used by package-level TxContext.
const defaultTracerName = "github.com/vango-dev/signaled/reactive"

// Batch groups multiple updates into a single notification phase.
// All notifications raised inside fn are collected, deduplicated, and
// delivered once when the outermost batch completes.
//
// Batches can be nested. Notifications only fire when the outermost batch completes.
//
// Example:
//
//	Batch(func() {
//	    firstName.Set("John")
//	    lastName.Set("Doe")
//	})
//	// Effects reading both names re-run once
func Batch(fn func()) {
	batch(fn)
}

// batch runs fn as a batch and reports how many distinct listeners were
// notified when it completed. outermost is false for nested batches,
// whose notifications are delivered by the enclosing batch.
func batch(fn func()) (notified int, outermost bool) {
	incrementBatchDepth()

	defer func() {
		if decrementBatchDepth() {
			outermost = true
			notified = processPendingUpdates()
		}
	}()

	fn()
	return notified, outermost
}

// processPendingUpdates deduplicates and notifies all pending listeners.
func processPendingUpdates() int {
	updates := drainPendingUpdates()
	if len(updates) == 0 {
		return 0
	}

	seen := make(map[uint64]bool, len(updates))
	unique := make([]Listener, 0, len(updates))

	for _, listener := range updates {
		id := listener.ID()
		if !seen[id] {
			seen[id] = true
			unique = append(unique, listener)
		}
	}

	for _, listener := range unique {
		listener.MarkDirty()
	}
	return len(unique)
}

// Untracked runs a function without tracking reads as dependencies.
//
// Example:
//
//	Untracked(func() {
//	    // Reading count here won't subscribe the current effect
//	    fmt.Println("Current value:", count.Get())
//	})
func Untracked(fn func()) {
	old := setCurrentListener(nil)
	defer setCurrentListener(old)
	fn()
}

// UntrackedGet reads a signal's value without creating a dependency.
// This is a convenience function equivalent to signal.Peek().
func UntrackedGet[T any](s *Signal[T]) T {
	return s.Peek()
}

// Tx runs fn as a transaction, grouping all updates.
// This is an alias for Batch().
func Tx(fn func()) {
	Batch(fn)
}

// TxNamed runs fn as a named transaction. In DebugMode the transaction
// boundaries and the number of listeners notified are logged.
//
// Example:
//
//	TxNamed("cart-checkout", func() {
//	    items.Clear()
//	    total.Set(0)
//	})
func TxNamed(name string, fn func()) {
	if !DebugMode {
		Batch(fn)
		return
	}

	log := logger()
	log.Debug("reactive: tx start", "tx", name)
	notified, outermost := batch(fn)
	log.Debug("reactive: tx end", "tx", name, "listeners", notified, "nested", !outermost)
}

// TxContext runs fn as a named transaction inside an OpenTelemetry span,
// a child of any span in ctx. The global tracer provider is used.
//
// Span attributes:
//   - reactive.tx.name: the transaction name
//   - reactive.tx.listeners: distinct listeners notified on completion
//   - reactive.tx.nested: true when enclosed in another batch
//
// A panic in fn marks the span as errored and is re-raised.
func TxContext(ctx context.Context, name string, fn func()) {
	txContext(ctx, otel.Tracer(defaultTracerName), name, fn)
}

func txContext(ctx context.Context, tracer trace.Tracer, name string, fn func()) {
	_, span := tracer.Start(ctx, "reactive.tx",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attribute.String("reactive.tx.name", name)),
	)
	defer span.End()

	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("reactive: panic in tx %q: %v", name, r)
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			panic(r)
		}
	}()

	notified, outermost := batch(fn)
	span.SetAttributes(
		attribute.Int("reactive.tx.listeners", notified),
		attribute.Bool("reactive.tx.nested", !outermost),
	)
}
