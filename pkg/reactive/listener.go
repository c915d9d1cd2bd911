package reactive

// Listener is a computation that depends on cells, signals or memos.
// Effects and memos are listeners; tests may supply their own through
// WithListener.
type Listener interface {
	// MarkDirty is called when a dependency notifies. A memo drops its
	// cached value; an effect schedules a re-run.
	MarkDirty()

	// ID identifies the listener. Batches deliver at most one MarkDirty
	// per ID.
	ID() uint64
}

// Cleanup is returned by an effect body. It runs before the next run and
// on disposal.
type Cleanup func()
