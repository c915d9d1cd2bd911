package reactive

import (
	"sync"
	"sync/atomic"

	"github.com/vango-dev/signaled/internal/errors"
)

// maxSyncReruns bounds how many times an unowned effect may re-run
// back-to-back because it invalidated its own dependencies.
const maxSyncReruns = 100

// Effect represents a reactive side effect that runs when its dependencies change.
//
// Effects run immediately when created, and re-run whenever any cell,
// signal or memo they read during execution changes. They can return a
// Cleanup function that is called before the effect re-runs or when the
// effect is disposed.
//
// An effect created under an Owner is scheduled on that owner and re-runs
// in Owner.RunPendingEffects. An effect created without an owner re-runs
// synchronously as soon as it is notified (after the enclosing batch, if
// any).
type Effect struct {
	id uint64

	// fn is the effect function to run.
	fn func() Cleanup

	// cleanup is the cleanup function from the last run.
	cleanup Cleanup

	// sources are the signals this effect depends on.
	sources   []*signalBase
	sourcesMu sync.Mutex

	// owner is the Owner that owns this effect.
	owner *Owner

	// pending indicates the effect is scheduled for re-run.
	pending atomic.Bool

	// running is set while an unowned effect drains its re-runs.
	running atomic.Bool

	// disposed indicates the effect has been disposed.
	disposed atomic.Bool

	// runs counts executions, the initial one included.
	runs atomic.Int64
}

// MarkDirty marks the effect as needing to re-run.
// Implements the Listener interface.
func (e *Effect) MarkDirty() {
	if e.disposed.Load() {
		return
	}

	// Use CAS to ensure we only schedule once
	if !e.pending.CompareAndSwap(false, true) {
		return
	}

	if e.owner != nil {
		e.owner.scheduleEffect(e)
		return
	}
	e.drain()
}

// drain re-runs an unowned effect until it stops invalidating itself.
func (e *Effect) drain() {
	if !e.running.CompareAndSwap(false, true) {
		// The running loop picks the pending flag up.
		return
	}
	defer e.running.Store(false)

	for i := 0; e.pending.Load(); i++ {
		if i == maxSyncReruns {
			e.pending.Store(false)
			err := errors.New(errors.CodeBudgetExceeded).
				WithDetailf("effect %d re-ran %d times in a row", e.id, maxSyncReruns).
				WithSuggestion("Check for effects that write cells they also read.")
			logger().Warn("reactive: effect stopped re-running", "error", err)
			return
		}
		e.run()
	}
}

// ID returns the unique identifier for this effect.
// Implements the Listener interface.
func (e *Effect) ID() uint64 {
	return e.id
}

// Runs returns how many times the effect function has executed.
func (e *Effect) Runs() int64 {
	return e.runs.Load()
}

// run executes the effect function.
func (e *Effect) run() {
	if e.disposed.Load() {
		return
	}

	e.pending.Store(false)

	if e.cleanup != nil {
		e.cleanup()
		e.cleanup = nil
	}

	// Unsubscribe from old sources; the body re-subscribes to what it reads.
	e.sourcesMu.Lock()
	for _, source := range e.sources {
		source.unsubscribe(e)
	}
	e.sources = e.sources[:0]
	e.sourcesMu.Unlock()

	oldListener := setCurrentListener(e)
	defer setCurrentListener(oldListener)

	e.runs.Add(1)
	e.cleanup = e.fn()
}

// addSource adds a source dependency.
func (e *Effect) addSource(source *signalBase) {
	e.sourcesMu.Lock()
	defer e.sourcesMu.Unlock()

	for _, s := range e.sources {
		if s == source {
			return
		}
	}
	e.sources = append(e.sources, source)
}

// Dispose runs the last cleanup and unsubscribes from all sources.
// A disposed effect never runs again.
func (e *Effect) Dispose() {
	if e.disposed.Swap(true) {
		return
	}

	if e.cleanup != nil {
		e.cleanup()
		e.cleanup = nil
	}

	e.sourcesMu.Lock()
	for _, source := range e.sources {
		source.unsubscribe(e)
	}
	e.sources = nil
	e.sourcesMu.Unlock()
}

// CreateEffect creates and runs a new effect within the current owner context.
//
// Example:
//
//	CreateEffect(func() Cleanup {
//	    fmt.Println("todos:", todos.Len())
//	    return nil
//	})
func CreateEffect(fn func() Cleanup) *Effect {
	owner := getCurrentOwner()

	e := &Effect{
		id:    nextID(),
		fn:    fn,
		owner: owner,
	}

	if owner != nil {
		owner.registerEffect(e)
		e.run()
		return e
	}

	e.pending.Store(true)
	e.drain()
	return e
}

// OnUpdate creates an effect that skips the callback on the first run.
// deps establishes the dependencies; callback runs only when they change.
//
// Example:
//
//	OnUpdate(
//	    func() { _ = todos.Len() },
//	    func() { fmt.Println("todo count changed") },
//	)
func OnUpdate(deps func(), callback func()) *Effect {
	first := true
	return CreateEffect(func() Cleanup {
		deps()
		if first {
			first = false
			return nil
		}
		Untracked(callback)
		return nil
	})
}

var _ sourceTracker = (*Effect)(nil)
