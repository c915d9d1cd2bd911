package reactive

import (
	"sync"
	"sync/atomic"
)

// Owner is a disposal scope for effects. Disposing an Owner disposes its
// child owners (newest first), then its effects, then runs its cleanups
// (newest first).
//
// Effects created under an Owner do not re-run when notified. They are
// queued, and RunPendingEffects runs the queue; the host decides what a
// "tick" is and may cap it with a StormBudgetChecker.
type Owner struct {
	id     uint64
	parent *Owner

	mu       sync.Mutex
	children []*Owner
	effects  []*Effect
	cleanups []func()
	queue    []*Effect

	disposed atomic.Bool
}

// NewOwner creates an Owner under parent, or a root Owner when parent is
// nil.
func NewOwner(parent *Owner) *Owner {
	o := &Owner{id: nextID(), parent: parent}
	if parent != nil {
		parent.mu.Lock()
		parent.children = append(parent.children, o)
		parent.mu.Unlock()
	}
	return o
}

// ID returns the unique identifier for this Owner.
func (o *Owner) ID() uint64 {
	return o.id
}

// Parent returns the parent Owner, or nil for a root Owner.
func (o *Owner) Parent() *Owner {
	return o.parent
}

// IsDisposed reports whether Dispose has been called.
func (o *Owner) IsDisposed() bool {
	return o.disposed.Load()
}

// OnCleanup registers fn to run on Dispose. On a disposed Owner fn runs
// immediately.
func (o *Owner) OnCleanup(fn func()) {
	o.mu.Lock()
	if o.disposed.Load() {
		o.mu.Unlock()
		fn()
		return
	}
	o.cleanups = append(o.cleanups, fn)
	o.mu.Unlock()
}

func (o *Owner) registerEffect(e *Effect) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if !o.disposed.Load() {
		o.effects = append(o.effects, e)
	}
}

func (o *Owner) scheduleEffect(e *Effect) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if !o.disposed.Load() {
		o.queue = append(o.queue, e)
	}
}

func (o *Owner) snapshotChildren() []*Owner {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]*Owner(nil), o.children...)
}

// RunPendingEffects runs the effects queued on this owner, then those of
// its children.
//
// budget may be nil. Otherwise it is consulted before each run; an effect
// refused by the budget stays queued for the next call.
func (o *Owner) RunPendingEffects(budget StormBudgetChecker) {
	if o.disposed.Load() {
		return
	}

	o.mu.Lock()
	queue := o.queue
	o.queue = nil
	o.mu.Unlock()

	for _, e := range queue {
		if !e.pending.Load() {
			continue
		}
		if budget != nil && budget.CheckEffectRun() != nil {
			o.scheduleEffect(e)
			continue
		}
		e.run()
	}

	for _, child := range o.snapshotChildren() {
		child.RunPendingEffects(budget)
	}
}

// HasPendingEffects reports whether this owner or a descendant has queued
// effects.
func (o *Owner) HasPendingEffects() bool {
	if o.disposed.Load() {
		return false
	}

	o.mu.Lock()
	queued := len(o.queue) > 0
	o.mu.Unlock()
	if queued {
		return true
	}

	for _, child := range o.snapshotChildren() {
		if child.HasPendingEffects() {
			return true
		}
	}
	return false
}

// Dispose tears the scope down. Calling it again does nothing.
func (o *Owner) Dispose() {
	o.mu.Lock()
	if o.disposed.Swap(true) {
		o.mu.Unlock()
		return
	}
	children, effects, cleanups := o.children, o.effects, o.cleanups
	o.children, o.effects, o.cleanups, o.queue = nil, nil, nil, nil
	o.mu.Unlock()

	if p := o.parent; p != nil {
		p.mu.Lock()
		for i, c := range p.children {
			if c == o {
				p.children = append(p.children[:i], p.children[i+1:]...)
				break
			}
		}
		p.mu.Unlock()
	}

	for i := len(children) - 1; i >= 0; i-- {
		children[i].Dispose()
	}
	for _, e := range effects {
		e.Dispose()
	}
	for i := len(cleanups) - 1; i >= 0; i-- {
		cleanups[i]()
	}
}
