// Package weakref implements a table keyed by object identity that does
// not keep its keys alive.
//
// Entries are indexed by weak.Pointer. When a key object becomes
// unreachable the garbage collector queues a cleanup that removes its
// entry; no explicit Delete is required. Cleanups run on a runtime
// goroutine, so every Table method takes the table mutex.
//
// A value that references its own key keeps that key reachable through the
// table and is therefore never reclaimed.
package weakref

import (
	"runtime"
	"sync"
	"weak"
)

type entry[V any] struct {
	value   V
	cleanup runtime.Cleanup
}

// Table maps *K to V without retaining the *K.
type Table[K any, V any] struct {
	mu        sync.Mutex
	entries   map[weak.Pointer[K]]*entry[V]
	onReclaim func()
}

// New creates an empty Table.
func New[K any, V any]() *Table[K, V] {
	return &Table[K, V]{
		entries: make(map[weak.Pointer[K]]*entry[V]),
	}
}

// OnReclaim registers fn to run after the collector drops an entry.
// fn runs on the runtime's cleanup goroutine and must not block.
func (t *Table[K, V]) OnReclaim(fn func()) {
	t.mu.Lock()
	t.onReclaim = fn
	t.mu.Unlock()
}

// Len returns the number of live entries.
func (t *Table[K, V]) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.entries)
}

// Load returns the value stored for key.
func (t *Table[K, V]) Load(key *K) (V, bool) {
	var zero V
	if key == nil {
		return zero, false
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if e, ok := t.entries[weak.Make(key)]; ok {
		return e.value, true
	}
	return zero, false
}

// Has reports whether key has an entry.
func (t *Table[K, V]) Has(key *K) bool {
	_, ok := t.Load(key)
	return ok
}

// Store sets the value for key and returns the previous value, if any.
// Nil keys are ignored.
func (t *Table[K, V]) Store(key *K, value V) (prev V, existed bool) {
	if key == nil {
		return prev, false
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	wp := weak.Make(key)
	if e, ok := t.entries[wp]; ok {
		prev = e.value
		e.value = value
		return prev, true
	}
	t.insertLocked(key, wp, value)
	return prev, false
}

// LoadOrStore returns the existing value for key, or stores and returns
// the result of create. loaded reports whether the value already existed.
// create runs with the table locked and must not call back into it.
func (t *Table[K, V]) LoadOrStore(key *K, create func() V) (value V, loaded bool) {
	if key == nil {
		return value, false
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	wp := weak.Make(key)
	if e, ok := t.entries[wp]; ok {
		return e.value, true
	}
	value = create()
	t.insertLocked(key, wp, value)
	return value, false
}

// Delete removes key and returns the value it held, if any.
func (t *Table[K, V]) Delete(key *K) (prev V, existed bool) {
	if key == nil {
		return prev, false
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	wp := weak.Make(key)
	e, ok := t.entries[wp]
	if !ok {
		return prev, false
	}
	delete(t.entries, wp)
	e.cleanup.Stop()
	return e.value, true
}

func (t *Table[K, V]) insertLocked(key *K, wp weak.Pointer[K], value V) {
	e := &entry[V]{value: value}
	e.cleanup = runtime.AddCleanup(key, t.reclaim, wp)
	t.entries[wp] = e
}

// reclaim drops the entry of a collected key.
func (t *Table[K, V]) reclaim(wp weak.Pointer[K]) {
	t.mu.Lock()
	_, ok := t.entries[wp]
	delete(t.entries, wp)
	fn := t.onReclaim
	t.mu.Unlock()

	if ok && fn != nil {
		fn()
	}
}
