package reactive

import (
	"sync"
	"sync/atomic"

	"github.com/vango-dev/signaled/internal/equal"
	"github.com/vango-dev/signaled/internal/errors"
)

// Memo is a cached computation that automatically tracks its dependencies.
// When any dependency changes, the memo is invalidated and will recompute
// on the next read.
//
// Memos are lazy: they only compute their value when Get() is called.
// If multiple dependencies change before a read, the memo only recomputes once.
//
// Memos can also be subscribed to, behaving like signals themselves.
// This allows building chains of derived values.
type Memo[T any] struct {
	base signalBase

	// compute is the function that computes the memo's value.
	compute func() T

	// value is the cached computed value.
	value T

	// valueMu protects value access.
	valueMu sync.RWMutex

	// valid indicates whether the cached value is current.
	valid atomic.Bool

	// sources are the cells, signals and memos this memo depends on.
	sources   []*signalBase
	sourcesMu sync.Mutex

	// equal reports whether a recomputation produced the same value.
	equal equal.Func[T]

	// computing prevents infinite recursion in circular dependencies.
	computing atomic.Bool

	// computes counts recomputations.
	computes atomic.Int64
}

// NewMemo creates a new memo with the given computation function.
// The computation is not run immediately; it runs lazily on first Get().
func NewMemo[T any](compute func() T) *Memo[T] {
	return &Memo[T]{
		base:    signalBase{id: nextID()},
		compute: compute,
	}
}

// Get returns the memo's value, recomputing if necessary.
// Creates a dependency on this memo for the current listener.
func (m *Memo[T]) Get() T {
	m.base.track()
	return m.Peek()
}

// Peek returns the memo's value without subscribing.
// Still triggers recomputation if the value is invalid.
func (m *Memo[T]) Peek() T {
	if !m.valid.Load() {
		m.recompute()
	}
	m.valueMu.RLock()
	defer m.valueMu.RUnlock()
	return m.value
}

// Computes returns how many times the computation has run.
func (m *Memo[T]) Computes() int64 {
	return m.computes.Load()
}

// MarkDirty invalidates the memo and propagates to subscribers.
// Implements the Listener interface.
func (m *Memo[T]) MarkDirty() {
	if m.valid.CompareAndSwap(true, false) {
		m.base.notifySubscribers()
	}
}

// ID returns the unique identifier for this memo.
// Implements the Listener interface.
func (m *Memo[T]) ID() uint64 {
	return m.base.id
}

func (m *Memo[T]) addSource(source *signalBase) {
	m.sourcesMu.Lock()
	defer m.sourcesMu.Unlock()

	for _, s := range m.sources {
		if s == source {
			return
		}
	}
	m.sources = append(m.sources, source)
}

// WithEquals configures the memo with a custom equality function.
func (m *Memo[T]) WithEquals(fn func(T, T) bool) *Memo[T] {
	m.equal = fn
	return m
}

// recompute runs the computation and updates the cached value.
func (m *Memo[T]) recompute() {
	if m.computing.Swap(true) {
		err := errors.New(errors.CodeCircularDependency).
			WithDetailf("memo %d", m.base.id).
			WithSuggestion("Read the memo from outside its own computation.")
		logger().Error("reactive: memo read itself while computing", "error", err)
		return
	}
	defer m.computing.Store(false)

	m.sourcesMu.Lock()
	for _, source := range m.sources {
		source.unsubscribe(m)
	}
	m.sources = m.sources[:0]
	m.sourcesMu.Unlock()

	newValue := m.evaluate()
	m.computes.Add(1)

	m.valueMu.Lock()
	if !equal.Or(m.equal)(m.value, newValue) {
		m.value = newValue
	}
	m.valueMu.Unlock()

	m.valid.Store(true)
}

var _ sourceTracker = (*Memo[int])(nil)

// evaluate runs compute with the memo as the current listener.
func (m *Memo[T]) evaluate() T {
	old := setCurrentListener(m)
	defer setCurrentListener(old)
	return m.compute()
}
