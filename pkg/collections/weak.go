package collections

import (
	"github.com/vango-dev/signaled/internal/equal"
	"github.com/vango-dev/signaled/internal/weakref"
	"github.com/vango-dev/signaled/pkg/trackcache"
)

// WeakMap is a reactive map keyed by object identity that does not keep
// its keys alive. An entry and its cells disappear once the key object is
// collected. WeakMap cannot be enumerated or sized.
//
// A value that references its own key keeps the key alive.
type WeakMap[K any, V any] struct {
	tr    *trackcache.WeakTracker[K]
	data  *weakref.Table[K, V]
	equal equal.Func[V]
}

// NewWeakMap creates an empty weak map.
func NewWeakMap[K any, V any](rt trackcache.Runtime, opts ...Option) *WeakMap[K, V] {
	return &WeakMap[K, V]{
		tr:   trackcache.NewWeakTracker[K](rt, named("weakmap", opts)...),
		data: weakref.New[K, V](),
	}
}

// WithEquals replaces the equality used to decide whether Set changed a
// value.
func (m *WeakMap[K, V]) WithEquals(fn func(a, b V) bool) *WeakMap[K, V] {
	m.equal = fn
	return m
}

// Tracker exposes the map's caches for inspection.
func (m *WeakMap[K, V]) Tracker() *trackcache.WeakTracker[K] {
	return m.tr
}

// Get returns the value stored for key.
func (m *WeakMap[K, V]) Get(key *K) (V, bool) {
	m.tr.Track(trackcache.Value(key))
	return m.data.Load(key)
}

// Has reports whether key is present.
func (m *WeakMap[K, V]) Has(key *K) bool {
	m.tr.Track(trackcache.Shape(key))
	return m.data.Has(key)
}

// Set stores value for key. Nil keys are ignored.
func (m *WeakMap[K, V]) Set(key *K, value V) {
	if key == nil {
		return
	}
	prev, existed := m.data.Store(key, value)
	switch {
	case !existed:
		m.tr.Invalidate(trackcache.Shape(key), trackcache.Value(key))
	case !equal.IdentityOr(m.equal)(prev, value):
		m.tr.Invalidate(trackcache.Value(key))
	}
}

// Delete removes key and reports whether it was present.
func (m *WeakMap[K, V]) Delete(key *K) bool {
	if _, existed := m.data.Delete(key); !existed {
		return false
	}
	m.tr.Invalidate(trackcache.Shape(key), trackcache.Value(key))
	return true
}

// WeakSet is a reactive set of object identities that does not keep its
// members alive. WeakSet cannot be enumerated or sized.
type WeakSet[T any] struct {
	tr   *trackcache.WeakTracker[T]
	data *weakref.Table[T, struct{}]
}

// NewWeakSet creates a weak set holding values.
// Construction notifies nothing.
func NewWeakSet[T any](rt trackcache.Runtime, values []*T, opts ...Option) *WeakSet[T] {
	s := &WeakSet[T]{
		tr:   trackcache.NewWeakTracker[T](rt, named("weakset", opts)...),
		data: weakref.New[T, struct{}](),
	}
	for _, v := range values {
		s.data.Store(v, struct{}{})
	}
	return s
}

// Tracker exposes the set's caches for inspection.
func (s *WeakSet[T]) Tracker() *trackcache.WeakTracker[T] {
	return s.tr
}

// Has reports whether v is a member.
func (s *WeakSet[T]) Has(v *T) bool {
	s.tr.Track(trackcache.Shape(v))
	return s.data.Has(v)
}

// Add inserts v and reports whether it was newly added. Nil is ignored.
func (s *WeakSet[T]) Add(v *T) bool {
	if v == nil {
		return false
	}
	if _, existed := s.data.Store(v, struct{}{}); existed {
		return false
	}
	s.tr.Invalidate(trackcache.Shape(v))
	return true
}

// Delete removes v and reports whether it was a member.
func (s *WeakSet[T]) Delete(v *T) bool {
	if _, existed := s.data.Delete(v); !existed {
		return false
	}
	s.tr.Invalidate(trackcache.Shape(v))
	return true
}
