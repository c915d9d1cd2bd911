package collections

import (
	"iter"

	"github.com/vango-dev/signaled/internal/equal"
	"github.com/vango-dev/signaled/internal/ordered"
	"github.com/vango-dev/signaled/pkg/trackcache"
)

// Entry is a key/value pair.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// Map is a reactive insertion-ordered map.
//
// Get depends on the value at a key, Has on whether the key exists, and
// Len on the key set. Iteration depends on the key set plus whatever each
// visited entry exposes.
type Map[K comparable, V any] struct {
	tr    *trackcache.Tracker[K]
	data  *ordered.Map[K, V]
	equal equal.Func[V]
}

// NewMap creates an empty map whose cells come from rt.
func NewMap[K comparable, V any](rt trackcache.Runtime, opts ...Option) *Map[K, V] {
	return &Map[K, V]{
		tr:   trackcache.NewTracker[K](rt, named("map", opts)...),
		data: ordered.New[K, V](),
	}
}

// NewMapFrom creates a map holding the pairs of seq, in order.
// Construction notifies nothing.
//
//	m := collections.NewMapFrom(rt, maps.All(existing))
func NewMapFrom[K comparable, V any](rt trackcache.Runtime, seq iter.Seq2[K, V], opts ...Option) *Map[K, V] {
	m := NewMap[K, V](rt, opts...)
	for k, v := range seq {
		m.data.Set(k, v)
	}
	return m
}

// WithEquals replaces the equality used to decide whether Set changed a
// value. The default, equal.Identity, treats a different pointer, slice or
// map as a change even when its contents are equal.
func (m *Map[K, V]) WithEquals(fn func(a, b V) bool) *Map[K, V] {
	m.equal = fn
	return m
}

// Tracker exposes the map's caches for inspection.
func (m *Map[K, V]) Tracker() *trackcache.Tracker[K] {
	return m.tr
}

// Get returns the value stored for key.
func (m *Map[K, V]) Get(key K) (V, bool) {
	m.tr.Track(trackcache.Value(key))
	return m.data.Get(key)
}

// Has reports whether key is present.
func (m *Map[K, V]) Has(key K) bool {
	m.tr.Track(trackcache.Shape(key))
	return m.data.Has(key)
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int {
	m.tr.Track(trackcache.ShapeAll[K]())
	return m.data.Len()
}

// Keys iterates over the keys in insertion order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		m.tr.Track(trackcache.ShapeAll[K]())
		for _, p := range m.data.Pairs() {
			m.tr.Track(trackcache.Shape(p.Key))
			if !yield(p.Key) {
				return
			}
		}
	}
}

// Values iterates over the values in insertion order.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		m.tr.Track(trackcache.ShapeAll[K]())
		for _, p := range m.data.Pairs() {
			m.tr.Track(trackcache.Value(p.Key))
			if !yield(p.Value) {
				return
			}
		}
	}
}

// All iterates over the entries in insertion order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		m.tr.Track(trackcache.ShapeAll[K]())
		for _, p := range m.data.Pairs() {
			m.tr.Track(trackcache.Shape(p.Key), trackcache.Value(p.Key))
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}
}

// ForEach calls fn for every entry in insertion order.
func (m *Map[K, V]) ForEach(fn func(key K, value V)) {
	for k, v := range m.All() {
		fn(k, v)
	}
}

// Entries returns a snapshot of the entries in insertion order.
func (m *Map[K, V]) Entries() []Entry[K, V] {
	out := make([]Entry[K, V], 0, m.Len())
	for k, v := range m.All() {
		out = append(out, Entry[K, V]{Key: k, Value: v})
	}
	return out
}

// Set stores value for key. Adding a key invalidates the key set and the
// key's existence; storing a value not equal to the previous one
// invalidates the key's value.
func (m *Map[K, V]) Set(key K, value V) {
	m.tr.Invalidate(m.set(key, value)...)
}

func (m *Map[K, V]) set(key K, value V) []trackcache.Read[K] {
	prev, existed := m.data.Set(key, value)
	if !existed {
		return []trackcache.Read[K]{
			trackcache.ShapeAll[K](),
			trackcache.Shape(key),
			trackcache.Value(key),
		}
	}
	if !equal.IdentityOr(m.equal)(prev, value) {
		return []trackcache.Read[K]{trackcache.Value(key)}
	}
	return nil
}

// Delete removes key and reports whether it was present.
func (m *Map[K, V]) Delete(key K) bool {
	changes := m.delete(key)
	m.tr.Invalidate(changes...)
	return len(changes) > 0
}

func (m *Map[K, V]) delete(key K) []trackcache.Read[K] {
	if _, existed := m.data.Delete(key); !existed {
		return nil
	}
	return []trackcache.Read[K]{
		trackcache.ShapeAll[K](),
		trackcache.Shape(key),
		trackcache.Value(key),
	}
}

// Clear removes every entry and invalidates every tracked cell.
// Clearing an empty map notifies nothing.
func (m *Map[K, V]) Clear() {
	if m.data.Len() == 0 {
		return
	}
	m.data.Clear()
	m.tr.InvalidateAll()
}
