package collections

import (
	"iter"
	"maps"
	"slices"

	"github.com/vango-dev/signaled/pkg/trackcache"
)

// Record is a reactive object with string keys. It behaves like a
// Map[string, V] and adds Assign, which writes several keys at once.
type Record[V any] struct {
	m *Map[string, V]
}

// NewRecord creates an empty record.
func NewRecord[V any](rt trackcache.Runtime, opts ...Option) *Record[V] {
	return &Record[V]{m: NewMap[string, V](rt, named("record", opts)...)}
}

// RecordFromEntries creates a record holding the pairs of seq, in order.
func RecordFromEntries[V any](rt trackcache.Runtime, seq iter.Seq2[string, V], opts ...Option) *Record[V] {
	r := NewRecord[V](rt, opts...)
	for k, v := range seq {
		r.m.data.Set(k, v)
	}
	return r
}

// RecordFromMap creates a record holding the entries of m, keys sorted.
func RecordFromMap[V any](rt trackcache.Runtime, m map[string]V, opts ...Option) *Record[V] {
	r := NewRecord[V](rt, opts...)
	for _, k := range slices.Sorted(maps.Keys(m)) {
		r.m.data.Set(k, m[k])
	}
	return r
}

// WithEquals replaces the equality used to decide whether a value changed.
func (r *Record[V]) WithEquals(fn func(a, b V) bool) *Record[V] {
	r.m.WithEquals(fn)
	return r
}

// Tracker exposes the record's caches for inspection.
func (r *Record[V]) Tracker() *trackcache.Tracker[string] {
	return r.m.tr
}

// Get returns the value of key.
func (r *Record[V]) Get(key string) (V, bool) {
	return r.m.Get(key)
}

// Has reports whether key is present.
func (r *Record[V]) Has(key string) bool {
	return r.m.Has(key)
}

// Len returns the number of keys.
func (r *Record[V]) Len() int {
	return r.m.Len()
}

// Keys returns the keys in insertion order. It depends on the key set
// only.
func (r *Record[V]) Keys() []string {
	r.m.tr.Track(trackcache.ShapeAll[string]())
	return r.m.data.Keys()
}

// Entries returns a snapshot of the entries in insertion order.
func (r *Record[V]) Entries() []Entry[string, V] {
	return r.m.Entries()
}

// All iterates over the entries in insertion order.
func (r *Record[V]) All() iter.Seq2[string, V] {
	return r.m.All()
}

// Set stores value for key.
func (r *Record[V]) Set(key string, value V) {
	r.m.Set(key, value)
}

// Delete removes key and reports whether it was present.
func (r *Record[V]) Delete(key string) bool {
	return r.m.Delete(key)
}

// Assign stores every pair of seq. The invalidations of all the writes are
// delivered together, after the last one.
func (r *Record[V]) Assign(seq iter.Seq2[string, V]) {
	var changes []trackcache.Read[string]
	for k, v := range seq {
		changes = append(changes, r.m.set(k, v)...)
	}
	r.m.tr.Invalidate(changes...)
}

// Map returns a plain copy of the record. It depends on every key and
// value.
func (r *Record[V]) Map() map[string]V {
	return maps.Collect(r.m.All())
}
