package collections

import (
	"iter"

	"github.com/vango-dev/signaled/internal/ordered"
	"github.com/vango-dev/signaled/pkg/trackcache"
)

// Set is a reactive insertion-ordered set.
//
// Has depends on one member; Len and iteration depend on the whole
// membership.
type Set[T comparable] struct {
	tr   *trackcache.Tracker[T]
	data *ordered.Map[T, struct{}]
}

// NewSet creates a set holding values, in order.
// Construction notifies nothing.
func NewSet[T comparable](rt trackcache.Runtime, values []T, opts ...Option) *Set[T] {
	s := &Set[T]{
		tr:   trackcache.NewTracker[T](rt, named("set", opts)...),
		data: ordered.New[T, struct{}](),
	}
	for _, v := range values {
		s.data.Set(v, struct{}{})
	}
	return s
}

// Tracker exposes the set's caches for inspection.
func (s *Set[T]) Tracker() *trackcache.Tracker[T] {
	return s.tr
}

// Has reports whether v is a member.
func (s *Set[T]) Has(v T) bool {
	s.tr.Track(trackcache.Shape(v))
	return s.data.Has(v)
}

// Len returns the number of members.
func (s *Set[T]) Len() int {
	s.tr.Track(trackcache.ShapeAll[T]())
	return s.data.Len()
}

// Values iterates over the members in insertion order.
func (s *Set[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		s.tr.Track(trackcache.ShapeAll[T]())
		for _, v := range s.data.Keys() {
			if !yield(v) {
				return
			}
		}
	}
}

// ForEach calls fn for every member in insertion order.
func (s *Set[T]) ForEach(fn func(v T)) {
	for v := range s.Values() {
		fn(v)
	}
}

// Slice returns a snapshot of the members in insertion order.
func (s *Set[T]) Slice() []T {
	s.tr.Track(trackcache.ShapeAll[T]())
	return s.data.Keys()
}

// Add inserts v and reports whether it was newly added.
func (s *Set[T]) Add(v T) bool {
	if _, existed := s.data.Set(v, struct{}{}); existed {
		return false
	}
	s.tr.Invalidate(trackcache.Shape(v), trackcache.ShapeAll[T]())
	return true
}

// Delete removes v and reports whether it was a member.
func (s *Set[T]) Delete(v T) bool {
	if _, existed := s.data.Delete(v); !existed {
		return false
	}
	s.tr.Invalidate(trackcache.Shape(v), trackcache.ShapeAll[T]())
	return true
}

// Clear removes every member and invalidates every tracked cell.
// Clearing an empty set notifies nothing.
func (s *Set[T]) Clear() {
	if s.data.Len() == 0 {
		return
	}
	s.data.Clear()
	s.tr.InvalidateAll()
}
