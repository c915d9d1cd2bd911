package collections

import (
	"iter"
	"slices"

	"github.com/vango-dev/signaled/internal/equal"
	"github.com/vango-dev/signaled/pkg/trackcache"
)

// List is a reactive sequence indexed from 0.
//
// At depends on the element at one index, Has on whether an index
// exists, and Len and iteration on the length. Every mutation compares
// the old and new contents index by index and invalidates only the
// indexes whose element or existence changed.
type List[T any] struct {
	tr    *trackcache.Tracker[int]
	data  []T
	equal equal.Func[T]
}

// NewList creates a list holding a copy of values.
// Construction notifies nothing.
func NewList[T any](rt trackcache.Runtime, values []T, opts ...Option) *List[T] {
	return &List[T]{
		tr:   trackcache.NewTracker[int](rt, named("list", opts)...),
		data: slices.Clone(values),
	}
}

// ListOf creates a list holding values.
func ListOf[T any](rt trackcache.Runtime, values ...T) *List[T] {
	return NewList(rt, values)
}

// ListFrom creates a list holding the values of seq, in order.
func ListFrom[T any](rt trackcache.Runtime, seq iter.Seq[T], opts ...Option) *List[T] {
	return NewList(rt, slices.Collect(seq), opts...)
}

// WithEquals replaces the equality used to decide whether an element
// changed.
func (l *List[T]) WithEquals(fn func(a, b T) bool) *List[T] {
	l.equal = fn
	return l
}

// Tracker exposes the list's caches for inspection.
func (l *List[T]) Tracker() *trackcache.Tracker[int] {
	return l.tr
}

// At returns the element at index i. ok is false when i is out of range;
// the read still depends on i, so it re-runs once i comes into range.
func (l *List[T]) At(i int) (v T, ok bool) {
	l.tr.Track(trackcache.Value(i))
	if i < 0 || i >= len(l.data) {
		return v, false
	}
	return l.data[i], true
}

// Has reports whether index i exists.
func (l *List[T]) Has(i int) bool {
	l.tr.Track(trackcache.Shape(i))
	return i >= 0 && i < len(l.data)
}

// Len returns the number of elements.
func (l *List[T]) Len() int {
	l.tr.Track(trackcache.ShapeAll[int]())
	return len(l.data)
}

// All iterates over index/element pairs.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		l.tr.Track(trackcache.ShapeAll[int]())
		for i, v := range slices.Clone(l.data) {
			l.tr.Track(trackcache.Value(i))
			if !yield(i, v) {
				return
			}
		}
	}
}

// Values iterates over the elements.
func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range l.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Slice returns a copy of the elements.
func (l *List[T]) Slice() []T {
	return slices.Collect(l.Values())
}

// Set replaces the element at index i.
func (l *List[T]) Set(i int, v T) error {
	if i < 0 || i >= len(l.data) {
		return indexError(i, len(l.data))
	}
	if equal.IdentityOr(l.equal)(l.data[i], v) {
		return nil
	}
	l.data[i] = v
	l.tr.Invalidate(trackcache.Value(i))
	return nil
}

// Append adds values to the end.
func (l *List[T]) Append(values ...T) {
	if len(values) == 0 {
		return
	}
	next := make([]T, 0, len(l.data)+len(values))
	next = append(next, l.data...)
	l.commit(append(next, values...))
}

// Pop removes and returns the last element.
func (l *List[T]) Pop() (v T, ok bool) {
	n := len(l.data)
	if n == 0 {
		return v, false
	}
	v = l.data[n-1]
	l.commit(slices.Clone(l.data[:n-1]))
	return v, true
}

// Insert inserts values before index i. i may equal Len.
func (l *List[T]) Insert(i int, values ...T) error {
	if i < 0 || i > len(l.data) {
		return indexError(i, len(l.data))
	}
	if len(values) == 0 {
		return nil
	}
	l.commit(slices.Insert(slices.Clone(l.data), i, values...))
	return nil
}

// Remove removes and returns the element at index i.
func (l *List[T]) Remove(i int) (T, error) {
	var zero T
	if i < 0 || i >= len(l.data) {
		return zero, indexError(i, len(l.data))
	}
	v := l.data[i]
	l.commit(slices.Delete(slices.Clone(l.data), i, i+1))
	return v, nil
}

// Reverse reverses the elements in place.
func (l *List[T]) Reverse() {
	next := slices.Clone(l.data)
	slices.Reverse(next)
	l.commit(next)
}

// Replace replaces the contents with a copy of values.
func (l *List[T]) Replace(values []T) {
	l.commit(slices.Clone(values))
}

// Clear removes every element.
func (l *List[T]) Clear() {
	l.commit(nil)
}

// commit installs next as the contents and invalidates the difference.
// next must not share a backing array with the current contents.
func (l *List[T]) commit(next []T) {
	prev := l.data
	l.data = next
	l.tr.Invalidate(diff(prev, next, equal.IdentityOr(l.equal))...)
}

func diff[T any](prev, next []T, eq equal.Func[T]) []trackcache.Read[int] {
	var changes []trackcache.Read[int]
	for i := 0; i < max(len(prev), len(next)); i++ {
		switch {
		case i >= len(prev) || i >= len(next):
			changes = append(changes, trackcache.Value(i), trackcache.Shape(i))
		case !eq(prev[i], next[i]):
			changes = append(changes, trackcache.Value(i))
		}
	}
	if len(prev) != len(next) {
		changes = append(changes, trackcache.ShapeAll[int]())
	}
	return changes
}
