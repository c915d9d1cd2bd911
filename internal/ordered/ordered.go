// Package ordered implements an insertion-ordered map.
//
// Reactive collections enumerate keys in the order they were first
// inserted; re-setting an existing key keeps its position, deleting and
// re-inserting moves it to the end.
package ordered

import "container/list"

// Pair is a key/value snapshot taken from a Map.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// Map is an insertion-ordered map. The zero value is not usable; call New.
type Map[K comparable, V any] struct {
	index map[K]*list.Element
	order *list.List
}

// New creates an empty Map.
func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{
		index: make(map[K]*list.Element),
		order: list.New(),
	}
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int {
	return len(m.index)
}

// Get returns the value stored for k.
func (m *Map[K, V]) Get(k K) (V, bool) {
	if el, ok := m.index[k]; ok {
		return el.Value.(*Pair[K, V]).Value, true
	}
	var zero V
	return zero, false
}

// Has reports whether k is present.
func (m *Map[K, V]) Has(k K) bool {
	_, ok := m.index[k]
	return ok
}

// Set stores v for k and returns the previous value, if any.
func (m *Map[K, V]) Set(k K, v V) (prev V, existed bool) {
	if el, ok := m.index[k]; ok {
		p := el.Value.(*Pair[K, V])
		prev = p.Value
		p.Value = v
		return prev, true
	}
	m.index[k] = m.order.PushBack(&Pair[K, V]{Key: k, Value: v})
	return prev, false
}

// Delete removes k and returns the value it held, if any.
func (m *Map[K, V]) Delete(k K) (prev V, existed bool) {
	el, ok := m.index[k]
	if !ok {
		return prev, false
	}
	delete(m.index, k)
	return m.order.Remove(el).(*Pair[K, V]).Value, true
}

// Clear removes all entries.
func (m *Map[K, V]) Clear() {
	m.index = make(map[K]*list.Element)
	m.order.Init()
}

// Keys returns a snapshot of the keys in insertion order.
func (m *Map[K, V]) Keys() []K {
	keys := make([]K, 0, len(m.index))
	for el := m.order.Front(); el != nil; el = el.Next() {
		keys = append(keys, el.Value.(*Pair[K, V]).Key)
	}
	return keys
}

// Pairs returns a snapshot of the entries in insertion order.
func (m *Map[K, V]) Pairs() []Pair[K, V] {
	pairs := make([]Pair[K, V], 0, len(m.index))
	for el := m.order.Front(); el != nil; el = el.Next() {
		pairs = append(pairs, *el.Value.(*Pair[K, V]))
	}
	return pairs
}
