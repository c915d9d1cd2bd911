package trackcache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadKindString(t *testing.T) {
	assert.Equal(t, "value", KindValue.String())
	assert.Equal(t, "shape", KindShape.String())
	assert.Equal(t, "shape-all", KindShapeAll.String())
	assert.Equal(t, "unknown", ReadKind(0).String())

	assert.Equal(t, "value(a)", Value("a").String())
	assert.Equal(t, "shape(3)", Shape(3).String())
	assert.Equal(t, "shape-all", ShapeAll[int]().String())
}

func TestTrackerRoutesReads(t *testing.T) {
	rt := newFakeRuntime()
	tr := NewTracker[string](rt, WithName("m"))

	tr.Track(Value("a"), Shape("b"), ShapeAll[string]())

	assert.True(t, tr.Values().Tracked("a"))
	assert.False(t, tr.Values().Tracked("b"))
	assert.True(t, tr.Shape().Tracked("b"))
	assert.True(t, tr.Shape().ShapeTracked())
	assert.False(t, tr.Values().ShapeTracked())
	assert.Equal(t, "m.values", tr.Values().Name())
	assert.Equal(t, "m.shape", tr.Shape().Name())
}

func TestTrackerBatchesRelatedChanges(t *testing.T) {
	rt := newFakeRuntime()
	tr := NewTracker[string](rt)
	sub := &subscriber{}

	rt.as(sub, func() {
		tr.Track(ShapeAll[string](), Shape("a"), Value("a"))
	})
	tr.Invalidate(ShapeAll[string](), Shape("a"), Value("a"))

	assert.Equal(t, 1, sub.notified)
	assert.Equal(t, 1, rt.batches)
}

func TestTrackerEmptyInvalidateSkipsBatch(t *testing.T) {
	rt := newFakeRuntime()
	tr := NewTracker[string](rt)
	sub := &subscriber{}

	rt.as(sub, func() { tr.Track(Value("a")) })
	tr.Invalidate()
	assert.Zero(t, rt.batches)

	tr.Invalidate(Value("a"))
	assert.Equal(t, 1, sub.notified)
	assert.Equal(t, 1, rt.batches)
}

// Scenario: a value cache keyed "x" only fires when the stored value
// actually changes; the adapter decides, the tracker obeys.
func TestTrackerValueScenario(t *testing.T) {
	rt := newFakeRuntime()
	tr := NewTracker[string](rt)
	store := map[string]int{"x": 1}
	sub := &subscriber{}

	set := func(k string, v int) {
		prev, ok := store[k]
		store[k] = v
		if !ok || prev != v {
			tr.Invalidate(Value(k))
		}
	}

	rt.as(sub, func() { tr.Track(Value("x")) })
	set("x", 1)
	assert.Zero(t, sub.notified)

	set("x", 2)
	assert.Equal(t, 1, sub.notified)
}

func TestTrackerInvalidateAll(t *testing.T) {
	rt := newFakeRuntime()
	tr := NewTracker[int](rt)
	values := &subscriber{}
	shape := &subscriber{}

	rt.as(values, func() { tr.Track(Value(1), Value(2)) })
	rt.as(shape, func() { tr.Track(ShapeAll[int](), Shape(3)) })

	tr.InvalidateAll()

	assert.Equal(t, 1, values.notified)
	assert.Equal(t, 1, shape.notified)
	assert.Equal(t, 1, rt.batches)
}

func TestWeakTrackerIgnoresShapeAll(t *testing.T) {
	rt := newFakeRuntime()
	tr := NewWeakTracker[object](rt, WithName("w"))
	key := &object{}
	sub := &subscriber{}

	rt.as(sub, func() {
		tr.Track(Value(key), Shape(key), ShapeAll[*object]())
	})
	assert.Equal(t, 1, tr.Values().Len())
	assert.Equal(t, 1, tr.Shape().Len())
	assert.Equal(t, "w.shape", tr.Shape().Name())

	tr.Invalidate(ShapeAll[*object]())
	assert.Zero(t, sub.notified)

	tr.Invalidate(Shape(key), Value(key))
	assert.Equal(t, 1, sub.notified)
}
