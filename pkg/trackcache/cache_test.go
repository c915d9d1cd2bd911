package trackcache

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvalidateUntrackedIsNoop(t *testing.T) {
	rt := newFakeRuntime()
	c := New[string](rt)

	c.Invalidate("never")
	c.InvalidateShape()
	c.InvalidateAll()

	assert.Zero(t, c.Len())
	assert.Zero(t, rt.cells)
	assert.False(t, c.Tracked("never"))
}

func TestTrackThenInvalidateNotifiesOnce(t *testing.T) {
	rt := newFakeRuntime()
	c := New[string](rt)
	sub := &subscriber{}

	rt.as(sub, func() { c.Track("k") })
	c.Invalidate("k")

	assert.Equal(t, 1, sub.notified)
}

func TestTrackWithoutSubscriberStillCreatesCell(t *testing.T) {
	rt := newFakeRuntime()
	c := New[int](rt)

	c.Track(1)

	assert.True(t, c.Tracked(1))
	assert.Equal(t, 1, c.Len())
}

func TestTrackIsIdempotent(t *testing.T) {
	rt := newFakeRuntime()
	c := New[string](rt)
	sub := &subscriber{}

	rt.as(sub, func() {
		c.Track("a")
		c.Track("a")
		c.Track("b")
	})
	c.Track("a")

	assert.Equal(t, 2, c.Len())
	assert.Equal(t, 2, rt.cells)

	c.Invalidate("a")
	assert.Equal(t, 1, sub.notified)
}

func TestInvalidateAllNotifiesEachTrackedKeyOnce(t *testing.T) {
	rt := newFakeRuntime()
	c := New[int](rt)

	const n = 5
	subs := make([]*subscriber, n)
	for i := range subs {
		subs[i] = &subscriber{}
		rt.as(subs[i], func() {
			for j := 0; j <= i; j++ {
				c.Track(i)
			}
		})
	}
	cellsBefore := rt.cells

	c.InvalidateAll()

	for i, s := range subs {
		assert.Equalf(t, 1, s.notified, "subscriber %d", i)
	}
	assert.Equal(t, n, c.Len())
	assert.Equal(t, cellsBefore, rt.cells)
}

func TestInvalidateAllIncludesSentinel(t *testing.T) {
	rt := newFakeRuntime()
	c := New[string](rt)
	sub := &subscriber{}

	rt.as(sub, c.TrackShape)
	c.InvalidateAll()

	assert.Equal(t, 1, sub.notified)
}

func TestInvalidateAllKeepsCellsSubscribable(t *testing.T) {
	rt := newFakeRuntime()
	c := New[string](rt)
	sub := &subscriber{}

	rt.as(sub, func() { c.Track("x") })
	c.InvalidateAll()
	rt.as(sub, func() { c.Track("x") })
	c.Invalidate("x")

	assert.Equal(t, 2, sub.notified)
	assert.Equal(t, 1, rt.cells)
}

func TestNotificationsAreNeverCoalesced(t *testing.T) {
	rt := newFakeRuntime()
	c := New[string](rt)
	c.Track("x")

	c.Invalidate("x")
	c.Invalidate("x")
	c.Invalidate("x")

	cell := c.cells[slot[string]{key: "x"}].(*fakeCell)
	assert.Equal(t, 3, cell.notifies)
}

func TestSentinelIsDistinctFromZeroKey(t *testing.T) {
	rt := newFakeRuntime()
	c := New[string](rt)
	zero := &subscriber{}
	shape := &subscriber{}

	rt.as(zero, func() { c.Track("") })
	rt.as(shape, c.TrackShape)
	assert.Equal(t, 2, c.Len())
	assert.True(t, c.ShapeTracked())

	c.Invalidate("")
	assert.Equal(t, 1, zero.notified)
	assert.Zero(t, shape.notified)

	c.InvalidateShape()
	assert.Equal(t, 1, shape.notified)
	assert.Equal(t, 1, zero.notified)
}

func TestRoundTripInvalidateAll(t *testing.T) {
	rt := newFakeRuntime()
	c := New[int](rt)

	const n = 10
	subs := make([]*subscriber, n)
	for i := range subs {
		subs[i] = &subscriber{}
		rt.as(subs[i], func() {
			c.Track(i)
			c.Track(i)
		})
	}

	c.InvalidateAll()

	total := 0
	for _, s := range subs {
		total += s.notified
	}
	assert.Equal(t, n, total)
}

func TestInvalidateAllToleratesReentrantTrack(t *testing.T) {
	var c *Cache[int]
	next := 100
	rt := RuntimeFuncs{
		NewCellFunc: func() Cell {
			return cellFuncs{notify: func() {
				next++
				c.Track(next)
			}}
		},
	}
	c = New[int](rt)
	for i := 0; i < 10; i++ {
		c.Track(i)
	}

	require.NotPanics(t, c.InvalidateAll)
	assert.Equal(t, 20, c.Len())
}

func TestPackageFunctions(t *testing.T) {
	rt := newFakeRuntime()
	c := New[string](rt)
	sub := &subscriber{}

	rt.as(sub, func() { Track("a", c) })
	Invalidate("a", c)
	assert.Equal(t, 1, sub.notified)

	rt.as(sub, func() { Track("a", c) })
	InvalidateAll(c)
	assert.Equal(t, 2, sub.notified)

	Invalidate("missing", c)
	assert.Equal(t, 1, c.Len())
}

func TestRuntimeFuncsBatchDefaultsToDirectCall(t *testing.T) {
	ran := false
	RuntimeFuncs{}.Batch(func() { ran = true })
	assert.True(t, ran)
}

func TestDebugLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	c := New[string](newFakeRuntime(), WithName("todos"), WithLogger(logger))

	c.Track("a")
	c.TrackShape()
	c.InvalidateAll()

	out := buf.String()
	assert.Contains(t, out, "cell created")
	assert.Contains(t, out, "cache=todos")
	assert.Contains(t, out, "key=a")
	assert.Contains(t, out, "key=<shape>")
	assert.Contains(t, out, "cells=2")
	assert.Equal(t, "todos", c.Name())
}

func TestNoDebugLoggingAtInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	c := New[string](newFakeRuntime(), WithLogger(logger))

	c.Track("a")
	c.InvalidateAll()

	assert.Empty(t, buf.String())
}

type cellFuncs struct {
	notify func()
}

func (c cellFuncs) Track() {}

func (c cellFuncs) Notify() {
	if c.notify != nil {
		c.notify()
	}
}
