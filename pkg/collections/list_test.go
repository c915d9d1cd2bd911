package collections

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	signalederrors "github.com/vango-dev/signaled/internal/errors"
	"github.com/vango-dev/signaled/pkg/reactive"
)

func TestListAtTracksOneIndex(t *testing.T) {
	l := ListOf(reactive.NewRuntime(), "a", "b", "c")
	var got string
	runs := watch(t, func() { got, _ = l.At(1) })

	require.NoError(t, l.Set(1, "b"))
	assert.Equal(t, 1, runs())

	require.NoError(t, l.Set(0, "z"))
	assert.Equal(t, 1, runs())

	require.NoError(t, l.Set(1, "y"))
	assert.Equal(t, 2, runs())
	assert.Equal(t, "y", got)
}

func TestListSetOutOfRange(t *testing.T) {
	l := ListOf(reactive.NewRuntime(), 1)

	err := l.Set(1, 2)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrIndexOutOfRange))
	assert.Contains(t, err.Error(), "index 1, length 1")

	var coded *signalederrors.Error
	require.True(t, errors.As(err, &coded))
	assert.Contains(t, coded.Suggestion, "Len()")

	assert.ErrorIs(t, l.Set(-1, 2), ErrIndexOutOfRange)
}

func TestListAppend(t *testing.T) {
	l := ListOf(reactive.NewRuntime(), 1, 2)
	firstRuns := watch(t, func() { _, _ = l.At(0) })
	var third int
	var ok bool
	thirdRuns := watch(t, func() { third, ok = l.At(2) })
	hasRuns := watch(t, func() { _ = l.Has(2) })
	lenRuns := watch(t, func() { _ = l.Len() })

	l.Append(3)

	assert.Equal(t, 1, firstRuns())
	assert.Equal(t, 2, thirdRuns())
	assert.True(t, ok)
	assert.Equal(t, 3, third)
	assert.Equal(t, 2, hasRuns())
	assert.Equal(t, 2, lenRuns())

	l.Append()
	assert.Equal(t, 2, lenRuns())
}

func TestListPop(t *testing.T) {
	l := ListOf(reactive.NewRuntime(), 1, 2)
	lastRuns := watch(t, func() { _, _ = l.At(1) })
	firstRuns := watch(t, func() { _, _ = l.At(0) })

	v, ok := l.Pop()
	assert.True(t, ok)
	assert.Equal(t, 2, v)
	assert.Equal(t, 2, lastRuns())
	assert.Equal(t, 1, firstRuns())

	_, _ = l.Pop()
	_, ok = l.Pop()
	assert.False(t, ok)
}

func TestListInsertShiftsFollowingIndexes(t *testing.T) {
	l := ListOf(reactive.NewRuntime(), "a", "b")
	firstRuns := watch(t, func() { _, _ = l.At(0) })
	secondRuns := watch(t, func() { _, _ = l.At(1) })

	require.NoError(t, l.Insert(1, "x"))
	assert.Equal(t, 1, firstRuns())
	assert.Equal(t, 2, secondRuns())
	assert.Equal(t, []string{"a", "x", "b"}, l.Slice())

	require.NoError(t, l.Insert(3, "end"))
	assert.Equal(t, []string{"a", "x", "b", "end"}, l.Slice())

	assert.ErrorIs(t, l.Insert(9, "nope"), ErrIndexOutOfRange)
}

func TestListRemove(t *testing.T) {
	l := ListOf(reactive.NewRuntime(), 1, 2, 3)
	lenRuns := watch(t, func() { _ = l.Len() })

	v, err := l.Remove(1)
	require.NoError(t, err)
	assert.Equal(t, 2, v)
	assert.Equal(t, []int{1, 3}, l.Slice())
	assert.Equal(t, 2, lenRuns())

	_, err = l.Remove(2)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestListReverse(t *testing.T) {
	l := ListOf(reactive.NewRuntime(), 1, 2, 3)
	middleRuns := watch(t, func() { _, _ = l.At(1) })
	firstRuns := watch(t, func() { _, _ = l.At(0) })
	lenRuns := watch(t, func() { _ = l.Len() })

	l.Reverse()

	assert.Equal(t, 1, middleRuns())
	assert.Equal(t, 2, firstRuns())
	assert.Equal(t, 1, lenRuns())
	assert.Equal(t, []int{3, 2, 1}, l.Slice())
}

func TestListReplaceWithEqualContents(t *testing.T) {
	l := ListOf(reactive.NewRuntime(), 1, 2)
	runs := watch(t, func() { _ = l.Slice() })

	l.Replace([]int{1, 2})
	assert.Equal(t, 1, runs())

	l.Replace([]int{1, 5})
	assert.Equal(t, 2, runs())
}

func TestListClear(t *testing.T) {
	l := ListOf(reactive.NewRuntime(), 1, 2)
	runs := watch(t, func() {
		_ = l.Has(0)
		_ = l.Len()
	})

	l.Clear()
	assert.Equal(t, 2, runs())
	assert.Zero(t, l.Len())

	l.Clear()
	assert.Equal(t, 2, runs())
}

func TestListIteration(t *testing.T) {
	l := ListFrom(reactive.NewRuntime(), slices.Values([]string{"a", "b", "c"}))
	var seen []string
	runs := watch(t, func() {
		seen = seen[:0]
		for i, v := range l.All() {
			seen = append(seen, v)
			if i == 1 {
				break
			}
		}
	})
	assert.Equal(t, []string{"a", "b"}, seen)

	require.NoError(t, l.Set(2, "z"))
	assert.Equal(t, 1, runs(), "index 2 was never visited")

	require.NoError(t, l.Set(1, "y"))
	assert.Equal(t, 2, runs())
	assert.Equal(t, []string{"a", "y"}, seen)
}

func TestListCopiesInput(t *testing.T) {
	src := []int{1, 2}
	l := NewList(reactive.NewRuntime(), src)
	src[0] = 9

	v, _ := l.At(0)
	assert.Equal(t, 1, v)

	out := l.Slice()
	out[1] = 9
	v, _ = l.At(1)
	assert.Equal(t, 2, v)
}

func TestListWithEquals(t *testing.T) {
	l := ListOf(reactive.NewRuntime(), 1.0, 2.0).
		WithEquals(func(a, b float64) bool { return int(a) == int(b) })
	runs := watch(t, func() { _, _ = l.At(0) })

	require.NoError(t, l.Set(0, 1.5))
	assert.Equal(t, 1, runs())
}

func TestListDefaultEqualityIsIdentity(t *testing.T) {
	first := &todo{Title: "milk"}
	l := ListOf(reactive.NewRuntime(), first, &todo{Title: "eggs"})
	var seen *todo
	runs := watch(t, func() { seen, _ = l.At(0) })

	require.NoError(t, l.Set(0, first))
	assert.Equal(t, 1, runs())

	second := &todo{Title: "milk"}
	require.NoError(t, l.Set(0, second))
	assert.Equal(t, 2, runs())
	assert.Same(t, second, seen)

	l.Replace([]*todo{second, {Title: "eggs"}})
	assert.Equal(t, 2, runs())

	l.Replace([]*todo{{Title: "milk"}})
	assert.Equal(t, 3, runs())
}
