package trackcache

import (
	"context"
	"log/slog"

	"github.com/vango-dev/signaled/internal/weakref"
)

// WeakCache maps object identities to lazily created reactive cells
// without keeping the objects alive. When a key becomes unreachable its
// cell is dropped by the garbage collector; no Invalidate is needed.
//
// WeakCache has no InvalidateAll: its keys cannot be enumerated.
// Nil keys are ignored.
type WeakCache[T any] struct {
	rt      Runtime
	cells   *weakref.Table[T, Cell]
	name    string
	logger  *slog.Logger
	metrics cacheMetrics
}

// NewWeak creates an empty weak cache whose cells come from rt.
func NewWeak[T any](rt Runtime, opts ...Option) *WeakCache[T] {
	o := applyOptions(opts)
	return newWeakCache[T](rt, o, o.name)
}

func newWeakCache[T any](rt Runtime, o options, name string) *WeakCache[T] {
	c := &WeakCache[T]{
		rt:      rt,
		cells:   weakref.New[T, Cell](),
		name:    name,
		logger:  o.logger,
		metrics: o.metrics.bind(name),
	}
	c.cells.OnReclaim(c.reclaimed)
	return c
}

// Name returns the cache name used in logs and metrics.
func (c *WeakCache[T]) Name() string {
	return c.name
}

// Len returns the number of cells whose keys are still reachable or not
// yet collected.
func (c *WeakCache[T]) Len() int {
	return c.cells.Len()
}

// Tracked reports whether key has a cell.
func (c *WeakCache[T]) Tracked(key *T) bool {
	return c.cells.Has(key)
}

// Track registers a dependency on key, creating its cell on first use.
func (c *WeakCache[T]) Track(key *T) {
	if key == nil {
		return
	}

	cell, loaded := c.cells.LoadOrStore(key, c.rt.NewCell)
	if !loaded {
		inc(c.metrics.cellsCreated)
		if c.logger.Enabled(context.Background(), slog.LevelDebug) {
			c.logger.Debug("trackcache: weak cell created", "cache", c.name)
		}
	}
	inc(c.metrics.tracks)
	cell.Track()
}

// Invalidate notifies the subscribers of key. Untracked keys are ignored
// and no cell is created.
func (c *WeakCache[T]) Invalidate(key *T) {
	if cell, ok := c.cells.Load(key); ok {
		cell.Notify()
		inc(c.metrics.invalidKey)
	}
}

// reclaimed runs on the runtime's cleanup goroutine.
func (c *WeakCache[T]) reclaimed() {
	inc(c.metrics.cellsReclaimed)
	if c.logger.Enabled(context.Background(), slog.LevelDebug) {
		c.logger.Debug("trackcache: weak cell reclaimed", "cache", c.name)
	}
}

var _ KeyCache[*int] = (*WeakCache[int])(nil)
