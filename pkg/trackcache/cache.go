package trackcache

import (
	"context"
	"log/slog"
)

// slot is a cache key: either a real key or the Shape Sentinel.
type slot[K comparable] struct {
	key   K
	shape bool
}

const sentinelName = "<shape>"

func (s slot[K]) describe() any {
	if s.shape {
		return sentinelName
	}
	return s.key
}

// KeyCache is the per-key contract shared by Cache and WeakCache.
type KeyCache[K comparable] interface {
	Track(key K)
	Invalidate(key K)
}

// Cache maps keys to lazily created reactive cells.
//
// A cell exists for a key if and only if the key has been tracked. Cells
// are never removed individually; InvalidateAll notifies them all and
// leaves them subscribable.
type Cache[K comparable] struct {
	rt      Runtime
	cells   map[slot[K]]Cell
	name    string
	logger  *slog.Logger
	metrics cacheMetrics
}

// New creates an empty cache whose cells come from rt.
func New[K comparable](rt Runtime, opts ...Option) *Cache[K] {
	o := applyOptions(opts)
	return newCache[K](rt, o, o.name)
}

func newCache[K comparable](rt Runtime, o options, name string) *Cache[K] {
	return &Cache[K]{
		rt:      rt,
		cells:   make(map[slot[K]]Cell),
		name:    name,
		logger:  o.logger,
		metrics: o.metrics.bind(name),
	}
}

// Name returns the cache name used in logs and metrics.
func (c *Cache[K]) Name() string {
	return c.name
}

// Len returns the number of cells, the sentinel included.
func (c *Cache[K]) Len() int {
	return len(c.cells)
}

// Tracked reports whether key has a cell.
func (c *Cache[K]) Tracked(key K) bool {
	_, ok := c.cells[slot[K]{key: key}]
	return ok
}

// ShapeTracked reports whether the Shape Sentinel has a cell.
func (c *Cache[K]) ShapeTracked() bool {
	_, ok := c.cells[slot[K]{shape: true}]
	return ok
}

// Track registers a dependency on key, creating its cell on first use.
func (c *Cache[K]) Track(key K) {
	c.track(slot[K]{key: key})
}

// TrackShape registers a dependency on the Shape Sentinel.
func (c *Cache[K]) TrackShape() {
	c.track(slot[K]{shape: true})
}

// Invalidate notifies the subscribers of key. Untracked keys are ignored
// and no cell is created.
func (c *Cache[K]) Invalidate(key K) {
	c.invalidate(slot[K]{key: key})
}

// InvalidateShape notifies the subscribers of the Shape Sentinel.
func (c *Cache[K]) InvalidateShape() {
	c.invalidate(slot[K]{shape: true})
}

// InvalidateAll notifies every cell once, the sentinel included.
// No cell is created or removed.
func (c *Cache[K]) InvalidateAll() {
	if len(c.cells) == 0 {
		return
	}

	// Snapshot first: a subscriber re-run synchronously may track new keys.
	cells := make([]Cell, 0, len(c.cells))
	for _, cell := range c.cells {
		cells = append(cells, cell)
	}

	if c.logger.Enabled(context.Background(), slog.LevelDebug) {
		c.logger.Debug("trackcache: invalidate all", "cache", c.name, "cells", len(cells))
	}

	for _, cell := range cells {
		cell.Notify()
	}
	add(c.metrics.invalidAll, len(cells))
}

func (c *Cache[K]) track(s slot[K]) {
	cell, ok := c.cells[s]
	if !ok {
		cell = c.rt.NewCell()
		c.cells[s] = cell
		inc(c.metrics.cellsCreated)

		if c.logger.Enabled(context.Background(), slog.LevelDebug) {
			c.logger.Debug("trackcache: cell created", "cache", c.name, "key", s.describe())
		}
	}
	inc(c.metrics.tracks)
	cell.Track()
}

func (c *Cache[K]) invalidate(s slot[K]) {
	if cell, ok := c.cells[s]; ok {
		cell.Notify()
		inc(c.metrics.invalidKey)
	}
}

// Track registers a dependency on key in c.
func Track[K comparable](key K, c KeyCache[K]) {
	c.Track(key)
}

// Invalidate notifies the subscribers of key in c, if it is tracked.
func Invalidate[K comparable](key K, c KeyCache[K]) {
	c.Invalidate(key)
}

// InvalidateAll notifies every tracked key of c. Weak caches have no
// equivalent.
func InvalidateAll[K comparable](c *Cache[K]) {
	c.InvalidateAll()
}

var _ KeyCache[string] = (*Cache[string])(nil)
