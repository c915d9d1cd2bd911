package trackcache

// Cell is the minimal reactive unit supplied by the host runtime.
//
// Track registers the ambient computation, if any, as a subscriber.
// Notify tells every current subscriber that the cell changed. A cell has
// no value; Notify must never be coalesced by value equality.
type Cell interface {
	Track()
	Notify()
}

// Runtime is the host reactive runtime as seen by the cache.
type Runtime interface {
	// NewCell allocates a fresh cell with no subscribers.
	NewCell() Cell

	// Batch runs fn and defers the notifications it causes until fn
	// returns, delivering each affected subscriber once. Runtimes without
	// batching may simply call fn.
	Batch(fn func())
}

// RuntimeFuncs adapts a pair of functions to Runtime.
type RuntimeFuncs struct {
	NewCellFunc func() Cell
	BatchFunc   func(fn func())
}

// NewCell implements Runtime.
func (r RuntimeFuncs) NewCell() Cell {
	return r.NewCellFunc()
}

// Batch implements Runtime. A nil BatchFunc runs fn directly.
func (r RuntimeFuncs) Batch(fn func()) {
	if r.BatchFunc == nil {
		fn()
		return
	}
	r.BatchFunc(fn)
}
