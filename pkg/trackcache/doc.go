// Package trackcache implements the dependency-tracking core of the
// reactive collections: a cache that lazily creates one reactive cell per
// tracked key.
//
// Reading a key calls Track, which creates the key's cell on first use and
// registers the ambient computation as its subscriber. Writing calls
// Invalidate, which notifies that cell's subscribers if, and only if, the
// cell exists. InvalidateAll notifies every cell at once, for bulk changes
// such as clearing a collection.
//
// # Shape
//
// Besides real keys, every Cache reserves a Shape Sentinel slot denoting
// "the set of keys changed" (membership, order, size). It is distinct from
// every value of K, the zero value included:
//
//	c := trackcache.New[string](rt)
//	c.Track("")      // the empty-string key
//	c.TrackShape()   // the sentinel, a different cell
//
// # Runtime
//
// Cells come from the host reactive runtime, injected as a Runtime. The
// package never imports a runtime; pkg/reactive provides one.
//
// # Trackers
//
// Collection adapters use a Tracker, which pairs a value cache with a
// shape cache and takes explicit Read tags:
//
//	t := trackcache.NewTracker[string](rt)
//	t.Track(trackcache.Value("a"))          // Get("a")
//	t.Track(trackcache.Shape("a"))          // Has("a")
//	t.Track(trackcache.ShapeAll[string]())  // Len(), Keys()
//
//	// Insert of a new key: emitted together in one batch.
//	t.Invalidate(trackcache.ShapeAll[string](), trackcache.Shape("a"))
//
// # Weak keys
//
// WeakCache and WeakTracker key cells by object identity (*T) without
// keeping the objects alive. They cannot be enumerated and so offer no
// InvalidateAll.
//
// Caches are not safe for concurrent use, except that weak caches tolerate
// the garbage collector's cleanup goroutine.
package trackcache
