package trackcache

// Tracker pairs a value cache with a shape cache, the two caches a
// collection adapter maintains. Adapters pass explicit Read tags; the
// tracker routes KindValue to the value cache, KindShape to the shape
// cache, and KindShapeAll to the shape cache's sentinel.
type Tracker[K comparable] struct {
	rt     Runtime
	values *Cache[K]
	shape  *Cache[K]
}

// NewTracker creates a tracker whose caches are named "<name>.values" and
// "<name>.shape".
func NewTracker[K comparable](rt Runtime, opts ...Option) *Tracker[K] {
	o := applyOptions(opts)
	return &Tracker[K]{
		rt:     rt,
		values: newCache[K](rt, o, o.name+".values"),
		shape:  newCache[K](rt, o, o.name+".shape"),
	}
}

// Values returns the value cache.
func (t *Tracker[K]) Values() *Cache[K] {
	return t.values
}

// Shape returns the shape cache.
func (t *Tracker[K]) Shape() *Cache[K] {
	return t.shape
}

// Track registers a dependency for each read.
func (t *Tracker[K]) Track(reads ...Read[K]) {
	for _, r := range reads {
		switch r.Kind {
		case KindValue:
			t.values.Track(r.Key)
		case KindShape:
			t.shape.Track(r.Key)
		case KindShapeAll:
			t.shape.TrackShape()
		}
	}
}

// Invalidate notifies the subscribers of each change inside one runtime
// batch, so that a computation depending on several of them re-runs once
// and only after the mutation has completed.
func (t *Tracker[K]) Invalidate(changes ...Read[K]) {
	if len(changes) == 0 {
		return
	}
	t.rt.Batch(func() {
		for _, r := range changes {
			t.invalidate(r)
		}
	})
}

// InvalidateAll notifies every cell of both caches inside one batch.
func (t *Tracker[K]) InvalidateAll() {
	t.rt.Batch(func() {
		t.values.InvalidateAll()
		t.shape.InvalidateAll()
	})
}

func (t *Tracker[K]) invalidate(r Read[K]) {
	switch r.Kind {
	case KindValue:
		t.values.Invalidate(r.Key)
	case KindShape:
		t.shape.Invalidate(r.Key)
	case KindShapeAll:
		t.shape.InvalidateShape()
	}
}

// WeakTracker is the weak-keyed Tracker. Its keys are object identities;
// KindShapeAll reads and changes are ignored because weak key sets cannot
// be enumerated.
type WeakTracker[T any] struct {
	rt     Runtime
	values *WeakCache[T]
	shape  *WeakCache[T]
}

// NewWeakTracker creates a weak tracker whose caches are named
// "<name>.values" and "<name>.shape".
func NewWeakTracker[T any](rt Runtime, opts ...Option) *WeakTracker[T] {
	o := applyOptions(opts)
	return &WeakTracker[T]{
		rt:     rt,
		values: newWeakCache[T](rt, o, o.name+".values"),
		shape:  newWeakCache[T](rt, o, o.name+".shape"),
	}
}

// Values returns the value cache.
func (t *WeakTracker[T]) Values() *WeakCache[T] {
	return t.values
}

// Shape returns the shape cache.
func (t *WeakTracker[T]) Shape() *WeakCache[T] {
	return t.shape
}

// Track registers a dependency for each read.
func (t *WeakTracker[T]) Track(reads ...Read[*T]) {
	for _, r := range reads {
		switch r.Kind {
		case KindValue:
			t.values.Track(r.Key)
		case KindShape:
			t.shape.Track(r.Key)
		}
	}
}

// Invalidate notifies the subscribers of each change inside one batch.
func (t *WeakTracker[T]) Invalidate(changes ...Read[*T]) {
	if len(changes) == 0 {
		return
	}
	t.rt.Batch(func() {
		for _, r := range changes {
			switch r.Kind {
			case KindValue:
				t.values.Invalidate(r.Key)
			case KindShape:
				t.shape.Invalidate(r.Key)
			}
		}
	})
}
