package trackcache

// fakeRuntime is a minimal host runtime: a cell remembers the subscribers
// that tracked it since its last notification, and batches deliver each
// pending subscriber once.
type fakeRuntime struct {
	current *subscriber
	depth   int
	pending map[*subscriber]bool
	cells   int
	batches int
}

type subscriber struct {
	notified int
}

func newFakeRuntime() *fakeRuntime {
	return &fakeRuntime{}
}

func (r *fakeRuntime) NewCell() Cell {
	r.cells++
	return &fakeCell{rt: r, subs: make(map[*subscriber]bool)}
}

func (r *fakeRuntime) Batch(fn func()) {
	r.batches++
	r.depth++
	fn()
	r.depth--
	if r.depth == 0 {
		for s := range r.pending {
			s.notified++
		}
		r.pending = nil
	}
}

// as runs fn with s as the ambient subscriber.
func (r *fakeRuntime) as(s *subscriber, fn func()) {
	old := r.current
	r.current = s
	fn()
	r.current = old
}

type fakeCell struct {
	rt       *fakeRuntime
	subs     map[*subscriber]bool
	notifies int
}

func (c *fakeCell) Track() {
	if c.rt.current != nil {
		c.subs[c.rt.current] = true
	}
}

func (c *fakeCell) Notify() {
	c.notifies++
	subs := c.subs
	c.subs = make(map[*subscriber]bool)
	for s := range subs {
		if c.rt.depth > 0 {
			if c.rt.pending == nil {
				c.rt.pending = make(map[*subscriber]bool)
			}
			c.rt.pending[s] = true
		} else {
			s.notified++
		}
	}
}
