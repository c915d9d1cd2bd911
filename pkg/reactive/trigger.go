package reactive

import "github.com/vango-dev/signaled/pkg/trackcache"

// Trigger is a valueless signal: a pure dependency edge. Track subscribes
// the current listener; Notify wakes every subscriber, every time, with no
// equality check. Triggers are the cells handed out to trackcache.
type Trigger struct {
	base signalBase
}

// NewTrigger creates a trigger with no subscribers.
func NewTrigger() *Trigger {
	return &Trigger{base: signalBase{id: nextID()}}
}

// Track subscribes the current listener, if any.
func (t *Trigger) Track() {
	t.base.track()
}

// Notify notifies every current subscriber. Inside a batch the
// notification is deferred until the outermost batch completes.
func (t *Trigger) Notify() {
	t.base.notifySubscribers()
}

// Subscribers returns the number of listeners currently subscribed.
func (t *Trigger) Subscribers() int {
	return t.base.subscriberCount()
}

// ID returns the unique identifier for this trigger.
func (t *Trigger) ID() uint64 {
	return t.base.id
}

var _ trackcache.Cell = (*Trigger)(nil)
