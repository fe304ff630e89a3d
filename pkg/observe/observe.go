// Package observe provides reactive values with synchronous, ordered
// change notification.
//
// A write always completes before any observer runs, and observers run in
// the order they were registered. Nothing here is safe for concurrent use;
// values are meant to be owned by a single UI goroutine.
package observe

// Source is a readable value that notifies watchers when it changes.
type Source[T any] interface {
	Get() T
	Watch(fn func()) (cancel func())
}

// watchers is an ordered subscription list.
type watchers struct {
	next uint64
	subs []subscription
}

type subscription struct {
	id uint64
	fn func()
}

func (w *watchers) add(fn func()) func() {
	w.next++
	id := w.next
	w.subs = append(w.subs, subscription{id: id, fn: fn})
	return func() { w.remove(id) }
}

func (w *watchers) remove(id uint64) {
	for i, s := range w.subs {
		if s.id == id {
			w.subs = append(w.subs[:i:i], w.subs[i+1:]...)
			return
		}
	}
}

// notify runs a snapshot of the current subscribers, so a watcher that
// subscribes or cancels during notification does not disturb this round.
func (w *watchers) notify() {
	subs := make([]subscription, len(w.subs))
	copy(subs, w.subs)
	for _, s := range subs {
		s.fn()
	}
}

// Value is a mutable observable value.
type Value[T comparable] struct {
	v T
	w watchers
}

// NewValue returns a Value holding v.
func NewValue[T comparable](v T) *Value[T] {
	return &Value[T]{v: v}
}

// Get returns the current value.
func (x *Value[T]) Get() T {
	return x.v
}

// Set stores v and notifies watchers. Setting an equal value is a no-op.
func (x *Value[T]) Set(v T) {
	if x.v == v {
		return
	}
	x.v = v
	x.w.notify()
}

// Watch registers fn to run after every change.
func (x *Value[T]) Watch(fn func()) func() {
	return x.w.add(fn)
}

// Computed is a cached value derived from other sources. It recomputes
// when any dependency changes and notifies its own watchers only when the
// result differs.
type Computed[T comparable] struct {
	fn      func() T
	v       T
	w       watchers
	cancels []func()
}

// Dependency is anything a Computed can subscribe to.
type Dependency interface {
	Watch(fn func()) (cancel func())
}

// NewComputed evaluates fn immediately and again whenever one of deps
// changes.
func NewComputed[T comparable](fn func() T, deps ...Dependency) *Computed[T] {
	c := &Computed[T]{fn: fn, v: fn()}
	for _, d := range deps {
		c.cancels = append(c.cancels, d.Watch(c.recompute))
	}
	return c
}

func (c *Computed[T]) recompute() {
	v := c.fn()
	if v == c.v {
		return
	}
	c.v = v
	c.w.notify()
}

// Get returns the cached result.
func (c *Computed[T]) Get() T {
	return c.v
}

// Watch registers fn to run after every change of the derived value.
func (c *Computed[T]) Watch(fn func()) func() {
	return c.w.add(fn)
}

// Close detaches the computed value from its dependencies.
func (c *Computed[T]) Close() {
	for _, cancel := range c.cancels {
		cancel()
	}
	c.cancels = nil
}
