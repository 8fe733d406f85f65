// Package bus delivers input notifications to registered listeners. Events
// are produced and dispatched on the capture thread; the bus itself holds no
// event state between dispatches.
package bus

import (
	"sort"
	"sync"

	"github.com/minsuh/inputcast/internal/event"
)

// Listener receives a dispatched event. ctx carries the per-dispatch cancel
// flag; the event value itself never changes.
type Listener func(ctx *Context, e event.Event)

// Context is the per-dispatch state handed to every listener.
type Context struct {
	cancelable bool
	canceled   bool
}

// Cancel marks the dispatch as canceled, which suppresses default handling
// of the underlying signal. It has no effect for variants that are not
// cancelable.
func (c *Context) Cancel() {
	if c.cancelable {
		c.canceled = true
	}
}

// Canceled reports whether an earlier listener canceled this dispatch.
func (c *Context) Canceled() bool { return c.canceled }

type entry struct {
	id       int
	priority int
	seq      int
	fn       Listener
}

// Bus dispatches events to listeners in priority order. Listeners with a
// lower priority value run first; within a priority, registration order is
// preserved, so delivery order is consistent across dispatches.
type Bus struct {
	mu      sync.Mutex
	nextID  int
	entries []entry
}

// New creates an empty bus.
func New() *Bus {
	return &Bus{}
}

// Subscribe registers fn at the given priority and returns a function that
// removes it again.
func (b *Bus) Subscribe(priority int, fn Listener) (unsubscribe func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.entries = append(b.entries, entry{id: id, priority: priority, seq: id, fn: fn})
	sort.SliceStable(b.entries, func(i, j int) bool {
		if b.entries[i].priority != b.entries[j].priority {
			return b.entries[i].priority < b.entries[j].priority
		}
		return b.entries[i].seq < b.entries[j].seq
	})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		for i, en := range b.entries {
			if en.id == id {
				b.entries = append(b.entries[:i], b.entries[i+1:]...)
				return
			}
		}
	}
}

// Dispatch delivers e to every listener exactly once and reports whether a
// listener canceled it. Cancellation does not stop delivery: later listeners
// still run and can observe ctx.Canceled().
func (b *Bus) Dispatch(e event.Event) bool {
	b.mu.Lock()
	entries := make([]entry, len(b.entries))
	copy(entries, b.entries)
	b.mu.Unlock()

	ctx := &Context{cancelable: e.Cancelable()}
	for _, en := range entries {
		en.fn(ctx, e)
	}
	return ctx.canceled
}
