// Package events implements single-pass event handler dispatch.
// Handlers observe events; they cannot emit new ones, so there is no
// recursion.
package events

import "github.com/nathoo/aventura/types"

// Handler observes one event.
type Handler func(types.Event)

// Any subscribes a handler to every event type.
const Any = "*"

// Dispatcher routes events to handlers registered per event type.
type Dispatcher struct {
	handlers map[string][]Handler
}

// NewDispatcher returns an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: map[string][]Handler{}}
}

// On registers fn for eventType, or for every type with Any. Handlers run
// in registration order.
func (d *Dispatcher) On(eventType string, fn Handler) {
	d.handlers[eventType] = append(d.handlers[eventType], fn)
}

// Dispatch runs matching handlers against the emitted events. Single pass:
// type-specific handlers first, then Any handlers, event by event.
func (d *Dispatcher) Dispatch(evts []types.Event) {
	for _, e := range evts {
		for _, fn := range d.handlers[e.Type] {
			fn(e)
		}
		for _, fn := range d.handlers[Any] {
			fn(e)
		}
	}
}
