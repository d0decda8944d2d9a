package event

import (
	"context"
	"errors"
)

// Listener handles one event type. Implementations are registered on
// the dispatcher at startup by explicit construction; there is no
// runtime container lookup.
type Listener interface {
	Handle(ctx context.Context, ev Event) error
}

// ListenerFunc adapts a function to the Listener interface.
type ListenerFunc func(ctx context.Context, ev Event) error

// Handle calls the wrapped function.
func (f ListenerFunc) Handle(ctx context.Context, ev Event) error {
	return f(ctx, ev)
}

// Dispatcher is a minimal synchronous publish/subscribe mechanism.
// Listeners for an event type run in registration order; every listener
// runs even when an earlier one fails, and their errors are joined.
type Dispatcher struct {
	listeners map[string][]Listener
}

// NewDispatcher returns an empty event dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{listeners: make(map[string][]Listener)}
}

// Listen registers a listener for the named event type. Multiple
// listeners per type are permitted.
func (d *Dispatcher) Listen(name string, l Listener) {
	d.listeners[name] = append(d.listeners[name], l)
}

// Dispatch synchronously invokes every listener registered for the
// event's exact type.
func (d *Dispatcher) Dispatch(ctx context.Context, ev Event) error {
	var errs []error
	for _, l := range d.listeners[ev.Name()] {
		if err := l.Handle(ctx, ev); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
