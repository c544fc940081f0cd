package shell

import (
	"context"
	"errors"
	"sync"

	"github.com/AntonStoeckl/bookshelf-go/core"
)

// Notifier receives every notification the catalog emits.
type Notifier interface {
	Notify(ctx context.Context, event core.DomainEvent) error
}

// NotifierFunc adapts a plain function to the Notifier interface.
type NotifierFunc func(ctx context.Context, event core.DomainEvent) error

// Notify calls f(ctx, event).
func (f NotifierFunc) Notify(ctx context.Context, event core.DomainEvent) error {
	return f(ctx, event)
}

// Fanout returns a Notifier that delivers each notification to all given notifiers in order.
// Delivery continues after a failing notifier; all errors are joined.
func Fanout(notifiers ...Notifier) Notifier {
	targets := make([]Notifier, 0, len(notifiers))
	for _, n := range notifiers {
		if n != nil {
			targets = append(targets, n)
		}
	}

	return NotifierFunc(func(ctx context.Context, event core.DomainEvent) error {
		var errs []error
		for _, n := range targets {
			if err := n.Notify(ctx, event); err != nil {
				errs = append(errs, err)
			}
		}

		return errors.Join(errs...)
	})
}

/***** Recorder *****/

// Recorder keeps every notification in memory. It is safe for concurrent use.
type Recorder struct {
	mu     sync.Mutex
	events core.DomainEvents
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Notify records the event.
func (r *Recorder) Notify(_ context.Context, event core.DomainEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = append(r.events, event)

	return nil
}

// Events returns a copy of the recorded events in delivery order.
func (r *Recorder) Events() core.DomainEvents {
	r.mu.Lock()
	defer r.mu.Unlock()

	events := make(core.DomainEvents, len(r.events))
	copy(events, r.events)

	return events
}

// EventTypes returns the event types of the recorded events in delivery order.
func (r *Recorder) EventTypes() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	eventTypes := make([]string, 0, len(r.events))
	for _, event := range r.events {
		eventTypes = append(eventTypes, event.EventType())
	}

	return eventTypes
}

// Len returns the number of recorded events.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.events)
}

// Reset drops all recorded events.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = nil
}

/***** ChannelNotifier *****/

// ChannelNotifier sends every notification to a channel.
type ChannelNotifier struct {
	ch chan<- core.DomainEvent
}

// NewChannelNotifier creates a ChannelNotifier sending to ch.
func NewChannelNotifier(ch chan<- core.DomainEvent) *ChannelNotifier {
	return &ChannelNotifier{ch: ch}
}

// Notify blocks until the event was sent or the context is done.
func (n *ChannelNotifier) Notify(ctx context.Context, event core.DomainEvent) error {
	select {
	case n.ch <- event:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
