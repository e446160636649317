package pubsub

import "context"

// Listener binds a broker subscription to a context, for callers that
// consume events in a plain receive loop rather than holding the raw
// channel and cancel func themselves.
type Listener[T any] struct {
	ctx context.Context
	ch  <-chan Event[T]
}

// NewListener subscribes to broker for the life of ctx. Cancelling ctx
// ends the subscription and closes the channel behind C.
func NewListener[T any](ctx context.Context, broker *Broker[T]) *Listener[T] {
	return &Listener[T]{ctx: ctx, ch: broker.Subscribe(ctx)}
}

// C exposes the subscription channel for select loops.
func (l *Listener[T]) C() <-chan Event[T] {
	return l.ch
}

// Next blocks until an event arrives. ok is false once the listener's
// context is cancelled or the broker shuts down.
func (l *Listener[T]) Next() (Event[T], bool) {
	var zero Event[T]
	select {
	case <-l.ctx.Done():
		return zero, false
	case event, ok := <-l.ch:
		if !ok {
			return zero, false
		}
		return event, true
	}
}
