// Package events carries submissions from the HTTP handlers to whatever
// delivers them (email, the task queue) without the two knowing each other.
package events

import (
	"context"
	"time"
)

// Event is anything published on the bus. EventName selects the handlers.
type Event interface {
	EventName() string
	OccurredAt() time.Time
}

// BaseEvent stamps an event with the time it was raised.
type BaseEvent struct {
	Timestamp time.Time `json:"timestamp"`
}

func (e BaseEvent) OccurredAt() time.Time {
	return e.Timestamp
}

func NewBaseEvent() BaseEvent {
	return BaseEvent{Timestamp: time.Now()}
}

// Handler reacts to one published event, e.g. by mailing a contact
// notification or enqueueing it for the worker.
type Handler interface {
	Handle(ctx context.Context, event Event) error
}

type HandlerFunc func(ctx context.Context, event Event) error

func (f HandlerFunc) Handle(ctx context.Context, event Event) error {
	return f(ctx, event)
}

// Bus connects publishers to handlers registered under an event name.
//
// Publish is fire-and-forget: handlers run in the background and their errors
// are only logged, which is what best-effort notification wants. PublishSync
// runs the handlers inline and returns their joined errors so a caller can
// fail the request. Wait blocks until background handlers have finished and
// is called on shutdown so no notification is cut off.
type Bus interface {
	Publish(ctx context.Context, event Event)
	PublishSync(ctx context.Context, event Event) error
	Subscribe(eventName string, handler Handler)
	Wait()
}
