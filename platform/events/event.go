// Package events is the in-process publish/subscribe layer modules use to
// react to each other without importing one another.
// This is part of the platform layer and contains no business logic.
package events

import (
	"context"
	"time"
)

// Event is anything published on a Bus. EventName is the subscription key.
type Event interface {
	EventName() string
	OccurredAt() time.Time
}

// BaseEvent carries the timestamp shared by every event. Embed it.
type BaseEvent struct {
	Timestamp time.Time `json:"timestamp"`
}

// OccurredAt implements Event.
func (e BaseEvent) OccurredAt() time.Time { return e.Timestamp }

// NewBaseEvent stamps an event with the current UTC time.
func NewBaseEvent() BaseEvent { return NewBaseEventAt(time.Now()) }

// NewBaseEventAt stamps an event with t, converted to UTC. Use it when the
// event must share a timestamp with the record it describes.
func NewBaseEventAt(t time.Time) BaseEvent { return BaseEvent{Timestamp: t.UTC()} }

// Handler reacts to one published event.
type Handler interface {
	Handle(ctx context.Context, event Event) error
}

// HandlerFunc lets a plain function serve as a Handler.
type HandlerFunc func(ctx context.Context, event Event) error

// Handle implements Handler.
func (f HandlerFunc) Handle(ctx context.Context, event Event) error { return f(ctx, event) }

// Publisher is the side of the bus producers depend on. Handler failures
// are logged by the bus and never reach the publisher.
type Publisher interface {
	Publish(ctx context.Context, event Event)
}

// Subscriber is the side of the bus consumers register with, keyed by
// Event.EventName.
type Subscriber interface {
	Subscribe(eventName string, handler Handler)
}

// Bus joins both sides and adds PublishSync, which returns the handlers'
// joined errors to the caller.
type Bus interface {
	Publisher
	Subscriber
	PublishSync(ctx context.Context, event Event) error
}
