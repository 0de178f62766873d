package events

import (
	"context"
	"errors"
	"sync"

	"gadget_haven_backend/platform/logger"
)

// InMemoryBus dispatches events to handlers in the publishing goroutine.
// Subscriptions are expected to happen during startup; publishing is safe
// for concurrent use.
type InMemoryBus struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
	log      *logger.Logger
}

// NewInMemoryBus creates an empty bus.
func NewInMemoryBus(log *logger.Logger) *InMemoryBus {
	return &InMemoryBus{
		handlers: make(map[string][]Handler),
		log:      log,
	}
}

// Subscribe registers handler for eventName.
func (b *InMemoryBus) Subscribe(eventName string, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventName] = append(b.handlers[eventName], handler)
}

// Publish runs every handler for the event and logs failures.
func (b *InMemoryBus) Publish(ctx context.Context, event Event) {
	if err := b.PublishSync(ctx, event); err != nil && b.log != nil {
		b.log.WithContext(ctx).Error("event handler failed", "event", event.EventName(), "error", err)
	}
}

// PublishSync runs every handler for the event and joins their errors.
func (b *InMemoryBus) PublishSync(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := b.handlers[event.EventName()]
	b.mu.RUnlock()

	var errs []error
	for _, h := range handlers {
		if err := h.Handle(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Compile-time check that InMemoryBus implements Bus
var _ Bus = (*InMemoryBus)(nil)
