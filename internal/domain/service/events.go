package service

import (
	"sync"

	"github.com/diegoclair/class-schedule-bot/internal/domain"
	"github.com/diegoclair/class-schedule-bot/internal/domain/entity"
)

// EventHandler receives dispatcher events
type EventHandler func(evt entity.Event)

// eventBus delivers each event to the handlers of its type synchronously,
// in registration order.
type eventBus struct {
	mu       sync.RWMutex
	handlers map[domain.EventType][]EventHandler
}

func newEventBus() *eventBus {
	return &eventBus{handlers: make(map[domain.EventType][]EventHandler)}
}

func (b *eventBus) on(eventType domain.EventType, handler EventHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

func (b *eventBus) emit(evt entity.Event) {
	b.mu.RLock()
	handlers := make([]EventHandler, len(b.handlers[evt.Type]))
	copy(handlers, b.handlers[evt.Type])
	b.mu.RUnlock()

	for _, handler := range handlers {
		handler(evt)
	}
}
