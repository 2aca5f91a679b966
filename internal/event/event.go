package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MyteScripts/investbot/internal/domain"
)

// Type represents the type of an event
type Type string

// Event represents a generic event in the system
type Event struct {
	Version string      `json:"version"` // Event schema version (e.g., "1.0")
	Type    Type        `json:"type"`
	Payload interface{} `json:"payload"`
}

// Venture lifecycle event types
const (
	VenturePurchased Type = Type(domain.EventVenturePurchased)
	VentureCollected Type = Type(domain.EventVentureCollected)
	VentureIncident  Type = Type(domain.EventVentureIncident)
	VentureRepaired  Type = Type(domain.EventVentureRepaired)
	VentureSold      Type = Type(domain.EventVentureSold)
	SweepCompleted   Type = Type(domain.EventSweepCompleted)
)

// NewVentureEvent creates a venture lifecycle event with a typed payload
func NewVentureEvent(eventType Type, userID, typeKey string, amount int, incident string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    eventType,
		Payload: domain.VentureEventPayloadV1{
			UserID:   userID,
			TypeKey:  typeKey,
			Amount:   amount,
			Incident: incident,
		},
	}
}

// NewSweepCompletedEvent creates a sweep completion event
func NewSweepCompletedEvent(swept, incidents, pruned, skipped int, duration time.Duration) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    SweepCompleted,
		Payload: domain.SweepCompletedPayloadV1{
			Swept:     swept,
			Incidents: incidents,
			Pruned:    pruned,
			Skipped:   skipped,
			Duration:  duration,
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers.
// Handlers run synchronously; a failing handler does not stop the others.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
