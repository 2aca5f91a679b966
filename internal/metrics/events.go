package metrics

import (
	"context"

	"github.com/MyteScripts/investbot/internal/domain"
	"github.com/MyteScripts/investbot/internal/event"
)

// EventMetricsCollector subscribes to venture events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all venture event types
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.VenturePurchased,
		event.VentureCollected,
		event.VentureIncident,
		event.VentureRepaired,
		event.VentureSold,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes venture events and updates metrics
func (e *EventMetricsCollector) HandleEvent(_ context.Context, evt event.Event) error {
	// Always increment event counter
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	payload, ok := evt.Payload.(domain.VentureEventPayloadV1)
	if !ok {
		return nil
	}

	switch evt.Type {
	case event.VenturePurchased:
		VenturesPurchased.WithLabelValues(payload.TypeKey).Inc()
	case event.VentureCollected:
		CoinsCollected.WithLabelValues(payload.TypeKey).Add(float64(payload.Amount))
	case event.VentureIncident:
		IncidentsTotal.WithLabelValues(payload.TypeKey).Inc()
	case event.VentureSold:
		VenturesSold.WithLabelValues(payload.TypeKey).Inc()
	}

	return nil
}
