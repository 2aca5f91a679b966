package event

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MyteScripts/investbot/internal/domain"
)

func TestMemoryBus_PublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()

	var received []Event
	bus.Subscribe(VenturePurchased, func(_ context.Context, e Event) error {
		received = append(received, e)
		return nil
	})

	e := NewVentureEvent(VenturePurchased, "user-1", "grocery_store", 500, "")
	err := bus.Publish(context.Background(), e)

	assert.NoError(t, err)
	assert.Len(t, received, 1)
	payload, ok := received[0].Payload.(domain.VentureEventPayloadV1)
	assert.True(t, ok)
	assert.Equal(t, "grocery_store", payload.TypeKey)
	assert.Equal(t, 500, payload.Amount)
}

func TestMemoryBus_NoSubscribers(t *testing.T) {
	bus := NewMemoryBus()
	err := bus.Publish(context.Background(), NewVentureEvent(VentureSold, "user-1", "car_wash", 250, ""))
	assert.NoError(t, err)
}

func TestMemoryBus_HandlerErrorDoesNotStopOthers(t *testing.T) {
	bus := NewMemoryBus()

	calls := 0
	bus.Subscribe(VentureIncident, func(_ context.Context, _ Event) error {
		calls++
		return errors.New("boom")
	})
	bus.Subscribe(VentureIncident, func(_ context.Context, _ Event) error {
		calls++
		return nil
	})

	err := bus.Publish(context.Background(), NewVentureEvent(VentureIncident, "user-1", "restaurant", 0, "health inspection"))

	assert.Error(t, err)
	assert.Equal(t, 2, calls)
}
