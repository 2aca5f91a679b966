package domain

import "time"

// Event type names published on the in-process bus
const (
	EventVenturePurchased = "venture.purchased"
	EventVentureCollected = "venture.collected"
	EventVentureIncident  = "venture.incident"
	EventVentureRepaired  = "venture.repaired"
	EventVentureSold      = "venture.sold"
	EventSweepCompleted   = "venture.sweep.completed"
)

// VentureEventPayloadV1 is the typed payload for per-venture lifecycle events
type VentureEventPayloadV1 struct {
	UserID   string `json:"user_id"`
	TypeKey  string `json:"type_key"`
	Amount   int    `json:"amount,omitempty"`   // coins moved, if any
	Incident string `json:"incident,omitempty"` // incident cause, if any
}

// SweepCompletedPayloadV1 is the typed payload for sweep completion events
type SweepCompletedPayloadV1 struct {
	Swept     int           `json:"swept"`
	Incidents int           `json:"incidents"`
	Pruned    int           `json:"pruned"`
	Skipped   int           `json:"skipped"`
	Duration  time.Duration `json:"duration"`
}
