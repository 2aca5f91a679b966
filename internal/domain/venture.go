package domain

import (
	"time"

	"github.com/google/uuid"
)

// RiskLevel classifies how incident-prone a venture type is
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// IncidentChance returns the per-sweep probability of an incident once
// maintenance has dropped below the accrual threshold
func (r RiskLevel) IncidentChance() float64 {
	switch r {
	case RiskLow:
		return 0.10
	case RiskMedium:
		return 0.30
	case RiskHigh:
		return 0.50
	default:
		return 0
	}
}

// VentureType is an immutable catalog entry describing a purchasable venture
type VentureType struct {
	Key              string    `json:"key"`
	DisplayName      string    `json:"display_name"`
	Description      string    `json:"description"`
	Cost             int       `json:"cost"`
	HourlyReturn     int       `json:"hourly_return"`
	MaxHolding       int       `json:"max_holding"`
	MaintenanceDrain float64   `json:"maintenance_drain"` // points lost per hour
	RiskLevel        RiskLevel `json:"risk_level"`
	RiskEvents       []string  `json:"risk_events"`
}

// Venture is one user's ownership record of one venture type
type Venture struct {
	ID              uuid.UUID `json:"id"`
	UserID          string    `json:"user_id"`
	TypeKey         string    `json:"type_key"`
	PurchasedAt     time.Time `json:"purchased_at"`
	Maintenance     float64   `json:"maintenance"` // 0-100
	Accumulated     float64   `json:"accumulated"` // 0..MaxHolding
	RiskEvent       bool      `json:"risk_event"`
	RiskEventType   string    `json:"risk_event_type,omitempty"`
	LastUpdate      time.Time `json:"last_update"`
	LastCollectedAt time.Time `json:"last_collected_at"` // zero value = never collected
}

// Accruing reports whether the venture is currently earning yield.
// Accrual is suspended below the maintenance threshold and during an incident.
func (v *Venture) Accruing() bool {
	return !v.RiskEvent && v.Maintenance >= MaintenanceAccrualThreshold
}

// Abandoned reports whether the venture has been run into the ground:
// nothing left to collect, no upkeep, and no incident pending repair.
// The sweep prunes abandoned ventures.
func (v *Venture) Abandoned() bool {
	return v.Maintenance <= 0 && v.Accumulated <= 0 && !v.RiskEvent
}

// PortfolioEntry is a venture joined with its catalog type for display
type PortfolioEntry struct {
	Venture Venture     `json:"venture"`
	Type    VentureType `json:"type"`
}

// CollectResult describes a successful collection
type CollectResult struct {
	Payout        int       `json:"payout"`
	NextCollectAt time.Time `json:"next_collect_at"`
}

// SellResult describes a completed sale
type SellResult struct {
	Refund int `json:"refund"`
}
