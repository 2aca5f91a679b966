package domain

import "time"

// Platform name constants
const (
	PlatformDiscord = "discord"
)

// Venture tuning constants shared across layers
const (
	// MaintenanceMax is the upper clamp for a venture's maintenance level
	MaintenanceMax = 100.0

	// MaintenanceAccrualThreshold is the level below which yield accrual is
	// suspended and incidents become possible
	MaintenanceAccrualThreshold = 25.0

	// MaintenanceAfterRepair is the level a venture is restored to by repair.
	// Repair restores partial operability only; further upkeep is still needed.
	MaintenanceAfterRepair = 50.0

	// DefaultMaintainPoints is applied when a maintain request omits points
	DefaultMaintainPoints = 25.0

	// CollectCooldown throttles collection to once per hour of wall-clock time
	CollectCooldown = time.Hour

	// SweepMaxElapsed bounds per-tick catch-up after long downtime
	SweepMaxElapsed = 24 * time.Hour

	// SweepClockSkewFallback is the elapsed time assumed for a tick when a
	// stored last-update timestamp is in the future (clock skew, bad data)
	SweepClockSkewFallback = 60 * time.Second
)
