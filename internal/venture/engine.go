package venture

import (
	"math"
	"math/rand"
	"time"

	"github.com/MyteScripts/investbot/internal/domain"
)

// Engine provides pure venture time-advance logic (no DB dependencies).
// Randomness is injected so incident rolls are deterministic in tests.
type Engine struct {
	rnd func() float64
}

// NewEngine creates an engine using the default random source
func NewEngine() *Engine {
	return NewEngineWithRand(rand.Float64)
}

// NewEngineWithRand creates an engine with an injected random source
func NewEngineWithRand(rnd func() float64) *Engine {
	return &Engine{rnd: rnd}
}

// AdvanceResult describes what a single time-advance did to a venture
type AdvanceResult struct {
	Elapsed         time.Duration
	Accrued         float64
	IncidentStarted bool
	Incident        string
}

// Advance moves a venture forward to now, accruing yield, draining
// maintenance, and rolling for risk incidents.
//
// Elapsed time is measured from the later of the venture's own last update
// and the global sweep checkpoint, so a venture touched mid-interval by an
// operation is not double-advanced. Elapsed is capped so downtime longer
// than a day does not produce a windfall, and a stored timestamp in the
// future (clock skew, restored backup) falls back to a single short step.
func (e *Engine) Advance(v *domain.Venture, vt *domain.VentureType, checkpoint, now time.Time) AdvanceResult {
	since := v.LastUpdate
	if checkpoint.After(since) {
		since = checkpoint
	}

	elapsed := now.Sub(since)
	if elapsed < 0 {
		elapsed = domain.SweepClockSkewFallback
	}
	if elapsed > domain.SweepMaxElapsed {
		elapsed = domain.SweepMaxElapsed
	}

	result := AdvanceResult{Elapsed: elapsed}

	// A venture below the maintenance threshold or under an incident is
	// locked out: no accrual and no drain this tick. LastUpdate still
	// advances so the lockout interval is not charged once it clears.
	if !v.Accruing() {
		v.LastUpdate = now
		return result
	}

	hours := elapsed.Hours()

	// Yield accrues in whole-hour steps
	accrued := float64(vt.HourlyReturn) * math.Floor(hours)
	if v.Accumulated+accrued > float64(vt.MaxHolding) {
		accrued = float64(vt.MaxHolding) - v.Accumulated
	}
	if accrued > 0 {
		v.Accumulated += accrued
		result.Accrued = accrued
	}

	// Maintenance drains continuously, clamped at zero
	v.Maintenance -= vt.MaintenanceDrain * hours
	if v.Maintenance < 0 {
		v.Maintenance = 0
	}

	// The incident roll happens once, on the tick where the drain drops
	// maintenance below the threshold
	if v.Maintenance < domain.MaintenanceAccrualThreshold {
		if e.rnd() < vt.RiskLevel.IncidentChance() {
			v.RiskEvent = true
			v.RiskEventType = e.pickIncident(vt)
			result.IncidentStarted = true
			result.Incident = v.RiskEventType
		}
	}

	v.LastUpdate = now
	return result
}

// CollectPayout computes the coins a collection pays out. Payouts round up,
// and a well-maintained venture that has accrued next to nothing pays a
// single hour's return instead of small change.
func (e *Engine) CollectPayout(v *domain.Venture, vt *domain.VentureType) int {
	payout := int(math.Ceil(v.Accumulated))
	if payout <= 1 && v.Maintenance >= domain.MaintenanceAccrualThreshold {
		payout = vt.HourlyReturn
	}
	return payout
}

func (e *Engine) pickIncident(vt *domain.VentureType) string {
	if len(vt.RiskEvents) == 0 {
		return "incident"
	}
	idx := int(e.rnd() * float64(len(vt.RiskEvents)))
	if idx >= len(vt.RiskEvents) {
		idx = len(vt.RiskEvents) - 1
	}
	return vt.RiskEvents[idx]
}
