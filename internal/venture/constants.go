package venture

import "github.com/MyteScripts/investbot/internal/domain"

// Pricing constants
const (
	// MaintainCostPerPoint is the coin cost of one maintenance point
	MaintainCostPerPoint = 2.0

	// RepairFeeDivisor sets the incident repair fee as a fraction of the
	// venture's purchase cost
	RepairFeeDivisor = 4

	// SellRefundDivisor sets the sale refund as a fraction of purchase cost
	SellRefundDivisor = 2
)

// Error message constants
const (
	ErrMsgBeginTxFailed     = "failed to begin transaction"
	ErrMsgCommitFailed      = "failed to commit transaction"
	ErrMsgGetUserFailed     = "failed to get user"
	ErrMsgGetVentureFailed  = "failed to get venture"
	ErrMsgLockBalanceFailed = "failed to lock balance"
	ErrMsgSetBalanceFailed  = "failed to set balance"
)

// Log message constants
const (
	LogMsgUnknownTypeSkipped = "Venture references unknown type, skipping"
	LogMsgIncidentTriggered  = "Risk incident triggered"
	LogMsgVenturePruned      = "Abandoned venture pruned"
	LogMsgSweepOwnerFailed   = "Sweep failed for owner"
	LogMsgSweepCompleted     = "Venture sweep completed"
	LogMsgEventPublishFailed = "Failed to publish event"
)

// catalogTypes is the built-in venture catalog, cheapest first.
// Tuning note: hourly return roughly tracks cost/40, and riskier ventures
// trade higher yield for steeper maintenance drain.
var catalogTypes = []domain.VentureType{
	{
		Key:              "lemonade_stand",
		DisplayName:      "Lemonade Stand",
		Description:      "A folding table and an honest pitcher. Slow coins, few surprises.",
		Cost:             150,
		HourlyReturn:     4,
		MaxHolding:       48,
		MaintenanceDrain: 3,
		RiskLevel:        domain.RiskLow,
		RiskEvents:       []string{"wasp swarm", "rained out"},
	},
	{
		Key:              "food_truck",
		DisplayName:      "Food Truck",
		Description:      "Lunch-rush money on four wheels, if the engine holds.",
		Cost:             300,
		HourlyReturn:     7,
		MaxHolding:       84,
		MaintenanceDrain: 8,
		RiskLevel:        domain.RiskMedium,
		RiskEvents:       []string{"engine trouble", "health inspection", "propane leak"},
	},
	{
		Key:              "grocery_store",
		DisplayName:      "Grocery Store",
		Description:      "Steady neighborhood trade. Keep the shelves stocked and the lights on.",
		Cost:             500,
		HourlyReturn:     10,
		MaxHolding:       120,
		MaintenanceDrain: 5,
		RiskLevel:        domain.RiskLow,
		RiskEvents:       []string{"freezer failure", "shoplifting spree"},
	},
	{
		Key:              "arcade",
		DisplayName:      "Arcade",
		Description:      "Token machines and ticket counters. Cabinets break when ignored.",
		Cost:             900,
		HourlyReturn:     20,
		MaxHolding:       240,
		MaintenanceDrain: 10,
		RiskLevel:        domain.RiskMedium,
		RiskEvents:       []string{"cabinet fire", "power surge", "vandalism"},
	},
	{
		Key:              "nightclub",
		DisplayName:      "Nightclub",
		Description:      "Big weekend takings, bigger weekend problems.",
		Cost:             1800,
		HourlyReturn:     42,
		MaxHolding:       500,
		MaintenanceDrain: 14,
		RiskLevel:        domain.RiskHigh,
		RiskEvents:       []string{"license suspension", "flooded basement", "brawl damages"},
	},
	{
		Key:              "crypto_mine",
		DisplayName:      "Crypto Mine",
		Description:      "A warehouse of humming rigs. Prints coins until something melts.",
		Cost:             3000,
		HourlyReturn:     75,
		MaxHolding:       900,
		MaintenanceDrain: 18,
		RiskLevel:        domain.RiskHigh,
		RiskEvents:       []string{"rig meltdown", "grid blackout", "ransomware"},
	},
}
