package venture

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MyteScripts/investbot/internal/domain"
	"github.com/MyteScripts/investbot/internal/event"
)

const (
	testDiscordID = "discord-123"
	testUserID    = "user-alice"
)

type testEnv struct {
	svc   *service
	repo  *fakeVentureRepo
	users *fakeUserRepo
	bus   *recordingBus
	now   time.Time
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		repo:  newFakeVentureRepo(),
		users: newFakeUserRepo(),
		bus:   &recordingBus{},
		now:   time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	env.users.users[testDiscordID] = &domain.User{ID: testUserID, Username: "alice", DiscordID: testDiscordID}
	env.repo.balances[testUserID] = 1000
	env.svc = &service{
		repo:     env.repo,
		userRepo: env.users,
		bus:      env.bus,
		catalog:  NewCatalog(),
		engine:   NewEngineWithRand(seqRand(0.99)),
		now:      func() time.Time { return env.now },
	}
	return env
}

func (e *testEnv) ownVenture(t *testing.T, typeKey string, mutate func(*domain.Venture)) uuid.UUID {
	t.Helper()
	v := domain.Venture{
		ID:          uuid.New(),
		UserID:      testUserID,
		TypeKey:     typeKey,
		PurchasedAt: e.now.Add(-48 * time.Hour),
		Maintenance: domain.MaintenanceMax,
		LastUpdate:  e.now,
	}
	if mutate != nil {
		mutate(&v)
	}
	e.repo.addVenture(v)
	return v.ID
}

func TestPurchase(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	v, err := env.svc.Purchase(ctx, testDiscordID, "grocery_store")
	require.NoError(t, err)

	assert.Equal(t, testUserID, v.UserID)
	assert.Equal(t, domain.MaintenanceMax, v.Maintenance)
	assert.Equal(t, 0.0, v.Accumulated)
	assert.Equal(t, env.now, v.LastUpdate)

	// Cost 500 debited from the starting 1000
	assert.Equal(t, 500, env.repo.balances[testUserID])

	events := env.bus.ofType(event.VenturePurchased)
	require.Len(t, events, 1)
	payload := events[0].Payload.(domain.VentureEventPayloadV1)
	assert.Equal(t, 500, payload.Amount)
}

func TestPurchase_InsufficientFunds(t *testing.T) {
	env := newTestEnv(t)
	env.repo.balances[testUserID] = 100

	_, err := env.svc.Purchase(context.Background(), testDiscordID, "grocery_store")
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	// Nothing was created or charged
	assert.Equal(t, 100, env.repo.balances[testUserID])
	assert.Empty(t, env.repo.ventures)
}

func TestPurchase_DuplicateType(t *testing.T) {
	env := newTestEnv(t)
	env.ownVenture(t, "grocery_store", nil)

	_, err := env.svc.Purchase(context.Background(), testDiscordID, "grocery_store")
	assert.ErrorIs(t, err, domain.ErrAlreadyOwned)
}

func TestPurchase_UnknownType(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.Purchase(context.Background(), testDiscordID, "moon_base")
	assert.ErrorIs(t, err, domain.ErrUnknownVentureType)
}

func TestPurchase_UnknownUser(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.Purchase(context.Background(), "discord-stranger", "grocery_store")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestCollect(t *testing.T) {
	env := newTestEnv(t)
	id := env.ownVenture(t, "grocery_store", func(v *domain.Venture) {
		v.Accumulated = 42.3
	})

	result, err := env.svc.Collect(context.Background(), testDiscordID, "grocery_store")
	require.NoError(t, err)

	// 42.3 rounds up to 43
	assert.Equal(t, 43, result.Payout)
	assert.Equal(t, env.now.Add(domain.CollectCooldown), result.NextCollectAt)
	assert.Equal(t, 1043, env.repo.balances[testUserID])

	stored := env.repo.venture(id)
	assert.Equal(t, 0.0, stored.Accumulated)
	assert.Equal(t, env.now, stored.LastCollectedAt)

	events := env.bus.ofType(event.VentureCollected)
	require.Len(t, events, 1)
	assert.Equal(t, 43, events[0].Payload.(domain.VentureEventPayloadV1).Amount)
}

func TestCollect_OnCooldown(t *testing.T) {
	env := newTestEnv(t)
	env.ownVenture(t, "grocery_store", func(v *domain.Venture) {
		v.Accumulated = 50
		v.LastCollectedAt = env.now.Add(-30 * time.Minute)
	})

	_, err := env.svc.Collect(context.Background(), testDiscordID, "grocery_store")
	assert.ErrorIs(t, err, domain.ErrCollectOnCooldown)
	assert.Equal(t, 1000, env.repo.balances[testUserID])
}

func TestCollect_CooldownExpired(t *testing.T) {
	env := newTestEnv(t)
	env.ownVenture(t, "grocery_store", func(v *domain.Venture) {
		v.Accumulated = 50
		v.LastCollectedAt = env.now.Add(-domain.CollectCooldown)
	})

	result, err := env.svc.Collect(context.Background(), testDiscordID, "grocery_store")
	require.NoError(t, err)
	assert.Equal(t, 50, result.Payout)
}

func TestCollect_BlockedByIncident(t *testing.T) {
	env := newTestEnv(t)
	env.ownVenture(t, "grocery_store", func(v *domain.Venture) {
		v.Accumulated = 50
		v.RiskEvent = true
		v.RiskEventType = "freezer failure"
	})

	_, err := env.svc.Collect(context.Background(), testDiscordID, "grocery_store")
	assert.ErrorIs(t, err, domain.ErrRiskEventActive)
	assert.Contains(t, err.Error(), "freezer failure")
}

func TestCollect_MinPayoutFallback(t *testing.T) {
	env := newTestEnv(t)
	env.ownVenture(t, "grocery_store", func(v *domain.Venture) {
		v.Accumulated = 0.5
		v.Maintenance = 80
	})

	result, err := env.svc.Collect(context.Background(), testDiscordID, "grocery_store")
	require.NoError(t, err)
	// Healthy venture pays a full hour instead of loose change
	assert.Equal(t, 10, result.Payout)
}

func TestCollect_NotOwned(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.Collect(context.Background(), testDiscordID, "grocery_store")
	assert.ErrorIs(t, err, domain.ErrVentureNotFound)
}

func TestMaintain(t *testing.T) {
	env := newTestEnv(t)
	id := env.ownVenture(t, "grocery_store", func(v *domain.Venture) {
		v.Maintenance = 40
	})

	v, err := env.svc.Maintain(context.Background(), testDiscordID, "grocery_store", 30)
	require.NoError(t, err)

	assert.Equal(t, 70.0, v.Maintenance)
	assert.Equal(t, 70.0, env.repo.venture(id).Maintenance)
	// 30 points at 2 coins each
	assert.Equal(t, 940, env.repo.balances[testUserID])
}

func TestMaintain_DefaultPoints(t *testing.T) {
	env := newTestEnv(t)
	env.ownVenture(t, "grocery_store", func(v *domain.Venture) {
		v.Maintenance = 40
	})

	v, err := env.svc.Maintain(context.Background(), testDiscordID, "grocery_store", 0)
	require.NoError(t, err)
	assert.Equal(t, 40+domain.DefaultMaintainPoints, v.Maintenance)
}

func TestMaintain_ClampsAtMax(t *testing.T) {
	env := newTestEnv(t)
	env.ownVenture(t, "grocery_store", func(v *domain.Venture) {
		v.Maintenance = 90
	})

	v, err := env.svc.Maintain(context.Background(), testDiscordID, "grocery_store", 50)
	require.NoError(t, err)

	assert.Equal(t, domain.MaintenanceMax, v.Maintenance)
	// Only the 10 applied points are charged
	assert.Equal(t, 980, env.repo.balances[testUserID])
}

func TestMaintain_AlreadyFullChargesNothing(t *testing.T) {
	env := newTestEnv(t)
	env.ownVenture(t, "grocery_store", nil)

	v, err := env.svc.Maintain(context.Background(), testDiscordID, "grocery_store", 50)
	require.NoError(t, err)
	assert.Equal(t, domain.MaintenanceMax, v.Maintenance)
	assert.Equal(t, 1000, env.repo.balances[testUserID])
}

func TestMaintain_NegativePoints(t *testing.T) {
	env := newTestEnv(t)
	env.ownVenture(t, "grocery_store", nil)

	_, err := env.svc.Maintain(context.Background(), testDiscordID, "grocery_store", -5)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestMaintain_BlockedByIncident(t *testing.T) {
	env := newTestEnv(t)
	env.ownVenture(t, "grocery_store", func(v *domain.Venture) {
		v.Maintenance = 10
		v.RiskEvent = true
		v.RiskEventType = "freezer failure"
	})

	_, err := env.svc.Maintain(context.Background(), testDiscordID, "grocery_store", 25)
	assert.ErrorIs(t, err, domain.ErrRiskEventActive)
}

func TestRepair(t *testing.T) {
	env := newTestEnv(t)
	id := env.ownVenture(t, "grocery_store", func(v *domain.Venture) {
		v.Maintenance = 5
		v.RiskEvent = true
		v.RiskEventType = "freezer failure"
	})

	v, err := env.svc.Repair(context.Background(), testDiscordID, "grocery_store")
	require.NoError(t, err)

	assert.False(t, v.RiskEvent)
	assert.Empty(t, v.RiskEventType)
	// Repair restores to exactly half maintenance, whatever it was before
	assert.Equal(t, domain.MaintenanceAfterRepair, v.Maintenance)
	assert.Equal(t, domain.MaintenanceAfterRepair, env.repo.venture(id).Maintenance)
	// Fee is a quarter of the 500 purchase cost
	assert.Equal(t, 875, env.repo.balances[testUserID])

	events := env.bus.ofType(event.VentureRepaired)
	require.Len(t, events, 1)
	payload := events[0].Payload.(domain.VentureEventPayloadV1)
	assert.Equal(t, "freezer failure", payload.Incident)
	assert.Equal(t, 125, payload.Amount)
}

func TestRepair_NoIncident(t *testing.T) {
	env := newTestEnv(t)
	env.ownVenture(t, "grocery_store", nil)

	_, err := env.svc.Repair(context.Background(), testDiscordID, "grocery_store")
	assert.ErrorIs(t, err, domain.ErrNoRiskEvent)
}

func TestRepair_InsufficientFunds(t *testing.T) {
	env := newTestEnv(t)
	env.repo.balances[testUserID] = 10
	env.ownVenture(t, "grocery_store", func(v *domain.Venture) {
		v.RiskEvent = true
		v.RiskEventType = "freezer failure"
	})

	_, err := env.svc.Repair(context.Background(), testDiscordID, "grocery_store")
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	// Incident stays unresolved
	var stored *domain.Venture
	for _, v := range env.repo.ventures {
		stored = v
	}
	assert.True(t, stored.RiskEvent)
}

func TestSell(t *testing.T) {
	env := newTestEnv(t)
	id := env.ownVenture(t, "grocery_store", func(v *domain.Venture) {
		v.Accumulated = 99 // forfeited on sale
	})

	result, err := env.svc.Sell(context.Background(), testDiscordID, "grocery_store")
	require.NoError(t, err)

	assert.Equal(t, 250, result.Refund)
	assert.Equal(t, 1250, env.repo.balances[testUserID])
	assert.Nil(t, env.repo.venture(id))

	events := env.bus.ofType(event.VentureSold)
	require.Len(t, events, 1)
}

func TestSell_NotOwned(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.Sell(context.Background(), testDiscordID, "grocery_store")
	assert.ErrorIs(t, err, domain.ErrVentureNotFound)
}

func TestPortfolio(t *testing.T) {
	env := newTestEnv(t)
	env.ownVenture(t, "grocery_store", func(v *domain.Venture) {
		v.Accumulated = 30
	})
	env.ownVenture(t, "food_truck", nil)
	// An orphaned row for a retired type is skipped, not an error
	env.ownVenture(t, "retired_type", nil)

	entries, err := env.svc.Portfolio(context.Background(), testDiscordID)
	require.NoError(t, err)

	require.Len(t, entries, 2)
	assert.Equal(t, "food_truck", entries[0].Type.Key)
	assert.Equal(t, "grocery_store", entries[1].Type.Key)
	assert.Equal(t, 30.0, entries[1].Venture.Accumulated)
}

func TestCatalog(t *testing.T) {
	env := newTestEnv(t)

	types := env.svc.Catalog(context.Background())
	assert.NotEmpty(t, types)

	keys := make(map[string]bool)
	for _, vt := range types {
		keys[vt.Key] = true
		assert.Positive(t, vt.Cost)
		assert.Positive(t, vt.HourlyReturn)
		assert.Positive(t, vt.MaxHolding)
	}
	assert.True(t, keys["grocery_store"])
}
