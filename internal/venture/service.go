package venture

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/MyteScripts/investbot/internal/domain"
	"github.com/MyteScripts/investbot/internal/event"
	"github.com/MyteScripts/investbot/internal/logger"
	"github.com/MyteScripts/investbot/internal/repository"
)

// Service defines the venture feature interface
type Service interface {
	// Catalog returns all purchasable venture types
	Catalog(ctx context.Context) []domain.VentureType

	// Portfolio returns the user's ventures joined with their catalog types
	Portfolio(ctx context.Context, discordID string) ([]domain.PortfolioEntry, error)

	// Purchase buys a venture of the given type for the user
	Purchase(ctx context.Context, discordID, typeKey string) (*domain.Venture, error)

	// Collect pays out the venture's accumulated yield
	Collect(ctx context.Context, discordID, typeKey string) (*domain.CollectResult, error)

	// Maintain spends coins to restore maintenance points. Zero points
	// applies the default amount.
	Maintain(ctx context.Context, discordID, typeKey string, points float64) (*domain.Venture, error)

	// Repair resolves an active risk incident for a fee
	Repair(ctx context.Context, discordID, typeKey string) (*domain.Venture, error)

	// Sell liquidates the venture for half its purchase cost
	Sell(ctx context.Context, discordID, typeKey string) (*domain.SellResult, error)

	// Sweep advances every venture to the current time
	Sweep(ctx context.Context) (*SweepStats, error)
}

type service struct {
	repo     repository.Venture
	userRepo repository.User
	bus      event.Bus
	catalog  *Catalog
	engine   *Engine
	now      func() time.Time
}

// NewService creates a new venture service
func NewService(repo repository.Venture, userRepo repository.User, bus event.Bus) Service {
	return &service{
		repo:     repo,
		userRepo: userRepo,
		bus:      bus,
		catalog:  NewCatalog(),
		engine:   NewEngine(),
		now:      time.Now,
	}
}

func (s *service) Catalog(ctx context.Context) []domain.VentureType {
	return s.catalog.Types()
}

func (s *service) Portfolio(ctx context.Context, discordID string) ([]domain.PortfolioEntry, error) {
	user, err := s.getUser(ctx, discordID)
	if err != nil {
		return nil, err
	}

	ventures, err := s.repo.GetVenturesForUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgGetVentureFailed, err)
	}

	log := logger.FromContext(ctx)
	entries := make([]domain.PortfolioEntry, 0, len(ventures))
	for _, v := range ventures {
		vt, err := s.catalog.Get(v.TypeKey)
		if err != nil {
			log.Warn(LogMsgUnknownTypeSkipped, "type", v.TypeKey, "venture_id", v.ID)
			continue
		}
		entries = append(entries, domain.PortfolioEntry{Venture: v, Type: *vt})
	}
	return entries, nil
}

// Purchase debits the type's cost and creates the venture at full
// maintenance with nothing accrued. One venture per type per user.
func (s *service) Purchase(ctx context.Context, discordID, typeKey string) (*domain.Venture, error) {
	vt, err := s.catalog.Get(typeKey)
	if err != nil {
		return nil, err
	}

	user, err := s.getUser(ctx, discordID)
	if err != nil {
		return nil, err
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgBeginTxFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	if err := s.debit(ctx, tx, user.ID, vt.Cost); err != nil {
		return nil, err
	}

	now := s.now()
	venture := &domain.Venture{
		ID:          uuid.New(),
		UserID:      user.ID,
		TypeKey:     vt.Key,
		PurchasedAt: now,
		Maintenance: domain.MaintenanceMax,
		Accumulated: 0,
		LastUpdate:  now,
	}

	if err := tx.CreateVenture(ctx, venture); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgCommitFailed, err)
	}

	s.publish(ctx, event.NewVentureEvent(event.VenturePurchased, user.ID, vt.Key, vt.Cost, ""))
	return venture, nil
}

// Collect pays out accrued yield, at most once per cooldown window.
// Collection is blocked while an incident is unresolved.
func (s *service) Collect(ctx context.Context, discordID, typeKey string) (*domain.CollectResult, error) {
	vt, err := s.catalog.Get(typeKey)
	if err != nil {
		return nil, err
	}

	user, err := s.getUser(ctx, discordID)
	if err != nil {
		return nil, err
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgBeginTxFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	venture, err := tx.GetVentureForUpdate(ctx, user.ID, typeKey)
	if err != nil {
		return nil, err
	}

	if venture.RiskEvent {
		return nil, fmt.Errorf("%w: %s", domain.ErrRiskEventActive, venture.RiskEventType)
	}

	now := s.now()
	if !venture.LastCollectedAt.IsZero() {
		if remaining := domain.CollectCooldown - now.Sub(venture.LastCollectedAt); remaining > 0 {
			return nil, fmt.Errorf("%w: %s remaining", domain.ErrCollectOnCooldown, remaining.Round(time.Second))
		}
	}

	payout := s.engine.CollectPayout(venture, vt)

	if err := s.credit(ctx, tx, user.ID, payout); err != nil {
		return nil, err
	}

	venture.Accumulated = 0
	venture.LastCollectedAt = now
	if err := tx.UpdateVenture(ctx, venture); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgCommitFailed, err)
	}

	s.publish(ctx, event.NewVentureEvent(event.VentureCollected, user.ID, vt.Key, payout, ""))
	return &domain.CollectResult{
		Payout:        payout,
		NextCollectAt: now.Add(domain.CollectCooldown),
	}, nil
}

// Maintain buys maintenance points at a flat per-point rate. Points beyond
// the maintenance cap are neither applied nor charged.
func (s *service) Maintain(ctx context.Context, discordID, typeKey string, points float64) (*domain.Venture, error) {
	if points < 0 {
		return nil, fmt.Errorf("%w: points must not be negative", domain.ErrInvalidInput)
	}
	if points == 0 {
		points = domain.DefaultMaintainPoints
	}

	if _, err := s.catalog.Get(typeKey); err != nil {
		return nil, err
	}

	user, err := s.getUser(ctx, discordID)
	if err != nil {
		return nil, err
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgBeginTxFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	venture, err := tx.GetVentureForUpdate(ctx, user.ID, typeKey)
	if err != nil {
		return nil, err
	}

	if venture.RiskEvent {
		return nil, fmt.Errorf("%w: repair it first", domain.ErrRiskEventActive)
	}

	applied := points
	if venture.Maintenance+applied > domain.MaintenanceMax {
		applied = domain.MaintenanceMax - venture.Maintenance
	}

	if applied > 0 {
		cost := int(math.Ceil(applied * MaintainCostPerPoint))
		if err := s.debit(ctx, tx, user.ID, cost); err != nil {
			return nil, err
		}
		venture.Maintenance += applied
		venture.LastUpdate = s.now()
		if err := tx.UpdateVenture(ctx, venture); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgCommitFailed, err)
	}

	return venture, nil
}

// Repair resolves the active incident for a quarter of the purchase cost,
// restoring the venture to half maintenance.
func (s *service) Repair(ctx context.Context, discordID, typeKey string) (*domain.Venture, error) {
	vt, err := s.catalog.Get(typeKey)
	if err != nil {
		return nil, err
	}

	user, err := s.getUser(ctx, discordID)
	if err != nil {
		return nil, err
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgBeginTxFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	venture, err := tx.GetVentureForUpdate(ctx, user.ID, typeKey)
	if err != nil {
		return nil, err
	}

	if !venture.RiskEvent {
		return nil, domain.ErrNoRiskEvent
	}

	fee := vt.Cost / RepairFeeDivisor
	if err := s.debit(ctx, tx, user.ID, fee); err != nil {
		return nil, err
	}

	incident := venture.RiskEventType
	venture.RiskEvent = false
	venture.RiskEventType = ""
	venture.Maintenance = domain.MaintenanceAfterRepair
	venture.LastUpdate = s.now()
	if err := tx.UpdateVenture(ctx, venture); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgCommitFailed, err)
	}

	s.publish(ctx, event.NewVentureEvent(event.VentureRepaired, user.ID, vt.Key, fee, incident))
	return venture, nil
}

// Sell deletes the venture and refunds half the purchase cost. Any accrued
// but uncollected yield is forfeit.
func (s *service) Sell(ctx context.Context, discordID, typeKey string) (*domain.SellResult, error) {
	vt, err := s.catalog.Get(typeKey)
	if err != nil {
		return nil, err
	}

	user, err := s.getUser(ctx, discordID)
	if err != nil {
		return nil, err
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgBeginTxFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	venture, err := tx.GetVentureForUpdate(ctx, user.ID, typeKey)
	if err != nil {
		return nil, err
	}

	refund := vt.Cost / SellRefundDivisor
	if err := s.credit(ctx, tx, user.ID, refund); err != nil {
		return nil, err
	}

	if err := tx.DeleteVenture(ctx, venture.ID); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgCommitFailed, err)
	}

	s.publish(ctx, event.NewVentureEvent(event.VentureSold, user.ID, vt.Key, refund, ""))
	return &domain.SellResult{Refund: refund}, nil
}

func (s *service) getUser(ctx context.Context, discordID string) (*domain.User, error) {
	user, err := s.userRepo.GetUserByDiscordID(ctx, discordID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgGetUserFailed, err)
	}
	return user, nil
}

func (s *service) debit(ctx context.Context, tx repository.VentureTx, userID string, amount int) error {
	balance, err := tx.GetBalanceForUpdate(ctx, userID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgLockBalanceFailed, err)
	}
	if balance < amount {
		return fmt.Errorf("%w: have %d, need %d", domain.ErrInsufficientFunds, balance, amount)
	}
	if err := tx.SetBalance(ctx, userID, balance-amount); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgSetBalanceFailed, err)
	}
	return nil
}

func (s *service) credit(ctx context.Context, tx repository.VentureTx, userID string, amount int) error {
	balance, err := tx.GetBalanceForUpdate(ctx, userID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgLockBalanceFailed, err)
	}
	if err := tx.SetBalance(ctx, userID, balance+amount); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgSetBalanceFailed, err)
	}
	return nil
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgEventPublishFailed, "type", evt.Type, "error", err)
	}
}
