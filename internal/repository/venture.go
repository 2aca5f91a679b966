package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/MyteScripts/investbot/internal/domain"
)

// Venture defines the interface for venture persistence
type Venture interface {
	// GetVenturesForUser returns all ventures owned by the user
	GetVenturesForUser(ctx context.Context, userID string) ([]domain.Venture, error)

	// GetOwnerIDs returns the IDs of all users that own at least one venture.
	// The sweep iterates owners so that each user's ventures are advanced
	// inside a single transaction.
	GetOwnerIDs(ctx context.Context) ([]string, error)

	// GetSweepCheckpoint returns the timestamp of the last completed sweep.
	// The zero time is returned when no sweep has run yet.
	GetSweepCheckpoint(ctx context.Context) (time.Time, error)

	// SetSweepCheckpoint advances the global sweep checkpoint
	SetSweepCheckpoint(ctx context.Context, at time.Time) error

	// BeginTx starts a transaction for venture operations
	BeginTx(ctx context.Context) (VentureTx, error)
}

// VentureTx defines the interface for venture transactions.
// It includes wallet operations so purchase/collect/maintain/repair/sell can
// move coins and mutate the venture atomically.
type VentureTx interface {
	Tx

	// GetVentureForUpdate returns the user's venture of the given type with
	// the row locked, or domain.ErrVentureNotFound
	GetVentureForUpdate(ctx context.Context, userID, typeKey string) (*domain.Venture, error)

	// GetVenturesForUserForUpdate returns all of the user's ventures with
	// their rows locked
	GetVenturesForUserForUpdate(ctx context.Context, userID string) ([]domain.Venture, error)

	// CreateVenture inserts a new venture; domain.ErrAlreadyOwned on a
	// (user, type) conflict
	CreateVenture(ctx context.Context, venture *domain.Venture) error

	// UpdateVenture persists the venture's mutable fields
	UpdateVenture(ctx context.Context, venture *domain.Venture) error

	// DeleteVenture removes a venture by ID
	DeleteVenture(ctx context.Context, id uuid.UUID) error

	// Wallet operations within the same transaction
	GetBalanceForUpdate(ctx context.Context, userID string) (int, error)
	SetBalance(ctx context.Context, userID string, balance int) error
}
