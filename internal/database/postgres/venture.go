package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MyteScripts/investbot/internal/domain"
	"github.com/MyteScripts/investbot/internal/repository"
)

const pgErrUniqueViolation = "23505"

// VentureRepository implements repository.Venture backed by PostgreSQL
type VentureRepository struct {
	db *pgxpool.Pool
}

// NewVentureRepository creates a new PostgreSQL venture repository
func NewVentureRepository(db *pgxpool.Pool) repository.Venture {
	return &VentureRepository{db: db}
}

func (r *VentureRepository) GetVenturesForUser(ctx context.Context, userID string) ([]domain.Venture, error) {
	rows, err := r.db.Query(ctx, SQLSelectVenturesForUser, userID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgQueryFailed, err)
	}
	defer rows.Close()
	return scanVentures(rows)
}

func (r *VentureRepository) GetOwnerIDs(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, SQLSelectOwnerIDs)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgQueryFailed, err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf(ErrMsgScanFailed, err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *VentureRepository) GetSweepCheckpoint(ctx context.Context) (time.Time, error) {
	var at time.Time
	err := r.db.QueryRow(ctx, SQLSelectSweepCheckpoint).Scan(&at)
	if errors.Is(err, pgx.ErrNoRows) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, fmt.Errorf(ErrMsgScanFailed, err)
	}
	return at, nil
}

func (r *VentureRepository) SetSweepCheckpoint(ctx context.Context, at time.Time) error {
	if _, err := r.db.Exec(ctx, SQLUpsertSweepCheckpoint, at); err != nil {
		return fmt.Errorf(ErrMsgExecFailed, err)
	}
	return nil
}

func (r *VentureRepository) BeginTx(ctx context.Context) (repository.VentureTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	return &ventureTx{tx: tx}, nil
}

type ventureTx struct {
	tx pgx.Tx
}

func (t *ventureTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t *ventureTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

func (t *ventureTx) GetVentureForUpdate(ctx context.Context, userID, typeKey string) (*domain.Venture, error) {
	row := t.tx.QueryRow(ctx, SQLSelectVentureForUpdate, userID, typeKey)
	venture, err := scanVenture(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrVentureNotFound
	}
	if err != nil {
		return nil, fmt.Errorf(ErrMsgScanFailed, err)
	}
	return venture, nil
}

func (t *ventureTx) GetVenturesForUserForUpdate(ctx context.Context, userID string) ([]domain.Venture, error) {
	rows, err := t.tx.Query(ctx, SQLSelectVenturesForUserForUpdate, userID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgQueryFailed, err)
	}
	defer rows.Close()
	return scanVentures(rows)
}

func (t *ventureTx) CreateVenture(ctx context.Context, venture *domain.Venture) error {
	_, err := t.tx.Exec(ctx, SQLInsertVenture,
		venture.ID,
		venture.UserID,
		venture.TypeKey,
		venture.PurchasedAt,
		venture.Maintenance,
		venture.Accumulated,
		venture.RiskEvent,
		venture.RiskEventType,
		venture.LastUpdate,
		nullableTime(venture.LastCollectedAt),
	)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgErrUniqueViolation {
		return domain.ErrAlreadyOwned
	}
	if err != nil {
		return fmt.Errorf(ErrMsgExecFailed, err)
	}
	return nil
}

func (t *ventureTx) UpdateVenture(ctx context.Context, venture *domain.Venture) error {
	tag, err := t.tx.Exec(ctx, SQLUpdateVenture,
		venture.ID,
		venture.Maintenance,
		venture.Accumulated,
		venture.RiskEvent,
		venture.RiskEventType,
		venture.LastUpdate,
		nullableTime(venture.LastCollectedAt),
	)
	if err != nil {
		return fmt.Errorf(ErrMsgExecFailed, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrVentureNotFound
	}
	return nil
}

func (t *ventureTx) DeleteVenture(ctx context.Context, id uuid.UUID) error {
	if _, err := t.tx.Exec(ctx, SQLDeleteVenture, id); err != nil {
		return fmt.Errorf(ErrMsgExecFailed, err)
	}
	return nil
}

func (t *ventureTx) GetBalanceForUpdate(ctx context.Context, userID string) (int, error) {
	return balanceForUpdate(ctx, t.tx, userID)
}

func (t *ventureTx) SetBalance(ctx context.Context, userID string, balance int) error {
	return setBalance(ctx, t.tx, userID, balance)
}

func scanVenture(row pgx.Row) (*domain.Venture, error) {
	var v domain.Venture
	var collected *time.Time
	err := row.Scan(
		&v.ID,
		&v.UserID,
		&v.TypeKey,
		&v.PurchasedAt,
		&v.Maintenance,
		&v.Accumulated,
		&v.RiskEvent,
		&v.RiskEventType,
		&v.LastUpdate,
		&collected,
	)
	if err != nil {
		return nil, err
	}
	if collected != nil {
		v.LastCollectedAt = *collected
	}
	return &v, nil
}

func scanVentures(rows pgx.Rows) ([]domain.Venture, error) {
	var ventures []domain.Venture
	for rows.Next() {
		venture, err := scanVenture(rows)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgScanFailed, err)
		}
		ventures = append(ventures, *venture)
	}
	return ventures, rows.Err()
}

// nullableTime maps the zero time to NULL so "never collected" round-trips
func nullableTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
