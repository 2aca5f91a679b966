package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MyteScripts/investbot/internal/domain"
	"github.com/MyteScripts/investbot/internal/repository"
)

// WalletRepository implements repository.Wallet backed by PostgreSQL
type WalletRepository struct {
	db *pgxpool.Pool
}

// NewWalletRepository creates a new PostgreSQL wallet repository
func NewWalletRepository(db *pgxpool.Pool) repository.Wallet {
	return &WalletRepository{db: db}
}

func (r *WalletRepository) GetBalance(ctx context.Context, userID string) (int, error) {
	var balance int
	err := r.db.QueryRow(ctx, SQLSelectBalance, userID).Scan(&balance)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, domain.ErrUserNotFound
	}
	if err != nil {
		return 0, fmt.Errorf(ErrMsgScanFailed, err)
	}
	return balance, nil
}

func (r *WalletRepository) BeginTx(ctx context.Context) (repository.WalletTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	return &walletTx{tx: tx}, nil
}

type walletTx struct {
	tx pgx.Tx
}

func (t *walletTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t *walletTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

func (t *walletTx) GetBalanceForUpdate(ctx context.Context, userID string) (int, error) {
	return balanceForUpdate(ctx, t.tx, userID)
}

func (t *walletTx) SetBalance(ctx context.Context, userID string, balance int) error {
	return setBalance(ctx, t.tx, userID, balance)
}

// Shared between walletTx and ventureTx: venture operations move coins inside
// the same transaction that mutates the venture rows.

func balanceForUpdate(ctx context.Context, tx pgx.Tx, userID string) (int, error) {
	var balance int
	err := tx.QueryRow(ctx, SQLSelectBalanceForUpdate, userID).Scan(&balance)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, domain.ErrUserNotFound
	}
	if err != nil {
		return 0, fmt.Errorf(ErrMsgScanFailed, err)
	}
	return balance, nil
}

func setBalance(ctx context.Context, tx pgx.Tx, userID string, balance int) error {
	tag, err := tx.Exec(ctx, SQLUpdateBalance, userID, balance)
	if err != nil {
		return fmt.Errorf(ErrMsgExecFailed, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
