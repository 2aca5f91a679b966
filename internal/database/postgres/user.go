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

// UserRepository implements repository.User backed by PostgreSQL
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new PostgreSQL user repository
func NewUserRepository(db *pgxpool.Pool) repository.User {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetUserByDiscordID(ctx context.Context, discordID string) (*domain.User, error) {
	return scanUser(r.db.QueryRow(ctx, SQLSelectUserByDiscordID, discordID))
}

func (r *UserRepository) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return scanUser(r.db.QueryRow(ctx, SQLSelectUserByID, userID))
}

// UpsertUser creates the user and their wallet row if missing. The generated
// user ID and creation time are written back to the passed user.
func (r *UserRepository) UpsertUser(ctx context.Context, user *domain.User) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer tx.Rollback(ctx)

	row := tx.QueryRow(ctx, SQLUpsertUser, user.Username, user.DiscordID)
	if err := row.Scan(&user.ID, &user.CreatedAt); err != nil {
		return fmt.Errorf(ErrMsgScanFailed, err)
	}

	if _, err := tx.Exec(ctx, SQLEnsureWallet, user.ID); err != nil {
		return fmt.Errorf(ErrMsgExecFailed, err)
	}

	return tx.Commit(ctx)
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(&user.ID, &user.Username, &user.DiscordID, &user.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf(ErrMsgScanFailed, err)
	}
	return &user, nil
}
