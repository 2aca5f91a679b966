package wallet

import (
	"context"
	"fmt"

	"github.com/MyteScripts/investbot/internal/domain"
	"github.com/MyteScripts/investbot/internal/repository"
)

// Service defines the coin wallet interface
type Service interface {
	// GetBalance returns the user's current coin balance
	GetBalance(ctx context.Context, discordID string) (int, error)

	// Grant credits coins to the user and returns the new balance.
	// Negative amounts debit, failing with domain.ErrInsufficientFunds
	// rather than going below zero.
	Grant(ctx context.Context, discordID string, amount int) (int, error)
}

type service struct {
	repo     repository.Wallet
	userRepo repository.User
}

// NewService creates a new wallet service
func NewService(repo repository.Wallet, userRepo repository.User) Service {
	return &service{repo: repo, userRepo: userRepo}
}

func (s *service) GetBalance(ctx context.Context, discordID string) (int, error) {
	user, err := s.userRepo.GetUserByDiscordID(ctx, discordID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgGetUserFailed, err)
	}
	return s.repo.GetBalance(ctx, user.ID)
}

func (s *service) Grant(ctx context.Context, discordID string, amount int) (int, error) {
	user, err := s.userRepo.GetUserByDiscordID(ctx, discordID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgGetUserFailed, err)
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgBeginTxFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	balance, err := tx.GetBalanceForUpdate(ctx, user.ID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgLockBalanceFailed, err)
	}

	newBalance := balance + amount
	if newBalance < 0 {
		return 0, fmt.Errorf("%w: have %d, need %d", domain.ErrInsufficientFunds, balance, -amount)
	}

	if err := tx.SetBalance(ctx, user.ID, newBalance); err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgSetBalanceFailed, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgCommitFailed, err)
	}

	return newBalance, nil
}
