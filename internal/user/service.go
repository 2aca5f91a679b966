package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/MyteScripts/investbot/internal/domain"
	"github.com/MyteScripts/investbot/internal/logger"
	"github.com/MyteScripts/investbot/internal/repository"
)

// Service defines the user account interface
type Service interface {
	// Register creates the user if missing, refreshing the username
	// otherwise. New users start with a coin grant.
	Register(ctx context.Context, discordID, username string) (*domain.User, error)

	// GetByDiscordID resolves a registered user, or domain.ErrUserNotFound
	GetByDiscordID(ctx context.Context, discordID string) (*domain.User, error)
}

type service struct {
	repo       repository.User
	walletRepo repository.Wallet
	cache      *userCache
}

// NewService creates a new user service
func NewService(repo repository.User, walletRepo repository.Wallet) Service {
	return &service{
		repo:       repo,
		walletRepo: walletRepo,
		cache:      newUserCache(CacheSize, CacheTTL),
	}
}

func (s *service) Register(ctx context.Context, discordID, username string) (*domain.User, error) {
	if discordID == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgDiscordIDRequired)
	}
	if username == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgUsernameRequired)
	}

	existing, err := s.repo.GetUserByDiscordID(ctx, discordID)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("%s: %w", ErrMsgLookupFailed, err)
	}
	isNew := existing == nil

	user := &domain.User{Username: username, DiscordID: discordID}
	if err := s.repo.UpsertUser(ctx, user); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgUpsertFailed, err)
	}

	if isNew {
		if err := s.grantStartingBalance(ctx, user.ID); err != nil {
			return nil, err
		}
		logger.FromContext(ctx).Info(LogMsgUserRegistered,
			"user_id", user.ID, "username", username)
	}

	s.cache.Set(discordID, user)
	return user, nil
}

func (s *service) GetByDiscordID(ctx context.Context, discordID string) (*domain.User, error) {
	if user, ok := s.cache.Get(discordID); ok {
		return user, nil
	}

	user, err := s.repo.GetUserByDiscordID(ctx, discordID)
	if err != nil {
		return nil, err
	}

	s.cache.Set(discordID, user)
	return user, nil
}

func (s *service) grantStartingBalance(ctx context.Context, userID string) error {
	tx, err := s.walletRepo.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgBeginTxFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	if err := tx.SetBalance(ctx, userID, StartingBalance); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgSetBalanceFailed, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgCommitFailed, err)
	}
	return nil
}
