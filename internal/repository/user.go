package repository

import (
	"context"

	"github.com/MyteScripts/investbot/internal/domain"
)

// User defines the interface for user persistence
type User interface {
	// GetUserByDiscordID returns the user linked to the Discord account,
	// or domain.ErrUserNotFound
	GetUserByDiscordID(ctx context.Context, discordID string) (*domain.User, error)

	// GetUserByID returns the user by internal ID, or domain.ErrUserNotFound
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// UpsertUser creates the user (and their wallet) if missing, updating the
	// username otherwise
	UpsertUser(ctx context.Context, user *domain.User) error
}
