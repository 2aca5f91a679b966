package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MyteScripts/investbot/internal/domain"
	"github.com/MyteScripts/investbot/internal/repository"
)

type fakeUserRepo struct {
	users   map[string]*domain.User
	lookups int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*domain.User)}
}

func (r *fakeUserRepo) GetUserByDiscordID(_ context.Context, discordID string) (*domain.User, error) {
	r.lookups++
	user, ok := r.users[discordID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) GetUserByID(_ context.Context, userID string) (*domain.User, error) {
	for _, user := range r.users {
		if user.ID == userID {
			return user, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *fakeUserRepo) UpsertUser(_ context.Context, user *domain.User) error {
	if existing, ok := r.users[user.DiscordID]; ok {
		existing.Username = user.Username
		*user = *existing
		return nil
	}
	user.ID = uuid.NewString()
	user.CreatedAt = time.Now()
	copied := *user
	r.users[user.DiscordID] = &copied
	return nil
}

type fakeWalletRepo struct {
	balances map[string]int
}

func (r *fakeWalletRepo) GetBalance(_ context.Context, userID string) (int, error) {
	return r.balances[userID], nil
}

func (r *fakeWalletRepo) BeginTx(_ context.Context) (repository.WalletTx, error) {
	return &fakeWalletTx{repo: r}, nil
}

type fakeWalletTx struct {
	repo      *fakeWalletRepo
	committed bool
}

func (t *fakeWalletTx) Commit(_ context.Context) error {
	t.committed = true
	return nil
}

func (t *fakeWalletTx) Rollback(_ context.Context) error {
	if t.committed {
		return errors.New(repository.ErrMsgTxClosed)
	}
	return nil
}

func (t *fakeWalletTx) GetBalanceForUpdate(_ context.Context, userID string) (int, error) {
	return t.repo.balances[userID], nil
}

func (t *fakeWalletTx) SetBalance(_ context.Context, userID string, balance int) error {
	t.repo.balances[userID] = balance
	return nil
}

func TestRegister_NewUser(t *testing.T) {
	repo := newFakeUserRepo()
	wallets := &fakeWalletRepo{balances: make(map[string]int)}
	svc := NewService(repo, wallets)

	user, err := svc.Register(context.Background(), "discord-123", "alice")
	require.NoError(t, err)

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, StartingBalance, wallets.balances[user.ID])
}

func TestRegister_ExistingUserKeepsBalance(t *testing.T) {
	repo := newFakeUserRepo()
	wallets := &fakeWalletRepo{balances: make(map[string]int)}
	svc := NewService(repo, wallets)

	first, err := svc.Register(context.Background(), "discord-123", "alice")
	require.NoError(t, err)
	wallets.balances[first.ID] = 9999

	second, err := svc.Register(context.Background(), "discord-123", "alice_renamed")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "alice_renamed", second.Username)
	// Re-registering never resets the wallet
	assert.Equal(t, 9999, wallets.balances[first.ID])
}

func TestRegister_ValidatesInput(t *testing.T) {
	svc := NewService(newFakeUserRepo(), &fakeWalletRepo{balances: make(map[string]int)})

	_, err := svc.Register(context.Background(), "", "alice")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.Register(context.Background(), "discord-123", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGetByDiscordID_CachesLookups(t *testing.T) {
	repo := newFakeUserRepo()
	wallets := &fakeWalletRepo{balances: make(map[string]int)}
	svc := NewService(repo, wallets)

	_, err := svc.Register(context.Background(), "discord-123", "alice")
	require.NoError(t, err)
	baseline := repo.lookups

	for i := 0; i < 3; i++ {
		user, err := svc.GetByDiscordID(context.Background(), "discord-123")
		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
	}

	// Register primed the cache; repeat lookups never hit the repo
	assert.Equal(t, baseline, repo.lookups)
}

func TestGetByDiscordID_NotFound(t *testing.T) {
	svc := NewService(newFakeUserRepo(), &fakeWalletRepo{balances: make(map[string]int)})

	_, err := svc.GetByDiscordID(context.Background(), "discord-stranger")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
