package venture

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/MyteScripts/investbot/internal/domain"
	"github.com/MyteScripts/investbot/internal/event"
	"github.com/MyteScripts/investbot/internal/repository"
)

// fakeVentureRepo is an in-memory repository.Venture for service tests.
// Transactions mutate shared state directly; Commit/Rollback only track
// whether the service finished the transaction properly.
type fakeVentureRepo struct {
	mu         sync.Mutex
	ventures   map[uuid.UUID]*domain.Venture
	balances   map[string]int
	checkpoint time.Time
	beginErr   error
	commitErr  error
}

func newFakeVentureRepo() *fakeVentureRepo {
	return &fakeVentureRepo{
		ventures: make(map[uuid.UUID]*domain.Venture),
		balances: make(map[string]int),
	}
}

func (r *fakeVentureRepo) addVenture(v domain.Venture) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ventures[v.ID] = &v
}

func (r *fakeVentureRepo) venture(id uuid.UUID) *domain.Venture {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ventures[id]
}

func (r *fakeVentureRepo) GetVenturesForUser(_ context.Context, userID string) ([]domain.Venture, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Venture
	for _, v := range r.ventures {
		if v.UserID == userID {
			out = append(out, *v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TypeKey < out[j].TypeKey })
	return out, nil
}

func (r *fakeVentureRepo) GetOwnerIDs(_ context.Context) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	seen := make(map[string]bool)
	var ids []string
	for _, v := range r.ventures {
		if !seen[v.UserID] {
			seen[v.UserID] = true
			ids = append(ids, v.UserID)
		}
	}
	sort.Strings(ids)
	return ids, nil
}

func (r *fakeVentureRepo) GetSweepCheckpoint(_ context.Context) (time.Time, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.checkpoint, nil
}

func (r *fakeVentureRepo) SetSweepCheckpoint(_ context.Context, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkpoint = at
	return nil
}

func (r *fakeVentureRepo) BeginTx(_ context.Context) (repository.VentureTx, error) {
	if r.beginErr != nil {
		return nil, r.beginErr
	}
	return &fakeVentureTx{repo: r}, nil
}

type fakeVentureTx struct {
	repo      *fakeVentureRepo
	committed bool
}

func (t *fakeVentureTx) Commit(_ context.Context) error {
	if t.repo.commitErr != nil {
		return t.repo.commitErr
	}
	t.committed = true
	return nil
}

func (t *fakeVentureTx) Rollback(_ context.Context) error {
	if t.committed {
		return errors.New(repository.ErrMsgTxClosed)
	}
	return nil
}

func (t *fakeVentureTx) GetVentureForUpdate(_ context.Context, userID, typeKey string) (*domain.Venture, error) {
	t.repo.mu.Lock()
	defer t.repo.mu.Unlock()
	for _, v := range t.repo.ventures {
		if v.UserID == userID && v.TypeKey == typeKey {
			copied := *v
			return &copied, nil
		}
	}
	return nil, domain.ErrVentureNotFound
}

func (t *fakeVentureTx) GetVenturesForUserForUpdate(ctx context.Context, userID string) ([]domain.Venture, error) {
	return t.repo.GetVenturesForUser(ctx, userID)
}

func (t *fakeVentureTx) CreateVenture(_ context.Context, venture *domain.Venture) error {
	t.repo.mu.Lock()
	defer t.repo.mu.Unlock()
	for _, v := range t.repo.ventures {
		if v.UserID == venture.UserID && v.TypeKey == venture.TypeKey {
			return domain.ErrAlreadyOwned
		}
	}
	copied := *venture
	t.repo.ventures[venture.ID] = &copied
	return nil
}

func (t *fakeVentureTx) UpdateVenture(_ context.Context, venture *domain.Venture) error {
	t.repo.mu.Lock()
	defer t.repo.mu.Unlock()
	if _, ok := t.repo.ventures[venture.ID]; !ok {
		return domain.ErrVentureNotFound
	}
	copied := *venture
	t.repo.ventures[venture.ID] = &copied
	return nil
}

func (t *fakeVentureTx) DeleteVenture(_ context.Context, id uuid.UUID) error {
	t.repo.mu.Lock()
	defer t.repo.mu.Unlock()
	delete(t.repo.ventures, id)
	return nil
}

func (t *fakeVentureTx) GetBalanceForUpdate(_ context.Context, userID string) (int, error) {
	t.repo.mu.Lock()
	defer t.repo.mu.Unlock()
	balance, ok := t.repo.balances[userID]
	if !ok {
		return 0, domain.ErrUserNotFound
	}
	return balance, nil
}

func (t *fakeVentureTx) SetBalance(_ context.Context, userID string, balance int) error {
	t.repo.mu.Lock()
	defer t.repo.mu.Unlock()
	t.repo.balances[userID] = balance
	return nil
}

// fakeUserRepo is an in-memory repository.User
type fakeUserRepo struct {
	users map[string]*domain.User // keyed by Discord ID
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*domain.User)}
}

func (r *fakeUserRepo) GetUserByDiscordID(_ context.Context, discordID string) (*domain.User, error) {
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
	r.users[user.DiscordID] = user
	return nil
}

// recordingBus captures published events
type recordingBus struct {
	mu     sync.Mutex
	events []event.Event
}

func (b *recordingBus) Publish(_ context.Context, evt event.Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, evt)
	return nil
}

func (b *recordingBus) Subscribe(event.Type, event.Handler) {}

func (b *recordingBus) ofType(t event.Type) []event.Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []event.Event
	for _, evt := range b.events {
		if evt.Type == t {
			out = append(out, evt)
		}
	}
	return out
}
