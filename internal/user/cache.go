package user

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/MyteScripts/investbot/internal/domain"
)

// CacheSchemaVersion is bumped when the cached shape changes so stale
// entries self-invalidate across deploys
const CacheSchemaVersion = "1.0"

type cachedUserEntry struct {
	Version  string       `json:"version"`
	User     *domain.User `json:"user"`
	CachedAt time.Time    `json:"cached_at"`
}

// userCache is an in-memory LRU for Discord-ID user lookups, the hottest
// query in the system since every command resolves its caller first.
type userCache struct {
	lru *expirable.LRU[string, *cachedUserEntry]
}

func newUserCache(size int, ttl time.Duration) *userCache {
	return &userCache{
		lru: expirable.NewLRU[string, *cachedUserEntry](size, nil, ttl),
	}
}

func (c *userCache) Get(discordID string) (*domain.User, bool) {
	entry, found := c.lru.Get(discordID)
	if !found {
		return nil, false
	}
	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(discordID)
		return nil, false
	}
	return entry.User, true
}

func (c *userCache) Set(discordID string, user *domain.User) {
	c.lru.Add(discordID, &cachedUserEntry{
		Version:  CacheSchemaVersion,
		User:     user,
		CachedAt: time.Now(),
	})
}

func (c *userCache) Invalidate(discordID string) {
	c.lru.Remove(discordID)
}
