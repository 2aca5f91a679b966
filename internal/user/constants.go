package user

import "time"

// Cache tuning
const (
	// CacheSize is the maximum number of cached user lookups
	CacheSize = 1000

	// CacheTTL is how long a cached user lookup stays valid
	CacheTTL = 5 * time.Minute
)

// StartingBalance is the coin grant every new user registers with
const StartingBalance = 500

// Error message constants
const (
	ErrMsgUpsertFailed      = "failed to upsert user"
	ErrMsgBeginTxFailed     = "failed to begin transaction"
	ErrMsgCommitFailed      = "failed to commit transaction"
	ErrMsgSetBalanceFailed  = "failed to set starting balance"
	ErrMsgLookupFailed      = "failed to look up user"
	ErrMsgUsernameRequired  = "username is required"
	ErrMsgDiscordIDRequired = "discord id is required"
)

// Log message constants
const (
	LogMsgUserRegistered = "User registered"
)
