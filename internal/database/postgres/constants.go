package postgres

// =============================================================================
// SQL Query Constants - Users
// =============================================================================

const (
	// SQLSelectUserByDiscordID retrieves a user by their Discord account ID
	SQLSelectUserByDiscordID = `
		SELECT user_id, username, discord_id, created_at
		FROM users
		WHERE discord_id = $1
	`

	// SQLSelectUserByID retrieves a user by internal ID
	SQLSelectUserByID = `
		SELECT user_id, username, discord_id, created_at
		FROM users
		WHERE user_id = $1
	`

	// SQLUpsertUser inserts a user or refreshes the username on conflict
	SQLUpsertUser = `
		INSERT INTO users (username, discord_id)
		VALUES ($1, $2)
		ON CONFLICT (discord_id) DO UPDATE
		SET username = EXCLUDED.username, updated_at = NOW()
		RETURNING user_id, created_at
	`

	// SQLEnsureWallet creates the user's wallet row if missing
	SQLEnsureWallet = `
		INSERT INTO user_wallets (user_id)
		VALUES ($1)
		ON CONFLICT (user_id) DO NOTHING
	`
)

// =============================================================================
// SQL Query Constants - Wallets
// =============================================================================

const (
	// SQLSelectBalance retrieves a wallet balance
	SQLSelectBalance = `SELECT balance FROM user_wallets WHERE user_id = $1`

	// SQLSelectBalanceForUpdate retrieves a wallet balance with the row locked
	SQLSelectBalanceForUpdate = `SELECT balance FROM user_wallets WHERE user_id = $1 FOR UPDATE`

	// SQLUpdateBalance overwrites a wallet balance
	SQLUpdateBalance = `UPDATE user_wallets SET balance = $2, updated_at = NOW() WHERE user_id = $1`
)

// =============================================================================
// SQL Query Constants - Ventures
// =============================================================================

const (
	ventureColumns = `venture_id, user_id, type_key, purchased_at, maintenance,
		accumulated, risk_event, risk_event_type, last_update, last_collected_at`

	// SQLSelectVenturesForUser retrieves all ventures owned by a user
	SQLSelectVenturesForUser = `
		SELECT ` + ventureColumns + `
		FROM user_ventures
		WHERE user_id = $1
		ORDER BY purchased_at
	`

	// SQLSelectVenturesForUserForUpdate retrieves a user's ventures with rows locked
	SQLSelectVenturesForUserForUpdate = `
		SELECT ` + ventureColumns + `
		FROM user_ventures
		WHERE user_id = $1
		ORDER BY purchased_at
		FOR UPDATE
	`

	// SQLSelectVentureForUpdate retrieves one venture with the row locked
	SQLSelectVentureForUpdate = `
		SELECT ` + ventureColumns + `
		FROM user_ventures
		WHERE user_id = $1 AND type_key = $2
		FOR UPDATE
	`

	// SQLSelectOwnerIDs retrieves the distinct IDs of users owning ventures
	SQLSelectOwnerIDs = `SELECT DISTINCT user_id FROM user_ventures`

	// SQLInsertVenture creates a venture row
	SQLInsertVenture = `
		INSERT INTO user_ventures (venture_id, user_id, type_key, purchased_at,
			maintenance, accumulated, risk_event, risk_event_type, last_update, last_collected_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	// SQLUpdateVenture persists a venture's mutable fields
	SQLUpdateVenture = `
		UPDATE user_ventures
		SET maintenance = $2, accumulated = $3, risk_event = $4,
			risk_event_type = $5, last_update = $6, last_collected_at = $7
		WHERE venture_id = $1
	`

	// SQLDeleteVenture removes a venture row
	SQLDeleteVenture = `DELETE FROM user_ventures WHERE venture_id = $1`

	// SQLSelectSweepCheckpoint retrieves the global sweep checkpoint
	SQLSelectSweepCheckpoint = `SELECT last_sweep_at FROM venture_sweeps WHERE id = 1`

	// SQLUpsertSweepCheckpoint advances the global sweep checkpoint
	SQLUpsertSweepCheckpoint = `
		INSERT INTO venture_sweeps (id, last_sweep_at)
		VALUES (1, $1)
		ON CONFLICT (id) DO UPDATE
		SET last_sweep_at = EXCLUDED.last_sweep_at
	`
)

// =============================================================================
// Error Message Constants
// =============================================================================

const (
	ErrMsgBeginTransactionFailed = "failed to begin transaction: %w"
	ErrMsgQueryFailed            = "query failed: %w"
	ErrMsgScanFailed             = "failed to scan row: %w"
	ErrMsgExecFailed             = "exec failed: %w"
)
