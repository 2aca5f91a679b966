package database

import "time"

// Database Connection Pool Constants
const (
	// DefaultMinConnections is the minimum number of idle connections kept open
	DefaultMinConnections = 2

	// DefaultConnectTimeout bounds pool creation and the initial ping
	DefaultConnectTimeout = 10 * time.Second
)

// Error Messages - Database Operations
const (
	ErrMsgFailedToParseConnString = "failed to parse connection string"
	ErrMsgFailedToCreatePool      = "failed to create connection pool"
	ErrMsgFailedToPingDatabase    = "failed to ping database"
	ErrMsgFailedToRunMigrations   = "failed to run migrations"
)

// Log Messages
const (
	LogMsgConnectedToDatabase = "Connected to the database"
	LogMsgMigrationsApplied   = "Database migrations applied"
)
