package repository

import "context"

// Tx defines the interface for a database transaction
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}
