package repository

import (
	"context"

	"github.com/MyteScripts/investbot/internal/logger"
)

// ErrMsgTxClosed is pgx's error string for rolling back a finished transaction
const ErrMsgTxClosed = "tx is closed"

// SafeRollback rolls back a transaction, logging unexpected failures.
// Intended for use with defer; rolling back an already-committed transaction
// is not an error worth reporting.
func SafeRollback(ctx context.Context, tx Tx) {
	if err := tx.Rollback(ctx); err != nil {
		if err.Error() != ErrMsgTxClosed {
			logger.FromContext(ctx).Error("Failed to rollback transaction", "error", err)
		}
	}
}
