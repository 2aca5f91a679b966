package repository

import "context"

// Wallet defines the interface for coin ledger persistence
type Wallet interface {
	// GetBalance returns the user's current coin balance
	GetBalance(ctx context.Context, userID string) (int, error)

	// BeginTx starts a transaction for wallet operations
	BeginTx(ctx context.Context) (WalletTx, error)
}

// WalletTx defines the interface for wallet transactions
type WalletTx interface {
	Tx

	// GetBalanceForUpdate returns the balance with the row locked
	GetBalanceForUpdate(ctx context.Context, userID string) (int, error)

	// SetBalance overwrites the user's balance
	SetBalance(ctx context.Context, userID string, balance int) error
}
