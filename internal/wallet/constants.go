package wallet

// Error message constants
const (
	ErrMsgBeginTxFailed     = "failed to begin transaction"
	ErrMsgCommitFailed      = "failed to commit transaction"
	ErrMsgGetUserFailed     = "failed to get user"
	ErrMsgLockBalanceFailed = "failed to lock balance"
	ErrMsgSetBalanceFailed  = "failed to set balance"
)
