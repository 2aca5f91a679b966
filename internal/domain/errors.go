package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// User errors
	ErrMsgUserNotFound = "user not found"

	// Wallet errors
	ErrMsgInsufficientFunds = "insufficient funds"

	// Venture errors
	ErrMsgVentureNotFound    = "venture not found"
	ErrMsgUnknownVentureType = "unknown venture type"
	ErrMsgAlreadyOwned       = "venture of this type already owned"
	ErrMsgRiskEventActive    = "venture has an unresolved incident"
	ErrMsgNoRiskEvent        = "venture has no incident to repair"
	ErrMsgCollectOnCooldown  = "collection on cooldown"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// User errors
	ErrUserNotFound = errors.New(ErrMsgUserNotFound)

	// Wallet errors
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)

	// Venture errors
	ErrVentureNotFound    = errors.New(ErrMsgVentureNotFound)
	ErrUnknownVentureType = errors.New(ErrMsgUnknownVentureType)
	ErrAlreadyOwned       = errors.New(ErrMsgAlreadyOwned)
	ErrRiskEventActive    = errors.New(ErrMsgRiskEventActive)
	ErrNoRiskEvent        = errors.New(ErrMsgNoRiskEvent)
	ErrCollectOnCooldown  = errors.New(ErrMsgCollectOnCooldown)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
