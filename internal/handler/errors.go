package handler

// Generic HTTP error messages for client responses.
// These intentionally do not expose internal error details.
const (
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	ErrMsgMissingQueryParam = "Missing %s query parameter"

	ErrMsgRegisterUserFailed = "Failed to register user"
	ErrMsgGetBalanceFailed   = "Failed to get balance"
	ErrMsgGetPortfolioFailed = "Failed to get portfolio"
)

// Success messages for API responses
const (
	MsgUserRegisteredSuccess = "User registered successfully"
)
