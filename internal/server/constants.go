package server

// HTTP error messages for middleware responses
const (
	ErrMsgUnauthorized    = "Unauthorized"
	ErrMsgTooManyRequests = "Too Many Requests"
)

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
	LogMsgAuthFailed       = "Authentication failed"
	LogMsgHighRequestRate  = "Blocking high request rate"
)

// HTTP header names
const (
	HeaderAPIKey         = "X-API-Key"
	HeaderForwardedFor   = "X-Forwarded-For"
	HeaderContentType    = "X-Content-Type-Options"
	HeaderFrameOptions   = "X-Frame-Options"
	HeaderReferrerPolicy = "Referrer-Policy"
)

// Security header values
const (
	HeaderValueNoSniff              = "nosniff"
	HeaderValueSameOrigin           = "SAMEORIGIN"
	HeaderValueReferrerStrictOrigin = "strict-origin-when-cross-origin"
)

// Rate limiting
const (
	// RateLimitWindowRequests is the per-IP request budget per window
	RateLimitWindowRequests = 1000

	// FailedAuthAlertThreshold triggers a security log entry
	FailedAuthAlertThreshold = 5
)

// MaxRequestBodyBytes caps request body size (1MB)
const MaxRequestBodyBytes = 1 << 20

// PublicPaths bypass API-key authentication
var PublicPaths = []string{
	"/swagger/",
	"/healthz",
	"/readyz",
	"/metrics",
}
