package server

import "time"

// =============================================================================
// HTTP Server Configuration
// =============================================================================

const (
	// DefaultMaxBodyBytes caps request bodies. Quest filters and quest_times maps
	// are the largest inputs.
	DefaultMaxBodyBytes int64 = 1 << 20

	// ReadHeaderTimeout bounds slow clients
	ReadHeaderTimeout = 5 * time.Second

	// WriteTimeout leaves room for ranking every quest across all ten section IDs
	WriteTimeout = 60 * time.Second

	// IdleTimeout closes idle keep-alive connections
	IdleTimeout = 120 * time.Second
)

// =============================================================================
// Rate Limiting
// =============================================================================

const (
	// RateLimitWindow is the window requests and failed auth attempts are counted in
	RateLimitWindow = 5 * time.Minute

	// DefaultMaxRequestsPerWindow is the per-IP request budget for one window
	DefaultMaxRequestsPerWindow = 1000

	// FailedAuthAlertThreshold is the failed attempt count that raises an alert
	FailedAuthAlertThreshold = 5

	// HighRateLogEvery throttles the blocked-request alert
	HighRateLogEvery = 100
)

// HTTP error messages for middleware responses
const (
	ErrMsgUnauthorized    = "Unauthorized"
	ErrMsgTooManyRequests = "Too Many Requests"
)

// Security alert message templates
const (
	SecurityAlertFailedAuth = "⚠️ SECURITY ALERT: Multiple failed authentication attempts"
	SecurityAlertHighRate   = "⚠️ SECURITY ALERT: Blocking high request rate"
)

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
	LogMsgRequestHeaders   = "Request headers"
	LogMsgAuthFailed       = "Authentication failed"
	LogMsgAuthDisabled     = "API key not set, /api/v1 is open"
)

// HTTP header names
const (
	HeaderAPIKey         = "X-API-Key"
	HeaderAuthorization  = "Authorization"
	HeaderForwardedFor   = "X-Forwarded-For"
	HeaderRequestID      = "X-Request-ID"
	HeaderContentType    = "X-Content-Type-Options"
	HeaderFrameOptions   = "X-Frame-Options"
	HeaderXSSProtection  = "X-XSS-Protection"
	HeaderReferrerPolicy = "Referrer-Policy"
)

// Security header values
const (
	HeaderValueNoSniff              = "nosniff"
	HeaderValueSameOrigin           = "SAMEORIGIN"
	HeaderValueXSSBlock             = "1; mode=block"
	HeaderValueReferrerStrictOrigin = "strict-origin-when-cross-origin"
)

// PublicPaths are path prefixes that bypass authentication
var PublicPaths = []string{
	"/swagger/",
	"/healthz",
	"/readyz",
	"/metrics",
	"/version",
}

// quietPaths are probed often enough that request logging skips them
var quietPaths = []string{
	"/healthz",
	"/readyz",
	"/metrics",
}

// Header redaction marker
const (
	RedactedValue = "[REDACTED]"
)
