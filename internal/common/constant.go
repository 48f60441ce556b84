package common

const (
	// AuthorizationHeaderName carries the bearer credential on gateway calls.
	AuthorizationHeaderName = "Authorization"

	// RequestIDHeaderName carries a per-call id used to correlate log lines.
	RequestIDHeaderName = "X-Request-ID"

	// Metadata keys for the persisted session.
	SessionTokenKey = "token"
	SessionUserKey  = "user"
)
