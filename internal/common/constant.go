// Package common contains shared constants and small helpers used across
// insulA components.
package common

const (
	// RequestIDHeaderName correlates client logs with server logs.
	RequestIDHeaderName = "X-Request-ID"

	// DefaultSessionKey names the persisted session record.
	DefaultSessionKey = "insula.session"
)
