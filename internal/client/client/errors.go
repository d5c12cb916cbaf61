package client

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnauthorized matches any AuthError carrying 401 or 403.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrMalformedResponse is returned when a 2xx body cannot be decoded.
	ErrMalformedResponse = errors.New("malformed response body")
)

// AuthError is returned when the server was reached but answered with a
// non-success status. Message comes from the `{message}` body or, when the
// server did not send one, from the per-operation fallback.
type AuthError struct {
	Op      string
	Status  int
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}

// Is lets callers match auth rejections with errors.Is(err, ErrUnauthorized).
func (e *AuthError) Is(target error) bool {
	if target != ErrUnauthorized {
		return false
	}
	return e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden
}

// TransportError is returned when no response was obtained at all.
// There is no server message to surface.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: transport error: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
