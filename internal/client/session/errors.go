package session

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/insula/internal/client/client"
)

var (
	// ErrNotAuthenticated is returned by profile operations without a token.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrInvalidTarget is returned for a glucose range that isn't 0 < min < max.
	ErrInvalidTarget = errors.New("invalid glucose target range")
)

// User-facing messages stored in State.Error.
const (
	MsgConnectivity      = "Unable to reach the server. Check your connection and try again."
	MsgIncompleteProfile = "The server returned an incomplete profile."
)

// InvalidProfileError means the server answered 2xx but the payload failed
// the completeness check (Missing lists the absent fields) or could not be
// decoded at all (Err set).
type InvalidProfileError struct {
	Op      string
	Missing []string
	Err     error
}

func (e *InvalidProfileError) Error() string {
	if len(e.Missing) > 0 {
		return fmt.Sprintf("%s: incomplete profile, missing %s", e.Op, strings.Join(e.Missing, ", "))
	}
	return fmt.Sprintf("%s: invalid profile response: %v", e.Op, e.Err)
}

func (e *InvalidProfileError) Unwrap() error {
	return e.Err
}

// classify maps any error from the API client onto the three error kinds.
func classify(op string, err error) error {
	var (
		ae *client.AuthError
		te *client.TransportError
		pe *InvalidProfileError
	)
	switch {
	case errors.As(err, &ae), errors.As(err, &te), errors.As(err, &pe):
		return err
	case errors.Is(err, client.ErrMalformedResponse):
		return &InvalidProfileError{Op: op, Err: err}
	default:
		// Request never left the process (encoding, bad URL).
		return &client.TransportError{Op: op, Err: err}
	}
}

// ErrorMessage renders err for display: the server's message for auth
// errors, generic texts for the other kinds.
func ErrorMessage(err error) string {
	var (
		ae *client.AuthError
		te *client.TransportError
		pe *InvalidProfileError
	)
	switch {
	case err == nil:
		return ""
	case errors.As(err, &ae):
		return ae.Message
	case errors.As(err, &te):
		return MsgConnectivity
	case errors.As(err, &pe):
		return MsgIncompleteProfile
	default:
		return err.Error()
	}
}
