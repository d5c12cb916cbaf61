package cli

import (
	"errors"

	"github.com/dmitrijs2005/insula/internal/client/session"
)

var (
	errRequired = errors.New("value required")
	errAborted  = errors.New("aborted")
)

// describeError turns a command error into one line for the terminal.
func describeError(err error) string {
	switch {
	case errors.Is(err, session.ErrNotAuthenticated):
		return "please log in first"
	case errors.Is(err, session.ErrInvalidTarget):
		return "target range must satisfy 0 < min < max"
	default:
		return session.ErrorMessage(err)
	}
}
