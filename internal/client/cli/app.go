package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/insula/internal/client/models"
	"github.com/dmitrijs2005/insula/internal/client/session"
	"github.com/dmitrijs2005/insula/internal/logging"
)

// SessionStore is the part of *session.Store the terminal client drives.
type SessionStore interface {
	State() session.State
	Initialize(ctx context.Context)
	Login(ctx context.Context, email, password string) error
	Register(ctx context.Context, in models.RegisterInput) error
	Logout(ctx context.Context)
	UpdateProfile(ctx context.Context, in models.UpdateProfileInput) error
	UpdateProfileImage(ctx context.Context, imageURL string) error
	UpdateGlucoseTarget(ctx context.Context, target models.GlucoseTarget) error
	DeleteAccount(ctx context.Context) error
	ClearError()
	SavedAt(ctx context.Context) (time.Time, bool)
}

var _ SessionStore = (*session.Store)(nil)

type App struct {
	store  SessionStore
	reader *bufio.Reader
	out    io.Writer
	log    logging.Logger
}

// NewApp wires the client to store, reading commands from in and writing
// to out.
func NewApp(store SessionStore, in io.Reader, out io.Writer, log logging.Logger) *App {
	return &App{store: store, reader: bufio.NewReader(in), out: out, log: log}
}

// Run restores the session and serves commands until exit or end of input.
func (a *App) Run(ctx context.Context) {
	a.printf("Welcome to insulA (type 'help' for commands)\n")

	a.store.Initialize(ctx)
	st := a.store.State()
	a.log.Debug(ctx, "session initialized", "authenticated", st.IsAuthenticated)
	switch {
	case st.IsAuthenticated && st.User != nil:
		a.printf("Welcome back, %s\n", st.User.FullName())
	case st.Error != "":
		a.printf("Previous session could not be restored: %s\n", st.Error)
		a.store.ClearError()
	}

	runREPL(ctx, a, a.getStatus, a.reader, a.out)
	a.log.Debug(ctx, "repl finished")
}

func (a *App) isLoggedIn() bool {
	st := a.store.State()
	return st.IsAuthenticated && st.Token != "" && st.User != nil
}

// getStatus is shown in the prompt: the email when logged in.
func (a *App) getStatus() string {
	st := a.store.State()
	if st.IsAuthenticated && st.User != nil {
		return st.User.Email
	}
	return ""
}

func (a *App) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(a.out, format, args...)
}
