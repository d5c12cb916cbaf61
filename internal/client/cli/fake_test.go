package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/insula/internal/client/models"
	"github.com/dmitrijs2005/insula/internal/client/session"
	"github.com/dmitrijs2005/insula/internal/logging"
)

// fakeStore implements SessionStore for command tests.
type fakeStore struct {
	state session.State

	LoginErr    error
	RegisterErr error
	UpdateErr   error
	DeleteErr   error

	InitCalls      int
	ClearErrCalls  int
	LogoutCalls    int
	DeleteCalls    int
	LastEmail      string
	LastPassword   string
	LastRegister   models.RegisterInput
	LastUpdate     *models.UpdateProfileInput
	LastImage      string
	LastTarget     *models.GlucoseTarget
	UserAfterLogin *models.User
	SavedTime      time.Time
}

func (f *fakeStore) State() session.State { return f.state }

func (f *fakeStore) Initialize(context.Context) { f.InitCalls++ }

func (f *fakeStore) Login(_ context.Context, email, password string) error {
	f.LastEmail, f.LastPassword = email, password
	if f.LoginErr != nil {
		return f.LoginErr
	}
	f.signIn()
	return nil
}

func (f *fakeStore) Register(_ context.Context, in models.RegisterInput) error {
	f.LastRegister = in
	if f.RegisterErr != nil {
		return f.RegisterErr
	}
	f.signIn()
	return nil
}

func (f *fakeStore) signIn() {
	u := f.UserAfterLogin
	if u == nil {
		u = testUser()
	}
	f.state = session.State{User: u, Token: "tok", IsAuthenticated: true, Initialized: true}
}

func (f *fakeStore) Logout(context.Context) {
	f.LogoutCalls++
	f.state = session.State{Initialized: true}
}

func (f *fakeStore) UpdateProfile(_ context.Context, in models.UpdateProfileInput) error {
	f.LastUpdate = &in
	return f.UpdateErr
}

func (f *fakeStore) UpdateProfileImage(_ context.Context, url string) error {
	f.LastImage = url
	return f.UpdateErr
}

func (f *fakeStore) UpdateGlucoseTarget(_ context.Context, t models.GlucoseTarget) error {
	f.LastTarget = &t
	if !t.Valid() {
		return session.ErrInvalidTarget
	}
	return f.UpdateErr
}

func (f *fakeStore) DeleteAccount(context.Context) error {
	f.DeleteCalls++
	if f.DeleteErr != nil {
		return f.DeleteErr
	}
	f.state = session.State{Initialized: true}
	return nil
}

func (f *fakeStore) SavedAt(context.Context) (time.Time, bool) {
	return f.SavedTime, !f.SavedTime.IsZero()
}

func (f *fakeStore) ClearError() {
	f.ClearErrCalls++
	f.state.Error = ""
}

func testUser() *models.User {
	return &models.User{
		ID:             "u1",
		Email:          "a@b.com",
		FirstName:      "Ana",
		LastName:       "Bell",
		BirthDay:       3,
		BirthMonth:     4,
		BirthYear:      1990,
		Weight:         62.5,
		Height:         170,
		GlucoseProfile: models.GlucoseProfileNormal,
	}
}

func loggedInStore() *fakeStore {
	f := &fakeStore{}
	f.signIn()
	return f
}

// newTestApp builds an App reading the given lines. Passwords come from the
// same input since stdin is never a terminal here.
func newTestApp(t *testing.T, store SessionStore, lines ...string) (*App, *bytes.Buffer) {
	t.Helper()
	orig := isTerminal
	isTerminal = func(int) bool { return false }
	t.Cleanup(func() { isTerminal = orig })

	out := &bytes.Buffer{}
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	return NewApp(store, in, out, logging.NewDiscard()), out
}
