package cli

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/insula/internal/client/session"
	"github.com/stretchr/testify/assert"
)

func TestIsLoggedIn(t *testing.T) {
	app, _ := newTestApp(t, &fakeStore{})
	assert.False(t, app.isLoggedIn())

	app, _ = newTestApp(t, loggedInStore())
	assert.True(t, app.isLoggedIn())

	// Flag without a token doesn't count.
	app, _ = newTestApp(t, &fakeStore{state: session.State{IsAuthenticated: true, User: testUser()}})
	assert.False(t, app.isLoggedIn())
}

func TestGetStatus(t *testing.T) {
	app, _ := newTestApp(t, &fakeStore{})
	assert.Empty(t, app.getStatus())

	app, _ = newTestApp(t, loggedInStore())
	assert.Equal(t, "a@b.com", app.getStatus())
}

func TestRun_InitializesAndServes(t *testing.T) {
	store := &fakeStore{}
	app, out := newTestApp(t, store, "login", "a@b.com", "x", "status", "exit")

	app.Run(context.Background())

	assert.Equal(t, 1, store.InitCalls)
	assert.Equal(t, "a@b.com", store.LastEmail)
	assert.Contains(t, out.String(), "insula (a@b.com)> ")
	assert.Contains(t, out.String(), "Logged in as Ana Bell <a@b.com>")
	assert.Contains(t, out.String(), "Bye!")
}

func TestRun_WelcomesRestoredSession(t *testing.T) {
	app, out := newTestApp(t, loggedInStore(), "exit")
	app.Run(context.Background())
	assert.Contains(t, out.String(), "Welcome back, Ana Bell")
}

func TestRun_ReportsFailedRestore(t *testing.T) {
	store := &fakeStore{state: session.State{Error: "Token expired", Initialized: true}}
	app, out := newTestApp(t, store, "exit")

	app.Run(context.Background())
	assert.Contains(t, out.String(), "Previous session could not be restored: Token expired")
	assert.Equal(t, 1, store.ClearErrCalls)
}
