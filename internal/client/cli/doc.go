// Package cli provides the interactive insulA terminal client.
//
// The App renders from a session store and turns REPL commands into store
// operations: login and register, logout, status, viewing and editing the
// profile, the glucose target range, the profile image and account
// deletion. Initialize runs once before the loop so a persisted session is
// restored (or cleared) before the first prompt.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits
// or input ends.
package cli
