// Package session implements the client's session store: the single
// authority for "is there a usable, validated session".
//
// # State machine
//
// A Store is constructed once per process (New) with IsLoading set and
// whatever token/user the persisted record held. It then changes only
// through its operations:
//
//   - Initialize: one-time startup; restores the profile when a token exists.
//   - Login / Register: establish a session from a complete profile response.
//   - LoadUser: refresh the profile for the current token. Any failure is
//     destructive and clears the token.
//   - Logout: local reset, never fails.
//   - ClearError, UpdateProfile, UpdateProfileImage, UpdateGlucoseTarget,
//     DeleteAccount.
//
// A profile response is accepted only when it passes Validate. A response
// missing any required field never populates the user, even with a token.
//
// # Persistence
//
// After every committed transition the token, user, isAuthenticated and
// initialized fields are written as one JSON record under a single key of
// the injected storage.Storage. IsLoading and Error are never persisted.
//
// # Concurrency
//
// State reads and commits are mutex-guarded, but operations are not
// serialized: two operations in flight at once may interleave their commits
// and the last commit wins. Callers are expected to avoid overlapping calls
// while IsLoading is true. Initialize is the exception and never runs its
// startup sequence twice.
package session
