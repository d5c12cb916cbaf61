// Package client contains the remote API building blocks for the insulA client.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) for the
//     identity/profile backend: Register, Login, GetProfile, UpdateProfile,
//     UpdateProfileImage, UpdateGlucoseTarget and DeleteUser.
//  2. A concrete REST/JSON implementation (see HTTPClient) that attaches the
//     bearer token, tags every call with an X-Request-ID and maps failures to
//     the error taxonomy below.
//
// # Error Handling
//
//   - *AuthError: the server answered with a non-2xx status. errors.Is(err,
//     ErrUnauthorized) holds for 401 and 403.
//   - *TransportError: no response was obtained (dial, TLS, timeout, ctx).
//   - ErrMalformedResponse: a 2xx response whose body is not the expected JSON.
//
// HTTPClient is safe for concurrent use. All operations accept
// context.Context and honor cancellation.
package client
