// Package devserver is an in-memory implementation of the insulA identity
// and profile API, meant for local development and end-to-end tests of the
// client. Users live in a map and disappear on restart; passwords are
// bcrypt-hashed and tokens are HS256 JWTs.
//
// Routes (all under /api):
//
//	POST   /users/register        201 + profile with token
//	POST   /users/login           200 + profile with token
//	GET    /users/profile         200 + profile
//	PUT    /users/profile         200 + profile
//	PUT    /users/profile/image   200 + profile
//	PUT    /users/glucose-target  200 + profile
//	DELETE /users                 200 + {message}
//
// Failures answer with {"message": "..."}.
package devserver
