// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides password hashing and session cookies.

# Passwords

Passwords are stored as salted bcrypt hashes of their SHA-256 digest, so
length is not limited by bcrypt's 72 byte input:

	hash, err := auth.HashPassword(password)
	err = auth.CheckPassword(hash, password) // ErrInvalidPassword on mismatch

# Sessions

A session is the logged-in user's id and username. SessionManager signs it
as an HS256 JWT and stores it in the "session" cookie; nothing is kept
server-side:

	sessions := auth.NewSessionManager(cfg.SessionSecret, cfg.SessionTTL, cfg.SecureCookie)
	err := sessions.Issue(w, auth.Session{UserID: id, Username: name})
	s, err := sessions.Load(r) // ErrNoSession or ErrInvalidSession
	sessions.Clear(w)

Tokens are only accepted with the HS256 algorithm and a valid expiry. The
cookie is HttpOnly; when SecureCookie is set it is also Secure with
SameSite=None so browsers send it on credentialed cross-origin requests.

# Request Context

The session guard in package middleware stores the verified session on the
request context:

	ctx := auth.WithSession(r.Context(), s)
	s, ok := auth.SessionFromContext(ctx)
*/
package auth
