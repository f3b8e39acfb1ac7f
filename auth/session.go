// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionCookieName is the cookie carrying the signed session
const SessionCookieName = "session"

// Session identifies the logged-in user for one client
type Session struct {
	UserID   int64
	Username string
}

// Authenticated reports whether the session belongs to a user
func (s Session) Authenticated() bool {
	return s.UserID > 0
}

type sessionClaims struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// SessionManager issues, reads and clears signed session cookies.
// Nothing is stored server-side: the cookie payload is the session.
type SessionManager struct {
	secret []byte
	ttl    time.Duration
	secure bool
	now    func() time.Time
}

func NewSessionManager(secret string, ttl time.Duration, secure bool) *SessionManager {
	return &SessionManager{
		secret: []byte(secret),
		ttl:    ttl,
		secure: secure,
		now:    time.Now,
	}
}

// Issue signs the session and sets it as a cookie on the response
func (m *SessionManager) Issue(w http.ResponseWriter, s Session) error {
	now := m.now()
	expires := now.Add(m.ttl)

	claims := sessionClaims{
		UserID:   s.UserID,
		Username: s.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return fmt.Errorf("failed to sign session: %w", err)
	}

	http.SetCookie(w, m.cookie(token, expires, int(m.ttl.Seconds())))
	return nil
}

// Load verifies the session cookie on the request.
// Returns ErrNoSession without a cookie and ErrInvalidSession for a bad or expired one.
func (m *SessionManager) Load(r *http.Request) (Session, error) {
	c, err := r.Cookie(SessionCookieName)
	if err != nil || c.Value == "" {
		return Session{}, ErrNoSession
	}

	var claims sessionClaims
	_, err = jwt.ParseWithClaims(c.Value, &claims, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return Session{}, fmt.Errorf("%w: %v", ErrInvalidSession, err)
	}

	s := Session{UserID: claims.UserID, Username: claims.Username}
	if !s.Authenticated() {
		return Session{}, ErrInvalidSession
	}
	return s, nil
}

// Clear expires the session cookie. Safe to call without a session.
func (m *SessionManager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, m.cookie("", time.Unix(0, 0), -1))
}

func (m *SessionManager) cookie(value string, expires time.Time, maxAge int) *http.Cookie {
	// Cross-origin fetches with credentials only send SameSite=None cookies, which require Secure.
	sameSite := http.SameSiteLaxMode
	if m.secure {
		sameSite = http.SameSiteNoneMode
	}

	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: sameSite,
	}
}

type contextKey string

const sessionKey contextKey = "session"

// WithSession stores the session in the context
func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, sessionKey, s)
}

// SessionFromContext returns the session stored by WithSession
func SessionFromContext(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(sessionKey).(Session)
	return s, ok
}
