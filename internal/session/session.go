package session

import (
	"context"
	"errors"
	"time"

	"github.com/gabapcia/walletsync/internal/walletapi"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrNoSession indicates that nobody is logged in.
	ErrNoSession = errors.New("no active session")

	// ErrSessionExpired indicates that the stored token has expired. The
	// session is torn down when this is returned.
	ErrSessionExpired = errors.New("session expired")
)

// Session binds a bearer token to the user it authenticates.
type Session struct {
	Token     string         `json:"token"`
	User      walletapi.User `json:"user"`
	ExpiresAt time.Time      `json:"expiresAt,omitzero"` // zero means the token never expires client side
}

// Expired reports whether the session is expired at now.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

// TTL returns the remaining lifetime at now, or zero for sessions without expiry.
func (s Session) TTL(now time.Time) time.Duration {
	if s.ExpiresAt.IsZero() {
		return 0
	}
	return s.ExpiresAt.Sub(now)
}

// Storage persists the session of a profile.
type Storage interface {
	// SaveSession stores s under profile, replacing any previous session.
	SaveSession(ctx context.Context, profile string, s Session) error

	// LoadSession returns the session of profile, or ErrNoSession.
	LoadSession(ctx context.Context, profile string) (Session, error)

	// DeleteSession removes the session of profile. Deleting a missing session is not an error.
	DeleteSession(ctx context.Context, profile string) error
}

// tokenExpiry reads the exp claim of a JWT without verifying it; the
// server remains the only authority on the token. Opaque tokens and JWTs
// without exp return the zero time.
func tokenExpiry(token string) time.Time {
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return time.Time{}
	}

	if claims.ExpiresAt == nil {
		return time.Time{}
	}
	return claims.ExpiresAt.Time
}

// newSession builds a session from a login result.
func newSession(login walletapi.LoggedInUser, email string) Session {
	return Session{
		Token:     login.Token,
		User:      walletapi.User{ID: login.ID, Email: email},
		ExpiresAt: tokenExpiry(login.Token),
	}
}
