// Package session models one authenticated DeskHub session: the bearer
// credential plus the identity claims it carries. The session is an
// explicit object constructed by the app and handed to whoever needs it;
// nothing here is a package-level singleton.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ysemenovs/deskhub/internal/client/models"
)

// ErrNotAuthenticated is returned when an operation needs a session and
// none is active.
var ErrNotAuthenticated = errors.New("not authenticated")

// Session is a live credential with the display claims parsed out of it.
type Session struct {
	Token     string
	UserID    models.ID
	Email     string
	ExpiresAt time.Time
}

// FromToken parses the bearer token's claims without verifying the
// signature. Verification is the server's job; the client only reads the
// claims to show who is logged in and to skip tokens that are already
// dead.
func FromToken(token string) (Session, error) {
	if token == "" {
		return Session{}, ErrNotAuthenticated
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return Session{}, fmt.Errorf("parse token: %w", err)
	}

	s := Session{Token: token}
	if sub, err := claims.GetSubject(); err == nil {
		s.UserID = models.ID(sub)
	}
	if email, ok := claims["email"].(string); ok {
		s.Email = email
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		s.ExpiresAt = exp.Time
	}
	return s, nil
}

// Expired reports whether the token's exp claim has passed. Tokens without
// an exp claim never expire client-side.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}
