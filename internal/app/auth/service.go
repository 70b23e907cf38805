// Package auth implements the single-admin gate in front of the booking API.
// There is exactly one principal, configured by email and bcrypt hash; login
// trades the password for a random bearer token held in a session store.
package auth

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"
)

var (
	ErrInvalidCredentials = errors.New("auth: invalid credentials")
	ErrSessionNotFound    = errors.New("auth: session not found")
	ErrNotConfigured      = errors.New("auth: admin credentials not configured")
)

// Session is an issued admin login.
type Session struct {
	Token     string
	Email     string
	CreatedAt time.Time
	ExpiresAt time.Time
}

func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// SessionStore keeps issued sessions; Get must not return expired ones.
type SessionStore interface {
	Put(ctx context.Context, session *Session) error
	Get(ctx context.Context, token string) (*Session, error)
	Delete(ctx context.Context, token string) error
}

// PasswordVerifier checks a password against a stored hash.
type PasswordVerifier interface {
	Verify(hash, password string) error
}

// TokenGenerator mints opaque session tokens.
type TokenGenerator interface {
	NewToken() (string, error)
}

type Service struct {
	AdminEmail        string
	AdminPasswordHash string
	Passwords         PasswordVerifier
	Tokens            TokenGenerator
	Sessions          SessionStore
	SessionTTL        time.Duration
	Logger            *slog.Logger
}

// Login validates the admin credentials and issues a session.
func (s *Service) Login(ctx context.Context, email, password string) (*Session, error) {
	if s.AdminEmail == "" || s.AdminPasswordHash == "" {
		return nil, ErrNotConfigured
	}
	email = strings.TrimSpace(strings.ToLower(email))
	if !strings.EqualFold(email, s.AdminEmail) {
		// Burn a hash comparison anyway so the wrong-email and wrong-password
		// paths take comparable time.
		_ = s.Passwords.Verify(s.AdminPasswordHash, password)
		return nil, ErrInvalidCredentials
	}
	if err := s.Passwords.Verify(s.AdminPasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.Tokens.NewToken()
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	ttl := s.SessionTTL
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	session := &Session{
		Token:     token,
		Email:     email,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
	if err := s.Sessions.Put(ctx, session); err != nil {
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.Info("admin login", "email", email, "expires_at", session.ExpiresAt)
	}
	return session, nil
}

// Resolve returns the session for a bearer token, or ErrSessionNotFound.
func (s *Service) Resolve(ctx context.Context, token string) (*Session, error) {
	if token == "" {
		return nil, ErrSessionNotFound
	}
	return s.Sessions.Get(ctx, token)
}

// Logout invalidates the session for the token; unknown tokens are a no-op.
func (s *Service) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.Sessions.Delete(ctx, token); err != nil && !errors.Is(err, ErrSessionNotFound) {
		return err
	}
	return nil
}
