package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	clientapi "github.com/waymark-app/waymark/internal/client/api"
	"github.com/waymark-app/waymark/internal/client/storage"
	pkgapi "github.com/waymark-app/waymark/pkg/api"
)

type service struct {
	remote   clientapi.Remote
	sessions storage.SessionStore
	now      func() time.Time
}

// NewService creates the auth service backed by the API client and the
// local session store.
func NewService(remote clientapi.Remote, sessions storage.SessionStore) Service {
	return &service{
		remote:   remote,
		sessions: sessions,
		now:      time.Now,
	}
}

// Login authenticates against the server and persists the session.
// The user id and expiry are read from the token claims; the token
// signature is the server's to verify, not ours.
func (s *service) Login(ctx context.Context, username, password string) (*storage.Session, error) {
	if username == "" {
		return nil, errors.New("username is required")
	}
	if password == "" {
		return nil, errors.New("password is required")
	}

	resp, err := s.remote.Login(ctx, pkgapi.LoginRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	userID, expiresAt, err := parseTokenClaims(resp.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to parse access token: %w", err)
	}
	if expiresAt == 0 {
		expiresAt = s.now().Add(time.Duration(resp.ExpiresIn) * time.Second).Unix()
	}

	session := &storage.Session{
		Username:    username,
		UserID:      userID,
		AccessToken: resp.AccessToken,
		ExpiresAt:   expiresAt,
	}

	if err := s.sessions.SaveSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	return session, nil
}

// Logout removes the stored session
func (s *service) Logout(ctx context.Context) error {
	if err := s.sessions.DeleteSession(ctx); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// Session returns the stored session
func (s *service) Session(ctx context.Context) (*storage.Session, error) {
	return s.sessions.GetSession(ctx)
}

// IsAuthenticated reports whether a non-expired session exists
func (s *service) IsAuthenticated(ctx context.Context) (bool, error) {
	session, err := s.sessions.GetSession(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return false, nil
		}
		return false, err
	}

	if session.ExpiresAt > 0 && s.now().Unix() >= session.ExpiresAt {
		return false, nil
	}

	return true, nil
}

// parseTokenClaims extracts the user id (sub) and expiry (exp) from the
// access token without verifying the signature.
func parseTokenClaims(token string) (userID string, expiresAt int64, err error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return "", 0, err
	}

	userID, err = claims.GetSubject()
	if err != nil {
		return "", 0, fmt.Errorf("failed to read sub claim: %w", err)
	}
	if userID == "" {
		return "", 0, errors.New("access token has no sub claim")
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return "", 0, fmt.Errorf("failed to read exp claim: %w", err)
	}
	if exp != nil {
		expiresAt = exp.Unix()
	}

	return userID, expiresAt, nil
}
