package storage

import "context"

// Session holds the authenticated principal for the local client.
// The access token is stored as received from the server; the core only
// gates on its presence and expiry, it never manages credentials itself.
type Session struct {
	Username    string `json:"username"`
	UserID      string `json:"user_id"`
	AccessToken string `json:"access_token"`
	ExpiresAt   int64  `json:"expires_at"` // epoch seconds
}

// SessionStore persists the auth session between CLI invocations
type SessionStore interface {
	// SaveSession stores the session, replacing any previous one
	SaveSession(ctx context.Context, s *Session) error

	// GetSession retrieves the stored session.
	// Returns ErrSessionNotFound if none exists.
	GetSession(ctx context.Context) (*Session, error)

	// DeleteSession removes the stored session (logout)
	DeleteSession(ctx context.Context) error
}
