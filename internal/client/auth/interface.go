package auth

import (
	"context"

	"github.com/waymark-app/waymark/internal/client/storage"
)

//go:generate moq -out service_mock.go . Service

// Service manages the authenticated principal on this client.
// The sync core only gates on the presence of a valid session; it never
// touches credentials itself.
type Service interface {
	// Login authenticates against the server and persists the session
	Login(ctx context.Context, username, password string) (*storage.Session, error)

	// Logout removes the stored session
	Logout(ctx context.Context) error

	// Session returns the stored session.
	// Returns storage.ErrSessionNotFound if no one is logged in.
	Session(ctx context.Context) (*storage.Session, error)

	// IsAuthenticated reports whether a non-expired session exists
	IsAuthenticated(ctx context.Context) (bool, error)
}
