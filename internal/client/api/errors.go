package api

import (
	"errors"
	"fmt"
)

// Typed remote errors. Callers branch on these instead of matching
// error message strings.
var (
	// ErrUnauthorized indicates the server rejected the access token
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound indicates the requested record does not exist on the
	// server. Delete callers treat it as success: the record is gone
	// either way.
	ErrNotFound = errors.New("not found")
)

// StatusError is a non-2xx server response that does not map to a
// sentinel error.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("server error (%d): %s", e.Code, e.Message)
}
