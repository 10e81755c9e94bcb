package cli

import (
	"context"
	"errors"
	"fmt"

	clientapi "github.com/waymark-app/waymark/internal/client/api"
)

// RunLogin authenticates against the server and stores the session
func (c *Cli) RunLogin(ctx context.Context) error {
	username, err := readInput("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}

	password, err := readPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	session, err := c.authService.Login(ctx, username, password)
	if err != nil {
		if errors.Is(err, clientapi.ErrUnauthorized) {
			return fmt.Errorf("invalid username or password")
		}
		return fmt.Errorf("login failed: %w", err)
	}

	fmt.Printf("Logged in as %s\n", session.Username)
	return nil
}
