package cli

import (
	"context"
	"fmt"
)

// RunLogout drops the session and clears the local record cache
func (c *Cli) RunLogout(ctx context.Context) error {
	pending, err := c.records.CountPending(ctx)
	if err == nil && pending > 0 {
		fmt.Printf("Warning: %d record(s) have not been synchronized and will be lost.\n", pending)
		answer, err := readInput("Continue? [y/N]: ")
		if err != nil {
			return fmt.Errorf("failed to read answer: %w", err)
		}
		if answer != "y" && answer != "Y" {
			fmt.Println("Logout cancelled")
			return nil
		}
	}

	if err := c.authService.Logout(ctx); err != nil {
		return fmt.Errorf("logout failed: %w", err)
	}

	if err := c.records.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear local cache: %w", err)
	}

	fmt.Println("Logged out")
	return nil
}
