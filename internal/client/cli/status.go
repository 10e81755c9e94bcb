package cli

import (
	"context"
	"fmt"
	"time"
)

// RunStatus shows the current session and local sync state
func (c *Cli) RunStatus(ctx context.Context) error {
	session, err := c.requireSession(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Logged in as:  %s\n", session.Username)
	if session.ExpiresAt > 0 {
		expires := time.Unix(session.ExpiresAt, 0)
		fmt.Printf("Token expires: %s\n", expires.Format(time.RFC3339))
	}

	if c.checker.IsOnline() {
		fmt.Println("Connectivity:  online")
	} else {
		fmt.Println("Connectivity:  offline")
	}

	pending, err := c.syncService.PendingCount(ctx)
	if err != nil {
		return fmt.Errorf("failed to count pending records: %w", err)
	}
	fmt.Printf("Pending sync:  %d record(s)\n", pending)

	return nil
}
