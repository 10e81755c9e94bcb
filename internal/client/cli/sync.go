package cli

import (
	"context"
	"errors"
	"fmt"

	clientapi "github.com/waymark-app/waymark/internal/client/api"
	syncsvc "github.com/waymark-app/waymark/internal/client/sync"
)

// RunSync pushes pending local changes and pulls the remote view
func (c *Cli) RunSync(ctx context.Context) error {
	session, err := c.requireSession(ctx)
	if err != nil {
		return err
	}

	fmt.Println("Synchronizing...")

	result, err := c.syncService.SyncAll(ctx)
	if err != nil {
		switch {
		case errors.Is(err, syncsvc.ErrOffline):
			return fmt.Errorf("server is unreachable, try again later")
		case errors.Is(err, syncsvc.ErrNotAuthenticated):
			return fmt.Errorf("not logged in. Please run 'waymark login' first")
		default:
			return fmt.Errorf("sync failed: %w", err)
		}
	}

	fmt.Printf("Uploaded: %d, deleted: %d", result.Uploaded, result.Deleted)
	if result.Failed > 0 {
		fmt.Printf(", failed: %d", result.Failed)
	}
	fmt.Println()
	if result.ErrorMessage != "" {
		fmt.Printf("Last error: %s\n", result.ErrorMessage)
	}

	merged := 0
	for _, scope := range []clientapi.Scope{
		{OwnerID: session.UserID},
		{PublicOnly: true},
	} {
		n, err := c.syncService.DownloadAndMerge(ctx, scope)
		if err != nil {
			return fmt.Errorf("download failed: %w", err)
		}
		merged += n
	}
	fmt.Printf("Merged %d record(s) from server\n", merged)

	return nil
}
