package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/waymark-app/waymark/internal/client/storage"
)

// RunDelete removes a record by id
func (c *Cli) RunDelete(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: waymark delete <record-id>")
	}
	id := args[0]

	if _, err := c.requireSession(ctx); err != nil {
		return err
	}

	if err := c.dataService.Delete(ctx, id); err != nil {
		if errors.Is(err, storage.ErrRecordNotFound) {
			return fmt.Errorf("record %s not found", id)
		}
		return fmt.Errorf("failed to delete record: %w", err)
	}

	fmt.Printf("Record %s deleted\n", id)
	return nil
}
