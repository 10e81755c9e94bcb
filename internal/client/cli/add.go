package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/waymark-app/waymark/internal/models"
)

// RunAdd creates a new record owned by the current user
func (c *Cli) RunAdd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	title := fs.String("title", "", "Record title (required)")
	description := fs.String("desc", "", "Record description")
	lat := fs.Float64("lat", 0, "Latitude (required)")
	lon := fs.Float64("lon", 0, "Longitude (required)")
	image := fs.String("image", "", "Image reference")
	visibility := fs.String("visibility", "private", "Visibility: public or private")

	if err := fs.Parse(args); err != nil {
		return err
	}

	session, err := c.requireSession(ctx)
	if err != nil {
		return err
	}

	vis, err := models.ParseVisibility(*visibility)
	if err != nil {
		return err
	}

	record := models.Record{
		OwnerID:     session.UserID,
		Title:       *title,
		Description: *description,
		Latitude:    *lat,
		Longitude:   *lon,
		Visibility:  vis,
	}
	if *image != "" {
		record.ImageRef = image
	}

	stored, err := c.dataService.Add(ctx, record)
	if err != nil {
		return fmt.Errorf("failed to add record: %w", err)
	}

	if stored.Synced {
		fmt.Printf("Record %s added and uploaded\n", stored.ID)
	} else {
		fmt.Printf("Record %s added (pending upload, run 'waymark sync' when online)\n", stored.ID)
	}
	return nil
}
