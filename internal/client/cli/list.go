package cli

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/waymark-app/waymark/internal/client/storage"
	"github.com/waymark-app/waymark/internal/models"
)

const dateLayout = "2006-01-02"

// RunList prints records: the owner's own by default, everything
// visible with --all, or the owner's filtered subset
func (c *Cli) RunList(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	all := fs.Bool("all", false, "Include public records of other users")
	visibility := fs.String("visibility", "", "Filter own records by visibility: public or private")
	from := fs.String("from", "", "Filter own records created on or after this date (YYYY-MM-DD)")
	to := fs.String("to", "", "Filter own records created on or before this date (YYYY-MM-DD)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	session, err := c.requireSession(ctx)
	if err != nil {
		return err
	}

	var records []models.Record
	switch {
	case *all:
		records, err = c.dataService.ListAll(ctx, session.UserID)
	case *visibility != "" || *from != "" || *to != "":
		filter, ferr := buildFilter(*visibility, *from, *to)
		if ferr != nil {
			return ferr
		}
		records, err = c.dataService.ListFiltered(ctx, session.UserID, filter)
	default:
		records, err = c.dataService.ListOwn(ctx, session.UserID)
	}
	if err != nil {
		return fmt.Errorf("failed to list records: %w", err)
	}

	if len(records) == 0 {
		fmt.Println("No records found")
		return nil
	}

	for _, rec := range records {
		printRecord(rec, session.UserID)
	}
	fmt.Printf("\n%d record(s)\n", len(records))
	return nil
}

func buildFilter(visibility, from, to string) (storage.Filter, error) {
	var f storage.Filter

	if visibility != "" {
		vis, err := models.ParseVisibility(visibility)
		if err != nil {
			return f, err
		}
		f.Visibility = &vis
	}

	if from != "" {
		t, err := time.Parse(dateLayout, from)
		if err != nil {
			return f, fmt.Errorf("invalid --from date %q, expected YYYY-MM-DD", from)
		}
		start := t.UnixMilli()
		f.StartDate = &start
	}

	if to != "" {
		t, err := time.Parse(dateLayout, to)
		if err != nil {
			return f, fmt.Errorf("invalid --to date %q, expected YYYY-MM-DD", to)
		}
		// inclusive: end of the given day
		end := t.Add(24*time.Hour - time.Millisecond).UnixMilli()
		f.EndDate = &end
	}

	return f, nil
}

func printRecord(rec models.Record, ownerID string) {
	created := time.UnixMilli(rec.CreatedAt).Format(time.RFC3339)
	owner := ""
	if rec.OwnerID != ownerID {
		owner = "  (by " + rec.OwnerID + ")"
	}
	fmt.Printf("\n%s  [%s]%s\n", rec.Title, rec.Visibility, owner)
	fmt.Printf("  id:       %s\n", rec.ID)
	fmt.Printf("  location: %.6f, %.6f\n", rec.Latitude, rec.Longitude)
	fmt.Printf("  created:  %s\n", created)
	if rec.Description != "" {
		fmt.Printf("  note:     %s\n", rec.Description)
	}
	if rec.ImageRef != nil {
		fmt.Printf("  image:    %s\n", *rec.ImageRef)
	}
}
