package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/waymark-app/waymark/internal/client/auth"
	"github.com/waymark-app/waymark/internal/client/data"
	"github.com/waymark-app/waymark/internal/client/netcheck"
	"github.com/waymark-app/waymark/internal/client/storage"
	syncsvc "github.com/waymark-app/waymark/internal/client/sync"
)

// Cli wires the client services behind the terminal commands
type Cli struct {
	authService auth.Service
	dataService data.Service
	syncService syncsvc.Service
	records     storage.RecordStore
	checker     netcheck.Checker
}

// New creates the CLI front end
func New(authService auth.Service, dataService data.Service, syncService syncsvc.Service, records storage.RecordStore, checker netcheck.Checker) *Cli {
	return &Cli{
		authService: authService,
		dataService: dataService,
		syncService: syncService,
		records:     records,
		checker:     checker,
	}
}

// requireSession returns the current session or a friendly error
func (c *Cli) requireSession(ctx context.Context) (*storage.Session, error) {
	session, err := c.authService.Session(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return nil, fmt.Errorf("not logged in. Please run 'waymark login' first")
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return session, nil
}

func PrintUsage() {
	fmt.Println("Waymark Client")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  waymark [OPTIONS] COMMAND")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version        Show version information")
	fmt.Println("  --server URL     Server URL (default: http://localhost:8080, env: WAYMARK_SERVER)")
	fmt.Println("  --db PATH        Path to the local record cache (default: waymark-records.db)")
	fmt.Println("  --session-db PATH  Path to the local session store (default: waymark-session.db)")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  login            Login to server")
	fmt.Println("  logout           Logout and clear the local cache")
	fmt.Println("  status           Show session and pending sync state")
	fmt.Println("  add              Add a new record")
	fmt.Println("  list             List records (own, public, filtered)")
	fmt.Println("  delete <id>      Delete a record")
	fmt.Println("  sync             Synchronize local records with the server")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  waymark login")
	fmt.Println("  waymark add --title 'Cafe' --lat 52.52 --lon 13.405 --visibility public")
	fmt.Println("  waymark list --all")
	fmt.Println("  waymark list --visibility private --from 2026-01-01")
	fmt.Println("  waymark delete b692f5c0-2d88-4aa1-a9e1-13aa6e4976d5")
	fmt.Println("  waymark sync")
}

// readInput reads one line from stdin
func readInput(prompt string) (string, error) {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(input), nil
}

// readPassword reads a password without echoing it
func readPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	passwordBytes, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", err
	}
	return string(passwordBytes), nil
}
