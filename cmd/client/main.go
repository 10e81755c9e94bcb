package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	clientapi "github.com/waymark-app/waymark/internal/client/api"
	"github.com/waymark-app/waymark/internal/client/auth"
	"github.com/waymark-app/waymark/internal/client/cli"
	"github.com/waymark-app/waymark/internal/client/data"
	"github.com/waymark-app/waymark/internal/client/netcheck"
	"github.com/waymark-app/waymark/internal/client/storage/boltdb"
	"github.com/waymark-app/waymark/internal/client/storage/sqlite"
	syncsvc "github.com/waymark-app/waymark/internal/client/sync"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", defaultServerURL(), "Server URL")
	dbPath := flag.String("db", "waymark-records.db", "Path to the local record cache")
	sessionPath := flag.String("session-db", "waymark-session.db", "Path to the local session store")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}

	command := args[0]

	ctx := context.Background()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	sessionStorage, err := boltdb.New(ctx, *sessionPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open session store: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := sessionStorage.Close(); err != nil {
			logger.Error("failed to close session store", "error", err)
		}
	}()

	recordStore, err := sqlite.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open record cache: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := recordStore.Close(); err != nil {
			logger.Error("failed to close record cache", "error", err)
		}
	}()

	tokenSource := clientapi.TokenSource(func(ctx context.Context) (string, error) {
		session, err := sessionStorage.GetSession(ctx)
		if err != nil {
			return "", err
		}
		return session.AccessToken, nil
	})
	apiClient := clientapi.NewClient(*serverURL, tokenSource)

	checker, err := netcheck.NewDialChecker(*serverURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid server URL: %v\n", err)
		os.Exit(1)
	}

	authService := auth.NewService(apiClient, sessionStorage)
	syncService := syncsvc.NewService(apiClient, recordStore, authService, checker, logger)
	dataService := data.NewService(recordStore, apiClient, syncService, checker, logger)

	app := cli.New(authService, dataService, syncService, recordStore, checker)

	if err := runCommand(ctx, app, command, args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runCommand(ctx context.Context, app *cli.Cli, command string, args []string) error {
	switch command {
	case "login":
		return app.RunLogin(ctx)
	case "logout":
		return app.RunLogout(ctx)
	case "status":
		return app.RunStatus(ctx)
	case "add":
		return app.RunAdd(ctx, args)
	case "list":
		return app.RunList(ctx, args)
	case "delete":
		return app.RunDelete(ctx, args)
	case "sync":
		return app.RunSync(ctx)
	default:
		cli.PrintUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}

func defaultServerURL() string {
	if url := os.Getenv("WAYMARK_SERVER"); url != "" {
		return url
	}
	return "http://localhost:8080"
}

func printVersion() {
	fmt.Printf("Waymark Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
