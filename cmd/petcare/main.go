package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	apiclient "github.com/petcare-cl/petcare-cli/internal/client/api"
	"github.com/petcare-cl/petcare-cli/internal/client/auth"
	"github.com/petcare-cl/petcare-cli/internal/client/cli"
	"github.com/petcare-cl/petcare-cli/internal/client/iocli"
	"github.com/petcare-cl/petcare-cli/internal/client/services"
	"github.com/petcare-cl/petcare-cli/internal/client/storage/boltdb"
	"github.com/petcare-cl/petcare-cli/internal/config"
	"github.com/petcare-cl/petcare-cli/internal/crypto"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", cfg.BaseURL, "API base URL")
	dbPath := flag.String("db", cfg.DBPath, "Path to local session database")
	timeout := flag.Duration("timeout", cfg.Timeout, "Request timeout")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	io := iocli.NewStdio()

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage(io)
		os.Exit(1)
	}
	command := args[0]

	ctx := context.Background()

	sealKey, err := crypto.LoadOrCreateKey(cfg.KeyPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to prepare device key: %v\n", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(filepath.Dir(*dbPath), 0o700); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create data directory: %v\n", err)
		os.Exit(1)
	}
	store, err := boltdb.New(*dbPath, sealKey)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open session database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := store.Close(); err != nil {
			slog.Error("failed to close session database", "error", err)
		}
	}()

	client := apiclient.NewClient(*serverURL, *timeout, store)
	controller := auth.NewController(client, store)

	front := cli.New(
		io,
		controller,
		services.NewPets(client),
		services.NewAppointments(client),
		services.NewVeterinaries(client),
		services.NewMedical(client),
		services.NewNotifications(client),
		services.NewUsers(client),
		services.NewQR(client),
		services.NewLegal(client),
	)

	start := time.Now()
	if err := front.Run(ctx, command, args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	slog.Debug("command finished", "command", command, "duration", time.Since(start))
}

func printVersion() {
	fmt.Printf("PetCare Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
