package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/akulikov/stockpile/internal/client/api"
	"github.com/akulikov/stockpile/internal/client/auth"
	"github.com/akulikov/stockpile/internal/client/cli"
	"github.com/akulikov/stockpile/internal/client/iocli"
	"github.com/akulikov/stockpile/internal/client/session"
	"github.com/akulikov/stockpile/internal/client/storage/boltdb"
	"github.com/akulikov/stockpile/internal/config"
	"github.com/akulikov/stockpile/internal/logger"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Flags override the environment
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", cfg.ServerURL, "Server URL")
	dbPath := flag.String("db", cfg.DBPath, "Path to local database")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	log := logger.New(cfg.LogLevel)

	stdio := iocli.NewStdio()

	ctx := context.Background()

	boltStorage, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			log.Error("failed to close database", "error", err)
		}
	}()

	sessions := session.New(boltStorage, log)

	apiClient := api.NewClient(*serverURL, cfg.HTTPTimeout)
	apiClient.SetClientID(sessions.ClientID(ctx))

	machine := auth.NewMachine(apiClient, sessions, log)
	machine.Restore(ctx)

	guard := auth.NewGuard(apiClient, machine, log)

	app := cli.New(apiClient, machine, guard, sessions, stdio, log)

	args := flag.Args()
	if len(args) == 0 {
		app.PrintUsage()
		os.Exit(1)
	}

	if err := app.Run(ctx, args[0], args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printVersion() {
	fmt.Printf("Stockpile Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
