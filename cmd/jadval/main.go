package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"jadval/internal/cli"
	"jadval/internal/db"
	"jadval/internal/repository"
	"jadval/internal/schedule"
	"jadval/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.jadval/jadval.db
	dbPath := os.Getenv("JADVAL_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".jadval", "jadval.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	sessionRepo := repository.NewSQLiteSessionRepo(database)

	// Service logs go to stderr when JADVAL_LOG is set; the TUI owns stdout.
	var observers []service.Observer
	if os.Getenv("JADVAL_LOG") != "" {
		observers = append(observers, service.NewSlogObserver(os.Stderr))
	}

	app := &cli.App{
		Sessions:  service.NewSessionService(sessionRepo, observers...),
		Timetable: service.NewTimetableService(sessionRepo, schedule.DefaultConfig(), observers...),
	}

	// Detect interactive terminal for the TUI entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
