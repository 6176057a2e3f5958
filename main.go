// Package main is the entry point for the contactbook assistant.
// It wires configuration, logging and the snapshot store, then hands
// control to the interactive command loop.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"contactbook/src/app/repl"
	"contactbook/src/core/ports"
	"contactbook/src/core/usecase"
	"contactbook/src/infra/config"
	"contactbook/src/infra/db"
	"contactbook/src/infra/logger"
	"contactbook/src/infra/store"
)

const version = "1.0.0"

var rootCmd = &cobra.Command{
	Use:   "contactbook",
	Short: "Interactive contact management assistant",
	Long: `contactbook maintains a persistent address book of named contacts,
each with validated 10-digit phone numbers and an optional birthday.

It is an interactive-only tool: commands are read line by line from
standard input (add, change, phone, all, add-birthday, show-birthday,
birthdays, close/exit), and the book is persisted as a whole snapshot
on exit. Configuration comes from APP_* environment variables.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration from environment variables
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Initialize logger
	log := logger.New(cfg.Log)
	log.Debug("starting assistant",
		"backend", cfg.Storage.Backend,
		"log_level", cfg.Log.Level,
	)

	// A shutdown signal interrupts the loop; the book is persisted on the way out.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize the snapshot store
	var bookStore ports.BookStore
	switch cfg.Storage.Backend {
	case config.BackendPostgres:
		pg, err := db.New(ctx, cfg.Database, log)
		if err != nil {
			return err
		}
		defer pg.Close()
		bookStore, err = store.NewPostgresStore(ctx, pg, log)
		if err != nil {
			return err
		}
	default:
		bookStore = store.NewFileStore(cfg.Storage.Path, log)
	}

	// Load the persisted snapshot; a missing one yields an empty book.
	book, err := bookStore.Load(ctx)
	if err != nil {
		return err
	}
	log.Debug("address book loaded", "records", book.Len())

	svc := usecase.NewContactService(book, bookStore, logger.WithComponent(log, "contacts"))

	loop := repl.New(svc, cfg.Assistant.BirthdayWindowDays, log, os.Stdin, os.Stdout)
	return loop.Run(ctx)
}
