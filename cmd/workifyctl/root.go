package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"workify/cmd"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	jsonOutput bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "workifyctl",
		Short: "Administer the workify marketplace database",
		Long: `workifyctl runs maintenance tasks against the database configured by the
same environment variables as the server (DB_HOST, DB_PORT, DB_USER, ...).

Examples:
  workifyctl migrate
  workifyctl category add --name Design --description "Logos and layouts"
  workifyctl sync-categories
  workifyctl stats --json`,
		SilenceUsage: true,
	}

	root.PersistentFlags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	root.AddCommand(
		newMigrateCmd(),
		newCategoryCmd(opts),
		newSyncCategoriesCmd(opts),
		newStatsCmd(opts),
		newTokenCmd(),
	)

	return root
}

// withApp opens the configured database, runs fn and closes the database.
func withApp(ctx context.Context, fn func(ctx context.Context, app *cmd.CompositionRoot) error) error {
	cfg, err := cmd.LoadConfig()
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))

	db, err := cmd.OpenDatabase(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := cmd.CloseDatabase(db); closeErr != nil {
			logger.Error("failed to close database", "error", closeErr)
		}
	}()

	app := cmd.NewCompositionRoot(cfg, db, logger)
	return fn(ctx, &app)
}

func printResult(w io.Writer, jsonOutput bool, v any, text string) error {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	_, err := fmt.Fprintln(w, text)
	return err
}
