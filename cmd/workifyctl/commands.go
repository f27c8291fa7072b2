package main

import (
	"context"
	"fmt"
	"time"

	"workify/cmd"
	httpin "workify/internal/adapters/in/http"
	"workify/internal/adapters/out/postgres"
	"workify/internal/core/application/usecases/commands"
	"workify/internal/core/application/usecases/queries"
	"workify/internal/core/domain/model/kernel"

	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update tables and constraints",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return withApp(c.Context(), func(ctx context.Context, app *cmd.CompositionRoot) error {
				if err := postgres.Migrate(ctx, app.DB()); err != nil {
					return fmt.Errorf("migrate: %w", err)
				}
				_, err := fmt.Fprintln(c.OutOrStdout(), "schema is up to date")
				return err
			})
		},
	}
}

func newCategoryCmd(opts *rootOptions) *cobra.Command {
	category := &cobra.Command{
		Use:   "category",
		Short: "Manage categories",
	}

	var name, description string
	add := &cobra.Command{
		Use:   "add",
		Short: "Create a category",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			command, err := commands.NewCreateCategoryCommand(kernel.NewUUID(), name, description)
			if err != nil {
				return err
			}

			return withApp(c.Context(), func(ctx context.Context, app *cmd.CompositionRoot) error {
				created, err := app.CreateCreateCategoryCommandHandler().Handle(ctx, command)
				if err != nil {
					return err
				}

				return printResult(c.OutOrStdout(), opts.jsonOutput,
					map[string]string{"id": created.ID().String(), "name": created.Name()},
					fmt.Sprintf("created category %q (%s)", created.Name(), created.ID()))
			})
		},
	}
	add.Flags().StringVar(&name, "name", "", "Category name (unique)")
	add.Flags().StringVar(&description, "description", "", "Category description")
	_ = add.MarkFlagRequired("name")

	category.AddCommand(add)
	return category
}

func newSyncCategoriesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sync-categories",
		Short: "Recompute every category's open-job counter",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return withApp(c.Context(), func(ctx context.Context, app *cmd.CompositionRoot) error {
				updated, err := app.CreateSyncCategoryCountsCommandHandler().Handle(ctx)
				if err != nil {
					return err
				}

				return printResult(c.OutOrStdout(), opts.jsonOutput,
					map[string]int64{"updated": updated},
					fmt.Sprintf("resynced %d categories", updated))
			})
		},
	}
}

func newStatsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show marketplace totals",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return withApp(c.Context(), func(ctx context.Context, app *cmd.CompositionRoot) error {
				stats, err := app.CreateGetJobStatsQueryHandler().Handle(ctx, queries.NewGetJobStatsQuery())
				if err != nil {
					return err
				}

				return printResult(c.OutOrStdout(), opts.jsonOutput,
					map[string]int64{"totalOpenJobs": stats.TotalOpenJobs, "totalCategories": stats.TotalCategories},
					fmt.Sprintf("open jobs: %d\ncategories: %d", stats.TotalOpenJobs, stats.TotalCategories))
			})
		},
	}
}

func newTokenCmd() *cobra.Command {
	var (
		subject string
		role    string
		ttl     time.Duration
	)

	token := &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token for local testing",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			cfg, err := cmd.LoadConfig()
			if err != nil {
				return err
			}
			if err = cfg.ValidateServer(); err != nil {
				return err
			}

			id := kernel.NewUUID()
			if subject != "" {
				if id, err = kernel.UUIDFromString(subject); err != nil {
					return err
				}
			}
			parsedRole, err := kernel.ParseRole(role)
			if err != nil {
				return err
			}
			actor, err := kernel.NewActor(id, parsedRole)
			if err != nil {
				return err
			}

			signed, err := httpin.SignToken([]byte(cfg.JWTSecret), actor, ttl)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(c.OutOrStdout(), signed)
			return err
		},
	}
	token.Flags().StringVar(&subject, "sub", "", "Actor UUID (random when empty)")
	token.Flags().StringVar(&role, "role", string(kernel.RoleEmployer), "Actor role: employer or worker")
	token.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "Token lifetime; 0 never expires")

	return token
}
