package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/gokatarajesh/trivia-api/internal/config"
	"github.com/gokatarajesh/trivia-api/internal/db"
	"github.com/gokatarajesh/trivia-api/internal/db/connect"
	"github.com/gokatarajesh/trivia-api/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:           "migrator",
	Short:         "Manage the trivia database schema and seed data",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if os.Getenv("APP_ENV") != "production" {
			// a missing .env is fine, the environment may already be set
			_ = godotenv.Load("configs/.env")
		}
	},
}

var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd.Context(), func(ctx context.Context, store db.Store, logger zerolog.Logger) error {
			if err := db.MigrateUp(ctx, store, logger); err != nil {
				return err
			}
			logger.Info().Msg("migrations applied successfully")
			return nil
		})
	},
}

var downCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back the most recent migration",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd.Context(), func(ctx context.Context, store db.Store, logger zerolog.Logger) error {
			provider, err := store.Migrator()
			if err != nil {
				return err
			}
			res, err := provider.Down(ctx)
			if err != nil {
				return fmt.Errorf("migrate down: %w", err)
			}
			logger.Info().Int64("version", res.Source.Version).Str("path", res.Source.Path).Msg("migration rolled back")
			return nil
		})
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show which migrations are applied",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd.Context(), func(ctx context.Context, store db.Store, logger zerolog.Logger) error {
			provider, err := store.Migrator()
			if err != nil {
				return err
			}
			statuses, err := provider.Status(ctx)
			if err != nil {
				return fmt.Errorf("migration status: %w", err)
			}
			out := cmd.OutOrStdout()
			for _, s := range statuses {
				applied := "pending"
				if s.State == goose.StateApplied {
					applied = s.AppliedAt.Format("2006-01-02 15:04:05")
				}
				fmt.Fprintf(out, "%-6d %-40s %s\n", s.Source.Version, s.Source.Path, applied)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(upCmd)
	rootCmd.AddCommand(downCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(seedCmd)
}

// withStore loads config, opens the configured store and closes it after fn.
func withStore(ctx context.Context, fn func(ctx context.Context, store db.Store, logger zerolog.Logger) error) error {
	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}
	logger := logging.New(cfg.Name+"-migrator", cfg.Env, cfg.LogLevel)

	store, err := connect.Open(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	return fn(ctx, store, logger)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "migrator:", err)
		stop()
		os.Exit(1)
	}
}
