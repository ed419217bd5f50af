package connect

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/config"
	"github.com/gokatarajesh/trivia-api/internal/db"
	"github.com/gokatarajesh/trivia-api/internal/db/postgres"
	"github.com/gokatarajesh/trivia-api/internal/db/sqlite"
)

// Open returns the store selected by DB_DRIVER.
func Open(ctx context.Context, cfg *config.App, logger zerolog.Logger) (db.Store, error) {
	switch cfg.Database.Driver {
	case config.DriverPostgres:
		store, err := postgres.Open(ctx, cfg.Postgres.ConnString())
		if err != nil {
			return nil, err
		}
		logger.Info().
			Str("host", cfg.Postgres.Host).
			Int("port", cfg.Postgres.Port).
			Str("database", cfg.Postgres.Database).
			Msg("connected to postgres")
		return store, nil
	case config.DriverSQLite:
		store, err := sqlite.Open(ctx, cfg.SQLite.Path)
		if err != nil {
			return nil, err
		}
		logger.Info().Str("path", cfg.SQLite.Path).Msg("opened sqlite store")
		return store, nil
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Database.Driver)
	}
}
