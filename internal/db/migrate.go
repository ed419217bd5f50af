package db

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog"
)

//go:embed migrations
var migrations embed.FS

// NewMigrator builds a goose provider over the embedded migrations of the given dialect.
// dir is the sub-directory under migrations/ holding that dialect's SQL files.
func NewMigrator(sqlDB *sql.DB, dialect goose.Dialect, dir string) (*goose.Provider, error) {
	fsys, err := fs.Sub(migrations, "migrations/"+dir)
	if err != nil {
		return nil, fmt.Errorf("open %s migrations: %w", dir, err)
	}
	provider, err := goose.NewProvider(dialect, sqlDB, fsys)
	if err != nil {
		return nil, fmt.Errorf("build migrator: %w", err)
	}
	return provider, nil
}

// MigrateUp applies every pending migration of the store.
func MigrateUp(ctx context.Context, store Store, logger zerolog.Logger) error {
	provider, err := store.Migrator()
	if err != nil {
		return err
	}
	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("migrate up: %w", err)
	}
	for _, res := range results {
		logger.Info().
			Int64("version", res.Source.Version).
			Str("path", res.Source.Path).
			Dur("duration", res.Duration).
			Msg("migration applied")
	}
	return nil
}
