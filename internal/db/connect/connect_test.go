package connect

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gokatarajesh/trivia-api/internal/config"
	"github.com/gokatarajesh/trivia-api/internal/db/sqlite"
)

func TestOpenSQLite(t *testing.T) {
	cfg := &config.App{
		Database: config.Database{Driver: config.DriverSQLite},
		SQLite:   config.SQLite{Path: filepath.Join(t.TempDir(), "trivia.db")},
	}

	store, err := Open(context.Background(), cfg, zerolog.Nop())
	require.NoError(t, err)
	defer store.Close()

	assert.IsType(t, &sqlite.Store{}, store)
	assert.NoError(t, store.Ping(context.Background()))
}

func TestOpenUnknownDriver(t *testing.T) {
	cfg := &config.App{Database: config.Database{Driver: "oracle"}}

	_, err := Open(context.Background(), cfg, zerolog.Nop())
	assert.ErrorContains(t, err, "unknown database driver")
}
