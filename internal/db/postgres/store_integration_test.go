//go:build integration
// +build integration

package postgres

import (
	"context"
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gokatarajesh/trivia-api/internal/db"
)

// Requires TEST_DATABASE_URL pointing at a disposable database.
func openIntegrationStore(t *testing.T) *Store {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	ctx := context.Background()
	s, err := Open(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	require.NoError(t, db.MigrateUp(ctx, s, zerolog.Nop()))
	_, err = s.pool.Exec(ctx, `TRUNCATE questions, categories RESTART IDENTITY`)
	require.NoError(t, err)
	return s
}

func TestPostgresQuestionLifecycle(t *testing.T) {
	s := openIntegrationStore(t)
	ctx := context.Background()

	_, err := s.UpsertCategory(ctx, db.UpsertCategoryParams{ID: 1, Type: "Science"})
	require.NoError(t, err)

	created, err := s.InsertQuestion(ctx, db.InsertQuestionParams{
		Question: "What is the heaviest organ in the human body?", Answer: "The Liver", Category: 1, Difficulty: 4,
	})
	require.NoError(t, err)

	got, err := s.SearchQuestions(ctx, "HEAVIEST")
	require.NoError(t, err)
	assert.Equal(t, []db.Question{created}, got)

	byCat, err := s.ListQuestionsByCategory(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, byCat, 1)

	affected, err := s.DeleteQuestion(ctx, created.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)

	_, err = s.GetQuestion(ctx, created.ID)
	assert.ErrorIs(t, err, db.ErrNoRows)
}

func TestPostgresAcceptsIDsBeyondInt32(t *testing.T) {
	s := openIntegrationStore(t)
	ctx := context.Background()

	byCat, err := s.ListQuestionsByCategory(ctx, 4294967296)
	require.NoError(t, err)
	assert.Empty(t, byCat)

	_, err = s.GetQuestion(ctx, 4294967296)
	assert.ErrorIs(t, err, db.ErrNoRows)

	affected, err := s.DeleteQuestion(ctx, 4294967296)
	require.NoError(t, err)
	assert.Zero(t, affected)

	cat, err := s.UpsertCategory(ctx, db.UpsertCategoryParams{ID: 4294967296, Type: "Wide"})
	require.NoError(t, err)
	assert.EqualValues(t, 4294967296, cat.ID)
}
