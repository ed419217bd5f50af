package sqlite

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gokatarajesh/trivia-api/internal/db"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	require.NoError(t, db.MigrateUp(context.Background(), s, zerolog.Nop()))
	return s
}

func seedCategories(t *testing.T, s *Store, labels ...string) {
	t.Helper()
	for i, label := range labels {
		_, err := s.UpsertCategory(context.Background(), db.UpsertCategoryParams{ID: int64(i + 1), Type: label})
		require.NoError(t, err)
	}
}

func insert(t *testing.T, s *Store, text string, category int64) db.Question {
	t.Helper()
	q, err := s.InsertQuestion(context.Background(), db.InsertQuestionParams{
		Question:   text,
		Answer:     "answer",
		Category:   category,
		Difficulty: 2,
	})
	require.NoError(t, err)
	return q
}

func TestCategories(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	seedCategories(t, s, "Science", "Art")

	cats, err := s.ListCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []db.Category{{ID: 1, Type: "Science"}, {ID: 2, Type: "Art"}}, cats)

	_, err = s.UpsertCategory(ctx, db.UpsertCategoryParams{ID: 2, Type: "Arts"})
	require.NoError(t, err)
	got, err := s.GetCategory(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Arts", got.Type)

	_, err = s.GetCategory(ctx, 99)
	assert.ErrorIs(t, err, db.ErrNoRows)
}

func TestQuestionLifecycle(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	seedCategories(t, s, "Science")

	created := insert(t, s, "What is H2O?", 1)
	assert.NotZero(t, created.ID)

	got, err := s.GetQuestion(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	n, err := s.CountQuestions(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	affected, err := s.DeleteQuestion(ctx, created.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)

	_, err = s.GetQuestion(ctx, created.ID)
	assert.ErrorIs(t, err, db.ErrNoRows)

	affected, err = s.DeleteQuestion(ctx, created.ID)
	require.NoError(t, err)
	assert.Zero(t, affected)
}

func TestInsertRejectsUnknownCategory(t *testing.T) {
	s := openTestStore(t)

	_, err := s.InsertQuestion(context.Background(), db.InsertQuestionParams{
		Question: "orphan", Answer: "a", Category: 42, Difficulty: 1,
	})
	assert.Error(t, err)
}

func TestListQuestionsByCategory(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	seedCategories(t, s, "Science", "Art")

	a := insert(t, s, "one", 1)
	insert(t, s, "two", 2)
	c := insert(t, s, "three", 1)

	got, err := s.ListQuestionsByCategory(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []db.Question{a, c}, got)

	got, err = s.ListQuestionsByCategory(ctx, 5)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSearchQuestions(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	seedCategories(t, s, "Entertainment")

	title := insert(t, s, "Whose autobiography is entitled 'I Know Why the Caged Bird Sings'?", 1)
	box := insert(t, s, "What boxer's original name is Cassius Clay?", 1)
	insert(t, s, "100% of what?", 1)

	got, err := s.SearchQuestions(ctx, "TITLE")
	require.NoError(t, err)
	assert.Equal(t, []db.Question{title}, got)

	got, err = s.SearchQuestions(ctx, "box")
	require.NoError(t, err)
	assert.Equal(t, []db.Question{box}, got)

	got, err = s.SearchQuestions(ctx, "_")
	require.NoError(t, err)
	assert.Empty(t, got, "underscore must not act as a wildcard")

	got, err = s.SearchQuestions(ctx, "%")
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestSearchQuestionsFoldsNonASCII(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	seedCategories(t, s, "Art")

	etoile := insert(t, s, "Who painted ÉTOILE?", 1)
	insert(t, s, "Who painted Guernica?", 1)

	got, err := s.SearchQuestions(ctx, "étoile")
	require.NoError(t, err)
	assert.Equal(t, []db.Question{etoile}, got)

	got, err = s.SearchQuestions(ctx, "PAINTED")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestMigratorStatus(t *testing.T) {
	s := openTestStore(t)

	provider, err := s.Migrator()
	require.NoError(t, err)

	version, err := provider.GetDBVersion(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 1, version)
}
