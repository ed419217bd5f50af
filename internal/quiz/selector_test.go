package quiz

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gokatarajesh/trivia-api/internal/question"
)

func pool(ids ...int64) []question.Question {
	out := make([]question.Question, 0, len(ids))
	for _, id := range ids {
		out = append(out, question.Question{ID: id, Question: "q", Answer: "a", Category: 1, Difficulty: 1})
	}
	return out
}

func seeded() *rand.Rand {
	return rand.New(rand.NewPCG(7, 11))
}

func TestSelectorReturnsOnlyUnseenQuestion(t *testing.T) {
	s := NewSelector(0, seeded())

	for range 50 {
		q, ended, err := s.Next(pool(1, 2, 3), []int64{1, 2})
		require.NoError(t, err)
		assert.False(t, ended)
		assert.EqualValues(t, 3, q.ID)
	}
}

func TestSelectorNothingSeen(t *testing.T) {
	s := NewSelector(0, seeded())

	q, ended, err := s.Next(pool(4, 5, 6), nil)
	require.NoError(t, err)
	assert.False(t, ended)
	assert.Contains(t, []int64{4, 5, 6}, q.ID)
}

func TestSelectorCoversWholePool(t *testing.T) {
	s := NewSelector(0, seeded())
	p := pool(1, 2, 3, 4, 5)

	var seen []int64
	for range p {
		q, ended, err := s.Next(p, seen)
		require.NoError(t, err)
		require.False(t, ended)
		assert.NotContains(t, seen, q.ID)
		seen = append(seen, q.ID)
	}

	_, ended, err := s.Next(p, seen)
	require.NoError(t, err)
	assert.True(t, ended)
}

func TestSelectorEndsWhenSeenMatchesPoolSize(t *testing.T) {
	s := NewSelector(0, seeded())

	_, ended, err := s.Next(pool(1, 2), []int64{2, 1})
	require.NoError(t, err)
	assert.True(t, ended)

	_, ended, err = s.Next(nil, nil)
	require.NoError(t, err)
	assert.True(t, ended, "empty pool with nothing seen ends the game")
}

func TestSelectorIgnoresDuplicateSeenIDs(t *testing.T) {
	s := NewSelector(0, seeded())

	q, ended, err := s.Next(pool(1, 2), []int64{1, 1})
	require.NoError(t, err)
	assert.False(t, ended)
	assert.EqualValues(t, 2, q.ID)
}

func TestSelectorExhaustsOnForeignSeenIDs(t *testing.T) {
	s := NewSelector(200, seeded())

	// one id outside the pool keeps the sizes apart while every pool id is seen
	_, ended, err := s.Next(pool(1, 2), []int64{1, 2, 99})
	assert.False(t, ended)
	assert.ErrorIs(t, err, ErrSelectionExhausted)

	_, _, err = s.Next(nil, []int64{5})
	assert.ErrorIs(t, err, ErrSelectionExhausted)
}

func TestSelectorCountsDraws(t *testing.T) {
	draws := 0
	s := &Selector{maxDraws: 3, intN: func(n int) int { draws++; return 0 }}

	_, _, err := s.Next(pool(1, 2), []int64{1, 42, 43})
	assert.ErrorIs(t, err, ErrSelectionExhausted)
	assert.Equal(t, 3, draws)
}
