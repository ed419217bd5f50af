package quiz

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/gokatarajesh/trivia-api/internal/question"
)

// DefaultMaxDraws bounds rejection sampling when the seen list is not a
// subset of the pool and the game-end check can never fire.
const DefaultMaxDraws = 100000

// ErrSelectionExhausted means no unseen question was drawn within the draw cap.
var ErrSelectionExhausted = errors.New("quiz selection exhausted")

// Selector draws a uniformly random unseen question from a pool.
type Selector struct {
	maxDraws int
	intN     func(n int) int
}

// NewSelector builds a selector. A nil rng uses the shared top-level source,
// which is safe for concurrent requests; a seeded *rand.Rand is not.
func NewSelector(maxDraws int, rng *rand.Rand) *Selector {
	if maxDraws <= 0 {
		maxDraws = DefaultMaxDraws
	}
	intN := rand.IntN
	if rng != nil {
		intN = rng.IntN
	}
	return &Selector{maxDraws: maxDraws, intN: intN}
}

// Next returns an unseen question from pool, or ended=true once the number of
// seen ids equals the pool size. The check compares sizes only: ids outside
// the pool keep the game running until the draw cap is hit.
func (s *Selector) Next(pool []question.Question, seen []int64) (q question.Question, ended bool, err error) {
	seenSet := make(map[int64]struct{}, len(seen))
	for _, id := range seen {
		seenSet[id] = struct{}{}
	}
	if len(seenSet) == len(pool) {
		return question.Question{}, true, nil
	}
	if len(pool) == 0 {
		return question.Question{}, false, fmt.Errorf("empty pool with %d seen ids: %w", len(seenSet), ErrSelectionExhausted)
	}

	for range s.maxDraws {
		candidate := pool[s.intN(len(pool))]
		if _, ok := seenSet[candidate.ID]; !ok {
			return candidate, false, nil
		}
	}
	return question.Question{}, false, fmt.Errorf("no unseen question after %d draws: %w", s.maxDraws, ErrSelectionExhausted)
}
