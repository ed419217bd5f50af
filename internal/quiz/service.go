package quiz

import (
	"context"
	"fmt"

	"github.com/gokatarajesh/trivia-api/internal/db"
	"github.com/gokatarajesh/trivia-api/internal/db/repository"
	"github.com/gokatarajesh/trivia-api/internal/question"
)

// AllCategories selects the pool of every stored question.
const AllCategories int64 = 0

// Round is the outcome of one quiz request: either a question or the end of the game.
type Round struct {
	Question  *question.Question
	GameEnded bool
}

// Service resolves the candidate pool and delegates the draw to a Selector.
type Service struct {
	questions *repository.QuestionRepository
	selector  *Selector
}

func NewService(questions *repository.QuestionRepository, selector *Selector) *Service {
	return &Service{questions: questions, selector: selector}
}

// Next returns an unseen question in categoryID (AllCategories for every
// category), or GameEnded when the client has seen the whole pool.
func (s *Service) Next(ctx context.Context, categoryID int64, seen []int64) (Round, error) {
	pool, err := s.pool(ctx, categoryID)
	if err != nil {
		return Round{}, err
	}
	q, ended, err := s.selector.Next(question.FromRows(pool), seen)
	if err != nil {
		return Round{}, fmt.Errorf("category %d: %w", categoryID, err)
	}
	if ended {
		return Round{GameEnded: true}, nil
	}
	return Round{Question: &q}, nil
}

func (s *Service) pool(ctx context.Context, categoryID int64) ([]db.Question, error) {
	if categoryID == AllCategories {
		rows, err := s.questions.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("load quiz pool: %w", err)
		}
		return rows, nil
	}
	rows, err := s.questions.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("load quiz pool for category %d: %w", categoryID, err)
	}
	return rows, nil
}
