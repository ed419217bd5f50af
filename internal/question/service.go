package question

import (
	"context"
	"errors"
	"fmt"

	"github.com/gokatarajesh/trivia-api/internal/db"
	"github.com/gokatarajesh/trivia-api/internal/db/repository"
)

// Difficulty bounds accepted on create.
const (
	MinDifficulty = 1
	MaxDifficulty = 5
)

// Service implements listing, search and mutation of questions.
type Service struct {
	questions  *repository.QuestionRepository
	categories *repository.CategoryRepository
	pageSize   int
}

type ServiceOptions struct {
	PageSize int
}

func NewService(questions *repository.QuestionRepository, categories *repository.CategoryRepository, opts ServiceOptions) *Service {
	size := opts.PageSize
	if size <= 0 {
		size = DefaultPageSize
	}
	return &Service{
		questions:  questions,
		categories: categories,
		pageSize:   size,
	}
}

// Categories returns every category in id order.
func (s *Service) Categories(ctx context.Context) ([]Category, error) {
	rows, err := s.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	out := make([]Category, 0, len(rows))
	for _, row := range rows {
		out = append(out, Category{ID: row.ID, Type: row.Type})
	}
	return out, nil
}

// ListPage returns one page of the full question list. TotalQuestions counts
// every stored question and Categories carries every label.
func (s *Service) ListPage(ctx context.Context, page int) (Page, error) {
	all, err := s.questions.List(ctx)
	if err != nil {
		return Page{}, fmt.Errorf("list questions: %w", err)
	}
	rows, err := Paginate(all, page, s.pageSize)
	if err != nil {
		return Page{}, err
	}
	cats, err := s.Categories(ctx)
	if err != nil {
		return Page{}, err
	}
	labels := make([]string, 0, len(cats))
	for _, c := range cats {
		labels = append(labels, c.Type)
	}
	return Page{
		Questions:      FromRows(rows),
		TotalQuestions: len(all),
		Categories:     labels,
	}, nil
}

// Search returns questions containing term case-insensitively, unpaginated.
func (s *Service) Search(ctx context.Context, term string) ([]Question, error) {
	rows, err := s.questions.Search(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", term, err)
	}
	return FromRows(rows), nil
}

// ListByCategory returns the questions of one category. An unknown category
// and a category without questions are both ErrNotFound.
func (s *Service) ListByCategory(ctx context.Context, categoryID int64) ([]Question, error) {
	rows, err := s.questions.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list category %d: %w", categoryID, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("category %d has no questions: %w", categoryID, ErrNotFound)
	}
	return FromRows(rows), nil
}

// Create validates and stores a new question.
func (s *Service) Create(ctx context.Context, req CreateRequest) (Question, error) {
	if err := req.Validate(); err != nil {
		return Question{}, err
	}
	if _, err := s.categories.Get(ctx, req.Category); err != nil {
		if errors.Is(err, db.ErrNoRows) {
			return Question{}, &ValidationError{Field: "category", Reason: fmt.Sprintf("category %d does not exist", req.Category)}
		}
		return Question{}, fmt.Errorf("lookup category %d: %w", req.Category, err)
	}
	row, err := s.questions.Insert(ctx, db.InsertQuestionParams{
		Question:   req.Question,
		Answer:     req.Answer,
		Category:   req.Category,
		Difficulty: int32(req.Difficulty),
	})
	if err != nil {
		return Question{}, fmt.Errorf("create question: %w", err)
	}
	return FromRow(row), nil
}

// Delete removes a question by id; a missing id is ErrNotFound.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.questions.Delete(ctx, id); err != nil {
		if errors.Is(err, db.ErrNoRows) {
			return fmt.Errorf("question %d: %w", id, ErrNotFound)
		}
		return fmt.Errorf("delete question %d: %w", id, err)
	}
	return nil
}

// Validate checks the fields of a create request that need no store lookup.
func (req CreateRequest) Validate() error {
	switch {
	case req.Question == "":
		return &ValidationError{Field: "question", Reason: "must not be empty"}
	case req.Answer == "":
		return &ValidationError{Field: "answer", Reason: "must not be empty"}
	case req.Difficulty < MinDifficulty || req.Difficulty > MaxDifficulty:
		return &ValidationError{Field: "difficulty", Reason: fmt.Sprintf("must be between %d and %d", MinDifficulty, MaxDifficulty)}
	}
	return nil
}
