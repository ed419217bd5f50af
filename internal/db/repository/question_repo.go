package repository

import (
	"context"
	"fmt"

	"github.com/gokatarajesh/trivia-api/internal/db"
)

type questionStore interface {
	ListQuestions(ctx context.Context) ([]db.Question, error)
	CountQuestions(ctx context.Context) (int64, error)
	ListQuestionsByCategory(ctx context.Context, categoryID int64) ([]db.Question, error)
	SearchQuestions(ctx context.Context, term string) ([]db.Question, error)
	InsertQuestion(ctx context.Context, arg db.InsertQuestionParams) (db.Question, error)
	DeleteQuestion(ctx context.Context, id int64) (int64, error)
}

// QuestionRepository exposes typed question access over either driver.
type QuestionRepository struct {
	store questionStore
}

func NewQuestionRepository(store questionStore) *QuestionRepository {
	return &QuestionRepository{store: store}
}

// List returns every question in id order.
func (r *QuestionRepository) List(ctx context.Context) ([]db.Question, error) {
	return r.store.ListQuestions(ctx)
}

// Count returns the number of stored questions.
func (r *QuestionRepository) Count(ctx context.Context) (int64, error) {
	return r.store.CountQuestions(ctx)
}

// ListByCategory returns the questions whose category equals categoryID.
func (r *QuestionRepository) ListByCategory(ctx context.Context, categoryID int64) ([]db.Question, error) {
	return r.store.ListQuestionsByCategory(ctx, categoryID)
}

// Search matches term as a case-insensitive substring of the question text.
// An empty term matches everything.
func (r *QuestionRepository) Search(ctx context.Context, term string) ([]db.Question, error) {
	if term == "" {
		return r.store.ListQuestions(ctx)
	}
	return r.store.SearchQuestions(ctx, term)
}

// Insert stores a new question and returns it with its assigned id.
func (r *QuestionRepository) Insert(ctx context.Context, params db.InsertQuestionParams) (db.Question, error) {
	return r.store.InsertQuestion(ctx, params)
}

// Delete removes a question; db.ErrNoRows when nothing was deleted.
func (r *QuestionRepository) Delete(ctx context.Context, id int64) error {
	n, err := r.store.DeleteQuestion(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("delete question %d: %w", id, db.ErrNoRows)
	}
	return nil
}
