package db

import (
	"context"

	"github.com/pressly/goose/v3"
)

// Queries is the query surface shared by the Postgres and SQLite drivers.
type Queries interface {
	ListCategories(ctx context.Context) ([]Category, error)
	GetCategory(ctx context.Context, id int64) (Category, error)
	UpsertCategory(ctx context.Context, arg UpsertCategoryParams) (Category, error)

	ListQuestions(ctx context.Context) ([]Question, error)
	CountQuestions(ctx context.Context) (int64, error)
	GetQuestion(ctx context.Context, id int64) (Question, error)
	ListQuestionsByCategory(ctx context.Context, categoryID int64) ([]Question, error)
	SearchQuestions(ctx context.Context, term string) ([]Question, error)
	InsertQuestion(ctx context.Context, arg InsertQuestionParams) (Question, error)
	DeleteQuestion(ctx context.Context, id int64) (int64, error)
}

// Store is a live connection to one of the supported databases.
type Store interface {
	Queries

	Ping(ctx context.Context) error
	Migrator() (*goose.Provider, error)
	Close() error
}
