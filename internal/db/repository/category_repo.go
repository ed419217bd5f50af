package repository

import (
	"context"

	"github.com/gokatarajesh/trivia-api/internal/db"
)

type categoryStore interface {
	ListCategories(ctx context.Context) ([]db.Category, error)
	GetCategory(ctx context.Context, id int64) (db.Category, error)
	UpsertCategory(ctx context.Context, arg db.UpsertCategoryParams) (db.Category, error)
}

// CategoryRepository contains DB helpers for categories.
type CategoryRepository struct {
	store categoryStore
}

// NewCategoryRepository constructs a new category repository.
func NewCategoryRepository(store categoryStore) *CategoryRepository {
	return &CategoryRepository{store: store}
}

// List returns all categories in id order.
func (r *CategoryRepository) List(ctx context.Context) ([]db.Category, error) {
	return r.store.ListCategories(ctx)
}

// Get fetches a category by id; db.ErrNoRows when absent.
func (r *CategoryRepository) Get(ctx context.Context, id int64) (db.Category, error) {
	return r.store.GetCategory(ctx, id)
}

// Upsert writes a category with an explicit id (seeding).
func (r *CategoryRepository) Upsert(ctx context.Context, params db.UpsertCategoryParams) (db.Category, error) {
	return r.store.UpsertCategory(ctx, params)
}
