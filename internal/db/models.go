package db

import "errors"

// ErrNoRows is returned by every driver when a lookup or delete matches nothing.
var ErrNoRows = errors.New("db: no rows in result set")

// Category mirrors a categories row.
type Category struct {
	ID   int64
	Type string
}

// Question mirrors a questions row.
type Question struct {
	ID         int64
	Question   string
	Answer     string
	Category   int64
	Difficulty int32
}

// InsertQuestionParams carries the columns of a new question; the id is assigned by the store.
type InsertQuestionParams struct {
	Question   string
	Answer     string
	Category   int64
	Difficulty int32
}

// UpsertCategoryParams writes a category with an explicit id.
type UpsertCategoryParams struct {
	ID   int64
	Type string
}
