package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/gokatarajesh/trivia-api/internal/db"
)

// DBTX is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Queries runs the trivia statements against Postgres.
type Queries struct {
	db DBTX
}

var _ db.Queries = (*Queries)(nil)

func New(conn DBTX) *Queries {
	return &Queries{db: conn}
}

const listCategories = `SELECT id, type FROM categories ORDER BY id`

func (q *Queries) ListCategories(ctx context.Context) ([]db.Category, error) {
	rows, err := q.db.Query(ctx, listCategories)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return pgx.CollectRows(rows, scanCategory)
}

const getCategory = `SELECT id, type FROM categories WHERE id = $1`

func (q *Queries) GetCategory(ctx context.Context, id int64) (db.Category, error) {
	var c db.Category
	err := q.db.QueryRow(ctx, getCategory, id).Scan(&c.ID, &c.Type)
	return c, mapErr(err)
}

const upsertCategory = `
INSERT INTO categories (id, type) VALUES ($1, $2)
ON CONFLICT (id) DO UPDATE SET type = EXCLUDED.type
RETURNING id, type`

const syncCategorySequence = `
SELECT setval(pg_get_serial_sequence('categories', 'id'), (SELECT COALESCE(MAX(id), 1) FROM categories))`

// UpsertCategory writes an explicit id, so the serial sequence is moved past it afterwards.
func (q *Queries) UpsertCategory(ctx context.Context, arg db.UpsertCategoryParams) (db.Category, error) {
	var c db.Category
	if err := q.db.QueryRow(ctx, upsertCategory, arg.ID, arg.Type).Scan(&c.ID, &c.Type); err != nil {
		return db.Category{}, fmt.Errorf("upsert category %d: %w", arg.ID, err)
	}
	if _, err := q.db.Exec(ctx, syncCategorySequence); err != nil {
		return db.Category{}, fmt.Errorf("sync category sequence: %w", err)
	}
	return c, nil
}

const listQuestions = `SELECT id, question, answer, category, difficulty FROM questions ORDER BY id`

func (q *Queries) ListQuestions(ctx context.Context) ([]db.Question, error) {
	rows, err := q.db.Query(ctx, listQuestions)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	return pgx.CollectRows(rows, scanQuestion)
}

const countQuestions = `SELECT COUNT(*) FROM questions`

func (q *Queries) CountQuestions(ctx context.Context) (int64, error) {
	var n int64
	if err := q.db.QueryRow(ctx, countQuestions).Scan(&n); err != nil {
		return 0, fmt.Errorf("count questions: %w", err)
	}
	return n, nil
}

const getQuestion = `SELECT id, question, answer, category, difficulty FROM questions WHERE id = $1`

func (q *Queries) GetQuestion(ctx context.Context, id int64) (db.Question, error) {
	var r db.Question
	err := q.db.QueryRow(ctx, getQuestion, id).Scan(&r.ID, &r.Question, &r.Answer, &r.Category, &r.Difficulty)
	return r, mapErr(err)
}

const listQuestionsByCategory = `
SELECT id, question, answer, category, difficulty FROM questions
WHERE category = $1
ORDER BY id`

func (q *Queries) ListQuestionsByCategory(ctx context.Context, categoryID int64) ([]db.Question, error) {
	rows, err := q.db.Query(ctx, listQuestionsByCategory, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list questions by category: %w", err)
	}
	return pgx.CollectRows(rows, scanQuestion)
}

// strpos keeps % and _ in the term literal, unlike ILIKE.
const searchQuestions = `
SELECT id, question, answer, category, difficulty FROM questions
WHERE strpos(lower(question), lower($1)) > 0
ORDER BY id`

func (q *Queries) SearchQuestions(ctx context.Context, term string) ([]db.Question, error) {
	rows, err := q.db.Query(ctx, searchQuestions, term)
	if err != nil {
		return nil, fmt.Errorf("search questions: %w", err)
	}
	return pgx.CollectRows(rows, scanQuestion)
}

const insertQuestion = `
INSERT INTO questions (question, answer, category, difficulty)
VALUES ($1, $2, $3, $4)
RETURNING id, question, answer, category, difficulty`

func (q *Queries) InsertQuestion(ctx context.Context, arg db.InsertQuestionParams) (db.Question, error) {
	var r db.Question
	err := q.db.QueryRow(ctx, insertQuestion, arg.Question, arg.Answer, arg.Category, arg.Difficulty).
		Scan(&r.ID, &r.Question, &r.Answer, &r.Category, &r.Difficulty)
	if err != nil {
		return db.Question{}, fmt.Errorf("insert question: %w", err)
	}
	return r, nil
}

const deleteQuestion = `DELETE FROM questions WHERE id = $1`

func (q *Queries) DeleteQuestion(ctx context.Context, id int64) (int64, error) {
	tag, err := q.db.Exec(ctx, deleteQuestion, id)
	if err != nil {
		return 0, fmt.Errorf("delete question %d: %w", id, err)
	}
	return tag.RowsAffected(), nil
}

func scanCategory(row pgx.CollectableRow) (db.Category, error) {
	var c db.Category
	err := row.Scan(&c.ID, &c.Type)
	return c, err
}

func scanQuestion(row pgx.CollectableRow) (db.Question, error) {
	var r db.Question
	err := row.Scan(&r.ID, &r.Question, &r.Answer, &r.Category, &r.Difficulty)
	return r, err
}

func mapErr(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return db.ErrNoRows
	}
	return err
}
