package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/pressly/goose/v3"

	"github.com/gokatarajesh/trivia-api/internal/db"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store runs the trivia statements against an embedded SQLite database.
type Store struct {
	db *sql.DB
}

var _ db.Store = (*Store)(nil)

// Open opens the database at dsn (":memory:" for a throwaway store).
// A single connection is kept so in-memory databases survive between calls
// and writers never contend for the file lock.
func Open(ctx context.Context, dsn string) (*Store, error) {
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetConnMaxLifetime(0)

	if err := applyPragmas(ctx, sqlDB); err != nil {
		sqlDB.Close()
		return nil, err
	}
	return &Store{db: sqlDB}, nil
}

func applyPragmas(ctx context.Context, sqlDB *sql.DB) error {
	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, p := range pragmas {
		if _, err := sqlDB.ExecContext(ctx, p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Migrator() (*goose.Provider, error) {
	return db.NewMigrator(s.db, goose.DialectSQLite3, "sqlite")
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ListCategories(ctx context.Context) ([]db.Category, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, type FROM categories ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var out []db.Category
	for rows.Next() {
		var c db.Category
		if err := rows.Scan(&c.ID, &c.Type); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *Store) GetCategory(ctx context.Context, id int64) (db.Category, error) {
	var c db.Category
	err := s.db.QueryRowContext(ctx, `SELECT id, type FROM categories WHERE id = ?`, id).Scan(&c.ID, &c.Type)
	return c, mapErr(err)
}

func (s *Store) UpsertCategory(ctx context.Context, arg db.UpsertCategoryParams) (db.Category, error) {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO categories (id, type) VALUES (?, ?)
		 ON CONFLICT (id) DO UPDATE SET type = excluded.type`,
		arg.ID, arg.Type)
	if err != nil {
		return db.Category{}, fmt.Errorf("upsert category %d: %w", arg.ID, err)
	}
	return db.Category{ID: arg.ID, Type: arg.Type}, nil
}

const questionColumns = `id, question, answer, category, difficulty`

func (s *Store) ListQuestions(ctx context.Context) ([]db.Question, error) {
	return s.queryQuestions(ctx, `SELECT `+questionColumns+` FROM questions ORDER BY id`)
}

func (s *Store) CountQuestions(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM questions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count questions: %w", err)
	}
	return n, nil
}

func (s *Store) GetQuestion(ctx context.Context, id int64) (db.Question, error) {
	var q db.Question
	err := s.db.QueryRowContext(ctx, `SELECT `+questionColumns+` FROM questions WHERE id = ?`, id).
		Scan(&q.ID, &q.Question, &q.Answer, &q.Category, &q.Difficulty)
	return q, mapErr(err)
}

func (s *Store) ListQuestionsByCategory(ctx context.Context, categoryID int64) ([]db.Question, error) {
	return s.queryQuestions(ctx,
		`SELECT `+questionColumns+` FROM questions WHERE category = ? ORDER BY id`, categoryID)
}

// SearchQuestions matches in Go: SQLite's lower() folds ASCII only. The term
// is a plain substring, so % and _ stay literal.
func (s *Store) SearchQuestions(ctx context.Context, term string) ([]db.Question, error) {
	all, err := s.ListQuestions(ctx)
	if err != nil {
		return nil, err
	}
	needle := strings.ToLower(term)
	out := make([]db.Question, 0, len(all))
	for _, q := range all {
		if strings.Contains(strings.ToLower(q.Question), needle) {
			out = append(out, q)
		}
	}
	return out, nil
}

func (s *Store) InsertQuestion(ctx context.Context, arg db.InsertQuestionParams) (db.Question, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO questions (question, answer, category, difficulty) VALUES (?, ?, ?, ?)`,
		arg.Question, arg.Answer, arg.Category, arg.Difficulty)
	if err != nil {
		return db.Question{}, fmt.Errorf("insert question: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return db.Question{}, fmt.Errorf("insert question: %w", err)
	}
	return db.Question{
		ID:         id,
		Question:   arg.Question,
		Answer:     arg.Answer,
		Category:   arg.Category,
		Difficulty: arg.Difficulty,
	}, nil
}

func (s *Store) DeleteQuestion(ctx context.Context, id int64) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM questions WHERE id = ?`, id)
	if err != nil {
		return 0, fmt.Errorf("delete question %d: %w", id, err)
	}
	return res.RowsAffected()
}

func (s *Store) queryQuestions(ctx context.Context, query string, args ...any) ([]db.Question, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query questions: %w", err)
	}
	defer rows.Close()

	var out []db.Question
	for rows.Next() {
		var q db.Question
		if err := rows.Scan(&q.ID, &q.Question, &q.Answer, &q.Category, &q.Difficulty); err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

func mapErr(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return db.ErrNoRows
	}
	return err
}
