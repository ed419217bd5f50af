package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/gokatarajesh/trivia-api/internal/db"
)

// Store owns the pgx pool backing the Postgres driver.
type Store struct {
	*Queries
	pool  *pgxpool.Pool
	sqlDB *sql.DB
}

var _ db.Store = (*Store)(nil)

// Open connects to Postgres and verifies the connection.
func Open(ctx context.Context, connString string) (*Store, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return &Store{Queries: New(pool), pool: pool}, nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrator exposes the pool through database/sql for goose.
func (s *Store) Migrator() (*goose.Provider, error) {
	if s.sqlDB == nil {
		s.sqlDB = stdlib.OpenDBFromPool(s.pool)
	}
	return db.NewMigrator(s.sqlDB, goose.DialectPostgres, "postgres")
}

func (s *Store) Close() error {
	var err error
	if s.sqlDB != nil {
		err = s.sqlDB.Close()
	}
	s.pool.Close()
	return err
}
