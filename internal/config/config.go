package config

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/caarlos0/env/v10"
)

// Supported store drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// App holds core runtime configuration shared across services.
type App struct {
	Name                    string        `env:"APP_NAME" envDefault:"trivia-api"`
	Env                     string        `env:"APP_ENV" envDefault:"development"`
	LogLevel                string        `env:"LOG_LEVEL" envDefault:"info"`
	HTTPAddr                string        `env:"HTTP_ADDR" envDefault:"0.0.0.0:5000"`
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_SECONDS" envDefault:"20s"`
	ReadTimeout             time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout            time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"10s"`

	Database Database
	Postgres Postgres
	SQLite   SQLite
	Quiz     Quiz
	CORS     CORS
}

// Database selects the store driver.
type Database struct {
	Driver      string `env:"DB_DRIVER" envDefault:"postgres"`
	AutoMigrate bool   `env:"DB_AUTO_MIGRATE" envDefault:"false"`
}

// Postgres captures connection info for the SQL database.
type Postgres struct {
	Host     string `env:"PG_HOST" envDefault:"localhost"`
	Port     int    `env:"PG_PORT" envDefault:"5432"`
	User     string `env:"PG_USER" envDefault:""`
	Password string `env:"PG_PASSWORD" envDefault:""`
	Database string `env:"PG_DATABASE" envDefault:"trivia"`
	SSLMode  string `env:"PG_SSL_MODE" envDefault:"disable"`
	MaxConns int    `env:"PG_MAX_CONNS" envDefault:"10"`
}

// ConnString renders a postgres:// URL understood by pgx. Credentials and
// the database name are escaped, so empty values and spaces survive.
func (p Postgres) ConnString() string {
	u := url.URL{
		Scheme: "postgres",
		Host:   net.JoinHostPort(p.Host, strconv.Itoa(p.Port)),
		Path:   "/" + p.Database,
		RawQuery: url.Values{
			"sslmode":        {p.SSLMode},
			"pool_max_conns": {strconv.Itoa(p.MaxConns)},
		}.Encode(),
	}
	if p.Password != "" {
		u.User = url.UserPassword(p.User, p.Password)
	} else {
		u.User = url.User(p.User)
	}
	return u.String()
}

// SQLite configures the embedded store.
type SQLite struct {
	Path string `env:"SQLITE_PATH" envDefault:"trivia.db"`
}

// Quiz groups listing and quiz defaults.
type Quiz struct {
	QuestionsPerPage int `env:"QUESTIONS_PER_PAGE" envDefault:"10"`
	MaxDraws         int `env:"QUIZ_MAX_DRAWS" envDefault:"100000"`
}

// CORS holds the cross-origin headers sent on every response.
type CORS struct {
	AllowedOrigin  string   `env:"CORS_ALLOWED_ORIGIN" envDefault:"*"`
	AllowedMethods []string `env:"CORS_ALLOWED_METHODS" envSeparator:"," envDefault:"GET,PATCH,POST,DELETE,OPTIONS"`
	AllowedHeaders []string `env:"CORS_ALLOWED_HEADERS" envSeparator:"," envDefault:"Content-Type,Authorization"`
}

// Load parses environment variables into App config.
func Load(ctx context.Context) (*App, error) {
	cfg := &App{}
	if err := env.ParseWithOptions(cfg, env.Options{RequiredIfNoDef: true}); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *App) validate() error {
	switch c.Database.Driver {
	case DriverPostgres:
		if c.Postgres.User == "" {
			return fmt.Errorf("PG_USER must be configured for the %s driver", DriverPostgres)
		}
	case DriverSQLite:
		if c.SQLite.Path == "" {
			return fmt.Errorf("SQLITE_PATH must be configured for the %s driver", DriverSQLite)
		}
	default:
		return fmt.Errorf("unknown DB_DRIVER %q", c.Database.Driver)
	}
	if c.Quiz.QuestionsPerPage <= 0 {
		return fmt.Errorf("QUESTIONS_PER_PAGE must be positive, got %d", c.Quiz.QuestionsPerPage)
	}
	if c.Quiz.MaxDraws <= 0 {
		return fmt.Errorf("QUIZ_MAX_DRAWS must be positive, got %d", c.Quiz.MaxDraws)
	}
	return nil
}
