package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/config"
	"github.com/gokatarajesh/trivia-api/internal/db"
	"github.com/gokatarajesh/trivia-api/internal/db/connect"
	"github.com/gokatarajesh/trivia-api/internal/db/repository"
	"github.com/gokatarajesh/trivia-api/internal/logging"
	"github.com/gokatarajesh/trivia-api/internal/metrics"
	"github.com/gokatarajesh/trivia-api/internal/question"
	"github.com/gokatarajesh/trivia-api/internal/quiz"
	"github.com/gokatarajesh/trivia-api/internal/server"
)

// Application aggregates shared infrastructure (store, metrics, HTTP server).
type Application struct {
	cfg    *config.App
	logger zerolog.Logger

	store db.Store
	http  *http.Server
}

// New bootstraps the logger, store, services and HTTP server.
func New(ctx context.Context, cfg *config.App) (*Application, error) {
	logger := logging.New(cfg.Name, cfg.Env, cfg.LogLevel)
	logger.Info().Str("driver", cfg.Database.Driver).Msg("starting application bootstrap")

	store, err := connect.Open(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	if cfg.Database.AutoMigrate {
		if err := db.MigrateUp(ctx, store, logger); err != nil {
			store.Close()
			return nil, err
		}
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(registry)

	questionRepo := repository.NewQuestionRepository(store)
	categoryRepo := repository.NewCategoryRepository(store)

	questionSvc := question.NewService(questionRepo, categoryRepo, question.ServiceOptions{
		PageSize: cfg.Quiz.QuestionsPerPage,
	})
	quizSvc := quiz.NewService(questionRepo, quiz.NewSelector(cfg.Quiz.MaxDraws, nil))

	apiServer := server.NewHTTPServer(cfg, logger, server.Deps{
		Store:     store,
		Questions: question.NewHTTPHandlers(questionSvc, logger),
		Quiz:      quiz.NewHTTPHandler(quizSvc, m, logger),
		Metrics:   m,
		Gatherer:  registry,
	})

	return &Application{
		cfg:    cfg,
		logger: logger,
		store:  store,
		http:   apiServer,
	}, nil
}

// Run starts the HTTP server and waits for termination signals.
func (a *Application) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info().Str("addr", a.cfg.HTTPAddr).Msg("http server listening")
		if err := a.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	var runErr error
	select {
	case sig := <-sigCh:
		a.logger.Info().Str("signal", sig.String()).Msg("shutdown signal received")
	case err := <-errCh:
		runErr = fmt.Errorf("http server error: %w", err)
	case <-ctx.Done():
		a.logger.Warn().Msg("context canceled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.GracefulShutdownTimeout)
	defer cancel()

	if err := a.http.Shutdown(shutdownCtx); err != nil {
		a.logger.Error().Err(err).Msg("http shutdown error")
	}

	if err := a.store.Close(); err != nil {
		a.logger.Error().Err(err).Msg("store shutdown error")
	}

	a.logger.Info().Msg("shutdown complete")
	return runErr
}
