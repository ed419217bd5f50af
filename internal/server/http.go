package server

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/config"
	"github.com/gokatarajesh/trivia-api/internal/logging"
	"github.com/gokatarajesh/trivia-api/internal/metrics"
	"github.com/gokatarajesh/trivia-api/internal/question"
	"github.com/gokatarajesh/trivia-api/internal/quiz"
	httperrors "github.com/gokatarajesh/trivia-api/pkg/http/errors"
)

const readinessTimeout = 2 * time.Second

// Pinger reports whether a backing dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Deps carries everything the router needs.
type Deps struct {
	Store     Pinger
	Questions *question.HTTPHandlers
	Quiz      *quiz.HTTPHandler
	Metrics   *metrics.Metrics
	Gatherer  prometheus.Gatherer
}

// NewHandler builds the routed handler with CORS, request logging and metrics applied.
func NewHandler(cfg *config.App, logger zerolog.Logger, deps Deps) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		writeStatus(w, http.StatusOK, `{"status":"ok"}`)
	})

	mux.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()
		if err := deps.Store.Ping(ctx); err != nil {
			log := logging.FromContext(r.Context())
			log.Error().Err(err).Msg("store ping failed")
			httperrors.RespondServiceUnavailable(w)
			return
		}
		writeStatus(w, http.StatusOK, `{"status":"ok"}`)
	})

	if deps.Gatherer != nil {
		mux.Handle("GET /metrics", promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{}))
	}

	mux.HandleFunc("GET /categories", deps.Questions.Categories)
	mux.HandleFunc("GET /questions", deps.Questions.ListQuestions)
	mux.HandleFunc("POST /questions", deps.Questions.CreateQuestion)
	mux.HandleFunc("DELETE /questions/{id}", deps.Questions.DeleteQuestion)
	mux.HandleFunc("POST /search", deps.Questions.Search)
	mux.HandleFunc("GET /category/{id}/questions", deps.Questions.ListByCategory)
	mux.HandleFunc("POST /quizzes", deps.Quiz.Next)

	// unknown paths and unsupported methods share the JSON 404 envelope
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		httperrors.RespondNotFound(w)
	})

	var handler http.Handler = mux
	handler = recoverPanics(handler)
	handler = instrument(deps.Metrics, handler)
	handler = requestLogger(logger, handler)
	handler = cors(cfg.CORS, handler)
	return handler
}

// NewHTTPServer wires the trivia routes plus health, readiness and metrics endpoints.
func NewHTTPServer(cfg *config.App, logger zerolog.Logger, deps Deps) *http.Server {
	return &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      NewHandler(cfg, logger, deps),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
}

func writeStatus(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}
