package quiz

import (
	_ "embed"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/logging"
	"github.com/gokatarajesh/trivia-api/internal/metrics"
	httperrors "github.com/gokatarajesh/trivia-api/pkg/http/errors"
	"github.com/gokatarajesh/trivia-api/pkg/http/request"
)

//go:embed schemas/quiz.json
var quizSchemaJSON []byte

var quizSchema = request.MustCompile("quiz", quizSchemaJSON)

type quizBody struct {
	PreviousQuestions []int64 `json:"previous_questions"`
	QuizCategory      struct {
		ID request.Int64 `json:"id"`
	} `json:"quiz_category"`
}

// HTTPHandler serves POST /quizzes.
type HTTPHandler struct {
	svc     *Service
	metrics *metrics.Metrics
	logger  zerolog.Logger
}

func NewHTTPHandler(svc *Service, m *metrics.Metrics, logger zerolog.Logger) *HTTPHandler {
	return &HTTPHandler{
		svc:     svc,
		metrics: m,
		logger:  logger.With().Str("component", "quiz_http").Logger(),
	}
}

// Next handles POST /quizzes. The response carries either "question" or
// "game_ended"; every failure is a 422.
func (h *HTTPHandler) Next(w http.ResponseWriter, r *http.Request) {
	log := logging.FromContext(r.Context())

	var body quizBody
	if err := request.Decode(r, quizSchema, &body); err != nil {
		var field string
		var reqErr *request.Error
		if errors.As(err, &reqErr) {
			field = reqErr.Field
		}
		log.Info().Err(err).Str("field", field).Msg("invalid quiz request")
		httperrors.RespondValidationError(w, field)
		return
	}

	categoryID := int64(body.QuizCategory.ID)
	round, err := h.svc.Next(r.Context(), categoryID, body.PreviousQuestions)
	if err != nil {
		if errors.Is(err, ErrSelectionExhausted) {
			h.metrics.QuizOutcome(metrics.QuizExhausted)
			log.Warn().Err(err).Int("seen", len(body.PreviousQuestions)).Msg("quiz selection exhausted")
		} else {
			log.Error().Err(err).Msg("quiz request failed")
		}
		httperrors.RespondUnprocessable(w)
		return
	}

	if round.GameEnded {
		h.metrics.QuizOutcome(metrics.QuizGameEnded)
		writeJSON(w, map[string]interface{}{"game_ended": true})
		return
	}
	h.metrics.QuizOutcome(metrics.QuizQuestion)
	writeJSON(w, map[string]interface{}{"question": round.Question})
}

func writeJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}
