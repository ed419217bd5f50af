package question

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/logging"
	httperrors "github.com/gokatarajesh/trivia-api/pkg/http/errors"
	"github.com/gokatarajesh/trivia-api/pkg/http/request"
)

// HTTPHandlers exposes the category and question REST endpoints.
type HTTPHandlers struct {
	svc    *Service
	logger zerolog.Logger
}

// NewHTTPHandlers constructs the question handlers.
func NewHTTPHandlers(svc *Service, logger zerolog.Logger) *HTTPHandlers {
	return &HTTPHandlers{
		svc:    svc,
		logger: logger.With().Str("component", "question_http").Logger(),
	}
}

// Categories handles GET /categories with an id -> label object.
func (h *HTTPHandlers) Categories(w http.ResponseWriter, r *http.Request) {
	cats, err := h.svc.Categories(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	out := make(map[int64]string, len(cats))
	for _, c := range cats {
		out[c.ID] = c.Type
	}
	writeJSON(w, http.StatusOK, out)
}

// ListQuestions handles GET /questions?page=N
func (h *HTTPHandlers) ListQuestions(w http.ResponseWriter, r *http.Request) {
	page, err := h.svc.ListPage(r.Context(), pageParam(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"questions":       page.Questions,
		"total_questions": page.TotalQuestions,
		"categories":      page.Categories,
	})
}

// CreateQuestion handles POST /questions
func (h *HTTPHandlers) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	var body createQuestionBody
	if err := request.Decode(r, createQuestionSchema, &body); err != nil {
		h.fail(w, r, err)
		return
	}

	created, err := h.svc.Create(r.Context(), CreateRequest{
		Question:   body.Question,
		Answer:     body.Answer,
		Category:   int64(body.Category),
		Difficulty: int64(body.Difficulty),
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	log := logging.FromContext(r.Context())
	log.Info().Int64("question_id", created.ID).Msg("question created")
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"created": created.ID,
	})
}

// DeleteQuestion handles DELETE /questions/{id}. Every failure, including a
// missing id, is reported as 422.
func (h *HTTPHandlers) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httperrors.RespondNotFound(w)
		return
	}
	log := logging.FromContext(r.Context())
	if err := h.svc.Delete(r.Context(), id); err != nil {
		log.Warn().Err(err).Int64("question_id", id).Msg("delete failed")
		httperrors.RespondUnprocessable(w)
		return
	}

	log.Info().Int64("question_id", id).Msg("question deleted")
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"deleted": id,
	})
}

// Search handles POST /search
func (h *HTTPHandlers) Search(w http.ResponseWriter, r *http.Request) {
	var body searchBody
	if err := request.Decode(r, searchSchema, &body); err != nil {
		h.fail(w, r, err)
		return
	}
	questions, err := h.svc.Search(r.Context(), body.SearchTerm)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"questions":       questions,
		"total_questions": len(questions),
	})
}

// ListByCategory handles GET /category/{id}/questions
func (h *HTTPHandlers) ListByCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httperrors.RespondNotFound(w)
		return
	}
	questions, err := h.svc.ListByCategory(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"questions":        questions,
		"current_category": id,
		"total_questions":  len(questions),
	})
}

// fail maps ErrNotFound to 404 and everything else to 422.
func (h *HTTPHandlers) fail(w http.ResponseWriter, r *http.Request, err error) {
	log := logging.FromContext(r.Context())

	if errors.Is(err, ErrNotFound) {
		log.Debug().Err(err).Msg("not found")
		httperrors.RespondNotFound(w)
		return
	}

	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		log.Info().Err(err).Str("field", validationErr.Field).Msg("validation failed")
		httperrors.RespondValidationError(w, validationErr.Field)
		return
	}
	var reqErr *request.Error
	if errors.As(err, &reqErr) {
		log.Info().Err(err).Str("field", reqErr.Field).Msg("invalid request body")
		httperrors.RespondValidationError(w, reqErr.Field)
		return
	}

	log.Error().Err(err).Msg("request failed")
	httperrors.RespondUnprocessable(w)
}

// pageParam mirrors a lenient integer query parameter: absent or malformed
// means page 1, and anything below 1 is clamped to 1.
func pageParam(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id < 0 {
		return 0, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}
