package errors

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse represents the standardized error envelope.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// RespondError writes an error envelope whose "error" field mirrors the status code.
func RespondError(w http.ResponseWriter, status int, message string) {
	write(w, status, ErrorResponse{Error: status, Message: message})
}

// RespondNotFound writes a 404 envelope.
func RespondNotFound(w http.ResponseWriter) {
	RespondError(w, http.StatusNotFound, MsgNotFound)
}

// RespondUnprocessable writes a 422 envelope.
func RespondUnprocessable(w http.ResponseWriter) {
	RespondError(w, http.StatusUnprocessableEntity, MsgUnprocessable)
}

// RespondValidationError writes a 422 envelope naming the offending field.
func RespondValidationError(w http.ResponseWriter, field string) {
	write(w, http.StatusUnprocessableEntity, ErrorResponse{
		Error:   http.StatusUnprocessableEntity,
		Message: MsgUnprocessable,
		Field:   field,
	})
}

// RespondServiceUnavailable writes a 503 envelope.
func RespondServiceUnavailable(w http.ResponseWriter) {
	RespondError(w, http.StatusServiceUnavailable, MsgServiceUnavailable)
}

// RespondInternalError writes a 500 envelope.
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, MsgInternalError)
}

func write(w http.ResponseWriter, status int, body ErrorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
