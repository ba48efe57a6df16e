package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/jmalik/notekeep/internal/domain"
)

// errorResponse is the envelope for every error the API returns.
type errorResponse struct {
	Error errorDetail `json:"error"`
}

// errorDetail carries a stable machine-readable code and a human-readable
// message. The message never contains raw internal error text for server
// failures.
type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeError maps a service error to its HTTP status and error envelope.
// Unrecognized errors (storage failures included) become an opaque 500.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidArgument):
		respondJSON(w, http.StatusBadRequest, errorResponse{
			Error: errorDetail{Code: "invalid_argument", Message: sentinelMessage(err, domain.ErrInvalidArgument)},
		})
	case errors.Is(err, domain.ErrNotFound):
		respondJSON(w, http.StatusNotFound, errorResponse{
			Error: errorDetail{Code: "not_found", Message: "note not found"},
		})
	case errors.Is(err, domain.ErrValidation):
		respondJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Error: errorDetail{Code: "validation_error", Message: sentinelMessage(err, domain.ErrValidation)},
		})
	default:
		respondJSON(w, http.StatusInternalServerError, errorResponse{
			Error: errorDetail{Code: "internal_error", Message: "internal server error"},
		})
	}
}

// badRequest writes a 400 for a request rejected before reaching the
// service layer (e.g. a non-numeric page parameter).
func badRequest(w http.ResponseWriter, message string) {
	respondJSON(w, http.StatusBadRequest, errorResponse{
		Error: errorDetail{Code: "invalid_argument", Message: message},
	})
}

// unprocessable writes a 422 for a body rejected before reaching the
// service layer (e.g. missing or malformed JSON).
func unprocessable(w http.ResponseWriter, message string) {
	respondJSON(w, http.StatusUnprocessableEntity, errorResponse{
		Error: errorDetail{Code: "validation_error", Message: message},
	})
}

// sentinelMessage extracts the human-readable part from a wrapped sentinel
// error, e.g. "service.NoteService.Update: validation error: title is
// required" → "title is required". Falls back to the sentinel's own text
// when no message follows it.
func sentinelMessage(err error, sentinel error) string {
	msg := err.Error()
	marker := sentinel.Error() + ": "
	if i := strings.LastIndex(msg, marker); i >= 0 {
		return msg[i+len(marker):]
	}
	return sentinel.Error()
}
