package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/hlog"
)

// Error types written in the "error" field of error responses
const (
	ErrorInvalidRequest = "InvalidRequest"
	ErrorNotFound       = "NotFound"
	ErrorDuplicateTag   = "DuplicateTag"
	ErrorInternal       = "InternalServerError"
)

// WriteError writes a standardized JSON error response
func WriteError(w http.ResponseWriter, statusCode int, errorType, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"error":   errorType,
		"message": message,
	})
}

// WriteBadRequest answers a malformed request. Field detail only goes to the
// debug log.
func WriteBadRequest(w http.ResponseWriter, r *http.Request, err error) {
	hlog.FromRequest(r).Debug().Err(err).Msg("rejected request")
	WriteError(w, http.StatusBadRequest, ErrorInvalidRequest, "Bad request")
}

// WriteInternalError logs err with the request ID and answers with a generic
// 500 so storage error text never reaches the client
func WriteInternalError(w http.ResponseWriter, r *http.Request, err error) {
	hlog.FromRequest(r).Error().Err(err).Msg("unexpected error in handler")
	WriteError(w, http.StatusInternalServerError, ErrorInternal, "An internal error occurred")
}
