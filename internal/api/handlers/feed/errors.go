package feed

import (
	"net/http"

	"PostService/internal/api/handlers"
	"PostService/internal/core/feeds"
)

// handleServiceError maps feed errors to HTTP responses
func handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case feeds.IsValidationError(err):
		handlers.WriteBadRequest(w, r, err)
	default:
		handlers.WriteInternalError(w, r, err)
	}
}
