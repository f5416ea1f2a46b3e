package post

import (
	"net/http"

	"PostService/internal/api/handlers"
	"PostService/internal/core/posts"
)

// handleServiceError maps service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case posts.IsValidationError(err):
		handlers.WriteBadRequest(w, r, err)

	case posts.IsNotFound(err):
		handlers.WriteError(w, http.StatusNotFound, handlers.ErrorNotFound, "Post not found")

	default:
		handlers.WriteInternalError(w, r, err)
	}
}
