package comments

import (
	"errors"
	"net/http"

	"PostService/internal/api/handlers"
	"PostService/internal/core/comments"
)

// handleServiceError maps comment errors to HTTP responses
func handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case comments.IsValidationError(err):
		handlers.WriteBadRequest(w, r, err)

	case errors.Is(err, comments.ErrPostNotFound):
		handlers.WriteError(w, http.StatusNotFound, handlers.ErrorNotFound, "Post not found")

	case errors.Is(err, comments.ErrParentNotFound):
		handlers.WriteError(w, http.StatusNotFound, handlers.ErrorNotFound, "parentID does not exist")

	default:
		handlers.WriteInternalError(w, r, err)
	}
}
