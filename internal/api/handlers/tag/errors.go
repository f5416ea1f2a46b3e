package tag

import (
	"net/http"

	"PostService/internal/api/handlers"
	"PostService/internal/core/feeds"
	"PostService/internal/core/tags"
)

// handleServiceError maps tag errors to HTTP responses
func handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case tags.IsValidationError(err) || feeds.IsValidationError(err):
		handlers.WriteBadRequest(w, r, err)

	case tags.IsConflict(err):
		handlers.WriteError(w, http.StatusForbidden, handlers.ErrorDuplicateTag,
			"Selected post has a duplicate tag associated with it")

	case tags.IsNotFound(err):
		handlers.WriteError(w, http.StatusNotFound, handlers.ErrorNotFound, "Post not found")

	default:
		handlers.WriteInternalError(w, r, err)
	}
}
