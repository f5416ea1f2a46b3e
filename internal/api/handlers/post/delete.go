package post

import (
	"net/http"

	"PostService/internal/api/handlers"
	"PostService/internal/core/posts"
)

// DeleteHandler handles post deletion requests
type DeleteHandler struct {
	service posts.Service
}

// NewDeleteHandler creates a new handler for deleting posts
func NewDeleteHandler(service posts.Service) *DeleteHandler {
	return &DeleteHandler{
		service: service,
	}
}

// HandleDelete handles DELETE /deletePostOne/{postID}
func (h *DeleteHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	postID, err := handlers.PathInt64(r, "postID")
	if err != nil {
		handlers.WriteBadRequest(w, r, err)
		return
	}

	if err := h.service.DeletePost(r.Context(), postID); err != nil {
		handleServiceError(w, r, err)
		return
	}

	handlers.WriteSuccess(w, r, nil, "Successfully deleted data!")
}
