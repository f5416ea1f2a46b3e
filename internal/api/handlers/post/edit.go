package post

import (
	"net/http"

	"PostService/internal/api/handlers"
	"PostService/internal/core/posts"
)

// EditHandler handles post edits
type EditHandler struct {
	service posts.Service
}

// NewEditHandler creates a new edit handler
func NewEditHandler(service posts.Service) *EditHandler {
	return &EditHandler{
		service: service,
	}
}

// HandleEdit replaces title and description of a post
// PATCH /editPostOne
//
// Request body: { "postID", "title", "description" }
func (h *EditHandler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	var req posts.EditPostRequest
	if err := handlers.DecodeJSON(w, r, handlers.MaxPostBodyBytes, &req); err != nil {
		handlers.WriteBadRequest(w, r, err)
		return
	}

	post, err := h.service.EditPost(r.Context(), req)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	handlers.WriteSuccess(w, r, post, "Post edited!")
}
