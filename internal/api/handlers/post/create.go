package post

import (
	"net/http"

	"PostService/internal/api/handlers"
	"PostService/internal/core/posts"
)

// CreateHandler handles post creation
type CreateHandler struct {
	service posts.Service
}

// NewCreateHandler creates a new create handler
func NewCreateHandler(service posts.Service) *CreateHandler {
	return &CreateHandler{
		service: service,
	}
}

// HandleCreate creates a post
// POST /createPost
//
// Request body: { "title", "description", "userID", "isAnonymous"? }
func (h *CreateHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req posts.CreatePostRequest
	if err := handlers.DecodeJSON(w, r, handlers.MaxPostBodyBytes, &req); err != nil {
		handlers.WriteBadRequest(w, r, err)
		return
	}

	post, err := h.service.CreatePost(r.Context(), req)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	handlers.WriteSuccess(w, r, post, "Successfully created post!")
}
