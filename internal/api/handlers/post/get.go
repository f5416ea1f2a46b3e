package post

import (
	"net/http"

	"PostService/internal/api/handlers"
	"PostService/internal/core/posts"
)

// GetHandler serves single posts and per-user listings
type GetHandler struct {
	service posts.Service
}

// NewGetHandler creates a new get handler
func NewGetHandler(service posts.Service) *GetHandler {
	return &GetHandler{
		service: service,
	}
}

// HandleGetOne handles GET /getPostOne/{postID}
func (h *GetHandler) HandleGetOne(w http.ResponseWriter, r *http.Request) {
	postID, err := handlers.PathInt64(r, "postID")
	if err != nil {
		handlers.WriteBadRequest(w, r, err)
		return
	}

	post, err := h.service.GetPost(r.Context(), postID)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	handlers.WriteSuccess(w, r, post, "Successfully retrieved post")
}

// HandleListByUser handles GET /getPostsByUsername/{userID}.
// Anonymous posts are never listed.
func (h *GetHandler) HandleListByUser(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.GetPostsByUser(r.Context(), handlers.PathString(r, "userID"))
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	handlers.WriteSuccess(w, r, list, "Successfully fetched posts by user")
}
