package comments

import (
	"net/http"

	"PostService/internal/api/handlers"
	"PostService/internal/core/comments"
)

// GetCommentsHandler serves comment listings
type GetCommentsHandler struct {
	service comments.Service
}

// NewGetCommentsHandler creates a new handler for listing comments
func NewGetCommentsHandler(service comments.Service) *GetCommentsHandler {
	return &GetCommentsHandler{
		service: service,
	}
}

// HandleByPost handles GET /getCommentsByPost/{postID}
func (h *GetCommentsHandler) HandleByPost(w http.ResponseWriter, r *http.Request) {
	postID, err := handlers.PathInt64(r, "postID")
	if err != nil {
		handlers.WriteBadRequest(w, r, err)
		return
	}

	views, err := h.service.GetCommentsByPost(r.Context(), postID)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	handlers.WriteSuccess(w, r, views, "Successfully retrieved comments")
}

// HandleAnswersByUser handles GET /getAnswersByUsername/{userID}
func (h *GetCommentsHandler) HandleAnswersByUser(w http.ResponseWriter, r *http.Request) {
	views, err := h.service.GetAnswersByUser(r.Context(), handlers.PathString(r, "userID"))
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	handlers.WriteSuccess(w, r, views, "Successfully retrieved answers by user")
}
