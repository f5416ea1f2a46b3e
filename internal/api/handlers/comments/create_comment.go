package comments

import (
	"net/http"

	"PostService/internal/api/handlers"
	"PostService/internal/core/comments"
)

// CreateCommentHandler handles comment creation
type CreateCommentHandler struct {
	service comments.Service
}

// NewCreateCommentHandler creates a new handler for creating comments
func NewCreateCommentHandler(service comments.Service) *CreateCommentHandler {
	return &CreateCommentHandler{
		service: service,
	}
}

// HandleCreate handles POST /createComment
//
// Request body: { "comment", "postID", "userID", "isReply", "parentID"? }
func (h *CreateCommentHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req comments.CreateCommentRequest
	if err := handlers.DecodeJSON(w, r, handlers.MaxSmallBodyBytes, &req); err != nil {
		handlers.WriteBadRequest(w, r, err)
		return
	}

	comment, err := h.service.CreateComment(r.Context(), req)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	handlers.WriteSuccess(w, r, comment, "Successfully created comment!")
}
