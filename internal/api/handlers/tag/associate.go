package tag

import (
	"net/http"

	"PostService/internal/api/handlers"
	"PostService/internal/core/tags"
)

// AssociateHandler attaches and detaches tags
type AssociateHandler struct {
	service tags.Service
}

// NewAssociateHandler creates a new associate handler
func NewAssociateHandler(service tags.Service) *AssociateHandler {
	return &AssociateHandler{
		service: service,
	}
}

// HandleAssociate handles POST /associatePostWithTag
//
// Request body: { "postID", "tagNameArray": [...] }
// Either every tag is attached or none is.
func (h *AssociateHandler) HandleAssociate(w http.ResponseWriter, r *http.Request) {
	var req tags.AssociateRequest
	if err := handlers.DecodeJSON(w, r, handlers.MaxSmallBodyBytes, &req); err != nil {
		handlers.WriteBadRequest(w, r, err)
		return
	}

	if err := h.service.AssociateTags(r.Context(), req); err != nil {
		handleServiceError(w, r, err)
		return
	}

	handlers.WriteSuccess(w, r, req, "Successfully associated post with tag(s)!")
}

// HandleUnassociate handles DELETE /unassociatePostTag/{postID}
func (h *AssociateHandler) HandleUnassociate(w http.ResponseWriter, r *http.Request) {
	postID, err := handlers.PathInt64(r, "postID")
	if err != nil {
		handlers.WriteBadRequest(w, r, err)
		return
	}

	removed, err := h.service.UnassociateTags(r.Context(), postID)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	handlers.WriteSuccess(w, r, map[string]int64{"removed": removed}, "Successfully unassociated tags from a post!")
}
