package tag

import (
	"net/http"

	"PostService/internal/api/handlers"
	"PostService/internal/core/feeds"
	"PostService/internal/core/tags"
)

// GetHandler serves tag lookups
type GetHandler struct {
	service tags.Service
}

// NewGetHandler creates a new tag lookup handler
func NewGetHandler(service tags.Service) *GetHandler {
	return &GetHandler{
		service: service,
	}
}

// HandleTagsPerPost handles GET /getTagsPerPost/{postID}
func (h *GetHandler) HandleTagsPerPost(w http.ResponseWriter, r *http.Request) {
	postID, err := handlers.PathInt64(r, "postID")
	if err != nil {
		handlers.WriteBadRequest(w, r, err)
		return
	}

	names, err := h.service.GetTagsForPost(r.Context(), postID)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	handlers.WriteSuccess(w, r, names, "Successfully retrieved tags of a post")
}

// HandleTagCount handles GET /getTagCount/{tagName}
func (h *GetHandler) HandleTagCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.service.CountPostsWithTag(r.Context(), handlers.PathString(r, "tagName"))
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	handlers.WriteSuccess(w, r, count, "Successfully retrieved tag count!")
}

// HandlePostsPerTag handles GET /getPostsPerTag/{pageNumber}/{limitPerPage}/{tagName}
func (h *GetHandler) HandlePostsPerTag(w http.ResponseWriter, r *http.Request) {
	pageNumber, limitPerPage, err := feeds.ParsePageParams(
		handlers.PathString(r, "pageNumber"),
		handlers.PathString(r, "limitPerPage"),
	)
	if err != nil {
		handlers.WriteBadRequest(w, r, err)
		return
	}

	page, err := h.service.GetPostsByTag(r.Context(), handlers.PathString(r, "tagName"), pageNumber, limitPerPage)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	handlers.WriteSuccess(w, r, page.Posts, "Successfully retrieved posts by tag")
}
