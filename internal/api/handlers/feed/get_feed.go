package feed

import (
	"net/http"

	"PostService/internal/api/handlers"
	"PostService/internal/core/feeds"
)

var successMessages = map[feeds.Kind]string{
	feeds.KindUnfiltered: "Successfully retrieved posts!",
	feeds.KindNew:        "Successfully retrieved new posts!",
	feeds.KindHot:        "Successfully retrieved hot posts!",
	feeds.KindTop:        "Successfully retrieved top posts!",
	feeds.KindActive:     "Successfully retrieved active posts!",
}

// GetFeedHandler serves every feed kind
type GetFeedHandler struct {
	service feeds.Service
}

// NewGetFeedHandler creates a new feed handler
func NewGetFeedHandler(service feeds.Service) *GetFeedHandler {
	return &GetFeedHandler{
		service: service,
	}
}

// HandleFeed returns the handler for one feed kind, mounted at
// /get<Kind>PostsByPage/{pageNumber}/{limitPerPage} with an optional
// trailing /{query} title filter
func (h *GetFeedHandler) HandleFeed(kind feeds.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pageNumber, limitPerPage, err := feeds.ParsePageParams(
			handlers.PathString(r, "pageNumber"),
			handlers.PathString(r, "limitPerPage"),
		)
		if err != nil {
			handlers.WriteBadRequest(w, r, err)
			return
		}

		page, err := h.service.GetFeed(r.Context(), feeds.Request{
			Kind:         kind,
			PageNumber:   pageNumber,
			LimitPerPage: limitPerPage,
			Query:        handlers.PathString(r, "query"),
		})
		if err != nil {
			handleServiceError(w, r, err)
			return
		}

		handlers.WriteSuccess(w, r, page.Posts, successMessages[kind])
	}
}
