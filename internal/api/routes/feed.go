package routes

import (
	"PostService/internal/api/handlers/feed"
	"PostService/internal/core/feeds"

	"github.com/go-chi/chi/v5"
)

// feedPaths maps each feed kind to its route prefix
var feedPaths = map[feeds.Kind]string{
	feeds.KindUnfiltered: "/getPostsByPage",
	feeds.KindHot:        "/getHotPostsByPage",
	feeds.KindNew:        "/getNewPostsByPage",
	feeds.KindTop:        "/getTopPostsByPage",
	feeds.KindActive:     "/getActivePostsByPage",
}

// RegisterFeedRoutes registers the paginated feed endpoints. Each feed is
// served with and without the trailing title filter segment.
func RegisterFeedRoutes(r chi.Router, service feeds.Service) {
	handler := feed.NewGetFeedHandler(service)

	for kind, prefix := range feedPaths {
		h := handler.HandleFeed(kind)
		r.Get(prefix+"/{pageNumber}/{limitPerPage}", h)
		r.Get(prefix+"/{pageNumber}/{limitPerPage}/{query}", h)
	}
}
