package routes

import (
	"PostService/internal/api/handlers/tag"
	"PostService/internal/core/tags"

	"github.com/go-chi/chi/v5"
)

// RegisterTagRoutes registers post tag endpoints on the router
func RegisterTagRoutes(r chi.Router, service tags.Service) {
	associateHandler := tag.NewAssociateHandler(service)
	getHandler := tag.NewGetHandler(service)

	r.Post("/associatePostWithTag", associateHandler.HandleAssociate)
	r.Delete("/unassociatePostTag/{postID}", associateHandler.HandleUnassociate)

	r.Get("/getTagsPerPost/{postID}", getHandler.HandleTagsPerPost)
	r.Get("/getTagCount/{tagName}", getHandler.HandleTagCount)
	r.Get("/getPostsPerTag/{pageNumber}/{limitPerPage}/{tagName}", getHandler.HandlePostsPerTag)
}
