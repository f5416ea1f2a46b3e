package routes

import (
	"PostService/internal/api/handlers/post"
	"PostService/internal/core/posts"

	"github.com/go-chi/chi/v5"
)

// RegisterPostRoutes registers post CRUD endpoints on the router
func RegisterPostRoutes(r chi.Router, service posts.Service) {
	createHandler := post.NewCreateHandler(service)
	getHandler := post.NewGetHandler(service)
	editHandler := post.NewEditHandler(service)
	deleteHandler := post.NewDeleteHandler(service)

	r.Post("/createPost", createHandler.HandleCreate)
	r.Get("/getPostOne/{postID}", getHandler.HandleGetOne)
	r.Patch("/editPostOne", editHandler.HandleEdit)
	r.Delete("/deletePostOne/{postID}", deleteHandler.HandleDelete)

	// anonymous posts are excluded
	r.Get("/getPostsByUsername/{userID}", getHandler.HandleListByUser)
}
