package routes

import (
	"PostService/internal/api/handlers/comments"
	commentsCore "PostService/internal/core/comments"

	"github.com/go-chi/chi/v5"
)

// RegisterCommentRoutes registers comment endpoints on the router
func RegisterCommentRoutes(r chi.Router, service commentsCore.Service) {
	createHandler := comments.NewCreateCommentHandler(service)
	getHandler := comments.NewGetCommentsHandler(service)

	r.Post("/createComment", createHandler.HandleCreate)
	r.Get("/getCommentsByPost/{postID}", getHandler.HandleByPost)
	r.Get("/getAnswersByUsername/{userID}", getHandler.HandleAnswersByUser)
}
