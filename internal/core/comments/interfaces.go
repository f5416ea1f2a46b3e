package comments

import (
	"context"

	"PostService/internal/core/interactions"
)

// Service defines the business logic interface for comments
type Service interface {
	CreateComment(ctx context.Context, req CreateCommentRequest) (*Comment, error)

	// GetCommentsByPost lists every comment and reply on a post, oldest first
	GetCommentsByPost(ctx context.Context, postID int64) ([]*CommentView, error)

	// GetAnswersByUser lists the user's top-level comments, newest first
	GetAnswersByUser(ctx context.Context, userID string) ([]*CommentView, error)
}

// Repository defines the data access interface for comments
type Repository interface {
	// Create inserts the comment and its creation event in one transaction.
	// Returns ErrPostNotFound if event.PostID does not exist and
	// ErrParentNotFound if event.ParentID is not a comment on that post.
	// Fills in comment.ID and event.CommentID.
	Create(ctx context.Context, comment *Comment, event *interactions.Event) error

	ListByPost(ctx context.Context, postID int64) ([]*CommentView, error)

	ListAnswersByUser(ctx context.Context, userID string) ([]*CommentView, error)
}
