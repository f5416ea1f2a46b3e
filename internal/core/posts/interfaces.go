package posts

import (
	"context"

	"PostService/internal/core/interactions"
)

// Service defines the business logic interface for posts
type Service interface {
	// CreatePost validates and stores a post. The interaction service learns
	// about it asynchronously through the outbox.
	CreatePost(ctx context.Context, req CreatePostRequest) (*Post, error)

	GetPost(ctx context.Context, postID int64) (*Post, error)

	// EditPost replaces title and description and bumps updatedAt
	EditPost(ctx context.Context, req EditPostRequest) (*Post, error)

	// DeletePost removes the post together with its tags, comments and the
	// interaction, vote and view rows that reference it
	DeletePost(ctx context.Context, postID int64) error

	// GetPostsByUser lists the non-anonymous posts created by userID, newest first
	GetPostsByUser(ctx context.Context, userID string) ([]*UserPost, error)
}

// Repository defines the data access interface for posts
type Repository interface {
	// Create inserts the post and its creation event in one transaction and
	// fills in post.ID, post.CreatedAt, post.UpdatedAt and event.PostID.
	Create(ctx context.Context, post *Post, event *interactions.Event) error

	GetByID(ctx context.Context, postID int64) (*Post, error)

	// Update returns ErrNotFound when no row matched
	Update(ctx context.Context, postID int64, title, description string) (*Post, error)

	// Delete returns ErrNotFound when the post row did not exist
	Delete(ctx context.Context, postID int64) error

	ListByUser(ctx context.Context, userID string) ([]*UserPost, error)
}
