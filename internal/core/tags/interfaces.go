package tags

import (
	"context"

	"PostService/internal/core/posts"
)

// Service defines the business logic interface for post tags
type Service interface {
	AssociateTags(ctx context.Context, req AssociateRequest) error
	GetTagsForPost(ctx context.Context, postID int64) ([]string, error)
	CountPostsWithTag(ctx context.Context, tagName string) (int, error)

	// UnassociateTags removes every tag from the post and reports how many were removed
	UnassociateTags(ctx context.Context, postID int64) (int64, error)

	GetPostsByTag(ctx context.Context, tagName string, pageNumber, limitPerPage int) (*TaggedPostsPage, error)
}

// Repository defines the data access interface for post tags
type Repository interface {
	// Associate inserts all pairs in one transaction. A pair that already
	// exists fails the whole batch with ErrDuplicateTag.
	Associate(ctx context.Context, postID int64, tagNames []string) error

	ListForPost(ctx context.Context, postID int64) ([]string, error)
	CountPosts(ctx context.Context, tagName string) (int, error)
	RemoveAll(ctx context.Context, postID int64) (int64, error)
	ListPosts(ctx context.Context, tagName string, limit, offset int) ([]*posts.Post, error)
}
