package posts

import (
	"context"
	"fmt"
	"strings"

	"PostService/internal/core/interactions"

	"github.com/rivo/uniseg"
	"github.com/samber/lo"
)

const (
	// MaxTitleGraphemes caps the visible length of a title
	MaxTitleGraphemes = 300
	// MaxDescriptionGraphemes caps the visible length of a description
	MaxDescriptionGraphemes = 40000
)

type postService struct {
	repo     Repository
	notifier interactions.Notifier
}

// NewPostService creates a new post service.
// notifier can be nil; the dispatcher then picks new events up on its next tick.
func NewPostService(repo Repository, notifier interactions.Notifier) Service {
	return &postService{
		repo:     repo,
		notifier: notifier,
	}
}

// CreatePost creates a new post
// Flow:
// 1. Validate input
// 2. Insert post + post_created outbox event in one transaction
// 3. Wake the dispatcher
func (s *postService) CreatePost(ctx context.Context, req CreatePostRequest) (*Post, error) {
	if err := s.validateCreateRequest(req); err != nil {
		return nil, err
	}

	post := &Post{
		Title:       req.Title,
		Description: req.Description,
		IsAnonymous: lo.FromPtr(req.IsAnonymous),
	}
	event := interactions.NewPostCreatedEvent(strings.TrimSpace(req.UserID))

	if err := s.repo.Create(ctx, post, event); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	if s.notifier != nil {
		s.notifier.Notify()
	}

	return post, nil
}

func (s *postService) GetPost(ctx context.Context, postID int64) (*Post, error) {
	if postID <= 0 {
		return nil, NewValidationError("postID", "must be a positive integer")
	}
	return s.repo.GetByID(ctx, postID)
}

func (s *postService) EditPost(ctx context.Context, req EditPostRequest) (*Post, error) {
	if req.PostID <= 0 {
		return nil, NewValidationError("postID", "must be a positive integer")
	}
	if err := validateContent(req.Title, req.Description); err != nil {
		return nil, err
	}

	return s.repo.Update(ctx, req.PostID, req.Title, req.Description)
}

func (s *postService) DeletePost(ctx context.Context, postID int64) error {
	if postID <= 0 {
		return NewValidationError("postID", "must be a positive integer")
	}
	return s.repo.Delete(ctx, postID)
}

func (s *postService) GetPostsByUser(ctx context.Context, userID string) ([]*UserPost, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, NewValidationError("userID", "userID is required")
	}

	posts, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts for user: %w", err)
	}
	if posts == nil {
		posts = []*UserPost{}
	}
	return posts, nil
}

func (s *postService) validateCreateRequest(req CreatePostRequest) error {
	if strings.TrimSpace(req.UserID) == "" {
		return NewValidationError("userID", "userID is required")
	}
	return validateContent(req.Title, req.Description)
}

func validateContent(title, description string) error {
	if strings.TrimSpace(title) == "" {
		return NewValidationError("title", "title is required")
	}
	if strings.TrimSpace(description) == "" {
		return NewValidationError("description", "description is required")
	}

	// Graphemes, not bytes: an emoji with modifiers counts once
	if n := uniseg.GraphemeClusterCount(title); n > MaxTitleGraphemes {
		return NewValidationError("title", fmt.Sprintf("title too long (max %d graphemes)", MaxTitleGraphemes))
	}
	if n := uniseg.GraphemeClusterCount(description); n > MaxDescriptionGraphemes {
		return NewValidationError("description", fmt.Sprintf("description too long (max %d graphemes)", MaxDescriptionGraphemes))
	}
	return nil
}
