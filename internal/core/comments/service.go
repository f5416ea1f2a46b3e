package comments

import (
	"context"
	"fmt"
	"strings"

	"PostService/internal/core/interactions"

	"github.com/rivo/uniseg"
)

// MaxCommentGraphemes caps the visible length of a comment body
const MaxCommentGraphemes = 10000

type commentService struct {
	repo     Repository
	notifier interactions.Notifier
}

// NewCommentService creates a new comment service. notifier can be nil.
func NewCommentService(repo Repository, notifier interactions.Notifier) Service {
	return &commentService{
		repo:     repo,
		notifier: notifier,
	}
}

func (s *commentService) CreateComment(ctx context.Context, req CreateCommentRequest) (*Comment, error) {
	parentID, err := validateCreateRequest(req)
	if err != nil {
		return nil, err
	}

	comment := &Comment{Body: req.Comment}
	event := interactions.NewCommentCreatedEvent(strings.TrimSpace(req.UserID), req.PostID, parentID)

	if err := s.repo.Create(ctx, comment, event); err != nil {
		if IsNotFound(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	if s.notifier != nil {
		s.notifier.Notify()
	}

	return comment, nil
}

func (s *commentService) GetCommentsByPost(ctx context.Context, postID int64) ([]*CommentView, error) {
	if postID <= 0 {
		return nil, ErrInvalidPost
	}

	views, err := s.repo.ListByPost(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	if views == nil {
		views = []*CommentView{}
	}
	return views, nil
}

func (s *commentService) GetAnswersByUser(ctx context.Context, userID string) ([]*CommentView, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrUserRequired
	}

	views, err := s.repo.ListAnswersByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list answers: %w", err)
	}
	if views == nil {
		views = []*CommentView{}
	}
	return views, nil
}

// validateCreateRequest returns the parent to record: nil for a top-level
// comment, even if the client sent a parentID.
func validateCreateRequest(req CreateCommentRequest) (*int64, error) {
	if strings.TrimSpace(req.Comment) == "" {
		return nil, ErrContentEmpty
	}
	if uniseg.GraphemeClusterCount(req.Comment) > MaxCommentGraphemes {
		return nil, ErrContentTooLong
	}
	if req.PostID <= 0 {
		return nil, ErrInvalidPost
	}
	if strings.TrimSpace(req.UserID) == "" {
		return nil, ErrUserRequired
	}
	if req.IsReply == nil {
		return nil, fmt.Errorf("%w: isReply is required", ErrInvalidReply)
	}

	if !*req.IsReply {
		return nil, nil
	}
	if req.ParentID == nil || *req.ParentID <= 0 {
		return nil, fmt.Errorf("%w: a reply needs a positive parentID", ErrInvalidReply)
	}
	parentID := *req.ParentID
	return &parentID, nil
}
