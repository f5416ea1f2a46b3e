package tags

import (
	"context"
	"fmt"
	"strings"

	"PostService/internal/core/feeds"
	"PostService/internal/core/posts"

	"github.com/samber/lo"
)

type tagService struct {
	repo Repository
}

// NewTagService creates a new tag service
func NewTagService(repo Repository) Service {
	return &tagService{repo: repo}
}

func (s *tagService) AssociateTags(ctx context.Context, req AssociateRequest) error {
	if req.PostID <= 0 {
		return NewValidationError("postID", "must be a positive integer")
	}
	if len(req.TagNames) == 0 {
		return NewValidationError("tagNameArray", "at least one tag is required")
	}

	names := lo.Map(req.TagNames, func(name string, _ int) string {
		return strings.TrimSpace(name)
	})
	if lo.Contains(names, "") {
		return NewValidationError("tagNameArray", "tag names must not be empty")
	}

	// Repeats inside one request would collide with each other on insert
	if len(lo.Uniq(names)) != len(names) {
		return ErrDuplicateTag
	}

	if err := s.repo.Associate(ctx, req.PostID, names); err != nil {
		if IsConflict(err) || IsNotFound(err) {
			return err
		}
		return fmt.Errorf("failed to associate tags: %w", err)
	}
	return nil
}

func (s *tagService) GetTagsForPost(ctx context.Context, postID int64) ([]string, error) {
	if postID <= 0 {
		return nil, NewValidationError("postID", "must be a positive integer")
	}

	names, err := s.repo.ListForPost(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	if names == nil {
		names = []string{}
	}
	return names, nil
}

func (s *tagService) CountPostsWithTag(ctx context.Context, tagName string) (int, error) {
	tagName = strings.TrimSpace(tagName)
	if tagName == "" {
		return 0, NewValidationError("tagName", "tagName is required")
	}
	return s.repo.CountPosts(ctx, tagName)
}

func (s *tagService) UnassociateTags(ctx context.Context, postID int64) (int64, error) {
	if postID <= 0 {
		return 0, NewValidationError("postID", "must be a positive integer")
	}
	return s.repo.RemoveAll(ctx, postID)
}

func (s *tagService) GetPostsByTag(ctx context.Context, tagName string, pageNumber, limitPerPage int) (*TaggedPostsPage, error) {
	tagName = strings.TrimSpace(tagName)
	if tagName == "" {
		return nil, NewValidationError("tagName", "tagName is required")
	}
	if err := feeds.ValidatePage(pageNumber, limitPerPage); err != nil {
		return nil, err
	}

	req := feeds.Request{PageNumber: pageNumber, LimitPerPage: limitPerPage}
	tagged, err := s.repo.ListPosts(ctx, tagName, limitPerPage, req.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to list posts for tag: %w", err)
	}
	if tagged == nil {
		tagged = []*posts.Post{}
	}

	return &TaggedPostsPage{
		TagName:      tagName,
		Posts:        tagged,
		PageNumber:   pageNumber,
		LimitPerPage: limitPerPage,
	}, nil
}
