package feeds

import (
	"context"
	"fmt"
	"strings"
	"time"

	"PostService/internal/metrics"
)

type feedService struct {
	repo Repository
}

// NewFeedService creates a new feed service
func NewFeedService(repo Repository) Service {
	return &feedService{repo: repo}
}

// GetFeed retrieves one page of posts for the requested feed kind
func (s *feedService) GetFeed(ctx context.Context, req Request) (*Page, error) {
	// 1. Validate request
	if err := s.validateRequest(&req); err != nil {
		return nil, err
	}

	// 2. Run the ranking query
	start := time.Now()
	feedPosts, err := s.repo.GetFeed(ctx, req)
	metrics.FeedQueryDuration.WithLabelValues(string(req.Kind)).Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, fmt.Errorf("failed to get %s feed: %w", req.Kind, err)
	}

	if feedPosts == nil {
		feedPosts = []*FeedPost{}
	}

	return &Page{
		Posts:        feedPosts,
		PageNumber:   req.PageNumber,
		LimitPerPage: req.LimitPerPage,
	}, nil
}

func (s *feedService) validateRequest(req *Request) error {
	if !req.Kind.Valid() {
		return NewValidationError("kind", "kind must be one of: unfiltered, new, hot, top, active")
	}
	if err := ValidatePage(req.PageNumber, req.LimitPerPage); err != nil {
		return err
	}
	req.Query = strings.TrimSpace(req.Query)
	return nil
}
