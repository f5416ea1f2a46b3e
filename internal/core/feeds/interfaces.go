package feeds

import "context"

// Service defines the business logic interface for feeds
type Service interface {
	// GetFeed validates the request and returns one page of the feed
	GetFeed(ctx context.Context, req Request) (*Page, error)
}

// Repository defines the data access interface for feeds
type Repository interface {
	// GetFeed runs the ranking query for an already validated request. The
	// result never holds more than req.LimitPerPage posts.
	GetFeed(ctx context.Context, req Request) ([]*FeedPost, error)
}
