package feeds

import "PostService/internal/core/posts"

// Kind names one of the feed views over posts
type Kind string

const (
	// KindUnfiltered lists posts by ascending id
	KindUnfiltered Kind = "unfiltered"
	// KindNew lists the most recently created posts first
	KindNew Kind = "new"
	// KindHot ranks by net votes divided by (whole hours since creation + 1)
	KindHot Kind = "hot"
	// KindTop ranks by net votes
	KindTop Kind = "top"
	// KindActive ranks by comments created in the last 24 hours
	KindActive Kind = "active"
)

// Kinds lists every supported feed kind
var Kinds = []Kind{KindUnfiltered, KindNew, KindHot, KindTop, KindActive}

// Valid reports whether k is a known feed kind
func (k Kind) Valid() bool {
	switch k {
	case KindUnfiltered, KindNew, KindHot, KindTop, KindActive:
		return true
	}
	return false
}

// Request selects one page of a feed. Query, when non-empty, keeps only posts
// whose title contains it (case-insensitive).
type Request struct {
	Kind         Kind   `json:"kind"`
	Query        string `json:"query,omitempty"`
	PageNumber   int    `json:"pageNumber"`
	LimitPerPage int    `json:"limitPerPage"`
}

// Offset is the number of rows skipped before this page
func (r Request) Offset() int {
	return (r.PageNumber - 1) * r.LimitPerPage
}

// FeedPost is one post of a feed with the ranking inputs that placed it there.
// UserID is left out for anonymous posts. HotRank is only set by the hot feed
// and RecentCommentCount only by the active feed.
type FeedPost struct {
	InteractionID      *int64   `json:"interactionID,omitempty"`
	UserID             *string  `json:"userID,omitempty"`
	HotRank            *float64 `json:"hotRank,omitempty"`
	RecentCommentCount *int     `json:"recentCommentCount,omitempty"`
	posts.Post
	Upvotes   int `json:"upvotes"`
	Downvotes int `json:"downvotes"`
	Score     int `json:"score"`
}

// Page is a single page of feed results
type Page struct {
	Posts        []*FeedPost `json:"posts"`
	PageNumber   int         `json:"pageNumber"`
	LimitPerPage int         `json:"limitPerPage"`
}
