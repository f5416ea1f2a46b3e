package tags

import "PostService/internal/core/posts"

// AssociateRequest attaches every tag in TagNames to PostID
type AssociateRequest struct {
	TagNames []string `json:"tagNameArray"`
	PostID   int64    `json:"postID"`
}

// TaggedPostsPage is one page of posts carrying a tag, newest first
type TaggedPostsPage struct {
	TagName      string        `json:"tagName"`
	Posts        []*posts.Post `json:"posts"`
	PageNumber   int           `json:"pageNumber"`
	LimitPerPage int           `json:"limitPerPage"`
}
