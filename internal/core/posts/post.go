package posts

import "time"

// Post is a discussion post as stored in the posts table.
type Post struct {
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ID          int64     `json:"postID"`
	IsAnonymous bool      `json:"isAnonymous"`
}

// UserPost is a post listed for its author, together with the interaction
// row that records its creation. InteractionID is nil while the creation
// event is still waiting in the outbox.
type UserPost struct {
	InteractionID *int64 `json:"interactionID,omitempty"`
	UserID        string `json:"userID"`
	Post
}

// CreatePostRequest represents input for creating a new post
type CreatePostRequest struct {
	IsAnonymous *bool  `json:"isAnonymous,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
	UserID      string `json:"userID"`
}

// EditPostRequest replaces the title and description of an existing post
type EditPostRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	PostID      int64  `json:"postID"`
}
