package comments

import "time"

// Comment is a comment row. Which post it belongs to, and which comment it
// answers, is recorded on its interaction row rather than here.
type Comment struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Body      string    `json:"comment"`
	ID        int64     `json:"commentID"`
}

// CommentView is a comment joined with the interaction that places it in a
// thread. InteractionID is nil until the interaction service has recorded it;
// UserID, PostID and ParentID then come from the pending outbox event.
type CommentView struct {
	InteractionID *int64 `json:"interactionID,omitempty"`
	ParentID      *int64 `json:"parentID,omitempty"`
	UserID        string `json:"userID"`
	Comment
	PostID int64 `json:"postID"`
}

// CreateCommentRequest represents input for commenting on a post or replying
// to another comment. IsReply is required; ParentID is only read when it is true.
type CreateCommentRequest struct {
	IsReply  *bool  `json:"isReply"`
	ParentID *int64 `json:"parentID,omitempty"`
	Comment  string `json:"comment"`
	UserID   string `json:"userID"`
	PostID   int64  `json:"postID"`
}
