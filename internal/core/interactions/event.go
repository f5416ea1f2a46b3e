package interactions

import (
	"time"

	"github.com/google/uuid"
)

// EventKind identifies which interaction-service endpoint an Event is delivered to.
type EventKind string

const (
	// EventPostCreated maps to createPostInteraction.
	EventPostCreated EventKind = "post_created"
	// EventCommentCreated maps to createCommentInteraction.
	EventCommentCreated EventKind = "comment_created"
)

// Event is a pending notification for the interaction service. It is stored
// in the outbox table in the same transaction as the post or comment it
// describes; ID doubles as the idempotency key sent with every delivery.
type Event struct {
	NextAttemptAt time.Time
	CreatedAt     time.Time
	CommentID     *int64
	ParentID      *int64
	LastError     *string
	Kind          EventKind
	UserID        string
	PostID        int64
	Attempts      int
	ID            uuid.UUID
}

// NewPostCreatedEvent builds the event recording that userID created a post.
// PostID is assigned by the repository once the post row exists.
func NewPostCreatedEvent(userID string) *Event {
	return &Event{
		ID:     uuid.New(),
		Kind:   EventPostCreated,
		UserID: userID,
	}
}

// NewCommentCreatedEvent builds the event recording that userID commented on
// postID, optionally as a reply to parentID. CommentID is assigned by the
// repository once the comment row exists.
func NewCommentCreatedEvent(userID string, postID int64, parentID *int64) *Event {
	return &Event{
		ID:       uuid.New(),
		Kind:     EventCommentCreated,
		UserID:   userID,
		PostID:   postID,
		ParentID: parentID,
	}
}
