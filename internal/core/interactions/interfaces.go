package interactions

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Client talks to the interaction service. idempotencyKey is the outbox
// event ID, so a redelivered event can be recognised on the other side.
type Client interface {
	CreatePostInteraction(ctx context.Context, idempotencyKey, userID string, postID int64) error
	CreateCommentInteraction(ctx context.Context, idempotencyKey, userID string, postID, commentID int64, parentID *int64) error
}

// OutboxRepository stores pending events. Writes of new events happen inside
// the post and comment repositories' transactions; this interface only covers
// the delivery side.
type OutboxRepository interface {
	// ClaimDue leases up to limit due events for the given duration so that
	// concurrent dispatchers do not deliver the same row twice.
	ClaimDue(ctx context.Context, limit int, lease time.Duration) ([]*Event, error)

	// IsPending reports whether the event is still undelivered and its post
	// still exists. Deleting a post removes its outbox rows.
	IsPending(ctx context.Context, id uuid.UUID) (bool, error)

	MarkDelivered(ctx context.Context, id uuid.UUID) error
	MarkFailed(ctx context.Context, id uuid.UUID, attempts int, nextAttemptAt time.Time, lastErr string) error
	MarkAbandoned(ctx context.Context, id uuid.UUID, attempts int, lastErr string) error
	CountPending(ctx context.Context) (int, error)
}

// Notifier wakes the dispatcher after a new event has been committed.
type Notifier interface {
	Notify()
}
