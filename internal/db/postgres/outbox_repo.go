package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"time"

	"PostService/internal/core/interactions"

	"github.com/google/uuid"
)

type postgresOutboxRepo struct {
	db *sql.DB
}

// NewOutboxRepository creates the delivery side of the interaction outbox
func NewOutboxRepository(db *sql.DB) interactions.OutboxRepository {
	return &postgresOutboxRepo{db: db}
}

// insertOutboxEvent stores event inside the caller's transaction
func insertOutboxEvent(ctx context.Context, tx *sql.Tx, event *interactions.Event) error {
	query := `
		INSERT INTO interaction_outbox (id, kind, user_id, post_id, comment_id, parent_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, next_attempt_at`

	err := tx.QueryRowContext(ctx, query,
		event.ID,
		string(event.Kind),
		event.UserID,
		event.PostID,
		nullInt64(event.CommentID),
		nullInt64(event.ParentID),
	).Scan(&event.CreatedAt, &event.NextAttemptAt)
	if err != nil {
		return fmt.Errorf("failed to insert outbox event: %w", err)
	}
	return nil
}

// ClaimDue leases up to limit due events. Concurrent dispatchers skip rows
// another one has locked, and a leased row becomes claimable again once its
// lease runs out.
func (r *postgresOutboxRepo) ClaimDue(ctx context.Context, limit int, lease time.Duration) ([]*interactions.Event, error) {
	query := `
		UPDATE interaction_outbox
		SET locked_until = NOW() + make_interval(secs => $2)
		WHERE id IN (
			SELECT id FROM interaction_outbox
			WHERE delivered_at IS NULL
			  AND abandoned_at IS NULL
			  AND next_attempt_at <= NOW()
			  AND (locked_until IS NULL OR locked_until < NOW())
			ORDER BY created_at
			LIMIT $1
			FOR UPDATE SKIP LOCKED
		)
		RETURNING id, kind, user_id, post_id, comment_id, parent_id,
		          attempts, next_attempt_at, last_error, created_at`

	rows, err := r.db.QueryContext(ctx, query, limit, lease.Seconds())
	if err != nil {
		return nil, fmt.Errorf("failed to claim outbox events: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var events []*interactions.Event
	for rows.Next() {
		var (
			event               interactions.Event
			kind                string
			commentID, parentID sql.NullInt64
			lastError           sql.NullString
		)
		if err := rows.Scan(
			&event.ID, &kind, &event.UserID, &event.PostID, &commentID, &parentID,
			&event.Attempts, &event.NextAttemptAt, &lastError, &event.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan outbox event: %w", err)
		}
		event.Kind = interactions.EventKind(kind)
		event.CommentID = int64Ptr(commentID)
		event.ParentID = int64Ptr(parentID)
		if lastError.Valid {
			event.LastError = &lastError.String
		}
		events = append(events, &event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating outbox events: %w", err)
	}

	// RETURNING does not preserve the subquery order
	sort.Slice(events, func(i, j int) bool {
		return events[i].CreatedAt.Before(events[j].CreatedAt)
	})

	return events, nil
}

func (r *postgresOutboxRepo) IsPending(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1
			FROM interaction_outbox o
			JOIN posts p ON p.id = o.post_id
			WHERE o.id = $1
			  AND o.delivered_at IS NULL
			  AND o.abandoned_at IS NULL
		)`

	var pending bool
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&pending); err != nil {
		return false, fmt.Errorf("failed to check outbox event: %w", err)
	}
	return pending, nil
}

func (r *postgresOutboxRepo) MarkDelivered(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE interaction_outbox
		SET delivered_at = NOW(), locked_until = NULL, attempts = attempts + 1
		WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to mark outbox event delivered: %w", err)
	}
	return nil
}

func (r *postgresOutboxRepo) MarkFailed(ctx context.Context, id uuid.UUID, attempts int, nextAttemptAt time.Time, lastErr string) error {
	query := `
		UPDATE interaction_outbox
		SET attempts = $2, next_attempt_at = $3, last_error = $4, locked_until = NULL
		WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, id, attempts, nextAttemptAt, lastErr); err != nil {
		return fmt.Errorf("failed to reschedule outbox event: %w", err)
	}
	return nil
}

func (r *postgresOutboxRepo) MarkAbandoned(ctx context.Context, id uuid.UUID, attempts int, lastErr string) error {
	query := `
		UPDATE interaction_outbox
		SET attempts = $2, last_error = $3, abandoned_at = NOW(), locked_until = NULL
		WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, id, attempts, lastErr); err != nil {
		return fmt.Errorf("failed to abandon outbox event: %w", err)
	}
	return nil
}

func (r *postgresOutboxRepo) CountPending(ctx context.Context) (int, error) {
	var n int
	query := `SELECT COUNT(*) FROM interaction_outbox WHERE delivered_at IS NULL AND abandoned_at IS NULL`
	if err := r.db.QueryRowContext(ctx, query).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count pending outbox events: %w", err)
	}
	return n, nil
}
