package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"PostService/internal/core/comments"
	"PostService/internal/core/interactions"
)

// commentPlacementJoins finds the thread position of comment c: the
// interaction service's row when it exists, else the comment_created outbox
// event still waiting for delivery.
const commentPlacementJoins = `
	LEFT JOIN LATERAL (
		SELECT ci.id, ci.user_id, ci.post_id, ci.parent_id
		FROM interactions ci
		WHERE ci.comment_id = c.id
		ORDER BY ci.created_at, ci.id
		LIMIT 1
	) i ON TRUE
	LEFT JOIN interaction_outbox o
		ON o.comment_id = c.id AND o.kind = 'comment_created'`

const commentViewColumns = `
	c.id, c.body, c.created_at, c.updated_at,
	i.id, COALESCE(i.user_id, o.user_id), COALESCE(i.post_id, o.post_id),
	CASE WHEN i.id IS NOT NULL THEN i.parent_id ELSE o.parent_id END`

type postgresCommentRepo struct {
	db *sql.DB
}

// NewCommentRepository creates a new PostgreSQL comment repository
func NewCommentRepository(db *sql.DB) comments.Repository {
	return &postgresCommentRepo{db: db}
}

// Create inserts the comment and its comment_created outbox event atomically.
// The post row is locked against deletion until the transaction ends.
func (r *postgresCommentRepo) Create(ctx context.Context, comment *comments.Comment, event *interactions.Event) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		var exists int
		err := tx.QueryRowContext(ctx, `SELECT 1 FROM posts WHERE id = $1 FOR KEY SHARE`, event.PostID).Scan(&exists)
		if errors.Is(err, sql.ErrNoRows) {
			return comments.ErrPostNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to check post: %w", err)
		}

		if event.ParentID != nil {
			parentQuery := `
				SELECT EXISTS (
					SELECT 1 FROM interactions WHERE comment_id = $1 AND post_id = $2
					UNION ALL
					SELECT 1 FROM interaction_outbox
					WHERE comment_id = $1 AND post_id = $2 AND kind = 'comment_created'
				)`
			var found bool
			if err := tx.QueryRowContext(ctx, parentQuery, *event.ParentID, event.PostID).Scan(&found); err != nil {
				return fmt.Errorf("failed to check parent comment: %w", err)
			}
			if !found {
				return comments.ErrParentNotFound
			}
		}

		query := `
			INSERT INTO comments (body)
			VALUES ($1)
			RETURNING id, created_at, updated_at`
		if err := tx.QueryRowContext(ctx, query, comment.Body).
			Scan(&comment.ID, &comment.CreatedAt, &comment.UpdatedAt); err != nil {
			return fmt.Errorf("failed to insert comment: %w", err)
		}

		commentID := comment.ID
		event.CommentID = &commentID
		return insertOutboxEvent(ctx, tx, event)
	})
}

func (r *postgresCommentRepo) ListByPost(ctx context.Context, postID int64) ([]*comments.CommentView, error) {
	query := `
		SELECT ` + commentViewColumns + `
		FROM comments c` + commentPlacementJoins + `
		WHERE COALESCE(i.post_id, o.post_id) = $1
		ORDER BY c.created_at, c.id`

	return r.queryViews(ctx, query, postID)
}

// ListAnswersByUser returns top-level comments only; replies are excluded
func (r *postgresCommentRepo) ListAnswersByUser(ctx context.Context, userID string) ([]*comments.CommentView, error) {
	query := `
		SELECT ` + commentViewColumns + `
		FROM comments c` + commentPlacementJoins + `
		WHERE COALESCE(i.user_id, o.user_id) = $1
		  AND (CASE WHEN i.id IS NOT NULL THEN i.parent_id ELSE o.parent_id END) IS NULL
		ORDER BY c.created_at DESC, c.id DESC`

	return r.queryViews(ctx, query, userID)
}

func (r *postgresCommentRepo) queryViews(ctx context.Context, query string, arg any) ([]*comments.CommentView, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var result []*comments.CommentView
	for rows.Next() {
		var (
			view                    comments.CommentView
			interactionID, parentID sql.NullInt64
		)
		if err := rows.Scan(
			&view.ID, &view.Body, &view.CreatedAt, &view.UpdatedAt,
			&interactionID, &view.UserID, &view.PostID, &parentID,
		); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		view.InteractionID = int64Ptr(interactionID)
		view.ParentID = int64Ptr(parentID)
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comments: %w", err)
	}
	return result, nil
}
