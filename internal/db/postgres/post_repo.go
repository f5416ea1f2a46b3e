package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"PostService/internal/core/interactions"
	"PostService/internal/core/posts"
)

// postCreatorJoins resolves who created post p. The interaction service's
// row wins; until it exists the post_created outbox event is used.
const postCreatorJoins = `
	LEFT JOIN LATERAL (
		SELECT ci.id, ci.user_id
		FROM interactions ci
		WHERE ci.post_id = p.id AND ci.comment_id IS NULL AND ci.parent_id IS NULL
		ORDER BY ci.created_at, ci.id
		LIMIT 1
	) i ON TRUE
	LEFT JOIN LATERAL (
		SELECT ob.user_id
		FROM interaction_outbox ob
		WHERE ob.post_id = p.id AND ob.kind = 'post_created' AND ob.abandoned_at IS NULL
		ORDER BY ob.created_at
		LIMIT 1
	) o ON TRUE`

const postColumns = `p.id, p.title, p.description, p.created_at, p.updated_at, p.is_anonymous`

type postgresPostRepo struct {
	db *sql.DB
}

// NewPostRepository creates a new PostgreSQL post repository
func NewPostRepository(db *sql.DB) posts.Repository {
	return &postgresPostRepo{db: db}
}

// Create inserts the post and its post_created outbox event atomically
func (r *postgresPostRepo) Create(ctx context.Context, post *posts.Post, event *interactions.Event) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		query := `
			INSERT INTO posts (title, description, is_anonymous)
			VALUES ($1, $2, $3)
			RETURNING id, created_at, updated_at`

		err := tx.QueryRowContext(ctx, query, post.Title, post.Description, post.IsAnonymous).
			Scan(&post.ID, &post.CreatedAt, &post.UpdatedAt)
		if err != nil {
			return fmt.Errorf("failed to insert post: %w", err)
		}

		event.PostID = post.ID
		return insertOutboxEvent(ctx, tx, event)
	})
}

func (r *postgresPostRepo) GetByID(ctx context.Context, postID int64) (*posts.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts p WHERE p.id = $1`

	post, err := scanPost(r.db.QueryRowContext(ctx, query, postID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, posts.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	return post, nil
}

func (r *postgresPostRepo) Update(ctx context.Context, postID int64, title, description string) (*posts.Post, error) {
	query := `
		UPDATE posts p
		SET title = $2, description = $3, updated_at = NOW()
		WHERE p.id = $1
		RETURNING ` + postColumns

	post, err := scanPost(r.db.QueryRowContext(ctx, query, postID, title, description))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, posts.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}
	return post, nil
}

// Delete removes the post and everything that references it. post_tags rows
// go through the foreign key cascade; the interaction tables carry no foreign
// keys, so they are cleaned up here.
func (r *postgresPostRepo) Delete(ctx context.Context, postID int64) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, postID)
		if err != nil {
			return fmt.Errorf("failed to delete post: %w", err)
		}
		rows, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to check delete result: %w", err)
		}
		if rows == 0 {
			return posts.ErrNotFound
		}

		statements := []struct {
			name  string
			query string
		}{
			{"votes", `
				DELETE FROM votes
				WHERE post_id = $1
				   OR interaction_id IN (SELECT id FROM interactions WHERE post_id = $1)`},
			{"views", `DELETE FROM views WHERE post_id = $1`},
			{"comments", `
				DELETE FROM comments
				WHERE id IN (
					SELECT comment_id FROM interactions WHERE post_id = $1 AND comment_id IS NOT NULL
					UNION
					SELECT comment_id FROM interaction_outbox WHERE post_id = $1 AND comment_id IS NOT NULL
				)`},
			{"interactions", `DELETE FROM interactions WHERE post_id = $1`},
			{"outbox events", `DELETE FROM interaction_outbox WHERE post_id = $1`},
		}

		for _, stmt := range statements {
			if _, err := tx.ExecContext(ctx, stmt.query, postID); err != nil {
				return fmt.Errorf("failed to delete %s for post: %w", stmt.name, err)
			}
		}
		return nil
	})
}

func (r *postgresPostRepo) ListByUser(ctx context.Context, userID string) ([]*posts.UserPost, error) {
	query := `
		SELECT ` + postColumns + `, i.id, COALESCE(i.user_id, o.user_id)
		FROM posts p` + postCreatorJoins + `
		WHERE p.is_anonymous = FALSE
		  AND COALESCE(i.user_id, o.user_id) = $1
		ORDER BY p.created_at DESC, p.id DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts by user: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var result []*posts.UserPost
	for rows.Next() {
		var (
			up            posts.UserPost
			interactionID sql.NullInt64
		)
		if err := rows.Scan(
			&up.ID, &up.Title, &up.Description, &up.CreatedAt, &up.UpdatedAt, &up.IsAnonymous,
			&interactionID, &up.UserID,
		); err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		up.InteractionID = int64Ptr(interactionID)
		result = append(result, &up)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating posts: %w", err)
	}
	return result, nil
}

func scanPost(row *sql.Row) (*posts.Post, error) {
	var post posts.Post
	if err := row.Scan(
		&post.ID, &post.Title, &post.Description,
		&post.CreatedAt, &post.UpdatedAt, &post.IsAnonymous,
	); err != nil {
		return nil, err
	}
	return &post, nil
}
