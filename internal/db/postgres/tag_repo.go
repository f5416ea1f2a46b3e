package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"PostService/internal/core/posts"
	"PostService/internal/core/tags"

	"github.com/lib/pq"
)

type postgresTagRepo struct {
	db *sql.DB
}

// NewTagRepository creates a new PostgreSQL post tag repository
func NewTagRepository(db *sql.DB) tags.Repository {
	return &postgresTagRepo{db: db}
}

// Associate inserts every (postID, tag) pair or none of them
func (r *postgresTagRepo) Associate(ctx context.Context, postID int64, tagNames []string) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		query := `
			INSERT INTO post_tags (post_id, tag_name)
			SELECT $1, UNNEST($2::text[])`

		if _, err := tx.ExecContext(ctx, query, postID, pq.Array(tagNames)); err != nil {
			switch {
			case isUniqueViolation(err):
				return tags.ErrDuplicateTag
			case isForeignKeyViolation(err):
				return tags.ErrPostNotFound
			}
			return fmt.Errorf("failed to associate tags: %w", err)
		}
		return nil
	})
}

func (r *postgresTagRepo) ListForPost(ctx context.Context, postID int64) ([]string, error) {
	var names pq.StringArray
	query := `
		SELECT COALESCE(ARRAY_AGG(tag_name ORDER BY created_at, tag_name), '{}')
		FROM post_tags
		WHERE post_id = $1`

	if err := r.db.QueryRowContext(ctx, query, postID).Scan(&names); err != nil {
		return nil, fmt.Errorf("failed to list tags for post: %w", err)
	}
	return []string(names), nil
}

func (r *postgresTagRepo) CountPosts(ctx context.Context, tagName string) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM post_tags WHERE tag_name = $1`, tagName).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count posts for tag: %w", err)
	}
	return n, nil
}

func (r *postgresTagRepo) RemoveAll(ctx context.Context, postID int64) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM post_tags WHERE post_id = $1`, postID)
	if err != nil {
		return 0, fmt.Errorf("failed to remove tags: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to check remove result: %w", err)
	}
	return n, nil
}

func (r *postgresTagRepo) ListPosts(ctx context.Context, tagName string, limit, offset int) ([]*posts.Post, error) {
	query := `
		SELECT ` + postColumns + `
		FROM post_tags t
		JOIN posts p ON p.id = t.post_id
		WHERE t.tag_name = $1
		ORDER BY p.created_at DESC, p.id DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.db.QueryContext(ctx, query, tagName, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts for tag: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var result []*posts.Post
	for rows.Next() {
		var post posts.Post
		if err := rows.Scan(
			&post.ID, &post.Title, &post.Description,
			&post.CreatedAt, &post.UpdatedAt, &post.IsAnonymous,
		); err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		result = append(result, &post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating posts: %w", err)
	}
	return result, nil
}
