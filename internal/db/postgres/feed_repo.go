package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"PostService/internal/core/feeds"
)

type postgresFeedRepo struct {
	db *sql.DB
}

// hotRankExpression divides net votes by whole hours since creation plus one,
// so a post younger than an hour is divided by 1. The hour count is clamped at
// zero for rows created after the statement's NOW().
const hotRankExpression = `(COALESCE(v.net_score, 0)::float8 / (GREATEST(FLOOR(EXTRACT(EPOCH FROM (NOW() - p.created_at)) / 3600), 0) + 1))`

// recentCommentsJoin counts comments on p from the last 24 hours, including
// comments whose interaction row is still in the outbox
const recentCommentsJoin = `
	LEFT JOIN LATERAL (
		SELECT COUNT(*) AS recent_comments
		FROM comments rc
		WHERE rc.created_at >= NOW() - INTERVAL '24 hours'
		  AND rc.id IN (
			SELECT ri.comment_id FROM interactions ri
			WHERE ri.post_id = p.id AND ri.comment_id IS NOT NULL
			UNION
			SELECT ro.comment_id FROM interaction_outbox ro
			WHERE ro.post_id = p.id AND ro.kind = 'comment_created'
		  )
	) a ON TRUE`

// voteTotalsJoin aggregates votes on the post's creation interaction.
// vote = 1 is an upvote, vote = 0 a downvote.
const voteTotalsJoin = `
	LEFT JOIN LATERAL (
		SELECT
			COUNT(*) FILTER (WHERE vt.vote = 1) AS upvotes,
			COUNT(*) FILTER (WHERE vt.vote = 0) AS downvotes,
			COUNT(*) FILTER (WHERE vt.vote = 1) - COUNT(*) FILTER (WHERE vt.vote = 0) AS net_score
		FROM votes vt
		WHERE vt.interaction_id = i.id
	) v ON TRUE`

// feedClause is the per-kind part of the feed query. Only values from
// feedClauses are ever interpolated into SQL.
type feedClause struct {
	hotRank     string
	recentCount string
	join        string
	where       string
	orderBy     string
}

var feedClauses = map[feeds.Kind]feedClause{
	feeds.KindUnfiltered: {
		orderBy: `p.id ASC`,
	},
	feeds.KindNew: {
		orderBy: `p.created_at DESC, p.id DESC`,
	},
	feeds.KindHot: {
		hotRank: hotRankExpression,
		where:   `i.id IS NOT NULL`,
		orderBy: `hot_rank DESC, p.created_at DESC, p.id DESC`,
	},
	feeds.KindTop: {
		orderBy: `net_score DESC, p.created_at DESC, p.id DESC`,
	},
	feeds.KindActive: {
		recentCount: `COALESCE(a.recent_comments, 0)`,
		join:        recentCommentsJoin,
		orderBy:     `recent_comment_count DESC, p.created_at DESC, p.id DESC`,
	},
}

// NewFeedRepository creates a new PostgreSQL feed repository
func NewFeedRepository(db *sql.DB) feeds.Repository {
	return &postgresFeedRepo{db: db}
}

// GetFeed runs one query per request: posts joined with their creation
// interaction, vote totals and, for the active feed, recent comment counts
func (r *postgresFeedRepo) GetFeed(ctx context.Context, req feeds.Request) ([]*feeds.FeedPost, error) {
	clause, ok := feedClauses[req.Kind]
	if !ok {
		return nil, fmt.Errorf("unsupported feed kind %q", req.Kind)
	}

	query, args := buildFeedQuery(clause, req)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s feed: %w", req.Kind, err)
	}
	defer func() { _ = rows.Close() }()

	var result []*feeds.FeedPost
	for rows.Next() {
		post, err := scanFeedPost(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating feed: %w", err)
	}
	return result, nil
}

func buildFeedQuery(clause feedClause, req feeds.Request) (string, []any) {
	var (
		args       []any
		conditions []string
	)

	if req.Query != "" {
		args = append(args, escapeLike(req.Query))
		conditions = append(conditions, fmt.Sprintf(`p.title ILIKE '%%' || $%d::text || '%%'`, len(args)))
	}
	if clause.where != "" {
		conditions = append(conditions, clause.where)
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	hotRank := "NULL::float8"
	if clause.hotRank != "" {
		hotRank = clause.hotRank
	}
	recentCount := "NULL::bigint"
	if clause.recentCount != "" {
		recentCount = clause.recentCount
	}

	args = append(args, req.LimitPerPage, req.Offset())

	query := fmt.Sprintf(`
		SELECT
			%s,
			i.id,
			CASE WHEN p.is_anonymous THEN NULL ELSE COALESCE(i.user_id, o.user_id) END,
			COALESCE(v.upvotes, 0),
			COALESCE(v.downvotes, 0),
			COALESCE(v.net_score, 0) AS net_score,
			%s AS hot_rank,
			%s AS recent_comment_count
		FROM posts p
		%s
		%s
		%s
		%s
		ORDER BY %s
		LIMIT $%d OFFSET $%d`,
		postColumns,
		hotRank,
		recentCount,
		postCreatorJoins,
		voteTotalsJoin,
		clause.join,
		where,
		clause.orderBy,
		len(args)-1, len(args),
	)

	return query, args
}

func scanFeedPost(rows *sql.Rows) (*feeds.FeedPost, error) {
	var (
		post          feeds.FeedPost
		interactionID sql.NullInt64
		userID        sql.NullString
		hotRank       sql.NullFloat64
		recentCount   sql.NullInt64
	)

	err := rows.Scan(
		&post.ID, &post.Title, &post.Description, &post.CreatedAt, &post.UpdatedAt, &post.IsAnonymous,
		&interactionID,
		&userID,
		&post.Upvotes,
		&post.Downvotes,
		&post.Score,
		&hotRank,
		&recentCount,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan feed post: %w", err)
	}

	post.InteractionID = int64Ptr(interactionID)
	if userID.Valid {
		post.UserID = &userID.String
	}
	if hotRank.Valid {
		rank := hotRank.Float64
		post.HotRank = &rank
	}
	if recentCount.Valid {
		n := int(recentCount.Int64)
		post.RecentCommentCount = &n
	}

	return &post, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes s match literally inside a LIKE pattern
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
