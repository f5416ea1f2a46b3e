package postgres

import (
	"context"
	"database/sql"
	"os"
	"testing"

	"PostService/internal/core/interactions"
	"PostService/internal/core/posts"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

// setupTestDB connects to TEST_DATABASE_URL, runs migrations and empties every
// table. Tests are skipped when no test database is configured.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	db, err := Open(ctx, dsn)
	require.NoError(t, err, "Failed to connect to test database")
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, Migrate(ctx, db), "Failed to run migrations")

	_, err = db.Exec(`TRUNCATE posts, comments, post_tags, interactions, votes, views, interaction_outbox RESTART IDENTITY CASCADE`)
	require.NoError(t, err, "Failed to reset tables")

	return db
}

func createTestPost(t *testing.T, db *sql.DB, title, userID string, anonymous bool) *posts.Post {
	t.Helper()

	post := &posts.Post{Title: title, Description: "description of " + title, IsAnonymous: anonymous}
	err := NewPostRepository(db).Create(context.Background(), post, interactions.NewPostCreatedEvent(userID))
	require.NoError(t, err)
	return post
}

// insertInteraction stands in for the interaction service recording an event
func insertInteraction(t *testing.T, db *sql.DB, userID string, postID int64, commentID, parentID *int64) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(`
		INSERT INTO interactions (user_id, post_id, comment_id, parent_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id`, userID, postID, nullInt64(commentID), nullInt64(parentID)).Scan(&id)
	require.NoError(t, err)
	return id
}

func insertVotes(t *testing.T, db *sql.DB, interactionID, postID int64, up, down int) {
	t.Helper()

	for i := 0; i < up; i++ {
		_, err := db.Exec(`INSERT INTO votes (interaction_id, post_id, user_id, vote) VALUES ($1, $2, 'voter', 1)`, interactionID, postID)
		require.NoError(t, err)
	}
	for i := 0; i < down; i++ {
		_, err := db.Exec(`INSERT INTO votes (interaction_id, post_id, user_id, vote) VALUES ($1, $2, 'voter', 0)`, interactionID, postID)
		require.NoError(t, err)
	}
}

func agePost(t *testing.T, db *sql.DB, postID int64, hours int) {
	t.Helper()

	_, err := db.Exec(`UPDATE posts SET created_at = NOW() - make_interval(hours => $2) WHERE id = $1`, postID, hours)
	require.NoError(t, err)
}

func countRows(t *testing.T, db *sql.DB, query string, args ...any) int {
	t.Helper()

	var n int
	require.NoError(t, db.QueryRow(query, args...).Scan(&n))
	return n
}
