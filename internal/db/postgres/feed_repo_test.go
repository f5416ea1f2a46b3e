package postgres

import (
	"context"
	"testing"

	"PostService/internal/core/comments"
	"PostService/internal/core/feeds"
	"PostService/internal/core/interactions"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func feedIDs(list []*feeds.FeedPost) []int64 {
	return lo.Map(list, func(p *feeds.FeedPost, _ int) int64 { return p.ID })
}

func getFeed(t *testing.T, repo feeds.Repository, req feeds.Request) []*feeds.FeedPost {
	t.Helper()
	list, err := repo.GetFeed(context.Background(), req)
	require.NoError(t, err)
	return list
}

func TestFeedRepo_NewFeedShowsFreshPostFirst(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFeedRepository(db)

	old := createTestPost(t, db, "Old", "u1", false)
	agePost(t, db, old.ID, 5)
	hello := createTestPost(t, db, "Hello", "u1", false)

	list := getFeed(t, repo, feeds.Request{Kind: feeds.KindNew, PageNumber: 1, LimitPerPage: 10})
	require.NotEmpty(t, list)
	assert.Equal(t, hello.ID, list[0].ID)
	assert.Equal(t, lo.ToPtr("u1"), list[0].UserID)
	assert.Nil(t, list[0].InteractionID)
}

func TestFeedRepo_UnfilteredIsAscendingID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFeedRepository(db)

	a := createTestPost(t, db, "a", "u1", false)
	b := createTestPost(t, db, "b", "u1", false)
	c := createTestPost(t, db, "c", "u1", false)
	agePost(t, db, a.ID, 1)

	list := getFeed(t, repo, feeds.Request{Kind: feeds.KindUnfiltered, PageNumber: 1, LimitPerPage: 10})
	assert.Equal(t, []int64{a.ID, b.ID, c.ID}, feedIDs(list))
}

func TestFeedRepo_PagingNeverExceedsLimit(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFeedRepository(db)

	var ids []int64
	for i := 0; i < 5; i++ {
		ids = append(ids, createTestPost(t, db, "post", "u1", false).ID)
	}

	page1 := getFeed(t, repo, feeds.Request{Kind: feeds.KindUnfiltered, PageNumber: 1, LimitPerPage: 2})
	page3 := getFeed(t, repo, feeds.Request{Kind: feeds.KindUnfiltered, PageNumber: 3, LimitPerPage: 2})
	page4 := getFeed(t, repo, feeds.Request{Kind: feeds.KindUnfiltered, PageNumber: 4, LimitPerPage: 2})

	assert.Equal(t, ids[0:2], feedIDs(page1))
	assert.Equal(t, ids[4:5], feedIDs(page3))
	assert.Empty(t, page4)
}

func TestFeedRepo_HotFeed(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFeedRepository(db)

	// equal positive net votes: the younger post ranks higher
	young := createTestPost(t, db, "young", "u1", false)
	old := createTestPost(t, db, "old", "u1", false)
	agePost(t, db, old.ID, 10)
	insertVotes(t, db, insertInteraction(t, db, "u1", young.ID, nil, nil), young.ID, 4, 0)
	insertVotes(t, db, insertInteraction(t, db, "u1", old.ID, nil, nil), old.ID, 4, 0)

	// equal negative net votes: the signed ratio puts the older post above
	youngBad := createTestPost(t, db, "young bad", "u1", false)
	oldBad := createTestPost(t, db, "old bad", "u1", false)
	agePost(t, db, oldBad.ID, 10)
	insertVotes(t, db, insertInteraction(t, db, "u1", youngBad.ID, nil, nil), youngBad.ID, 0, 3)
	insertVotes(t, db, insertInteraction(t, db, "u1", oldBad.ID, nil, nil), oldBad.ID, 0, 3)

	// no interaction row yet: excluded from hot
	createTestPost(t, db, "unrecorded", "u1", false)

	list := getFeed(t, repo, feeds.Request{Kind: feeds.KindHot, PageNumber: 1, LimitPerPage: 10})
	assert.Equal(t, []int64{young.ID, old.ID, oldBad.ID, youngBad.ID}, feedIDs(list))

	require.NotNil(t, list[0].HotRank)
	assert.InDelta(t, 4.0, *list[0].HotRank, 0.0001)
	assert.InDelta(t, 4.0/11.0, *list[1].HotRank, 0.0001)
	assert.Equal(t, 4, list[0].Upvotes)
	assert.Equal(t, -3, list[3].Score)
	assert.Equal(t, 3, list[3].Downvotes)
	assert.Nil(t, list[0].RecentCommentCount)
}

func TestFeedRepo_HotFeedFutureTimestamp(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFeedRepository(db)

	ahead := createTestPost(t, db, "ahead", "u1", false)
	_, err := db.Exec(`UPDATE posts SET created_at = NOW() + INTERVAL '30 minutes' WHERE id = $1`, ahead.ID)
	require.NoError(t, err)
	insertVotes(t, db, insertInteraction(t, db, "u1", ahead.ID, nil, nil), ahead.ID, 4, 0)

	old := createTestPost(t, db, "old", "u1", false)
	agePost(t, db, old.ID, 3)
	insertVotes(t, db, insertInteraction(t, db, "u1", old.ID, nil, nil), old.ID, 4, 0)

	list := getFeed(t, repo, feeds.Request{Kind: feeds.KindHot, PageNumber: 1, LimitPerPage: 10})
	assert.Equal(t, []int64{ahead.ID, old.ID}, feedIDs(list))
	require.NotNil(t, list[0].HotRank)
	assert.InDelta(t, 4.0, *list[0].HotRank, 0.0001)
	assert.InDelta(t, 1.0, *list[1].HotRank, 0.0001)
}

func TestFeedRepo_TopFeed(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFeedRepository(db)

	low := createTestPost(t, db, "low", "u1", false)
	high := createTestPost(t, db, "high", "u1", false)
	mid := createTestPost(t, db, "mid", "u1", false)
	agePost(t, db, high.ID, 48)

	insertVotes(t, db, insertInteraction(t, db, "u1", low.ID, nil, nil), low.ID, 1, 2)
	insertVotes(t, db, insertInteraction(t, db, "u1", high.ID, nil, nil), high.ID, 9, 1)
	insertVotes(t, db, insertInteraction(t, db, "u1", mid.ID, nil, nil), mid.ID, 3, 0)

	list := getFeed(t, repo, feeds.Request{Kind: feeds.KindTop, PageNumber: 1, LimitPerPage: 10})
	assert.Equal(t, []int64{high.ID, mid.ID, low.ID}, feedIDs(list))
	assert.Equal(t, 8, list[0].Score)
	assert.Nil(t, list[0].HotRank)
}

func TestFeedRepo_ActiveFeedCountsRecentComments(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFeedRepository(db)
	commentRepo := NewCommentRepository(db)
	ctx := context.Background()

	quiet := createTestPost(t, db, "quiet", "u1", false)
	busy := createTestPost(t, db, "busy", "u1", false)
	stale := createTestPost(t, db, "stale", "u1", false)

	for i := 0; i < 3; i++ {
		require.NoError(t, commentRepo.Create(ctx, &comments.Comment{Body: "c"}, interactions.NewCommentCreatedEvent("u2", busy.ID, nil)))
	}
	require.NoError(t, commentRepo.Create(ctx, &comments.Comment{Body: "c"}, interactions.NewCommentCreatedEvent("u2", quiet.ID, nil)))

	old := &comments.Comment{Body: "old"}
	require.NoError(t, commentRepo.Create(ctx, old, interactions.NewCommentCreatedEvent("u2", stale.ID, nil)))
	require.NoError(t, commentRepo.Create(ctx, &comments.Comment{Body: "old"}, interactions.NewCommentCreatedEvent("u2", stale.ID, nil)))
	_, err := db.Exec(`UPDATE comments SET created_at = NOW() - INTERVAL '2 days' WHERE id IN (SELECT comment_id FROM interaction_outbox WHERE post_id = $1)`, stale.ID)
	require.NoError(t, err)

	list := getFeed(t, repo, feeds.Request{Kind: feeds.KindActive, PageNumber: 1, LimitPerPage: 10})
	require.Len(t, list, 3)
	assert.Equal(t, []int64{busy.ID, quiet.ID, stale.ID}, feedIDs(list))
	assert.Equal(t, lo.ToPtr(3), list[0].RecentCommentCount)
	assert.Equal(t, lo.ToPtr(0), list[2].RecentCommentCount)
}

func TestFeedRepo_TitleFilter(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFeedRepository(db)

	match := createTestPost(t, db, "Hello World", "u1", false)
	createTestPost(t, db, "Goodbye", "u1", false)
	createTestPost(t, db, "100% done", "u1", false)

	for _, kind := range []feeds.Kind{feeds.KindUnfiltered, feeds.KindNew, feeds.KindTop, feeds.KindActive} {
		list := getFeed(t, repo, feeds.Request{Kind: kind, PageNumber: 1, LimitPerPage: 10, Query: "hello"})
		assert.Equal(t, []int64{match.ID}, feedIDs(list), "kind %s", kind)
	}

	// wildcard characters match literally
	list := getFeed(t, repo, feeds.Request{Kind: feeds.KindNew, PageNumber: 1, LimitPerPage: 10, Query: "%"})
	require.Len(t, list, 1)
	assert.Equal(t, "100% done", list[0].Title)
}

func TestFeedRepo_AnonymousPostHidesUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFeedRepository(db)

	anon := createTestPost(t, db, "secret", "u1", true)
	insertInteraction(t, db, "u1", anon.ID, nil, nil)

	list := getFeed(t, repo, feeds.Request{Kind: feeds.KindNew, PageNumber: 1, LimitPerPage: 10})
	require.Len(t, list, 1)
	assert.Nil(t, list[0].UserID)
	assert.True(t, list[0].IsAnonymous)
}
