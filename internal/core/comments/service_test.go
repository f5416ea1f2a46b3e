package comments

import (
	"context"
	"errors"
	"strings"
	"testing"

	"PostService/internal/core/interactions"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) Create(ctx context.Context, comment *Comment, event *interactions.Event) error {
	args := m.Called(ctx, comment, event)
	if args.Error(0) == nil {
		comment.ID = 11
		event.CommentID = lo.ToPtr(int64(11))
	}
	return args.Error(0)
}

func (m *mockRepository) ListByPost(ctx context.Context, postID int64) ([]*CommentView, error) {
	args := m.Called(ctx, postID)
	views, _ := args.Get(0).([]*CommentView)
	return views, args.Error(1)
}

func (m *mockRepository) ListAnswersByUser(ctx context.Context, userID string) ([]*CommentView, error) {
	args := m.Called(ctx, userID)
	views, _ := args.Get(0).([]*CommentView)
	return views, args.Error(1)
}

type countingNotifier struct{ calls int }

func (n *countingNotifier) Notify() { n.calls++ }

func TestCreateComment_TopLevelIgnoresParentID(t *testing.T) {
	repo := &mockRepository{}
	notifier := &countingNotifier{}
	svc := NewCommentService(repo, notifier)

	repo.On("Create", mock.Anything, mock.Anything, mock.MatchedBy(func(e *interactions.Event) bool {
		return e.Kind == interactions.EventCommentCreated && e.PostID == 3 && e.ParentID == nil
	})).Return(nil)

	comment, err := svc.CreateComment(context.Background(), CreateCommentRequest{
		Comment:  "first!",
		PostID:   3,
		UserID:   "u1",
		IsReply:  lo.ToPtr(false),
		ParentID: lo.ToPtr(int64(99)),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(11), comment.ID)
	assert.Equal(t, 1, notifier.calls)
	repo.AssertExpectations(t)
}

func TestCreateComment_Reply(t *testing.T) {
	repo := &mockRepository{}
	svc := NewCommentService(repo, nil)

	repo.On("Create", mock.Anything, mock.Anything, mock.MatchedBy(func(e *interactions.Event) bool {
		return e.ParentID != nil && *e.ParentID == 7
	})).Return(nil)

	_, err := svc.CreateComment(context.Background(), CreateCommentRequest{
		Comment:  "agreed",
		PostID:   3,
		UserID:   "u2",
		IsReply:  lo.ToPtr(true),
		ParentID: lo.ToPtr(int64(7)),
	})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestCreateComment_Validation(t *testing.T) {
	valid := CreateCommentRequest{Comment: "c", PostID: 1, UserID: "u1", IsReply: lo.ToPtr(false)}

	tests := []struct {
		mutate  func(r *CreateCommentRequest)
		wantErr error
		name    string
	}{
		{name: "empty body", mutate: func(r *CreateCommentRequest) { r.Comment = " " }, wantErr: ErrContentEmpty},
		{name: "too long", mutate: func(r *CreateCommentRequest) { r.Comment = strings.Repeat("x", MaxCommentGraphemes+1) }, wantErr: ErrContentTooLong},
		{name: "bad post", mutate: func(r *CreateCommentRequest) { r.PostID = 0 }, wantErr: ErrInvalidPost},
		{name: "no user", mutate: func(r *CreateCommentRequest) { r.UserID = "" }, wantErr: ErrUserRequired},
		{name: "isReply missing", mutate: func(r *CreateCommentRequest) { r.IsReply = nil }, wantErr: ErrInvalidReply},
		{name: "reply without parent", mutate: func(r *CreateCommentRequest) { r.IsReply = lo.ToPtr(true) }, wantErr: ErrInvalidReply},
		{name: "reply with zero parent", mutate: func(r *CreateCommentRequest) {
			r.IsReply = lo.ToPtr(true)
			r.ParentID = lo.ToPtr(int64(0))
		}, wantErr: ErrInvalidReply},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockRepository{}
			svc := NewCommentService(repo, nil)

			req := valid
			tt.mutate(&req)

			_, err := svc.CreateComment(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, IsValidationError(err))
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestCreateComment_PostNotFoundPassesThrough(t *testing.T) {
	repo := &mockRepository{}
	notifier := &countingNotifier{}
	svc := NewCommentService(repo, notifier)

	repo.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(ErrPostNotFound)

	_, err := svc.CreateComment(context.Background(), CreateCommentRequest{
		Comment: "c", PostID: 404, UserID: "u1", IsReply: lo.ToPtr(false),
	})
	assert.ErrorIs(t, err, ErrPostNotFound)
	assert.True(t, IsNotFound(err))
	assert.Zero(t, notifier.calls)
}

func TestCreateComment_StorageError(t *testing.T) {
	repo := &mockRepository{}
	svc := NewCommentService(repo, nil)
	repo.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("deadlock detected"))

	_, err := svc.CreateComment(context.Background(), CreateCommentRequest{
		Comment: "c", PostID: 1, UserID: "u1", IsReply: lo.ToPtr(false),
	})
	require.Error(t, err)
	assert.False(t, IsNotFound(err))
	assert.False(t, IsValidationError(err))
}

func TestGetAnswersByUser(t *testing.T) {
	repo := &mockRepository{}
	svc := NewCommentService(repo, nil)

	answers := []*CommentView{{UserID: "u1", PostID: 2, Comment: Comment{ID: 1, Body: "a"}}}
	repo.On("ListAnswersByUser", mock.Anything, "u1").Return(answers, nil)

	got, err := svc.GetAnswersByUser(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, answers, got)

	_, err = svc.GetAnswersByUser(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrUserRequired)
}

func TestGetCommentsByPost_Empty(t *testing.T) {
	repo := &mockRepository{}
	svc := NewCommentService(repo, nil)
	repo.On("ListByPost", mock.Anything, int64(3)).Return(nil, nil)

	got, err := svc.GetCommentsByPost(context.Background(), 3)
	require.NoError(t, err)
	assert.NotNil(t, got)
}
