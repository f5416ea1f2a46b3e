package feed

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"PostService/internal/core/feeds"
	"PostService/internal/core/posts"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockFeedService struct {
	getFeedFunc func(ctx context.Context, req feeds.Request) (*feeds.Page, error)
}

func (m *mockFeedService) GetFeed(ctx context.Context, req feeds.Request) (*feeds.Page, error) {
	if m.getFeedFunc != nil {
		return m.getFeedFunc(ctx, req)
	}
	return &feeds.Page{Posts: []*feeds.FeedPost{}}, nil
}

func newTestRouter(service feeds.Service) chi.Router {
	h := NewGetFeedHandler(service)
	r := chi.NewRouter()
	r.Get("/getHotPostsByPage/{pageNumber}/{limitPerPage}", h.HandleFeed(feeds.KindHot))
	r.Get("/getHotPostsByPage/{pageNumber}/{limitPerPage}/{query}", h.HandleFeed(feeds.KindHot))
	return r
}

func TestHandleFeed_PassesParams(t *testing.T) {
	var got feeds.Request
	service := &mockFeedService{
		getFeedFunc: func(ctx context.Context, req feeds.Request) (*feeds.Page, error) {
			got = req
			return &feeds.Page{Posts: []*feeds.FeedPost{{Post: posts.Post{ID: 3, Title: "Hello World"}, Score: 2}}}, nil
		},
	}

	rec := httptest.NewRecorder()
	newTestRouter(service).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/getHotPostsByPage/2/5/Hello%20World", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, feeds.Request{Kind: feeds.KindHot, PageNumber: 2, LimitPerPage: 5, Query: "Hello World"}, got)

	var body struct {
		ReturnData []map[string]interface{} `json:"returnData"`
		Message    string                   `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Successfully retrieved hot posts!", body.Message)
	require.Len(t, body.ReturnData, 1)
	assert.Equal(t, float64(3), body.ReturnData[0]["postID"])
	assert.Equal(t, float64(2), body.ReturnData[0]["score"])
}

func TestHandleFeed_NoQuery(t *testing.T) {
	var got feeds.Request
	service := &mockFeedService{
		getFeedFunc: func(ctx context.Context, req feeds.Request) (*feeds.Page, error) {
			got = req
			return &feeds.Page{Posts: []*feeds.FeedPost{}}, nil
		},
	}

	rec := httptest.NewRecorder()
	newTestRouter(service).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/getHotPostsByPage/1/10", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, got.Query)
	assert.JSONEq(t, `{"returnData":[],"message":"Successfully retrieved hot posts!"}`, rec.Body.String())
}

func TestHandleFeed_BadPaging(t *testing.T) {
	called := false
	service := &mockFeedService{
		getFeedFunc: func(ctx context.Context, req feeds.Request) (*feeds.Page, error) {
			called = true
			return nil, nil
		},
	}
	router := newTestRouter(service)

	for _, path := range []string{
		"/getHotPostsByPage/0/10",
		"/getHotPostsByPage/1/0",
		"/getHotPostsByPage/x/10",
		"/getHotPostsByPage/1/1000000000",
		"/getHotPostsByPage/9223372036854775807/10",
	} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code, path)
	}
	assert.False(t, called)
}

func TestHandleFeed_StorageError(t *testing.T) {
	service := &mockFeedService{
		getFeedFunc: func(ctx context.Context, req feeds.Request) (*feeds.Page, error) {
			return nil, errors.New("connection refused")
		},
	}

	rec := httptest.NewRecorder()
	newTestRouter(service).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/getHotPostsByPage/1/10", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}
