package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func TestPathString(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"plain", "/search/hello", "hello"},
		{"encoded space", "/search/Hello%20World", "Hello World"},
		{"literal percent sequence", "/search/%2541", "%41"},
		{"literal percent sign", "/search/100%25", "100%"},
		{"encoded slash", "/search/a%2Fb", "a/b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			r := chi.NewRouter()
			r.Get("/search/{query}", func(w http.ResponseWriter, r *http.Request) {
				got = PathString(r, "query")
			})

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPathInt64(t *testing.T) {
	r := chi.NewRouter()
	var (
		got int64
		err error
	)
	r.Get("/posts/{postID}", func(w http.ResponseWriter, r *http.Request) {
		got, err = PathInt64(r, "postID")
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/posts/42", nil))
	assert.NoError(t, err)
	assert.Equal(t, int64(42), got)

	for _, path := range []string{"/posts/0", "/posts/-3", "/posts/abc"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
		assert.ErrorIs(t, err, ErrInvalidParam, path)
	}
}
