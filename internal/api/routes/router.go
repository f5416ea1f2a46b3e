package routes

import (
	"context"
	"time"

	"PostService/internal/api/middleware"
	"PostService/internal/core/comments"
	"PostService/internal/core/feeds"
	"PostService/internal/core/posts"
	"PostService/internal/core/tags"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
)

// Services bundles everything the HTTP API serves
type Services struct {
	Posts    posts.Service
	Comments comments.Service
	Tags     tags.Service
	Feeds    feeds.Service
	DB       Pinger
}

// RouterConfig holds the HTTP-level settings of the router
type RouterConfig struct {
	AllowedOrigins     []string
	RateLimitPerMinute int
	TrustProxyHeaders  bool
}

// NewRouter assembles middleware and every route. ctx bounds the rate
// limiter's background cleanup.
func NewRouter(ctx context.Context, cfg RouterConfig, services Services, logger zerolog.Logger) chi.Router {
	r := chi.NewRouter()

	for _, mw := range middleware.RequestLogging(logger) {
		r.Use(mw)
	}
	r.Use(chiMiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         300,
	}))

	// Health and metrics stay outside the rate limit
	RegisterHealthRoutes(r, services.DB)

	r.Group(func(r chi.Router) {
		if cfg.RateLimitPerMinute > 0 {
			var opts []middleware.RateLimiterOption
			if cfg.TrustProxyHeaders {
				opts = append(opts, middleware.WithTrustedProxyHeaders())
			}
			limiter := middleware.NewRateLimiter(ctx, cfg.RateLimitPerMinute, time.Minute, opts...)
			r.Use(limiter.Middleware)
		}

		RegisterPostRoutes(r, services.Posts)
		RegisterFeedRoutes(r, services.Feeds)
		RegisterTagRoutes(r, services.Tags)
		RegisterCommentRoutes(r, services.Comments)
	})

	return r
}
