package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"PostService/internal/api/routes"
	"PostService/internal/config"
	"PostService/internal/core/comments"
	"PostService/internal/core/feeds"
	"PostService/internal/core/interactions"
	"PostService/internal/core/posts"
	"PostService/internal/core/tags"
	postgresRepo "PostService/internal/db/postgres"
	"PostService/internal/logging"
	"PostService/internal/remote/interaction"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cmd := &cli.Command{
		Name:   "post-service",
		Usage:  "Serve posts, comments, tags and feeds over HTTP",
		Flags:  config.Flags(),
		Action: run,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.Run(ctx, os.Args); err != nil {
		log.Fatal().Err(err).Msg("post service exited")
	}
}

func run(ctx context.Context, c *cli.Command) error {
	cfg, err := config.FromCommand(c)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stdout)
	if err != nil {
		return err
	}
	log.Logger = logger
	zerolog.DefaultContextLogger = &logger

	db, err := postgresRepo.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			logger.Error().Err(closeErr).Msg("failed to close database")
		}
	}()
	logger.Info().Msg("connected to database")

	if err := postgresRepo.Migrate(ctx, db); err != nil {
		return err
	}
	logger.Info().Msg("migrations completed")

	interactionClient := interaction.NewClient(cfg.InteractionURL, cfg.InteractionTimeout)
	defer func() {
		if closeErr := interactionClient.Close(); closeErr != nil {
			logger.Warn().Err(closeErr).Msg("failed to close interaction client")
		}
	}()

	dispatcherCfg := interactions.DefaultDispatcherConfig()
	dispatcherCfg.Interval = cfg.OutboxInterval
	dispatcherCfg.BatchSize = cfg.OutboxBatchSize
	dispatcherCfg.MaxAttempts = cfg.OutboxMaxAttempts
	dispatcher := interactions.NewDispatcher(postgresRepo.NewOutboxRepository(db), interactionClient, dispatcherCfg, logger)

	postService := posts.NewPostService(postgresRepo.NewPostRepository(db), dispatcher)
	commentService := comments.NewCommentService(postgresRepo.NewCommentRepository(db), dispatcher)
	tagService := tags.NewTagService(postgresRepo.NewTagRepository(db))
	feedService := feeds.NewFeedService(postgresRepo.NewFeedRepository(db))

	router := routes.NewRouter(ctx, routes.RouterConfig{
		AllowedOrigins:     cfg.AllowedOrigins,
		RateLimitPerMinute: cfg.RateLimitPerMinute,
		TrustProxyHeaders:  cfg.TrustProxyHeaders,
	}, routes.Services{
		Posts:    postService,
		Comments: commentService,
		Tags:     tagService,
		Feeds:    feedService,
		DB:       db,
	}, logger)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	dispatcherDone := make(chan struct{})
	go func() {
		defer close(dispatcherDone)
		_ = dispatcher.Run(ctx)
	}()

	serverErr := make(chan error, 1)
	go func() {
		logger.Info().Int("port", cfg.Port).Str("interactionURL", cfg.InteractionURL).Msg("post service listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
		logger.Info().Msg("shutting down")
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("http server failed: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	}

	select {
	case <-dispatcherDone:
	case <-shutdownCtx.Done():
		logger.Warn().Msg("outbox dispatcher did not stop in time")
	}
	return nil
}
