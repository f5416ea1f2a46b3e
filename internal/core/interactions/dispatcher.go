package interactions

import (
	"context"
	"fmt"
	"time"

	"PostService/internal/metrics"

	"github.com/rs/zerolog"
)

// DispatcherConfig tunes the outbox dispatcher.
type DispatcherConfig struct {
	Interval    time.Duration
	Lease       time.Duration
	BaseBackoff time.Duration
	MaxBackoff  time.Duration
	BatchSize   int
	MaxAttempts int
}

// DefaultDispatcherConfig returns the settings used when cmd/server does not
// override them.
func DefaultDispatcherConfig() DispatcherConfig {
	return DispatcherConfig{
		Interval:    2 * time.Second,
		Lease:       30 * time.Second,
		BaseBackoff: time.Second,
		MaxBackoff:  5 * time.Minute,
		BatchSize:   50,
		MaxAttempts: 20,
	}
}

// Dispatcher delivers outbox events to the interaction service. Delivery is
// at-least-once: an event whose delivery succeeded but could not be marked is
// sent again with the same idempotency key.
type Dispatcher struct {
	repo   OutboxRepository
	client Client
	wake   chan struct{}
	now    func() time.Time
	logger zerolog.Logger
	cfg    DispatcherConfig
}

// NewDispatcher creates a dispatcher. Zero-valued config fields fall back to
// DefaultDispatcherConfig.
func NewDispatcher(repo OutboxRepository, client Client, cfg DispatcherConfig, logger zerolog.Logger) *Dispatcher {
	defaults := DefaultDispatcherConfig()
	if cfg.Interval <= 0 {
		cfg.Interval = defaults.Interval
	}
	if cfg.Lease <= 0 {
		cfg.Lease = defaults.Lease
	}
	if cfg.BaseBackoff <= 0 {
		cfg.BaseBackoff = defaults.BaseBackoff
	}
	if cfg.MaxBackoff <= 0 {
		cfg.MaxBackoff = defaults.MaxBackoff
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = defaults.BatchSize
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = defaults.MaxAttempts
	}

	return &Dispatcher{
		repo:   repo,
		client: client,
		cfg:    cfg,
		logger: logger.With().Str("component", "outbox").Logger(),
		wake:   make(chan struct{}, 1),
		now:    time.Now,
	}
}

// Notify asks the dispatcher to run a pass now instead of waiting for the
// next tick. It never blocks.
func (d *Dispatcher) Notify() {
	select {
	case d.wake <- struct{}{}:
	default:
	}
}

// Run dispatches until ctx is cancelled.
func (d *Dispatcher) Run(ctx context.Context) error {
	ticker := time.NewTicker(d.cfg.Interval)
	defer ticker.Stop()

	d.logger.Info().Dur("interval", d.cfg.Interval).Msg("outbox dispatcher started")

	for {
		if _, err := d.DispatchPending(ctx); err != nil && ctx.Err() == nil {
			d.logger.Warn().Err(err).Msg("outbox dispatch pass failed")
		}

		select {
		case <-ctx.Done():
			d.logger.Info().Msg("outbox dispatcher stopped")
			return nil
		case <-ticker.C:
		case <-d.wake:
		}
	}
}

// DispatchPending runs a single pass over due events and returns how many
// were delivered.
func (d *Dispatcher) DispatchPending(ctx context.Context) (int, error) {
	events, err := d.repo.ClaimDue(ctx, d.cfg.BatchSize, d.cfg.Lease)
	if err != nil {
		return 0, fmt.Errorf("failed to claim outbox events: %w", err)
	}

	delivered := 0
	for _, event := range events {
		if ctx.Err() != nil {
			break
		}

		pending, err := d.repo.IsPending(ctx, event.ID)
		if err != nil {
			// the lease expires and the event is claimed again
			d.logger.Warn().Err(err).Stringer("eventID", event.ID).Msg("failed to recheck outbox event")
			continue
		}
		if !pending {
			metrics.OutboxDeliveries.WithLabelValues(string(event.Kind), "dropped").Inc()
			d.logger.Debug().Stringer("eventID", event.ID).Int64("postID", event.PostID).Msg("outbox event dropped, post was deleted")
			continue
		}

		if err := d.deliver(ctx, event); err != nil {
			d.recordFailure(ctx, event, err)
			continue
		}

		if err := d.repo.MarkDelivered(ctx, event.ID); err != nil {
			// the lease expires and the event is redelivered with the same key
			d.logger.Error().Err(err).Stringer("eventID", event.ID).Msg("failed to mark outbox event delivered")
			continue
		}
		metrics.OutboxDeliveries.WithLabelValues(string(event.Kind), "delivered").Inc()
		delivered++
	}

	if pending, err := d.repo.CountPending(ctx); err == nil {
		metrics.OutboxPending.Set(float64(pending))
	}

	return delivered, nil
}

func (d *Dispatcher) deliver(ctx context.Context, event *Event) error {
	key := event.ID.String()

	switch event.Kind {
	case EventPostCreated:
		return d.client.CreatePostInteraction(ctx, key, event.UserID, event.PostID)

	case EventCommentCreated:
		if event.CommentID == nil {
			return fmt.Errorf("%w: comment event %s has no comment ID", ErrMalformedEvent, key)
		}
		return d.client.CreateCommentInteraction(ctx, key, event.UserID, event.PostID, *event.CommentID, event.ParentID)

	default:
		return fmt.Errorf("%w: unknown kind %q", ErrMalformedEvent, event.Kind)
	}
}

func (d *Dispatcher) recordFailure(ctx context.Context, event *Event, cause error) {
	attempts := event.Attempts + 1
	log := d.logger.With().
		Stringer("eventID", event.ID).
		Str("kind", string(event.Kind)).
		Int64("postID", event.PostID).
		Int("attempts", attempts).
		Logger()

	if IsPermanent(cause) || attempts >= d.cfg.MaxAttempts {
		if err := d.repo.MarkAbandoned(ctx, event.ID, attempts, cause.Error()); err != nil {
			log.Error().Err(err).Msg("failed to abandon outbox event")
			return
		}
		metrics.OutboxDeliveries.WithLabelValues(string(event.Kind), "abandoned").Inc()
		log.Error().Err(cause).Msg("abandoned outbox event")
		return
	}

	next := d.now().Add(Backoff(attempts, d.cfg.BaseBackoff, d.cfg.MaxBackoff))
	if err := d.repo.MarkFailed(ctx, event.ID, attempts, next, cause.Error()); err != nil {
		log.Error().Err(err).Msg("failed to reschedule outbox event")
		return
	}
	metrics.OutboxDeliveries.WithLabelValues(string(event.Kind), "retry").Inc()
	log.Warn().Err(cause).Time("nextAttemptAt", next).Msg("outbox delivery failed, will retry")
}

// Backoff returns base doubled for every attempt after the first, capped at max.
func Backoff(attempts int, base, max time.Duration) time.Duration {
	if attempts < 1 {
		attempts = 1
	}
	delay := base
	for i := 1; i < attempts; i++ {
		delay *= 2
		if delay >= max || delay <= 0 {
			return max
		}
	}
	if delay > max {
		return max
	}
	return delay
}
