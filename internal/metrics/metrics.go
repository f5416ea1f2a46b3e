// Package metrics declares the prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequests counts served requests by chi route pattern and status code.
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "post_service_http_requests_total",
		Help: "HTTP requests served, by route pattern, method and status.",
	}, []string{"route", "method", "status"})

	// FeedQueryDuration observes how long each feed query takes, by feed kind.
	FeedQueryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "post_service_feed_query_duration_seconds",
		Help:    "Latency of feed queries by feed kind.",
		Buckets: prometheus.DefBuckets,
	}, []string{"kind"})

	// OutboxDeliveries counts outbox delivery attempts by event kind and outcome
	// (delivered, retry, abandoned, dropped).
	OutboxDeliveries = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "post_service_outbox_deliveries_total",
		Help: "Interaction outbox delivery attempts by event kind and outcome.",
	}, []string{"kind", "outcome"})

	// OutboxPending is the number of undelivered, non-abandoned outbox rows seen
	// at the end of the last dispatch pass.
	OutboxPending = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "post_service_outbox_pending",
		Help: "Interaction outbox rows still waiting for delivery.",
	})
)

// InteractionRequestDuration observes calls to the interaction service by
// path and status code.
var InteractionRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "post_service_interaction_request_duration_seconds",
	Help:    "Latency of interaction service calls by path and status.",
	Buckets: prometheus.DefBuckets,
}, []string{"path", "status"})
