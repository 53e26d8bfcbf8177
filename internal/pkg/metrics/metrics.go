package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal total number of handled HTTP requests
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "http",
			Name:      "requests_total",
			Help:      "The total number of handled HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPRequestDuration time spent serving HTTP requests
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "http",
			Name:      "request_duration_seconds",
			Help:      "The time spent serving HTTP requests",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// TicketsCreated tickets successfully committed
	TicketsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "pasajes",
			Name:      "created_total",
			Help:      "The total number of created tickets",
		},
	)

	// TicketsDeleted delete requests that removed a row
	TicketsDeleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "pasajes",
			Name:      "deleted_total",
			Help:      "The total number of deleted tickets",
		},
	)

	// EventsProcessed ticket events consumed by the audit worker
	EventsProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pasajes",
			Name:      "events_processed_total",
			Help:      "The total number of ticket events consumed from the stream",
		},
		[]string{"type"},
	)
)
