package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aqua_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "aqua_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	StorePersistErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aqua_store_persist_errors_total",
			Help: "Failed collection writes to the persistence backend",
		},
		[]string{"key"},
	)

	BackupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aqua_backups_total",
			Help: "Snapshot backup attempts by outcome",
		},
		[]string{"outcome"},
	)
)
