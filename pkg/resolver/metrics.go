package resolver

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics for upstream lookup operations.
var (
	upstreamRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bookmeta_upstream_requests_total",
		Help: "Total upstream lookup requests by result",
	}, []string{"result"}) // "success", "not_found", "failed", "cache_hit"

	upstreamRequestDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "bookmeta_upstream_request_duration_seconds",
		Help:    "Upstream lookup duration in seconds (network path only)",
		Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 3.5, 5, 10},
	})

	upstreamRetriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bookmeta_upstream_retries_total",
		Help: "Total number of retry attempts by error class",
	}, []string{"error_class"})

	upstreamRetryBackoffSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "bookmeta_upstream_retry_backoff_seconds",
		Help:    "Backoff duration for retries by error class",
		Buckets: []float64{0.1, 0.2, 0.4, 0.8, 1.6, 3.2, 5},
	}, []string{"error_class"})

	upstreamRetryExhaustedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bookmeta_upstream_retry_exhausted_total",
		Help: "Total number of times retry attempts were exhausted by error class",
	}, []string{"error_class"})
)
