// Package metrics documents the Prometheus metrics exported by bookmeta.
// Metrics are defined in their owning packages (cache, resolver, batch)
// via promauto to keep registration next to the instrumented code.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry is the default Prometheus registerer used by all packages.
var Registry = prometheus.DefaultRegisterer

// Metrics Reference
//
// Cache (pkg/cache):
//   - bookmeta_cache_hits_total{backend} (Counter): hits by backend (redis, memory)
//   - bookmeta_cache_misses_total (Counter): misses
//   - bookmeta_cache_errors_total{operation} (Counter): get/set/delete errors
//
// Upstream (pkg/resolver):
//   - bookmeta_upstream_requests_total{result} (Counter): lookups by result
//     (success, not_found, failed, cache_hit)
//   - bookmeta_upstream_request_duration_seconds (Histogram): network-path duration
//   - bookmeta_upstream_retries_total{error_class} (Counter): retry attempts
//   - bookmeta_upstream_retry_backoff_seconds{error_class} (Histogram): backoff durations
//   - bookmeta_upstream_retry_exhausted_total{error_class} (Counter): exhausted retries
//
// Batch (pkg/batch):
//   - bookmeta_batch_rows (Histogram): rows per batch
//   - bookmeta_batch_duration_seconds (Histogram): batch wall time
//   - bookmeta_batch_outcomes_total{status} (Counter): result rows by status
//
// Example queries:
//
//   # Cache hit rate
//   sum(rate(bookmeta_cache_hits_total[5m])) /
//   (sum(rate(bookmeta_cache_hits_total[5m])) + sum(rate(bookmeta_cache_misses_total[5m])))
//
//   # P95 upstream latency
//   histogram_quantile(0.95, rate(bookmeta_upstream_request_duration_seconds_bucket[5m]))
//
//   # Failure ratio
//   rate(bookmeta_batch_outcomes_total{status="failed"}[5m])
