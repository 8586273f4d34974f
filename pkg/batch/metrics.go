package batch

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	batchRows = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "bookmeta_batch_rows",
		Help:    "Number of rows per resolved batch",
		Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500},
	})

	batchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "bookmeta_batch_duration_seconds",
		Help:    "Wall time per resolved batch",
		Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60},
	})

	batchOutcomesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bookmeta_batch_outcomes_total",
		Help: "Result rows by terminal status",
	}, []string{"status"})
)
