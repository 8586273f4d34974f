package batch

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/booklab-kr/bookmeta/pkg/isbn"
	"github.com/booklab-kr/bookmeta/pkg/logging"
	"github.com/booklab-kr/bookmeta/pkg/resolver"
)

// MaxBatchSize is the server-enforced cap on identifiers per batch,
// regardless of caller input.
const MaxBatchSize = 500

// formatErrorNote annotates rows that never reach the network.
const formatErrorNote = "invalid ISBN format: expected 10 or 13 digits"

// Resolver resolves one normalized identifier to a terminal outcome.
// *resolver.Client is the production implementation.
type Resolver interface {
	Resolve(ctx context.Context, id string) resolver.Outcome
}

// Summary tallies a batch by terminal status.
type Summary struct {
	Total    int `json:"total"`
	Success  int `json:"success"`
	NotFound int `json:"notFound"`
	Failed   int `json:"failed"`
	Invalid  int `json:"invalid"`
}

// Result is the ordered output of one batch.
type Result struct {
	Rows    []Row   `json:"results"`
	Summary Summary `json:"summary"`
}

// Service is the batch-resolution pipeline.
type Service struct {
	resolver Resolver
	logger   zerolog.Logger
}

// NewService creates a batch service around a resolver.
func NewService(r Resolver) *Service {
	if r == nil {
		panic("resolver cannot be nil")
	}
	return &Service{
		resolver: r,
		logger:   logging.NewLogger("batch"),
	}
}

// ResolveBatch resolves every identifier in input order under the given
// concurrency hint (clamped; <=0 means default). One row per input
// position, including duplicates; output slot i always corresponds to
// input i regardless of worker completion order. A failing row never
// aborts its siblings.
func (s *Service) ResolveBatch(ctx context.Context, rawIDs []string, concurrency int) Result {
	start := time.Now()

	if len(rawIDs) > MaxBatchSize {
		rawIDs = rawIDs[:MaxBatchSize]
	}
	n := len(rawIDs)

	normalized := make([]string, n)
	valid := make([]bool, n)
	for i, raw := range rawIDs {
		normalized[i] = isbn.Normalize(raw)
		valid[i] = isbn.Valid(normalized[i])
	}

	// Duplicate positions are fixed by input order in a sequential
	// pre-pass, so the reuse annotation lands deterministically on later
	// positions even when workers race.
	firstSeen := make(map[string]int, n)
	duplicate := make([]bool, n)
	for i := 0; i < n; i++ {
		if !valid[i] {
			continue
		}
		if _, seen := firstSeen[normalized[i]]; seen {
			duplicate[i] = true
		} else {
			firstSeen[normalized[i]] = i
		}
	}

	workers := ClampWorkers(concurrency)
	memo := newMemoTable()
	rows := make([]Row, n)

	run(n, workers, func(i int) {
		if !valid[i] {
			rows[i] = Row{
				ISBN:   rawIDs[i],
				Status: resolver.StatusFormatError,
				Note:   formatErrorNote,
			}
			return
		}

		id := normalized[i]
		outcome := memo.do(id, func() resolver.Outcome {
			return s.resolver.Resolve(ctx, id)
		})

		row := BuildRow(id, outcome)
		if duplicate[i] {
			row.Note = appendNote(row.Note, ReuseNote)
		}
		rows[i] = row
	})

	summary := tally(rows)

	batchRows.Observe(float64(n))
	batchDuration.Observe(time.Since(start).Seconds())

	s.logger.Info().
		Int("rows", n).
		Int("workers", workers).
		Int("success", summary.Success).
		Int("not_found", summary.NotFound).
		Int("failed", summary.Failed).
		Int("invalid", summary.Invalid).
		Dur("duration", time.Since(start)).
		Msg("Batch resolved")

	return Result{Rows: rows, Summary: summary}
}

// tally counts rows by terminal status.
func tally(rows []Row) Summary {
	summary := Summary{Total: len(rows)}
	for _, row := range rows {
		batchOutcomesTotal.WithLabelValues(string(row.Status)).Inc()
		switch row.Status {
		case resolver.StatusSuccess:
			summary.Success++
		case resolver.StatusNotFound:
			summary.NotFound++
		case resolver.StatusFailed:
			summary.Failed++
		case resolver.StatusFormatError:
			summary.Invalid++
		}
	}
	return summary
}
