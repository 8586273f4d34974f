// Package resolver performs the single upstream lookup for one
// normalized ISBN: persistent cache first, then one HTTP request with a
// per-attempt timeout and classified retry, terminating in an Outcome.
package resolver

import (
	"time"

	"github.com/booklab-kr/bookmeta/pkg/cache"
)

// Status is the terminal classification of one lookup.
type Status string

const (
	// StatusSuccess means the first matching document had at least one
	// populated field.
	StatusSuccess Status = "success"

	// StatusNotFound means the upstream confirmed zero matches. Cached,
	// since absence is a stable fact.
	StatusNotFound Status = "not-found"

	// StatusFailed means retries were exhausted, the upstream returned a
	// non-OK status, or the body was unparseable. Never cached.
	StatusFailed Status = "failed"

	// StatusFormatError means the identifier failed structural
	// validation and no network call was made.
	StatusFormatError Status = "format-error"
)

// Outcome is the terminal result of resolving one normalized ISBN.
// Immutable once produced; every resolution path yields one.
type Outcome struct {
	Title     string `json:"title"`
	Author    string `json:"author"`
	Publisher string `json:"publisher"`
	Year      string `json:"year"`
	Status    Status `json:"status"`
	Note      string `json:"note"`
}

// Cacheable reports whether the outcome may be persisted. Failures are
// transient and must be retried fresh; format errors never reach the
// cache layer at all.
func (o Outcome) Cacheable() bool {
	return o.Status == StatusSuccess || o.Status == StatusNotFound
}

// toCacheEntry converts the outcome for persistence.
func (o Outcome) toCacheEntry() *cache.Entry {
	return &cache.Entry{
		Title:     o.Title,
		Author:    o.Author,
		Publisher: o.Publisher,
		Year:      o.Year,
		Status:    string(o.Status),
		Note:      o.Note,
		CachedAt:  time.Now(),
	}
}

// outcomeFromEntry rebuilds an outcome from a persisted entry.
func outcomeFromEntry(e *cache.Entry) Outcome {
	return Outcome{
		Title:     e.Title,
		Author:    e.Author,
		Publisher: e.Publisher,
		Year:      e.Year,
		Status:    Status(e.Status),
		Note:      e.Note,
	}
}
