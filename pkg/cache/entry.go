package cache

import (
	"time"
)

// DefaultTTL is the retention for stable outcomes (success, not-found).
// Bibliographic records change rarely; 30 days keeps upstream traffic low
// without serving stale data forever.
const DefaultTTL = 30 * 24 * time.Hour

// Entry is a persisted lookup outcome for one normalized ISBN.
// Only terminal, stable outcomes are stored; transient failures are never
// written so they are retried fresh on the next request.
type Entry struct {
	// Title is the resolved book title.
	Title string `json:"title"`

	// Author is the raw upstream author credit (not normalized).
	Author string `json:"author"`

	// Publisher is the resolved publisher name.
	Publisher string `json:"publisher"`

	// Year is the four-digit publication year, or empty.
	Year string `json:"year"`

	// Status is the terminal classification ("success" or "not-found").
	Status string `json:"status"`

	// Note carries any human-readable annotation for the outcome.
	Note string `json:"note"`

	// CachedAt is when this entry was written.
	CachedAt time.Time `json:"cached_at"`

	// Expires is when the entry becomes stale. Redis evicts on its own
	// TTL; this field guards backends without native expiry.
	Expires time.Time `json:"expires"`
}

// IsExpired returns true if the entry is past its expiry time.
func (e *Entry) IsExpired() bool {
	return time.Now().After(e.Expires)
}

// TTL returns the time until expiration, or 0 if already expired.
func (e *Entry) TTL() time.Duration {
	ttl := time.Until(e.Expires)
	if ttl < 0 {
		return 0
	}
	return ttl
}
