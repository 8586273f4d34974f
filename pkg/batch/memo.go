package batch

import (
	"sync"

	"github.com/booklab-kr/bookmeta/pkg/resolver"
)

// memoTable collapses duplicate identifiers within one batch to a single
// upstream resolution. The entry is installed under the lock before the
// resolution starts, so concurrently scheduled duplicates await the same
// pending result instead of racing a second call.
type memoTable struct {
	mu      sync.Mutex
	entries map[string]*memoEntry
}

type memoEntry struct {
	done    chan struct{}
	outcome resolver.Outcome
}

func newMemoTable() *memoTable {
	return &memoTable{
		entries: make(map[string]*memoEntry),
	}
}

// do returns the outcome for key, invoking fn at most once per key.
// The first caller runs fn; later callers block until the outcome is
// published. fn is bounded by the resolver's own timeout budget, so
// waiting here cannot hang indefinitely.
func (t *memoTable) do(key string, fn func() resolver.Outcome) resolver.Outcome {
	t.mu.Lock()
	entry, ok := t.entries[key]
	if !ok {
		entry = &memoEntry{done: make(chan struct{})}
		t.entries[key] = entry
		t.mu.Unlock()

		entry.outcome = fn()
		close(entry.done)
		return entry.outcome
	}
	t.mu.Unlock()

	<-entry.done
	return entry.outcome
}
