package batch

import (
	"sync"
	"sync/atomic"
)

// Worker budget bounds. The default suits a handful of concurrent
// upstream lookups without hammering the API.
const (
	// MinWorkers is the lowest allowed concurrency.
	MinWorkers = 1

	// MaxWorkers is the highest allowed concurrency.
	MaxWorkers = 16

	// DefaultWorkers is used when the caller gives no concurrency hint.
	DefaultWorkers = 5
)

// ClampWorkers bounds a caller-supplied concurrency hint.
// Zero or negative means "no hint" and yields the default.
func ClampWorkers(hint int) int {
	if hint <= 0 {
		return DefaultWorkers
	}
	if hint < MinWorkers {
		return MinWorkers
	}
	if hint > MaxWorkers {
		return MaxWorkers
	}
	return hint
}

// run executes task(i) for every i in [0, n) with at most workers
// goroutines in flight. Workers repeatedly claim the next unclaimed
// index from a shared cursor until exhausted, so each index is executed
// exactly once and the caller's output slice has one writer per slot.
// The worker count is clamped to min(workers, n); run returns when all
// tasks have completed.
func run(n, workers int, task func(i int)) {
	if n <= 0 {
		return
	}
	if workers > n {
		workers = n
	}
	if workers < 1 {
		workers = 1
	}

	var cursor atomic.Int64
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				i := int(cursor.Add(1)) - 1
				if i >= n {
					return
				}
				task(i)
			}
		}()
	}

	wg.Wait()
}
