package batch

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/booklab-kr/bookmeta/pkg/resolver"
)

func TestMemoTable_SingleCall(t *testing.T) {
	memo := newMemoTable()
	calls := 0

	for i := 0; i < 5; i++ {
		outcome := memo.do("9788954644411", func() resolver.Outcome {
			calls++
			return resolver.Outcome{Title: "once", Status: resolver.StatusSuccess}
		})
		if outcome.Title != "once" {
			t.Errorf("outcome.Title = %q", outcome.Title)
		}
	}

	if calls != 1 {
		t.Errorf("resolution ran %d times, want 1", calls)
	}
}

func TestMemoTable_ConcurrentDuplicatesShareOneCall(t *testing.T) {
	memo := newMemoTable()
	var calls int32

	const goroutines = 20
	var wg sync.WaitGroup
	outcomes := make([]resolver.Outcome, goroutines)

	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			outcomes[g] = memo.do("9788954644411", func() resolver.Outcome {
				atomic.AddInt32(&calls, 1)
				time.Sleep(20 * time.Millisecond) // hold the in-flight window open
				return resolver.Outcome{Title: "shared", Status: resolver.StatusSuccess}
			})
		}(g)
	}
	wg.Wait()

	if calls != 1 {
		t.Errorf("resolution ran %d times under concurrency, want 1", calls)
	}
	for g, o := range outcomes {
		if o.Title != "shared" {
			t.Errorf("goroutine %d got %+v, want shared outcome", g, o)
		}
	}
}

func TestMemoTable_DistinctKeysResolveIndependently(t *testing.T) {
	memo := newMemoTable()
	var calls int32

	a := memo.do("9788954644411", func() resolver.Outcome {
		atomic.AddInt32(&calls, 1)
		return resolver.Outcome{Title: "a"}
	})
	b := memo.do("8972751234", func() resolver.Outcome {
		atomic.AddInt32(&calls, 1)
		return resolver.Outcome{Title: "b"}
	})

	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
	if a.Title != "a" || b.Title != "b" {
		t.Errorf("outcomes crossed keys: %+v / %+v", a, b)
	}
}
