package resilience

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestSingleFlight_CollapsesConcurrentCalls(t *testing.T) {
	t.Parallel()

	var g SingleFlight
	var calls atomic.Int32

	const callers = 16
	start := make(chan struct{})
	results := make([]any, callers)
	shared := make([]bool, callers)

	var wg sync.WaitGroup
	wg.Add(callers)
	for i := 0; i < callers; i++ {
		go func(i int) {
			defer wg.Done()
			<-start
			v, err, wasShared := g.Do("GET /competitions/PD/teams", func() (any, error) {
				calls.Add(1)
				time.Sleep(10 * time.Millisecond)
				return 20, nil
			})
			if err != nil {
				t.Errorf("caller %d: %v", i, err)
			}
			results[i] = v
			shared[i] = wasShared
		}(i)
	}
	close(start)
	wg.Wait()

	if got := calls.Load(); got != 1 {
		t.Fatalf("expected one upstream call, got %d", got)
	}
	sharedCount := 0
	for i, v := range results {
		if v != 20 {
			t.Fatalf("caller %d got %v, want 20", i, v)
		}
		if shared[i] {
			sharedCount++
		}
	}
	if sharedCount == 0 {
		t.Fatalf("expected at least one caller to share the result")
	}
}

func TestSingleFlight_PropagatesError(t *testing.T) {
	t.Parallel()

	var g SingleFlight
	wantErr := errors.New("feed unavailable")

	_, err, _ := g.Do("GET /teams/86/matches", func() (any, error) {
		return nil, wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected the feed error back, got %v", err)
	}
}
