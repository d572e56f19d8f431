package clock

import (
	"strconv"
	"sync"
	"testing"
)

func TestTimestampIDGenerator_StrictlyIncreasing(t *testing.T) {
	g := NewTimestampIDGenerator()

	prev := int64(0)
	for i := 0; i < 1000; i++ {
		id, err := strconv.ParseInt(g.Next(), 10, 64)
		if err != nil {
			t.Fatalf("id is not numeric: %v", err)
		}
		if id <= prev {
			t.Fatalf("id %d not greater than previous %d", id, prev)
		}
		prev = id
	}
}

func TestTimestampIDGenerator_ConcurrentUniqueness(t *testing.T) {
	g := NewTimestampIDGenerator()

	const workers = 8
	const perWorker = 200

	var mu sync.Mutex
	seen := make(map[string]bool, workers*perWorker)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				id := g.Next()
				mu.Lock()
				if seen[id] {
					mu.Unlock()
					t.Errorf("duplicate id %s", id)
					return
				}
				seen[id] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if len(seen) != workers*perWorker {
		t.Fatalf("expected %d unique ids, got %d", workers*perWorker, len(seen))
	}
}
