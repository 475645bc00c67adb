package utils

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestSeqSetNoDuplicates(t *testing.T) {
	s := NewSeqSet()

	added := s.Add(42)
	if !added {
		t.Error("first Add should return true")
	}

	added = s.Add(42)
	if added {
		t.Error("second Add of same sequence number should return false")
	}

	if s.Size() != 1 {
		t.Errorf("size: got %d, want 1", s.Size())
	}
}

func TestSeqSetConcurrency(t *testing.T) {
	s := NewSeqSet()
	var added int64

	pool := NewWorkerPool(10, 0)
	for i := 0; i < 100; i++ {
		pool.Submit(func() {
			if s.Add(7) {
				atomic.AddInt64(&added, 1)
			}
		})
	}
	pool.Wait()

	if added != 1 {
		t.Errorf("expected exactly 1 successful add, got %d", added)
	}
}

func TestWorkerPoolRateLimit(t *testing.T) {
	pool := NewWorkerPool(1, 10) // 10 jobs/sec → ≥100ms between jobs

	var timestamps []time.Time
	mu := make(chan struct{}, 1)
	mu <- struct{}{}

	for i := 0; i < 3; i++ {
		pool.Submit(func() {
			<-mu
			timestamps = append(timestamps, time.Now())
			mu <- struct{}{}
		})
	}
	pool.Wait()

	// The token bucket starts full, so only gaps after the first job are
	// constrained. Allow scheduler slop.
	min := 80 * time.Millisecond
	for i := 1; i < len(timestamps); i++ {
		gap := timestamps[i].Sub(timestamps[i-1])
		if gap < min {
			t.Errorf("gap between job %d and %d: %v < minimum %v", i-1, i, gap, min)
		}
	}
}
