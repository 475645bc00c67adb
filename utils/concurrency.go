package utils

import (
	"context"
	"sync"

	"golang.org/x/time/rate"
)

// WorkerPool manages a pool of goroutines with rate limiting. Jobs are
// admitted through a token-bucket limiter so fetches against the same host
// stay polite regardless of concurrency.
type WorkerPool struct {
	semaphore chan struct{}
	limiter   *rate.Limiter
	wg        sync.WaitGroup
}

// NewWorkerPool creates a WorkerPool running at most maxWorkers jobs at
// once, admitting them at ratePerSec jobs per second. A ratePerSec of 0
// disables rate limiting.
func NewWorkerPool(maxWorkers int, ratePerSec float64) *WorkerPool {
	limit := rate.Inf
	if ratePerSec > 0 {
		limit = rate.Limit(ratePerSec)
	}
	return &WorkerPool{
		semaphore: make(chan struct{}, maxWorkers),
		limiter:   rate.NewLimiter(limit, 1),
	}
}

// Submit enqueues a job for execution in the pool.
func (wp *WorkerPool) Submit(job func()) {
	wp.wg.Add(1)
	wp.semaphore <- struct{}{}

	go func() {
		defer wp.wg.Done()
		defer func() { <-wp.semaphore }()

		_ = wp.limiter.Wait(context.Background())
		job()
	}()
}

// Wait blocks until all submitted jobs have completed.
func (wp *WorkerPool) Wait() {
	wp.wg.Wait()
}

// SeqSet is a thread-safe set of sequence numbers, used to deduplicate
// records when merging snapshot sources.
type SeqSet struct {
	mu   sync.RWMutex
	seen map[int]struct{}
}

// NewSeqSet creates an empty SeqSet.
func NewSeqSet() *SeqSet {
	return &SeqSet{seen: make(map[int]struct{})}
}

// Add returns true if the sequence number was newly added, false if already
// present.
func (s *SeqSet) Add(seq int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.seen[seq]; exists {
		return false
	}
	s.seen[seq] = struct{}{}
	return true
}

// Contains returns true if the sequence number has already been recorded.
func (s *SeqSet) Contains(seq int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, exists := s.seen[seq]
	return exists
}

// Size returns the number of unique sequence numbers tracked.
func (s *SeqSet) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.seen)
}
