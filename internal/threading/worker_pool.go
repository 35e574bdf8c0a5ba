package threading

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// WorkerPool runs jobs on a fixed set of goroutines. It is meant for fan-out
// work that the caller waits for within one tick, such as casting the rays of
// a frame; jobs must not share mutable state.
type WorkerPool struct {
	numWorkers int
	jobQueue   chan func()
	wg         sync.WaitGroup
	quit       chan struct{}
	stopOnce   sync.Once
	stopped    atomic.Bool
}

// NewWorkerPool creates a pool with numWorkers goroutines, or one per CPU
// when numWorkers is not positive. Call Start before submitting.
func NewWorkerPool(numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	return &WorkerPool{
		numWorkers: numWorkers,
		jobQueue:   make(chan func(), numWorkers*2),
		quit:       make(chan struct{}),
	}
}

// StartWorkerPool creates and starts a pool.
func StartWorkerPool(numWorkers int) *WorkerPool {
	wp := NewWorkerPool(numWorkers)
	wp.Start()
	return wp
}

// Start launches the worker goroutines
func (wp *WorkerPool) Start() {
	for i := 0; i < wp.numWorkers; i++ {
		go wp.worker()
	}
}

func (wp *WorkerPool) worker() {
	for {
		select {
		case job := <-wp.jobQueue:
			job()
			wp.wg.Done()
		case <-wp.quit:
			return
		}
	}
}

// Submit queues a job. Once the pool is stopped no worker is left to run it,
// so the job is dropped.
func (wp *WorkerPool) Submit(job func()) {
	if wp.stopped.Load() {
		return
	}
	wp.wg.Add(1)
	wp.jobQueue <- job
}

// Wait blocks until every submitted job has run
func (wp *WorkerPool) Wait() {
	wp.wg.Wait()
}

// Stop shuts the workers down. Jobs still queued are dropped.
func (wp *WorkerPool) Stop() {
	wp.stopOnce.Do(func() {
		wp.stopped.Store(true)
		close(wp.quit)
	})
}

// Workers returns the number of worker goroutines
func (wp *WorkerPool) Workers() int {
	return wp.numWorkers
}

// ParallelFor calls fn for every i in [start, end) and returns once all calls
// finished. The range is split into one contiguous chunk per worker. On a
// stopped pool it returns without calling fn.
func (wp *WorkerPool) ParallelFor(start, end int, fn func(int)) {
	if start >= end {
		return
	}

	chunkSize := max(1, (end-start+wp.numWorkers-1)/wp.numWorkers)
	for i := start; i < end; i += chunkSize {
		chunkStart := i
		chunkEnd := min(i+chunkSize, end)
		wp.Submit(func() {
			for j := chunkStart; j < chunkEnd; j++ {
				fn(j)
			}
		})
	}
	wp.Wait()
}
