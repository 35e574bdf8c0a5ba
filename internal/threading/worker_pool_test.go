package threading

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestParallelForVisitsEveryIndexOnce(t *testing.T) {
	tests := []struct {
		name    string
		workers int
		n       int
	}{
		{"more items than workers", 4, 120},
		{"fewer items than workers", 8, 3},
		{"uneven split", 3, 10},
		{"empty range", 2, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			wp := StartWorkerPool(tc.workers)
			defer wp.Stop()

			visits := make([]int32, tc.n)
			wp.ParallelFor(0, tc.n, func(i int) {
				atomic.AddInt32(&visits[i], 1)
			})
			for i, v := range visits {
				if v != 1 {
					t.Errorf("index %d visited %d times", i, v)
				}
			}
		})
	}
}

func TestSubmitAfterStopIsDropped(t *testing.T) {
	wp := StartWorkerPool(1)
	wp.Stop()

	var calls atomic.Int32
	done := make(chan struct{})
	go func() {
		// More jobs than the queue holds; none may block.
		for i := 0; i < 10; i++ {
			wp.Submit(func() { calls.Add(1) })
		}
		wp.ParallelFor(0, 100, func(int) { calls.Add(1) })
		wp.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Submit on a stopped pool blocked")
	}
	if calls.Load() != 0 {
		t.Errorf("stopped pool ran %d jobs", calls.Load())
	}
}

func TestDefaultWorkerCount(t *testing.T) {
	wp := NewWorkerPool(0)
	if wp.Workers() <= 0 {
		t.Errorf("Workers() = %d, want at least 1", wp.Workers())
	}
	wp.Stop()
	wp.Stop() // second stop is a no-op
}
