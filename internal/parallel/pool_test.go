package parallel

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

func TestWorkerPoolRunsSubmittedTasks(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Shutdown()

	var count int64
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	const n = 100
	for i := 0; i < n; i++ {
		if err := pool.Submit(ctx, func() { atomic.AddInt64(&count, 1) }); err != nil {
			t.Fatalf("Submit failed: %v", err)
		}
	}

	deadline := time.Now().Add(time.Second)
	for atomic.LoadInt64(&count) < n && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	if got := atomic.LoadInt64(&count); got != n {
		t.Fatalf("expected %d tasks to run, got %d", n, got)
	}
}

func TestWorkerPoolSubmitAfterShutdown(t *testing.T) {
	pool := NewWorkerPool(1)
	pool.Shutdown()

	err := pool.Submit(context.Background(), func() {})
	if err != ErrPoolShutdown {
		t.Fatalf("expected ErrPoolShutdown, got %v", err)
	}
}
