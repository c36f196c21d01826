package shardqueue

import (
	"context"
	"testing"
	"time"
)

// A panicking job must not wedge Submit or Stop for the rest of the executor.
func TestShardExecutor_WorkerPanicDoesNotBlockStop(t *testing.T) {
	t.Parallel()
	exec := NewShardExecutor(Config{Shards: 2, QueueSize: 8})

	_ = exec.Submit(context.Background(), "boom", JobFunc(func(context.Context) error {
		panic("job exploded")
	}))

	// Give the worker time to hit the panic, then ensure Stop returns.
	time.Sleep(50 * time.Millisecond)

	done := make(chan struct{})
	go func() {
		exec.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Stop did not return after worker panic")
	}
}

func TestShardExecutor_ErrorHandlerPanicContained(t *testing.T) {
	t.Parallel()
	exec := NewShardExecutor(Config{
		Shards:      1,
		MaxAttempts: 1,
		BaseBackoff: time.Millisecond,
		ErrorHandler: func(error) {
			panic("handler exploded")
		},
	})
	defer exec.Stop()

	if err := exec.Submit(context.Background(), "k", JobFunc(func(context.Context) error {
		return context.DeadlineExceeded
	})); err != nil {
		t.Fatalf("submit: %v", err)
	}
	// Barrier succeeding proves the worker survived the handler panic.
	if err := exec.Barrier(context.Background(), "k"); err != nil {
		t.Fatalf("barrier: %v", err)
	}
}
