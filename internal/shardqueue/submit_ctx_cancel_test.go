package shardqueue

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

// A job whose context is already cancelled when it reaches the worker is
// skipped rather than run.
func TestShardExecutor_CancelledJobSkipsRun(t *testing.T) {
	t.Parallel()
	exec := NewShardExecutor(Config{Shards: 1, QueueSize: 8})
	defer exec.Stop()

	// Occupy the worker so the next job sits in the queue while we cancel it.
	gate := make(chan struct{})
	_ = exec.Submit(context.Background(), "k", JobFunc(func(context.Context) error {
		<-gate
		return nil
	}))

	ctx, cancel := context.WithCancel(context.Background())
	var ran int32
	if err := exec.Submit(ctx, "k", JobFunc(func(context.Context) error {
		atomic.StoreInt32(&ran, 1)
		return nil
	})); err != nil {
		t.Fatalf("submit: %v", err)
	}
	cancel()
	close(gate)

	if err := exec.Barrier(context.Background(), "k"); err != nil {
		t.Fatalf("barrier: %v", err)
	}
	if atomic.LoadInt32(&ran) != 0 {
		t.Fatal("cancelled job should not have run")
	}
}

func TestShardExecutor_SubmitHonoursCallerContext(t *testing.T) {
	t.Parallel()
	exec := NewShardExecutor(Config{Shards: 1, QueueSize: 1, EnqueueTimeout: 5 * time.Second})
	defer exec.Stop()

	// Block the worker and fill the queue so Submit has to wait.
	gate := make(chan struct{})
	defer close(gate)
	_ = exec.Submit(context.Background(), "k", JobFunc(func(context.Context) error {
		<-gate
		return nil
	}))
	_ = exec.Submit(context.Background(), "k", noopJob{})

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()
	if err := exec.Submit(ctx, "k", noopJob{}); err != context.Canceled {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
