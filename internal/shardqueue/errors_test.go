package shardqueue

import (
	"errors"
	"strings"
	"testing"
)

func TestQueueFullError_MatchesSentinel(t *testing.T) {
	t.Parallel()
	err := &QueueFullError{Shard: 2, Length: 8, Capacity: 8}
	if !errors.Is(err, ErrQueueFull) {
		t.Fatal("QueueFullError should match ErrQueueFull")
	}
	if !strings.Contains(err.Error(), "shard 2") {
		t.Fatalf("unexpected message: %s", err.Error())
	}
}
