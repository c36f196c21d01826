package shardqueue

import "time"

// Config tunes a ShardExecutor. The zero value is usable; NewShardExecutor
// fills in defaults for any field left at zero.
type Config struct {
	// Shards is the number of worker goroutines / queues.
	Shards int

	// QueueSize is the buffered capacity of each shard queue.
	QueueSize int

	// EnqueueTimeout bounds how long Submit waits for space in a full shard
	// before returning a QueueFullError.
	EnqueueTimeout time.Duration

	// MaxAttempts caps how many times a recoverable job error is retried.
	MaxAttempts int

	// BaseBackoff is the initial retry interval; MaxInterval caps its growth.
	BaseBackoff time.Duration
	MaxInterval time.Duration

	// ErrorHandler receives errors from jobs that exhausted their retries,
	// were classified irrecoverable, or were cancelled. May be nil.
	ErrorHandler func(error)
}
