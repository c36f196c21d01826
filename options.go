package devwell

// Functional options applied by New. Kept in a standalone file so every
// available knob is discoverable at a glance.

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// Option configures a Store during construction.
type Option func(*Store) error

// WithLogger sets the logger used to report swallowed storage failures.
// The default is a no-op logger.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Store) error {
		s.log = log
		return nil
	}
}

// WithClock overrides the time source used for "today"/"yesterday" date
// computation. Intended for tests.
func WithClock(clock func() time.Time) Option {
	return func(s *Store) error {
		if clock == nil {
			return fmt.Errorf("clock must not be nil")
		}
		s.clock = clock
		return nil
	}
}

// WithShards sets the number of writer shards. The default is 4.
func WithShards(n int) Option {
	return func(s *Store) error {
		if n <= 0 {
			return fmt.Errorf("shards must be > 0")
		}
		s.shards = n
		return nil
	}
}

// WithQueueSize sets the per-shard queue capacity. Submissions beyond this
// return ErrBackPressure. The default is 128.
func WithQueueSize(n int) Option {
	return func(s *Store) error {
		if n <= 0 {
			return fmt.Errorf("queue size must be > 0")
		}
		s.queueSize = n
		return nil
	}
}

// WithErrorHandler installs a hook invoked with every swallowed storage
// failure, in addition to logging and metrics. Useful in tests asserting the
// never-hard-fail contract.
func WithErrorHandler(h func(error)) Option {
	return func(s *Store) error {
		s.errHandler = h
		return nil
	}
}
