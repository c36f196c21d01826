// Package devwell implements the local wellness-data layer of the DevWell
// app: break session recording, daily stats and lifetime progress
// aggregation, user settings, and onboarding state, all persisted as JSON
// values in an injected key-value store.
//
// Writes are serialized through a single-writer queue per logical record
// family, so concurrent UI calls can never lose updates to the same stored
// collection. Storage failures never surface to callers: writes degrade to a
// logged no-op, reads to default values.
package devwell

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/SiddDevCS/Dev-Well/internal/shardqueue"
	"github.com/SiddDevCS/Dev-Well/kv"
)

// executor abstracts the internal async job runner; see internal/shardqueue.
type executor interface {
	Submit(ctx context.Context, key string, job shardqueue.Job) error
	Stop()
}

// Store is the handle to all locally persisted wellness data. Construct one
// per process with New and share it; it is safe for concurrent use.
type Store struct {
	kv    kv.Store
	exec  executor
	log   zerolog.Logger
	clock func() time.Time

	shards     int
	queueSize  int
	errHandler func(error)

	closedOnce uint32
}

// New constructs a Store on top of the given key-value store.
func New(store kv.Store, opts ...Option) (*Store, error) {
	if store == nil {
		return nil, errors.New("devwell: kv store must not be nil")
	}

	s := &Store{
		kv:    store,
		log:   zerolog.Nop(),
		clock: time.Now,
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	if s.exec == nil {
		s.exec = shardqueue.NewShardExecutor(shardqueue.Config{
			Shards:       s.shards,
			QueueSize:    s.queueSize,
			ErrorHandler: s.errHandler,
		})
	}
	return s, nil
}

// Close stops the background executor, draining queued writes first.
// Safe to call multiple times.
func (s *Store) Close() error {
	if !atomic.CompareAndSwapUint32(&s.closedOnce, 0, 1) {
		return nil
	}
	s.exec.Stop()
	return nil
}

// Flush blocks until every write submitted before the call has been applied,
// giving the caller read-your-writes across all record families.
func (s *Store) Flush(ctx context.Context) error {
	for _, key := range queueKeys {
		if err := s.barrier(ctx, key); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) barrier(ctx context.Context, key string) error {
	done := make(chan struct{})
	j := shardqueue.JobFunc(func(context.Context) error {
		close(done)
		return nil
	})
	if err := s.exec.Submit(ctx, key, j); err != nil {
		return err
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-done:
		return nil
	}
}

// enqueue submits fn on the single-writer queue for key. The returned error
// covers the enqueue only (back-pressure, closed store, cancelled context);
// storage failures inside fn are logged and swallowed.
func (s *Store) enqueue(ctx context.Context, key string, fn func(context.Context)) error {
	err := s.exec.Submit(ctx, key, shardqueue.JobFunc(func(jctx context.Context) error {
		fn(jctx)
		return nil
	}))
	if errors.Is(err, shardqueue.ErrQueueFull) {
		return fmt.Errorf("%w: %v", ErrBackPressure, err)
	}
	return err
}

// today returns the current calendar date string.
func (s *Store) today() string { return s.clock().Format(dateLayout) }

// yesterday returns the calendar date string one day before today.
func (s *Store) yesterday() string {
	return s.clock().AddDate(0, 0, -1).Format(dateLayout)
}

const dateLayout = "2006-01-02"

// fail records a swallowed storage failure: logged, counted, and forwarded
// to the injected error handler when one is configured.
func (s *Store) fail(op string, err error) {
	storageFailuresTotal.WithLabelValues(op).Inc()
	s.log.Error().Err(err).Str("op", op).Msg("storage operation failed")
	if s.errHandler != nil {
		s.errHandler(err)
	}
}
