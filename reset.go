package devwell

import (
	"context"
	"strings"
)

// Reset deletes all wellness data: every well-known key plus the per-date
// app-open counters. Pending writes are flushed first so nothing is
// resurrected by a queued job. Unlike steady-state writes, Reset surfaces
// storage errors: it is an explicit maintenance operation.
func (s *Store) Reset(ctx context.Context) error {
	if err := s.Flush(ctx); err != nil {
		return err
	}
	if err := s.kv.Remove(ctx, wellKnownKeys...); err != nil {
		return err
	}

	keys, err := s.kv.Keys(ctx)
	if err != nil {
		return err
	}
	var opens []string
	for _, k := range keys {
		if strings.HasPrefix(k, appOpensPrefix) {
			opens = append(opens, k)
		}
	}
	if len(opens) == 0 {
		return nil
	}
	return s.kv.Remove(ctx, opens...)
}
