package devwell

import (
	"context"
	"errors"
	"strconv"

	"github.com/SiddDevCS/Dev-Well/internal/storageerr"
	"github.com/SiddDevCS/Dev-Well/kv"
)

// RecordAppOpen bumps today's app-open counter. The first open of a new day
// resets the counter to 1. The returned error covers the enqueue only.
func (s *Store) RecordAppOpen(ctx context.Context) error {
	return s.enqueue(ctx, qAppOpens, func(jctx context.Context) {
		today := s.today()

		lastOpen, err := s.kv.Get(jctx, keyLastAppOpen)
		if err != nil && !errors.Is(err, kv.ErrNotFound) {
			s.fail("record_app_open", storageerr.NewStoreError("load "+keyLastAppOpen, err))
			return
		}

		count := 1
		if lastOpen == today {
			count = s.AppOpensForDate(jctx, today) + 1
		}
		if err := s.kv.Set(jctx, appOpensKey(today), strconv.Itoa(count)); err != nil {
			s.fail("record_app_open", storageerr.NewStoreError("set "+appOpensKey(today), err))
			return
		}
		if err := s.kv.Set(jctx, keyLastAppOpen, today); err != nil {
			s.fail("record_app_open", storageerr.NewStoreError("set "+keyLastAppOpen, err))
		}
	})
}

// AppOpensForDate returns the recorded app-open count for a YYYY-MM-DD date,
// or 0 when absent or unreadable.
func (s *Store) AppOpensForDate(ctx context.Context, date string) int {
	raw, err := s.kv.Get(ctx, appOpensKey(date))
	if errors.Is(err, kv.ErrNotFound) {
		return 0
	}
	if err != nil {
		s.fail("load_app_opens", storageerr.NewStoreError("load "+appOpensKey(date), err))
		return 0
	}
	count, err := strconv.Atoi(raw)
	if err != nil {
		s.fail("load_app_opens", storageerr.NewDecodeError("load "+appOpensKey(date), err))
		return 0
	}
	return count
}

// TodayAppOpens returns the app-open count for the current date.
func (s *Store) TodayAppOpens(ctx context.Context) int {
	return s.AppOpensForDate(ctx, s.today())
}
