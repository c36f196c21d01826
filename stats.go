package devwell

import "context"

// applyStats folds a completed session into the DailyStats entry for the
// session's date. Runs inside the serialized session job.
func (s *Store) applyStats(ctx context.Context, sess BreakSession) {
	all := s.loadDailyStats(ctx)

	idx := -1
	for i := range all {
		if all[i].Date == sess.Date {
			idx = i
			break
		}
	}
	if idx == -1 {
		all = append(all, s.freshStats(ctx, sess.Date))
		idx = len(all) - 1
	}

	entry := &all[idx]
	entry.BreaksCompleted++
	entry.TotalBreakTime += sess.Duration
	if entry.BreaksByType == nil {
		entry.BreaksByType = make(map[BreakType]int)
	}
	entry.BreaksByType[sess.Type]++
	// Note: the goal in effect *now*, not the goal on the entry's date.
	entry.StreakDay = entry.BreaksCompleted >= s.Settings(ctx).DailyGoal

	if err := s.storeJSON(ctx, keyDailyStats, all); err != nil {
		s.fail("update_daily_stats", err)
	}
}

// AllDailyStats returns every stored daily rollup. Returns an empty slice on
// any storage failure.
func (s *Store) AllDailyStats(ctx context.Context) []DailyStats {
	return s.loadDailyStats(ctx)
}

// StatsForDate returns the rollup for the given YYYY-MM-DD date. When none
// is stored it returns a freshly synthesized zero-valued entry seeded with
// that date's app-open count; the synthesized entry is not persisted, so
// callers must not assume a returned record has been saved.
func (s *Store) StatsForDate(ctx context.Context, date string) DailyStats {
	for _, entry := range s.loadDailyStats(ctx) {
		if entry.Date == date {
			return entry
		}
	}
	return s.freshStats(ctx, date)
}

// TodayStats returns the rollup for the current date.
func (s *Store) TodayStats(ctx context.Context) DailyStats {
	return s.StatsForDate(ctx, s.today())
}

func (s *Store) freshStats(ctx context.Context, date string) DailyStats {
	return DailyStats{
		Date:         date,
		AppOpens:     s.AppOpensForDate(ctx, date),
		BreaksByType: make(map[BreakType]int),
	}
}

func (s *Store) loadDailyStats(ctx context.Context) []DailyStats {
	var all []DailyStats
	if _, err := s.loadJSON(ctx, keyDailyStats, &all); err != nil {
		s.fail("load_daily_stats", err)
		return []DailyStats{}
	}
	if all == nil {
		all = []DailyStats{}
	}
	return all
}
