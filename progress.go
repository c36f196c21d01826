package devwell

import "context"

// applyProgress folds a completed session into the lifetime progress record.
// Runs inside the serialized session job, after the daily stats fold.
//
// The streak is only evaluated for sessions dated today: it increments when
// today's goal is met and either the previously stored LastBreakDate was
// yesterday or there was no streak to continue. A missed day never resets
// CurrentStreak; it only stops growing.
func (s *Store) applyProgress(ctx context.Context, sess BreakSession) {
	p := s.Progress(ctx)
	prevBreakDate := p.LastBreakDate

	p.TotalBreaks++
	p.TotalBreakTime += sess.Duration
	p.LastBreakDate = sess.Date

	if sess.Date == s.today() {
		stats := s.StatsForDate(ctx, sess.Date)
		if stats.StreakDay && (prevBreakDate == s.yesterday() || p.CurrentStreak == 0) {
			p.CurrentStreak++
		}
	}
	if p.CurrentStreak > p.LongestStreak {
		p.LongestStreak = p.CurrentStreak
	}

	if err := s.storeJSON(ctx, keyUserProgress, p); err != nil {
		s.fail("update_progress", err)
	}
}

// Progress returns the lifetime progress record, or defaults when nothing is
// stored or the stored value cannot be read.
func (s *Store) Progress(ctx context.Context) UserProgress {
	p := defaultProgress()
	if _, err := s.loadJSON(ctx, keyUserProgress, &p); err != nil {
		s.fail("load_progress", err)
		return defaultProgress()
	}
	return p
}
