package devwell

import (
	"context"
	"strconv"
)

// RecordSession appends sess to the session log. When the session completed,
// the daily stats and lifetime progress folds run in the same serialized job,
// so two concurrent completions can never lose each other's update.
//
// The returned error covers the enqueue only. Storage failures are logged
// and swallowed; when the append itself fails the folds are skipped. Sessions
// are not deduplicated: recording the same ID twice yields two entries.
func (s *Store) RecordSession(ctx context.Context, sess BreakSession) error {
	return s.enqueue(ctx, qSessions, func(jctx context.Context) {
		sessions := s.loadSessions(jctx)
		sessions = append(sessions, sess)
		if err := s.storeJSON(jctx, keyBreakSessions, sessions); err != nil {
			s.fail("record_session", err)
			return
		}
		sessionsRecordedTotal.WithLabelValues(string(sess.Type), strconv.FormatBool(sess.Completed)).Inc()

		if sess.Completed {
			s.applyStats(jctx, sess)
			s.applyProgress(jctx, sess)
		}
	})
}

// BreakSessions returns the full session log, oldest first. Returns an empty
// slice on any storage failure.
func (s *Store) BreakSessions(ctx context.Context) []BreakSession {
	return s.loadSessions(ctx)
}

// BreakSessionsForDate returns the sessions recorded on the given
// YYYY-MM-DD date.
func (s *Store) BreakSessionsForDate(ctx context.Context, date string) []BreakSession {
	var out []BreakSession
	for _, sess := range s.loadSessions(ctx) {
		if sess.Date == date {
			out = append(out, sess)
		}
	}
	return out
}

// BreakSessionsForDateRange returns the sessions with start <= date <= end.
func (s *Store) BreakSessionsForDateRange(ctx context.Context, start, end string) []BreakSession {
	var out []BreakSession
	for _, sess := range s.loadSessions(ctx) {
		if sess.Date >= start && sess.Date <= end {
			out = append(out, sess)
		}
	}
	return out
}

func (s *Store) loadSessions(ctx context.Context) []BreakSession {
	var sessions []BreakSession
	if _, err := s.loadJSON(ctx, keyBreakSessions, &sessions); err != nil {
		s.fail("load_sessions", err)
		return []BreakSession{}
	}
	if sessions == nil {
		sessions = []BreakSession{}
	}
	return sessions
}
