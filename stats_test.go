package devwell

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStats_BreaksCompletedMatchesByTypeSum(t *testing.T) {
	t.Parallel()
	s, _ := newTestStore(t)
	ctx := context.Background()

	date := "2024-06-15"
	for _, sess := range []BreakSession{
		completedSession(BreakStretch, date, 60),
		completedSession(BreakEyes, date, 30),
		completedSession(BreakStretch, date, 90),
		completedSession(BreakHydration, date, 15),
		completedSession(BreakBreathing, date, 120),
	} {
		require.NoError(t, s.RecordSession(ctx, sess))
	}
	mustFlush(t, s)

	stats := s.StatsForDate(ctx, date)
	sum := 0
	for _, n := range stats.BreaksByType {
		sum += n
	}
	require.Equal(t, stats.BreaksCompleted, sum)
	require.Equal(t, 5, stats.BreaksCompleted)
	require.Equal(t, 2, stats.BreaksByType[BreakStretch])
}

func TestStats_SameTypeAccumulates(t *testing.T) {
	t.Parallel()
	s, _ := newTestStore(t)
	ctx := context.Background()

	const n = 7
	total := 0
	for i := 0; i < n; i++ {
		d := 10 * (i + 1)
		total += d
		require.NoError(t, s.RecordSession(ctx, completedSession(BreakWalking, "2024-06-15", d)))
	}
	mustFlush(t, s)

	stats := s.StatsForDate(ctx, "2024-06-15")
	require.Equal(t, n, stats.BreaksByType[BreakWalking])
	require.Equal(t, total, stats.TotalBreakTime)
}

// Example scenario: goal 3, three stretch sessions of 60/90/120s on one date.
func TestStats_GoalOfThreeScenario(t *testing.T) {
	t.Parallel()
	s, _ := newTestStore(t)
	ctx := context.Background()

	goal := 3
	require.NoError(t, s.UpdateSettings(ctx, SettingsPatch{DailyGoal: &goal}))
	mustFlush(t, s)

	for _, d := range []int{60, 90, 120} {
		require.NoError(t, s.RecordSession(ctx, completedSession(BreakStretch, "2024-01-01", d)))
	}
	mustFlush(t, s)

	stats := s.StatsForDate(ctx, "2024-01-01")
	require.Equal(t, "2024-01-01", stats.Date)
	require.Equal(t, 3, stats.BreaksCompleted)
	require.Equal(t, 270, stats.TotalBreakTime)
	require.Equal(t, map[BreakType]int{BreakStretch: 3}, stats.BreaksByType)
	require.True(t, stats.StreakDay)
}

func TestStats_StreakDayFlipsAtGoal(t *testing.T) {
	t.Parallel()
	s, _ := newTestStore(t)
	ctx := context.Background()

	goal := 2
	require.NoError(t, s.UpdateSettings(ctx, SettingsPatch{DailyGoal: &goal}))
	mustFlush(t, s)

	require.NoError(t, s.RecordSession(ctx, completedSession(BreakEyes, "2024-06-15", 30)))
	mustFlush(t, s)
	require.False(t, s.StatsForDate(ctx, "2024-06-15").StreakDay)

	require.NoError(t, s.RecordSession(ctx, completedSession(BreakEyes, "2024-06-15", 30)))
	mustFlush(t, s)
	require.True(t, s.StatsForDate(ctx, "2024-06-15").StreakDay)
}

func TestStatsForDate_SynthesizesWithoutPersisting(t *testing.T) {
	t.Parallel()
	s, _ := newTestStore(t)
	ctx := context.Background()

	stats := s.StatsForDate(ctx, "2030-01-01")
	require.Equal(t, "2030-01-01", stats.Date)
	require.Zero(t, stats.BreaksCompleted)
	require.NotNil(t, stats.BreaksByType)

	// The synthesized record must not have been written back.
	require.Empty(t, s.AllDailyStats(ctx))
}

func TestTodayStats_SeededWithAppOpens(t *testing.T) {
	t.Parallel()
	s, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.RecordAppOpen(ctx))
	require.NoError(t, s.RecordAppOpen(ctx))
	mustFlush(t, s)

	stats := s.TodayStats(ctx)
	require.Equal(t, "2024-06-15", stats.Date)
	require.Equal(t, 2, stats.AppOpens)
}

func TestStats_EntriesKeptPerDate(t *testing.T) {
	t.Parallel()
	s, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.RecordSession(ctx, completedSession(BreakStretch, "2024-06-14", 60)))
	require.NoError(t, s.RecordSession(ctx, completedSession(BreakEyes, "2024-06-15", 30)))
	mustFlush(t, s)

	all := s.AllDailyStats(ctx)
	require.Len(t, all, 2)
	require.Equal(t, 1, s.StatsForDate(ctx, "2024-06-14").BreaksCompleted)
	require.Equal(t, 1, s.StatsForDate(ctx, "2024-06-15").BreaksCompleted)
}
