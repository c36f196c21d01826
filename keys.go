package devwell

// Logical storage keys. The layout matches the original device store so data
// written by earlier app versions keeps parsing.
const (
	keyBreakSessions         = "break_sessions"
	keyDailyStats            = "daily_stats"
	keyUserSettings          = "user_settings"
	keyUserProgress          = "user_progress"
	keyLastAppOpen           = "last_app_open"
	keyOnboardingCompleted   = "onboarding_completed"
	keyFirstTimeUser         = "first_time_user"
	keyOnboardingPreferences = "onboarding_preferences"

	appOpensPrefix = "app_opens_"
)

func appOpensKey(date string) string { return appOpensPrefix + date }

// wellKnownKeys are the fixed keys removed by Reset. Daily app-open counters
// carry the date in the key and are removed by prefix instead.
var wellKnownKeys = []string{
	keyBreakSessions,
	keyDailyStats,
	keyUserSettings,
	keyUserProgress,
	keyLastAppOpen,
	keyOnboardingCompleted,
	keyFirstTimeUser,
	keyOnboardingPreferences,
}

// Queue keys serialize mutations per record family. The session queue also
// covers the stats and progress folds triggered by a completed session, so
// the whole flow is one FIFO.
const (
	qSessions   = keyBreakSessions
	qSettings   = keyUserSettings
	qAppOpens   = "app_opens"
	qOnboarding = "onboarding"
)

var queueKeys = []string{qSessions, qSettings, qAppOpens, qOnboarding}
