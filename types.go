package devwell

import (
	"time"

	"github.com/google/uuid"
)

// BreakType identifies one of the supported wellness break kinds.
type BreakType string

const (
	BreakStretch   BreakType = "stretch"
	BreakBreathing BreakType = "breathing"
	BreakWalking   BreakType = "walking"
	BreakEyes      BreakType = "eyes"
	BreakHydration BreakType = "hydration"
	BreakMindful   BreakType = "mindful"
)

// BreakTypes lists every supported break type.
var BreakTypes = []BreakType{
	BreakStretch, BreakBreathing, BreakWalking, BreakEyes, BreakHydration, BreakMindful,
}

// Valid reports whether t is one of the supported break types.
func (t BreakType) Valid() bool {
	for _, bt := range BreakTypes {
		if t == bt {
			return true
		}
	}
	return false
}

// BreakSession is one attempted or completed wellness break. Sessions are
// immutable once recorded and are only removed by a full data reset.
type BreakSession struct {
	ID        string    `json:"id"`
	Type      BreakType `json:"type"`
	StartTime int64     `json:"startTime"` // milliseconds since epoch
	EndTime   int64     `json:"endTime"`   // milliseconds since epoch
	Duration  int       `json:"duration"`  // seconds, truncated
	Completed bool      `json:"completed"`
	Date      string    `json:"date"` // YYYY-MM-DD, local time
}

// NewBreakSession builds a session for a break that started at start and
// ended at end. Completed is true when the user finished the break naturally,
// false when it was cancelled. The calendar date is taken from the start time
// in local time.
func NewBreakSession(t BreakType, start, end time.Time, completed bool) BreakSession {
	return BreakSession{
		ID:        uuid.NewString(),
		Type:      t,
		StartTime: start.UnixMilli(),
		EndTime:   end.UnixMilli(),
		Duration:  int(end.Sub(start) / time.Second),
		Completed: completed,
		Date:      start.Local().Format(dateLayout),
	}
}

// DailyStats is the per-calendar-day rollup of completed break activity.
// BreaksCompleted always equals the sum of BreaksByType values.
type DailyStats struct {
	Date            string            `json:"date"`
	BreaksCompleted int               `json:"breaksCompleted"`
	TotalBreakTime  int               `json:"totalBreakTime"` // seconds
	AppOpens        int               `json:"appOpens"`
	StreakDay       bool              `json:"streakDay"`
	BreaksByType    map[BreakType]int `json:"breaksByType"`
}

// ReminderStyle selects how insistently break reminders are delivered.
type ReminderStyle string

const (
	ReminderGentle     ReminderStyle = "gentle"
	ReminderPersistent ReminderStyle = "persistent"
)

// WorkingHours bounds the window in which reminders fire, as HH:MM strings.
type WorkingHours struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// UserSettings is the singleton configuration record. Stored values are
// overlaid on DefaultSettings on read, so adding a field never breaks an
// existing store.
type UserSettings struct {
	BreakFrequency       int           `json:"breakFrequency"` // minutes
	NotificationsEnabled bool          `json:"notificationsEnabled"`
	DailyGoal            int           `json:"dailyGoal"` // breaks per day
	ReminderStyle        ReminderStyle `json:"reminderStyle"`
	WorkingHours         WorkingHours  `json:"workingHours"`
	EnabledBreakTypes    []BreakType   `json:"enabledBreakTypes"`
}

// DefaultSettings returns the settings a fresh install starts with.
func DefaultSettings() UserSettings {
	return UserSettings{
		BreakFrequency:       60,
		NotificationsEnabled: true,
		DailyGoal:            8,
		ReminderStyle:        ReminderGentle,
		WorkingHours:         WorkingHours{Start: "09:00", End: "17:00"},
		EnabledBreakTypes:    []BreakType{BreakStretch, BreakBreathing, BreakEyes, BreakHydration},
	}
}

// SettingsPatch is a partial settings update. Nil fields are left unchanged;
// set fields replace the stored value wholesale (shallow merge).
type SettingsPatch struct {
	BreakFrequency       *int
	NotificationsEnabled *bool
	DailyGoal            *int
	ReminderStyle        *ReminderStyle
	WorkingHours         *WorkingHours
	EnabledBreakTypes    []BreakType
}

func (p SettingsPatch) apply(s *UserSettings) {
	if p.BreakFrequency != nil {
		s.BreakFrequency = *p.BreakFrequency
	}
	if p.NotificationsEnabled != nil {
		s.NotificationsEnabled = *p.NotificationsEnabled
	}
	if p.DailyGoal != nil {
		s.DailyGoal = *p.DailyGoal
	}
	if p.ReminderStyle != nil {
		s.ReminderStyle = *p.ReminderStyle
	}
	if p.WorkingHours != nil {
		s.WorkingHours = *p.WorkingHours
	}
	if p.EnabledBreakTypes != nil {
		s.EnabledBreakTypes = p.EnabledBreakTypes
	}
}

// UserProgress is the singleton lifetime aggregate. LongestStreak >=
// CurrentStreak holds after every update.
type UserProgress struct {
	TotalBreaks          int      `json:"totalBreaks"`
	CurrentStreak        int      `json:"currentStreak"`
	LongestStreak        int      `json:"longestStreak"`
	LastBreakDate        string   `json:"lastBreakDate"`
	TotalBreakTime       int      `json:"totalBreakTime"` // seconds
	AchievementsUnlocked []string `json:"achievementsUnlocked"`
}

func defaultProgress() UserProgress {
	return UserProgress{AchievementsUnlocked: []string{}}
}

// OnboardingPreferences records the user's onboarding answers. Created once
// at onboarding completion; may be patched afterwards.
type OnboardingPreferences struct {
	ImprovementGoals    []string `json:"improvementGoals"`
	CodingHours         int      `json:"codingHours"`
	TakesBreaks         bool     `json:"takesBreaks"`
	MainChallenge       string   `json:"mainChallenge"`
	EnabledRoutines     []string `json:"enabledRoutines"`
	CompletedAt         string   `json:"completedAt"`
	PersonalizedMessage string   `json:"personalizedMessage,omitempty"`
}

// OnboardingPatch is a partial update to stored onboarding preferences.
type OnboardingPatch struct {
	ImprovementGoals    []string
	CodingHours         *int
	TakesBreaks         *bool
	MainChallenge       *string
	EnabledRoutines     []string
	CompletedAt         *string
	PersonalizedMessage *string
}

func (p OnboardingPatch) apply(o *OnboardingPreferences) {
	if p.ImprovementGoals != nil {
		o.ImprovementGoals = p.ImprovementGoals
	}
	if p.CodingHours != nil {
		o.CodingHours = *p.CodingHours
	}
	if p.TakesBreaks != nil {
		o.TakesBreaks = *p.TakesBreaks
	}
	if p.MainChallenge != nil {
		o.MainChallenge = *p.MainChallenge
	}
	if p.EnabledRoutines != nil {
		o.EnabledRoutines = p.EnabledRoutines
	}
	if p.CompletedAt != nil {
		o.CompletedAt = *p.CompletedAt
	}
	if p.PersonalizedMessage != nil {
		o.PersonalizedMessage = *p.PersonalizedMessage
	}
}
