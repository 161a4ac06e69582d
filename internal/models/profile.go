package models

type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// UserProfile holds display preferences for the single local user.
type UserProfile struct {
	Name                  string `json:"name"`
	PhotoURL              string `json:"photo_url,omitempty"`
	DefaultReminderOffset int    `json:"default_reminder_offset"`
	AlarmSound            string `json:"alarm_sound"`
	VibrationEnabled      bool   `json:"vibration_enabled"`
	Theme                 Theme  `json:"theme"`
}

// UserStats aggregates activity across all routines.
type UserStats struct {
	TotalRoutinesCompleted int    `json:"total_routines_completed"`
	CurrentStreak          int    `json:"current_streak"`
	BestStreak             int    `json:"best_streak"`
	LastActiveDate         string `json:"last_active_date,omitempty"` // YYYY-MM-DD
}

func DefaultProfile() UserProfile {
	return UserProfile{
		Name:                  "User",
		DefaultReminderOffset: 5,
		AlarmSound:            "default",
		VibrationEnabled:      true,
		Theme:                 ThemeDark,
	}
}

func DefaultStats() UserStats {
	return UserStats{}
}

// AlarmSounds are the selectable alarm sound identifiers.
var AlarmSounds = []string{"default", "gentle", "energetic", "nature", "classic"}

// ValidAlarmSound reports whether id names a known alarm sound.
func ValidAlarmSound(id string) bool {
	for _, s := range AlarmSounds {
		if s == id {
			return true
		}
	}
	return false
}
