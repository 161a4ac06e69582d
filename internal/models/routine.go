package models

import "time"

// DayOfWeek is a three-letter weekday tag used in repeat rules.
type DayOfWeek string

const (
	DayMon DayOfWeek = "mon"
	DayTue DayOfWeek = "tue"
	DayWed DayOfWeek = "wed"
	DayThu DayOfWeek = "thu"
	DayFri DayOfWeek = "fri"
	DaySat DayOfWeek = "sat"
	DaySun DayOfWeek = "sun"
)

// AllDays lists the seven day tags in display order.
var AllDays = []DayOfWeek{DayMon, DayTue, DayWed, DayThu, DayFri, DaySat, DaySun}

// Weekdays lists the five working-day tags.
var Weekdays = []DayOfWeek{DayMon, DayTue, DayWed, DayThu, DayFri}

// DayTagFor maps a time.Weekday to its tag.
func DayTagFor(wd time.Weekday) DayOfWeek {
	switch wd {
	case time.Monday:
		return DayMon
	case time.Tuesday:
		return DayTue
	case time.Wednesday:
		return DayWed
	case time.Thursday:
		return DayThu
	case time.Friday:
		return DayFri
	case time.Saturday:
		return DaySat
	default:
		return DaySun
	}
}

type RepeatOption string

const (
	RepeatDaily    RepeatOption = "daily"
	RepeatWeekdays RepeatOption = "weekdays"
	RepeatCustom   RepeatOption = "custom"
)

// ReminderOffsets are the allowed reminder lead times in minutes.
var ReminderOffsets = []int{0, 5, 10, 15}

// Routine represents a recurring, time-of-day scheduled task.
type Routine struct {
	ID             string       `json:"id"`
	Title          string       `json:"title"`
	Time           string       `json:"time"` // HH:MM, zero-padded 24h
	ReminderOffset int          `json:"reminder_offset"`
	RepeatOption   RepeatOption `json:"repeat_option"`
	CustomDays     []DayOfWeek  `json:"custom_days"`
	IsEnabled      bool         `json:"is_enabled"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

// RepeatDays returns the full day set a repeat option stands for. Custom
// routines keep whatever the caller selected.
func RepeatDays(opt RepeatOption, custom []DayOfWeek) []DayOfWeek {
	switch opt {
	case RepeatDaily:
		return append([]DayOfWeek(nil), AllDays...)
	case RepeatWeekdays:
		return append([]DayOfWeek(nil), Weekdays...)
	default:
		return custom
	}
}

// ValidReminderOffset reports whether n is one of the allowed lead times.
func ValidReminderOffset(n int) bool {
	for _, o := range ReminderOffsets {
		if n == o {
			return true
		}
	}
	return false
}
