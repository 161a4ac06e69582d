package schedule

import (
	"fmt"
	"sort"
	"time"

	"routinely/internal/models"
)

// AppliesOn decides whether a routine's repeat rule covers the given day.
// It answers only the calendar question; IsEnabled is the caller's filter.
func AppliesOn(r models.Routine, day models.DayOfWeek) bool {
	switch r.RepeatOption {
	case models.RepeatDaily:
		return true
	case models.RepeatWeekdays:
		for _, wd := range models.Weekdays {
			if wd == day {
				return true
			}
		}
		return false
	case models.RepeatCustom:
		// Empty custom days is valid and matches nothing.
		for _, d := range r.CustomDays {
			if d == day {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// TodaysAgenda filters a collection down to enabled routines applicable on
// the given day, sorted by time ascending. Equal times keep their input
// order, so the banner and list render deterministically.
func TodaysAgenda(routines []models.Routine, day models.DayOfWeek) []models.Routine {
	agenda := make([]models.Routine, 0, len(routines))
	for _, r := range routines {
		if !r.IsEnabled {
			continue
		}
		if AppliesOn(r, day) {
			agenda = append(agenda, r)
		}
	}

	// The zero-padded HH:MM invariant makes string order chronological.
	sort.SliceStable(agenda, func(i, j int) bool {
		return agenda[i].Time < agenda[j].Time
	})

	return agenda
}

// NextUpcoming returns the first agenda entry strictly after the current
// HH:MM time, or nil when the rest of today is empty. It never rolls over
// to tomorrow.
func NextUpcoming(routines []models.Routine, day models.DayOfWeek, currentTime string) *models.Routine {
	for _, r := range TodaysAgenda(routines, day) {
		if r.Time > currentTime {
			next := r
			return &next
		}
	}
	return nil
}

// ReminderTime returns the HH:MM a reminder should fire at, the routine's
// time minus its offset, clamped at midnight.
func ReminderTime(r models.Routine) string {
	mins, err := parseTime(r.Time)
	if err != nil {
		return r.Time
	}
	mins -= r.ReminderOffset
	if mins < 0 {
		mins = 0
	}
	return formatTime(mins)
}

func parseTime(timeStr string) (int, error) {
	t, err := time.Parse("15:04", timeStr)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

func formatTime(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ValidTime reports whether s is a well-formed zero-padded HH:MM time.
func ValidTime(s string) bool {
	if len(s) != 5 {
		return false
	}
	_, err := parseTime(s)
	return err == nil
}
