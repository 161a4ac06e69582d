package tracker

import (
	"routinely/internal/clock"
	"routinely/internal/models"
)

// RecordActivity applies one completion event to the user's aggregate
// stats. The completion counter always advances; the day streak advances
// only on the first event of a given day.
func RecordActivity(s models.UserStats, today string) models.UserStats {
	if s.LastActiveDate != today {
		s.CurrentStreak++
	}
	if s.CurrentStreak > s.BestStreak {
		s.BestStreak = s.CurrentStreak
	}
	s.TotalRoutinesCompleted++
	s.LastActiveDate = today
	return s
}

// ReconcileStreak breaks the activity streak at load time when the last
// active day is older than yesterday. BestStreak is never lowered.
func ReconcileStreak(s models.UserStats, today string) models.UserStats {
	if s.LastActiveDate == "" {
		return s
	}
	if s.LastActiveDate != today && s.LastActiveDate != clock.Yesterday(today) {
		s.CurrentStreak = 0
	}
	return s
}
