package tracker

import (
	"time"

	"routinely/internal/clock"
	"routinely/internal/models"
)

// ResetGoal re-arms a goal whose period has rolled over. It returns the
// updated goal and whether anything changed; an already-reset goal comes
// back untouched, so running the sweep twice is a no-op.
//
// Daily goals keep their streak across the reset when the last completion
// was yesterday; otherwise the streak breaks to zero. Weekly goals reset
// progress once the last completion falls before this week's Sunday and
// never lose their streak here.
func ResetGoal(g models.Goal, today, weekStart string, now time.Time) (models.Goal, bool) {
	switch g.Frequency {
	case models.FrequencyDaily:
		if g.LastCompletedDate == today {
			return g, false
		}

		newStreak := 0
		if g.LastCompletedDate == clock.Yesterday(today) {
			newStreak = g.Streak
		}

		if g.CurrentCount == 0 && !g.IsCompleted && g.Streak == newStreak {
			return g, false
		}

		g.CurrentCount = 0
		g.IsCompleted = false
		g.Streak = newStreak
		g.UpdatedAt = now
		return g, true

	case models.FrequencyWeekly:
		if g.LastCompletedDate == "" || g.LastCompletedDate >= weekStart {
			return g, false
		}
		if g.CurrentCount == 0 && !g.IsCompleted {
			return g, false
		}

		g.CurrentCount = 0
		g.IsCompleted = false
		g.UpdatedAt = now
		return g, true

	default:
		return g, false
	}
}

// ResetGoals sweeps a full collection, returning the updated slice and
// whether any goal changed. The sweep must finish before any other goal
// read or mutation in the same load cycle.
func ResetGoals(goals []models.Goal, today, weekStart string, now time.Time) ([]models.Goal, bool) {
	changed := false
	out := make([]models.Goal, len(goals))
	for i, g := range goals {
		reset, c := ResetGoal(g, today, weekStart, now)
		out[i] = reset
		changed = changed || c
	}
	return out, changed
}
