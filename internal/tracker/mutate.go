package tracker

import (
	"time"

	"routinely/internal/models"
)

// ToggleComplete flips a goal's done state. Completing bumps the streak
// and stamps the completion date; un-completing steps the streak back but
// leaves LastCompletedDate in place. Checkbox goals mirror the flag into
// CurrentCount; count goals keep their count.
func ToggleComplete(g models.Goal, today string, now time.Time) models.Goal {
	completed := !g.IsCompleted

	g.IsCompleted = completed
	if g.Type == models.GoalCheckbox {
		if completed {
			g.CurrentCount = 1
		} else {
			g.CurrentCount = 0
		}
	}
	if completed {
		g.Streak++
		g.LastCompletedDate = today
	} else if g.Streak > 0 {
		g.Streak--
	}
	g.UpdatedAt = now
	return g
}

// IncrementCount advances a count goal by one, capped at the target (or
// the hard ceiling when no target is set). Crossing the completion
// threshold bumps the streak once; further increments past the cap change
// nothing but the completion date stamp. Non-count goals are returned
// unchanged.
func IncrementCount(g models.Goal, today string, now time.Time) models.Goal {
	if g.Type != models.GoalCount {
		return g
	}

	newCount := g.CurrentCount + 1
	if limit := g.CountLimit(); newCount > limit {
		newCount = limit
	}
	newCompleted := newCount >= g.EffectiveTarget()

	if newCompleted && !g.IsCompleted {
		g.Streak++
	}
	if newCompleted {
		g.LastCompletedDate = today
	}
	g.CurrentCount = newCount
	g.IsCompleted = newCompleted
	g.UpdatedAt = now
	return g
}

// DecrementCount steps a count goal back by one, floored at zero. Dropping
// below the target steps the streak back; LastCompletedDate is never
// cleared. Non-count goals are returned unchanged.
func DecrementCount(g models.Goal, now time.Time) models.Goal {
	if g.Type != models.GoalCount {
		return g
	}

	newCount := g.CurrentCount - 1
	if newCount < 0 {
		newCount = 0
	}
	newCompleted := newCount >= g.EffectiveTarget()

	if g.IsCompleted && !newCompleted && g.Streak > 0 {
		g.Streak--
	}
	g.CurrentCount = newCount
	g.IsCompleted = newCompleted
	g.UpdatedAt = now
	return g
}
