package tracker

import (
	"testing"
	"time"

	"routinely/internal/models"
)

var mutNow = time.Date(2025, 12, 31, 9, 30, 0, 0, time.UTC)

func TestToggleComplete_Checkbox(t *testing.T) {
	g := models.Goal{ID: "g1", Type: models.GoalCheckbox, Frequency: models.FrequencyDaily, Streak: 2}

	done := ToggleComplete(g, today, mutNow)
	if !done.IsCompleted || done.CurrentCount != 1 {
		t.Errorf("completing should set the flag and count: %+v", done)
	}
	if done.Streak != 3 {
		t.Errorf("streak = %d, want 3", done.Streak)
	}
	if done.LastCompletedDate != today {
		t.Errorf("last completed = %q, want %q", done.LastCompletedDate, today)
	}

	undone := ToggleComplete(done, today, mutNow)
	if undone.IsCompleted || undone.CurrentCount != 0 {
		t.Errorf("un-completing should clear the flag and count: %+v", undone)
	}
	if undone.Streak != 2 {
		t.Errorf("streak = %d, want 2 after undo", undone.Streak)
	}
	if undone.LastCompletedDate != today {
		t.Error("un-completing must not clear the completion date")
	}
}

func TestToggleComplete_StreakFloorsAtZero(t *testing.T) {
	g := models.Goal{ID: "g1", Type: models.GoalCheckbox, IsCompleted: true, CurrentCount: 1, Streak: 0}

	undone := ToggleComplete(g, today, mutNow)
	if undone.Streak != 0 {
		t.Errorf("streak = %d, want 0 (never negative)", undone.Streak)
	}
}

func TestToggleComplete_CountGoalKeepsCount(t *testing.T) {
	g := models.Goal{ID: "g1", Type: models.GoalCount, TargetCount: 10, CurrentCount: 4}

	done := ToggleComplete(g, today, mutNow)
	if done.CurrentCount != 4 {
		t.Errorf("toggling a count goal should leave its count alone, got %d", done.CurrentCount)
	}
	if !done.IsCompleted {
		t.Error("toggle should still flip completion")
	}
}

func TestIncrementCount_CompletionBoundary(t *testing.T) {
	g := models.Goal{ID: "g1", Type: models.GoalCount, TargetCount: 5, CurrentCount: 4, Streak: 1}

	hit := IncrementCount(g, today, mutNow)
	if hit.CurrentCount != 5 || !hit.IsCompleted {
		t.Errorf("crossing the target should complete the goal: %+v", hit)
	}
	if hit.Streak != 2 {
		t.Errorf("streak = %d, want 2 on completion", hit.Streak)
	}
	if hit.LastCompletedDate != today {
		t.Errorf("last completed = %q, want %q", hit.LastCompletedDate, today)
	}

	// Past the cap: nothing moves.
	capped := IncrementCount(hit, today, mutNow)
	if capped.CurrentCount != 5 {
		t.Errorf("count = %d, want 5 (capped)", capped.CurrentCount)
	}
	if capped.Streak != 2 {
		t.Errorf("streak = %d, want 2 (unchanged past cap)", capped.Streak)
	}
}

func TestIncrementCount_NoTargetUsesCeiling(t *testing.T) {
	g := models.Goal{ID: "g1", Type: models.GoalCount, CurrentCount: 0}

	one := IncrementCount(g, today, mutNow)
	if one.CurrentCount != 1 || !one.IsCompleted {
		t.Errorf("target-less count goal completes at 1: %+v", one)
	}

	g.CurrentCount = models.CountCap
	capped := IncrementCount(g, today, mutNow)
	if capped.CurrentCount != models.CountCap {
		t.Errorf("count = %d, want ceiling %d", capped.CurrentCount, models.CountCap)
	}
}

func TestIncrementCount_IgnoresCheckboxGoals(t *testing.T) {
	g := models.Goal{ID: "g1", Type: models.GoalCheckbox, Streak: 3}

	out := IncrementCount(g, today, mutNow)
	if out != g {
		t.Errorf("increment on a checkbox goal must be a no-op: %+v", out)
	}
}

func TestDecrementCount(t *testing.T) {
	g := models.Goal{
		ID: "g1", Type: models.GoalCount, TargetCount: 5,
		CurrentCount: 5, IsCompleted: true, Streak: 2, LastCompletedDate: today,
	}

	down := DecrementCount(g, mutNow)
	if down.CurrentCount != 4 || down.IsCompleted {
		t.Errorf("dropping below target should un-complete: %+v", down)
	}
	if down.Streak != 1 {
		t.Errorf("streak = %d, want 1 after losing completion", down.Streak)
	}
	if down.LastCompletedDate != today {
		t.Error("decrement must not clear the completion date")
	}
}

func TestDecrementCount_FloorsAtZero(t *testing.T) {
	g := models.Goal{ID: "g1", Type: models.GoalCount, TargetCount: 5, CurrentCount: 0}

	out := DecrementCount(g, mutNow)
	if out.CurrentCount != 0 {
		t.Errorf("count = %d, want 0 (floored)", out.CurrentCount)
	}

	// Still callable at the floor.
	again := DecrementCount(out, mutNow)
	if again.CurrentCount != 0 {
		t.Errorf("count = %d, want 0 on repeat", again.CurrentCount)
	}
}

func TestDecrementCount_IgnoresCheckboxGoals(t *testing.T) {
	g := models.Goal{ID: "g1", Type: models.GoalCheckbox, CurrentCount: 1, IsCompleted: true}

	if out := DecrementCount(g, mutNow); out != g {
		t.Errorf("decrement on a checkbox goal must be a no-op: %+v", out)
	}
}
