package cli

import (
	"reflect"
	"testing"

	"routinely/internal/models"
)

func TestParseDays(t *testing.T) {
	days, err := parseDays("Mon, wed,FRIDAY")
	if err != nil {
		t.Fatalf("parseDays failed: %v", err)
	}
	want := []models.DayOfWeek{models.DayMon, models.DayWed, models.DayFri}
	if !reflect.DeepEqual(days, want) {
		t.Errorf("expected %v, got %v", want, days)
	}
}

func TestParseDaysInvalid(t *testing.T) {
	if _, err := parseDays("mon,funday"); err == nil {
		t.Error("expected error for unknown weekday")
	}
}

func TestFormatRepeat(t *testing.T) {
	r := models.Routine{RepeatOption: models.RepeatCustom, CustomDays: []models.DayOfWeek{models.DaySat, models.DaySun}}
	if got := formatRepeat(r); got != "custom on sat,sun" {
		t.Errorf("unexpected custom format: %q", got)
	}

	r = models.Routine{RepeatOption: models.RepeatCustom}
	if got := formatRepeat(r); got != "custom (no days)" {
		t.Errorf("unexpected empty custom format: %q", got)
	}

	r = models.Routine{RepeatOption: models.RepeatWeekdays}
	if got := formatRepeat(r); got != "weekdays" {
		t.Errorf("unexpected weekdays format: %q", got)
	}
}

func TestFormatGoalProgress(t *testing.T) {
	g := models.Goal{Type: models.GoalCount, CurrentCount: 2, TargetCount: 5}
	if got := formatGoalProgress(g); got != "2/5" {
		t.Errorf("unexpected count progress: %q", got)
	}

	g = models.Goal{Type: models.GoalCheckbox, IsCompleted: true}
	if got := formatGoalProgress(g); got != "done" {
		t.Errorf("unexpected checkbox progress: %q", got)
	}
}
