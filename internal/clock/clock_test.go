package clock

import (
	"testing"
	"time"

	"routinely/internal/models"
)

func TestFixedClock_DerivedValues(t *testing.T) {
	// Dec 31 2025 is a Wednesday; the week's Sunday is Dec 28.
	c := Fixed(time.Date(2025, 12, 31, 14, 5, 0, 0, time.UTC))

	if got := c.Today(); got != "2025-12-31" {
		t.Errorf("Today() = %q, want 2025-12-31", got)
	}
	if got := c.WeekStart(); got != "2025-12-28" {
		t.Errorf("WeekStart() = %q, want 2025-12-28", got)
	}
	if got := c.WeekdayTag(); got != models.DayWed {
		t.Errorf("WeekdayTag() = %q, want wed", got)
	}
	if got := c.TimeOfDay(); got != "14:05" {
		t.Errorf("TimeOfDay() = %q, want 14:05", got)
	}
}

func TestWeekStart_OnSunday(t *testing.T) {
	// Dec 28 2025 is a Sunday; week start is the same day.
	c := Fixed(time.Date(2025, 12, 28, 9, 0, 0, 0, time.UTC))

	if got := c.WeekStart(); got != "2025-12-28" {
		t.Errorf("WeekStart() = %q, want 2025-12-28", got)
	}
}

func TestYesterday(t *testing.T) {
	if got := Yesterday("2026-01-01"); got != "2025-12-31" {
		t.Errorf("Yesterday crossing year = %q, want 2025-12-31", got)
	}
	if got := Yesterday("2026-03-01"); got != "2026-02-28" {
		t.Errorf("Yesterday crossing month = %q, want 2026-02-28", got)
	}
	if got := Yesterday("not-a-date"); got != "" {
		t.Errorf("Yesterday on garbage = %q, want empty", got)
	}
}
