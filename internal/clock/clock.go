package clock

import (
	"time"

	"routinely/internal/models"
)

const (
	DateFormat = "2006-01-02"
	TimeFormat = "15:04"
)

// Clock is the sole source of "now" for the recurrence, reset, and streak
// engines. Production code uses System; tests pin a Fixed instant.
type Clock interface {
	Now() time.Time
	// Today returns the local calendar date as YYYY-MM-DD.
	Today() string
	// WeekStart returns the date of the most recent Sunday, inclusive.
	WeekStart() string
	// WeekdayTag returns the three-letter tag for the local calendar day.
	WeekdayTag() models.DayOfWeek
	// TimeOfDay returns the local wall-clock time as zero-padded HH:MM.
	TimeOfDay() string
}

type systemClock struct{}

// System returns a Clock backed by the local system time.
func System() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time                 { return time.Now() }
func (c systemClock) Today() string                { return today(c.Now()) }
func (c systemClock) WeekStart() string            { return weekStart(c.Now()) }
func (c systemClock) WeekdayTag() models.DayOfWeek { return models.DayTagFor(c.Now().Weekday()) }
func (c systemClock) TimeOfDay() string            { return c.Now().Format(TimeFormat) }

type fixedClock struct {
	t time.Time
}

// Fixed returns a Clock pinned to t.
func Fixed(t time.Time) Clock {
	return fixedClock{t: t}
}

func (c fixedClock) Now() time.Time               { return c.t }
func (c fixedClock) Today() string                { return today(c.t) }
func (c fixedClock) WeekStart() string            { return weekStart(c.t) }
func (c fixedClock) WeekdayTag() models.DayOfWeek { return models.DayTagFor(c.t.Weekday()) }
func (c fixedClock) TimeOfDay() string            { return c.t.Format(TimeFormat) }

func today(t time.Time) string {
	return t.Format(DateFormat)
}

func weekStart(t time.Time) string {
	// time.Weekday numbers Sunday as 0, so this lands on the current day
	// when it is already Sunday.
	return t.AddDate(0, 0, -int(t.Weekday())).Format(DateFormat)
}

// Yesterday returns the date one calendar day before a YYYY-MM-DD date.
func Yesterday(date string) string {
	t, err := time.Parse(DateFormat, date)
	if err != nil {
		return ""
	}
	return t.AddDate(0, 0, -1).Format(DateFormat)
}
