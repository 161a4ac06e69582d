package cli

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"routinely/internal/app"
	"routinely/internal/models"
	"routinely/internal/schedule"
)

type RoutineAddCmd struct {
	Title       string `arg:"" optional:"" help:"Routine title."`
	Time        string `short:"t" help:"Time of day (HH:MM)."`
	Reminder    int    `short:"r" help:"Reminder lead time in minutes (0|5|10|15)." default:"5"`
	Repeat      string `short:"R" help:"Repeat rule (daily|weekdays|custom)." default:"daily"`
	Days        string `short:"d" help:"Comma-separated days for custom repeat."`
	Interactive bool   `short:"i" help:"Fill in the routine with an interactive form."`
}

func (c *RoutineAddCmd) Validate() error {
	if c.Interactive {
		return nil
	}
	if c.Title == "" {
		return fmt.Errorf("routine title is required (or use -i)")
	}
	if !schedule.ValidTime(c.Time) {
		return fmt.Errorf("invalid time %q, want zero-padded HH:MM", c.Time)
	}
	if !models.ValidReminderOffset(c.Reminder) {
		return fmt.Errorf("invalid reminder offset %d, want one of 0, 5, 10, 15", c.Reminder)
	}
	switch models.RepeatOption(c.Repeat) {
	case models.RepeatDaily, models.RepeatWeekdays, models.RepeatCustom:
		return nil
	default:
		return fmt.Errorf("invalid repeat rule: %s", c.Repeat)
	}
}

func (c *RoutineAddCmd) Run(ctx *Context) error {
	if err := ctx.App.Load(); err != nil {
		return err
	}

	form := app.RoutineForm{
		Title:          c.Title,
		Time:           c.Time,
		ReminderOffset: c.Reminder,
		RepeatOption:   models.RepeatOption(c.Repeat),
	}
	if form.RepeatOption == models.RepeatCustom && c.Days != "" {
		days, err := parseDays(c.Days)
		if err != nil {
			return err
		}
		form.CustomDays = days
	}

	if c.Interactive {
		filled, err := promptRoutineForm(form)
		if err != nil {
			return err
		}
		form = filled
	}

	r, err := ctx.App.AddRoutine(form)
	if errors.Is(err, app.ErrPlanLimit) {
		remaining := ctx.App.Plans.RemainingRoutines(len(ctx.App.Routines()))
		fmt.Printf("Free plan routine limit reached (%d remaining).\n", remaining)
		return err
	}
	if err != nil {
		return err
	}

	fmt.Printf("Added routine: %s at %s, %s (ID: %s)\n", r.Title, r.Time, formatRepeat(r), r.ID)
	return nil
}

// promptRoutineForm collects routine fields with an interactive form,
// pre-filled from any flags already given.
func promptRoutineForm(seed app.RoutineForm) (app.RoutineForm, error) {
	title := seed.Title
	timeStr := seed.Time
	offset := seed.ReminderOffset
	repeat := seed.RepeatOption
	if repeat == "" {
		repeat = models.RepeatDaily
	}
	days := seed.CustomDays

	dayOptions := make([]huh.Option[models.DayOfWeek], 0, len(models.AllDays))
	for _, d := range models.AllDays {
		dayOptions = append(dayOptions, huh.NewOption(string(d), d))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&title).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("title is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Time (HH:MM)").
				Value(&timeStr).
				Validate(func(s string) error {
					if !schedule.ValidTime(s) {
						return fmt.Errorf("want zero-padded HH:MM")
					}
					return nil
				}),
			huh.NewSelect[int]().
				Title("Reminder").
				Options(
					huh.NewOption("No reminder", 0),
					huh.NewOption("5 minutes before", 5),
					huh.NewOption("10 minutes before", 10),
					huh.NewOption("15 minutes before", 15),
				).
				Value(&offset),
			huh.NewSelect[models.RepeatOption]().
				Title("Repeat").
				Options(
					huh.NewOption("Every day", models.RepeatDaily),
					huh.NewOption("Weekdays", models.RepeatWeekdays),
					huh.NewOption("Custom days", models.RepeatCustom),
				).
				Value(&repeat),
		),
		huh.NewGroup(
			huh.NewMultiSelect[models.DayOfWeek]().
				Title("Days").
				Options(dayOptions...).
				Value(&days),
		).WithHideFunc(func() bool { return repeat != models.RepeatCustom }),
	)

	if err := form.Run(); err != nil {
		return app.RoutineForm{}, err
	}

	return app.RoutineForm{
		Title:          title,
		Time:           timeStr,
		ReminderOffset: offset,
		RepeatOption:   repeat,
		CustomDays:     days,
	}, nil
}
