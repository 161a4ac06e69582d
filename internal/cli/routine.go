package cli

import (
	"fmt"

	"routinely/internal/app"
	"routinely/internal/models"
	"routinely/internal/schedule"
)

type RoutineListCmd struct {
	All bool `short:"a" help:"Include disabled routines."`
}

func (c *RoutineListCmd) Run(ctx *Context) error {
	if err := ctx.App.Load(); err != nil {
		return err
	}

	routines := ctx.App.Routines()
	if len(routines) == 0 {
		fmt.Println("No routines yet. Add one with 'routinely routine add'.")
		return nil
	}

	shown := 0
	for _, r := range routines {
		if !r.IsEnabled && !c.All {
			continue
		}
		shown++
		fmt.Printf("%s %s  %s  %s  (reminder %dm)  %s\n",
			enabledMark(r.IsEnabled), timeStyle.Render(r.Time), r.Title, formatRepeat(r), r.ReminderOffset, dimStyle.Render(r.ID))
	}
	if shown == 0 {
		fmt.Println("No enabled routines. Use -a to include disabled ones.")
	}
	return nil
}

type RoutineEditCmd struct {
	ID       string `arg:"" help:"Routine ID."`
	Title    string `help:"New title."`
	Time     string `short:"t" help:"New time of day (HH:MM)."`
	Reminder *int   `short:"r" help:"New reminder lead time in minutes (0|5|10|15)."`
	Repeat   string `short:"R" help:"New repeat rule (daily|weekdays|custom)."`
	Days     string `short:"d" help:"Comma-separated days for custom repeat."`
}

func (c *RoutineEditCmd) Validate() error {
	if c.Time != "" && !schedule.ValidTime(c.Time) {
		return fmt.Errorf("invalid time %q, want zero-padded HH:MM", c.Time)
	}
	if c.Reminder != nil && !models.ValidReminderOffset(*c.Reminder) {
		return fmt.Errorf("invalid reminder offset %d, want one of 0, 5, 10, 15", *c.Reminder)
	}
	if c.Repeat != "" {
		switch models.RepeatOption(c.Repeat) {
		case models.RepeatDaily, models.RepeatWeekdays, models.RepeatCustom:
		default:
			return fmt.Errorf("invalid repeat rule: %s", c.Repeat)
		}
	}
	return nil
}

func (c *RoutineEditCmd) Run(ctx *Context) error {
	if err := ctx.App.Load(); err != nil {
		return err
	}

	r, err := ctx.App.Routine(c.ID)
	if err != nil {
		return fmt.Errorf("routine %s: %w", c.ID, err)
	}

	form := app.RoutineForm{
		Title:          r.Title,
		Time:           r.Time,
		ReminderOffset: r.ReminderOffset,
		RepeatOption:   r.RepeatOption,
		CustomDays:     r.CustomDays,
	}
	if c.Title != "" {
		form.Title = c.Title
	}
	if c.Time != "" {
		form.Time = c.Time
	}
	if c.Reminder != nil {
		form.ReminderOffset = *c.Reminder
	}
	if c.Repeat != "" {
		form.RepeatOption = models.RepeatOption(c.Repeat)
	}
	if c.Days != "" {
		days, err := parseDays(c.Days)
		if err != nil {
			return err
		}
		form.CustomDays = days
	}

	updated, err := ctx.App.UpdateRoutine(c.ID, form)
	if err != nil {
		return err
	}
	fmt.Printf("Updated routine: %s at %s, %s\n", updated.Title, updated.Time, formatRepeat(updated))
	return nil
}

type RoutineDeleteCmd struct {
	ID string `arg:"" help:"Routine ID."`
}

func (c *RoutineDeleteCmd) Run(ctx *Context) error {
	if err := ctx.App.Load(); err != nil {
		return err
	}

	r, err := ctx.App.Routine(c.ID)
	if err != nil {
		return fmt.Errorf("routine %s: %w", c.ID, err)
	}
	if err := ctx.App.DeleteRoutine(c.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted routine: %s\n", r.Title)
	return nil
}

type RoutineToggleCmd struct {
	ID string `arg:"" help:"Routine ID."`
}

func (c *RoutineToggleCmd) Run(ctx *Context) error {
	if err := ctx.App.Load(); err != nil {
		return err
	}

	r, err := ctx.App.ToggleRoutine(c.ID)
	if err != nil {
		return fmt.Errorf("routine %s: %w", c.ID, err)
	}
	if r.IsEnabled {
		fmt.Printf("Enabled routine: %s\n", r.Title)
	} else {
		fmt.Printf("Disabled routine: %s (marked done for today)\n", r.Title)
	}
	return nil
}
