package cli

import (
	"errors"
	"fmt"

	"routinely/internal/app"
	"routinely/internal/models"
)

type GoalAddCmd struct {
	Title     string `arg:"" help:"Goal title."`
	Type      string `short:"t" help:"Goal type (checkbox|count)." default:"checkbox"`
	Frequency string `short:"f" help:"Reset frequency (daily|weekly)." default:"daily"`
	Target    int    `short:"n" help:"Target count for count goals."`
}

func (c *GoalAddCmd) Validate() error {
	switch models.GoalType(c.Type) {
	case models.GoalCheckbox, models.GoalCount:
	default:
		return fmt.Errorf("invalid goal type: %s", c.Type)
	}
	switch models.GoalFrequency(c.Frequency) {
	case models.FrequencyDaily, models.FrequencyWeekly:
	default:
		return fmt.Errorf("invalid frequency: %s", c.Frequency)
	}
	if c.Target < 0 {
		return fmt.Errorf("target count cannot be negative")
	}
	return nil
}

func (c *GoalAddCmd) Run(ctx *Context) error {
	if err := ctx.App.Load(); err != nil {
		return err
	}

	g, err := ctx.App.AddGoal(app.GoalForm{
		Title:       c.Title,
		Type:        models.GoalType(c.Type),
		Frequency:   models.GoalFrequency(c.Frequency),
		TargetCount: c.Target,
	})
	if errors.Is(err, app.ErrPlanLimit) {
		fmt.Println("Free plan goal limit reached. Upgrade with 'routinely plan upgrade'.")
		return err
	}
	if err != nil {
		return err
	}

	fmt.Printf("Added %s %s goal: %s (ID: %s)\n", g.Frequency, g.Type, g.Title, g.ID)
	return nil
}

type GoalListCmd struct{}

func (c *GoalListCmd) Run(ctx *Context) error {
	if err := ctx.App.Load(); err != nil {
		return err
	}

	goals := ctx.App.Goals()
	if len(goals) == 0 {
		fmt.Println("No goals yet. Add one with 'routinely goal add'.")
		return nil
	}

	for _, g := range goals {
		mark := enabledMark(g.IsCompleted)
		progress := formatGoalProgress(g)
		if g.IsCompleted {
			progress = doneStyle.Render(progress)
		}
		fmt.Printf("%s %s  [%s, %s]  %s  streak %d  %s\n",
			mark, g.Title, g.Type, g.Frequency, progress, g.Streak, dimStyle.Render(g.ID))
	}
	return nil
}

type GoalEditCmd struct {
	ID        string `arg:"" help:"Goal ID."`
	Title     string `help:"New title."`
	Type      string `short:"t" help:"New goal type (checkbox|count)."`
	Frequency string `short:"f" help:"New reset frequency (daily|weekly)."`
	Target    *int   `short:"n" help:"New target count."`
}

func (c *GoalEditCmd) Validate() error {
	if c.Type != "" {
		switch models.GoalType(c.Type) {
		case models.GoalCheckbox, models.GoalCount:
		default:
			return fmt.Errorf("invalid goal type: %s", c.Type)
		}
	}
	if c.Frequency != "" {
		switch models.GoalFrequency(c.Frequency) {
		case models.FrequencyDaily, models.FrequencyWeekly:
		default:
			return fmt.Errorf("invalid frequency: %s", c.Frequency)
		}
	}
	if c.Target != nil && *c.Target < 0 {
		return fmt.Errorf("target count cannot be negative")
	}
	return nil
}

func (c *GoalEditCmd) Run(ctx *Context) error {
	if err := ctx.App.Load(); err != nil {
		return err
	}

	g, err := ctx.App.Goal(c.ID)
	if err != nil {
		return fmt.Errorf("goal %s: %w", c.ID, err)
	}

	form := app.GoalForm{
		Title:       g.Title,
		Type:        g.Type,
		Frequency:   g.Frequency,
		TargetCount: g.TargetCount,
	}
	if c.Title != "" {
		form.Title = c.Title
	}
	if c.Type != "" {
		form.Type = models.GoalType(c.Type)
	}
	if c.Frequency != "" {
		form.Frequency = models.GoalFrequency(c.Frequency)
	}
	if c.Target != nil {
		form.TargetCount = *c.Target
	}

	updated, err := ctx.App.UpdateGoal(c.ID, form)
	if err != nil {
		return err
	}
	fmt.Printf("Updated goal: %s [%s, %s]\n", updated.Title, updated.Type, updated.Frequency)
	return nil
}

type GoalDeleteCmd struct {
	ID string `arg:"" help:"Goal ID."`
}

func (c *GoalDeleteCmd) Run(ctx *Context) error {
	if err := ctx.App.Load(); err != nil {
		return err
	}

	g, err := ctx.App.Goal(c.ID)
	if err != nil {
		return fmt.Errorf("goal %s: %w", c.ID, err)
	}
	if err := ctx.App.DeleteGoal(c.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted goal: %s\n", g.Title)
	return nil
}
