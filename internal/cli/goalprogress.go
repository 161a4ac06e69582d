package cli

import (
	"fmt"
)

type GoalCheckCmd struct {
	ID string `arg:"" help:"Goal ID."`
}

func (c *GoalCheckCmd) Run(ctx *Context) error {
	if err := ctx.App.Load(); err != nil {
		return err
	}

	g, err := ctx.App.ToggleGoalComplete(c.ID)
	if err != nil {
		return fmt.Errorf("goal %s: %w", c.ID, err)
	}
	if g.IsCompleted {
		fmt.Printf("%s %s (streak %d)\n", doneStyle.Render("Done:"), g.Title, g.Streak)
	} else {
		fmt.Printf("Reopened: %s (streak %d)\n", g.Title, g.Streak)
	}
	return nil
}

type GoalUpCmd struct {
	ID string `arg:"" help:"Goal ID."`
}

func (c *GoalUpCmd) Run(ctx *Context) error {
	if err := ctx.App.Load(); err != nil {
		return err
	}

	g, err := ctx.App.IncrementGoal(c.ID)
	if err != nil {
		return fmt.Errorf("goal %s: %w", c.ID, err)
	}
	line := fmt.Sprintf("%s: %s", g.Title, formatGoalProgress(g))
	if g.IsCompleted {
		line += " " + doneStyle.Render("(complete)")
	}
	fmt.Println(line)
	return nil
}

type GoalDownCmd struct {
	ID string `arg:"" help:"Goal ID."`
}

func (c *GoalDownCmd) Run(ctx *Context) error {
	if err := ctx.App.Load(); err != nil {
		return err
	}

	g, err := ctx.App.DecrementGoal(c.ID)
	if err != nil {
		return fmt.Errorf("goal %s: %w", c.ID, err)
	}
	fmt.Printf("%s: %s\n", g.Title, formatGoalProgress(g))
	return nil
}
