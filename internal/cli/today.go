package cli

import (
	"fmt"

	"routinely/internal/schedule"
)

type TodayCmd struct {
	Goals bool `short:"g" help:"Include goal progress."`
}

func (c *TodayCmd) Run(ctx *Context) error {
	if err := ctx.App.Load(); err != nil {
		return err
	}

	clk := ctx.App.Clock()
	fmt.Println(headerStyle.Render(fmt.Sprintf("Today: %s (%s)", clk.Today(), clk.WeekdayTag())))
	fmt.Println()

	agenda := ctx.App.TodaysAgenda()
	if len(agenda) == 0 {
		fmt.Println(dimStyle.Render("  No routines scheduled for today."))
	}
	for _, r := range agenda {
		mark := " "
		if r.Time <= clk.TimeOfDay() {
			mark = doneStyle.Render("·")
		}
		line := fmt.Sprintf("%s %s  %-30s", mark, timeStyle.Render(r.Time), r.Title)
		if r.ReminderOffset > 0 {
			line += dimStyle.Render(fmt.Sprintf("  reminder at %s", schedule.ReminderTime(r)))
		}
		fmt.Println(line)
	}

	fmt.Println()
	if next := ctx.App.NextUp(); next != nil {
		fmt.Println(nextBannerStyle.Render(fmt.Sprintf("Next up: %s at %s", next.Title, next.Time)))
	} else {
		fmt.Println(dimStyle.Render("Nothing else today."))
	}

	if c.Goals {
		fmt.Println()
		fmt.Println(headerStyle.Render("Goals"))
		goals := ctx.App.Goals()
		if len(goals) == 0 {
			fmt.Println(dimStyle.Render("  No goals yet."))
		}
		for _, g := range goals {
			mark := "○"
			if g.IsCompleted {
				mark = doneStyle.Render("✓")
			}
			fmt.Printf("%s %-30s %s  streak %d\n", mark, g.Title, formatGoalProgress(g), g.Streak)
		}
		fmt.Printf("\n%d of %d goals complete.\n", ctx.App.CompletedGoalsToday(), len(goals))
	}

	return nil
}
