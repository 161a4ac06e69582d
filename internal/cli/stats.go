package cli

import (
	"fmt"
)

type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *Context) error {
	if err := ctx.App.Load(); err != nil {
		return err
	}

	s := ctx.App.Stats()
	fmt.Println(headerStyle.Render("Activity"))
	fmt.Printf("Total completed:  %d\n", s.TotalRoutinesCompleted)
	fmt.Printf("Current streak:   %d\n", s.CurrentStreak)
	fmt.Printf("Best streak:      %d\n", s.BestStreak)
	if s.LastActiveDate != "" {
		fmt.Printf("Last active:      %s\n", s.LastActiveDate)
	} else {
		fmt.Println("Last active:      never")
	}

	goals := ctx.App.Goals()
	if len(goals) > 0 {
		fmt.Println()
		fmt.Println(headerStyle.Render("Goal streaks"))
		for _, g := range goals {
			fmt.Printf("%-30s streak %d\n", g.Title, g.Streak)
		}
	}
	return nil
}
