package cli

import (
	"fmt"

	"routinely/internal/models"
)

type PlanStatusCmd struct{}

func (c *PlanStatusCmd) Run(ctx *Context) error {
	if err := ctx.App.Load(); err != nil {
		return err
	}

	sub := ctx.App.Plans.Subscription()
	fmt.Println(headerStyle.Render("Plan"))
	if ctx.App.Plans.IsPremium() {
		fmt.Printf("Premium (%s)\n", sub.PremiumDuration.Label())
		if days := ctx.App.Plans.DaysRemaining(); days >= 0 {
			fmt.Printf("Days remaining: %d\n", days)
		}
		fmt.Println("Routines and goals: unlimited")
		return nil
	}

	fmt.Println("Free")
	roomR := ctx.App.Plans.RemainingRoutines(len(ctx.App.Routines()))
	roomG := ctx.App.Plans.RemainingGoals(len(ctx.App.Goals()))
	fmt.Printf("Routines: %d of %d used (%d left)\n",
		len(ctx.App.Routines()), models.FreePlanLimits.Routines, roomR)
	fmt.Printf("Goals:    %d of %d used (%d left)\n",
		len(ctx.App.Goals()), models.FreePlanLimits.Goals, roomG)

	fmt.Println()
	fmt.Println(headerStyle.Render("Premium options"))
	for _, p := range models.PremiumPlans {
		line := fmt.Sprintf("%-10s %d", p.Duration.Label(), p.Price)
		if p.Discount > 0 {
			line += dimStyle.Render(fmt.Sprintf("  (save %d%%)", p.Discount))
		}
		fmt.Println(line)
	}
	return nil
}

type PlanUpgradeCmd struct {
	Duration string `arg:"" optional:"" help:"Premium duration (1_month|3_months|6_months|1_year)." default:"1_month"`
}

func (c *PlanUpgradeCmd) Validate() error {
	if models.PremiumDuration(c.Duration).Months() == 0 {
		return fmt.Errorf("invalid premium duration: %s", c.Duration)
	}
	return nil
}

func (c *PlanUpgradeCmd) Run(ctx *Context) error {
	if err := ctx.App.Load(); err != nil {
		return err
	}

	sub := ctx.App.Plans.Upgrade(models.PremiumDuration(c.Duration))
	fmt.Printf("Upgraded to Premium (%s), active until %s.\n",
		sub.PremiumDuration.Label(), sub.EndDate.Format("2006-01-02"))
	return nil
}

type PlanDowngradeCmd struct{}

func (c *PlanDowngradeCmd) Run(ctx *Context) error {
	if err := ctx.App.Load(); err != nil {
		return err
	}

	ctx.App.Plans.Downgrade()
	fmt.Println("Back on the free plan. Existing routines and goals are kept.")

	over := 0
	if n := len(ctx.App.Routines()); n > models.FreePlanLimits.Routines {
		over += n - models.FreePlanLimits.Routines
	}
	if n := len(ctx.App.Goals()); n > models.FreePlanLimits.Goals {
		over += n - models.FreePlanLimits.Goals
	}
	if over > 0 {
		fmt.Printf("Note: %d entries exceed the free plan caps; new additions are blocked until you are under the limits.\n", over)
	}
	return nil
}
