package cli

import (
	"fmt"
)

type TemplateListCmd struct{}

func (c *TemplateListCmd) Run(ctx *Context) error {
	for _, tpl := range ctx.Templates.All() {
		fmt.Printf("%s  %s\n", headerStyle.Render(tpl.ID), tpl.Name)
		if tpl.Description != "" {
			fmt.Printf("  %s\n", dimStyle.Render(tpl.Description))
		}
		for _, r := range tpl.Routines {
			fmt.Printf("  %s  %s\n", timeStyle.Render(r.Time), r.Title)
		}
		fmt.Println()
	}
	return nil
}

type TemplateApplyCmd struct {
	ID string `arg:"" help:"Template pack ID."`
}

func (c *TemplateApplyCmd) Run(ctx *Context) error {
	tpl, ok := ctx.Templates.Find(c.ID)
	if !ok {
		return fmt.Errorf("unknown template pack: %s", c.ID)
	}

	if err := ctx.App.Load(); err != nil {
		return err
	}

	added, skipped := ctx.App.ApplyTemplate(tpl)
	fmt.Printf("Applied %s: %d routines added", tpl.Name, added)
	if skipped > 0 {
		fmt.Printf(", %d skipped by the free plan limit", skipped)
	}
	fmt.Println(".")
	return nil
}
