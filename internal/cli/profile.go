package cli

import (
	"fmt"
	"strings"

	"routinely/internal/models"
)

type ProfileShowCmd struct{}

func (c *ProfileShowCmd) Run(ctx *Context) error {
	if err := ctx.App.Load(); err != nil {
		return err
	}

	p := ctx.App.Profile()
	fmt.Println(headerStyle.Render("Profile"))
	fmt.Printf("Name:              %s\n", p.Name)
	fmt.Printf("Default reminder:  %dm before\n", p.DefaultReminderOffset)
	fmt.Printf("Alarm sound:       %s\n", p.AlarmSound)
	fmt.Printf("Vibration:         %v\n", p.VibrationEnabled)
	fmt.Printf("Theme:             %s\n", p.Theme)
	return nil
}

type ProfileSetCmd struct {
	Name      string `help:"Display name."`
	Reminder  *int   `short:"r" help:"Default reminder lead time in minutes (0|5|10|15)."`
	Alarm     string `help:"Alarm sound (default|gentle|energetic|nature|classic)."`
	Vibration *bool  `help:"Enable or disable vibration."`
	Theme     string `help:"Color theme (light|dark|system)."`
}

func (c *ProfileSetCmd) Validate() error {
	if c.Reminder != nil && !models.ValidReminderOffset(*c.Reminder) {
		return fmt.Errorf("invalid reminder offset %d, want one of 0, 5, 10, 15", *c.Reminder)
	}
	if c.Alarm != "" && !models.ValidAlarmSound(c.Alarm) {
		return fmt.Errorf("invalid alarm sound %q, want one of %s", c.Alarm, strings.Join(models.AlarmSounds, ", "))
	}
	if c.Theme != "" {
		switch models.Theme(c.Theme) {
		case models.ThemeLight, models.ThemeDark, models.ThemeSystem:
		default:
			return fmt.Errorf("invalid theme: %s", c.Theme)
		}
	}
	return nil
}

func (c *ProfileSetCmd) Run(ctx *Context) error {
	if err := ctx.App.Load(); err != nil {
		return err
	}

	p := ctx.App.Profile()
	if c.Name != "" {
		p.Name = c.Name
	}
	if c.Reminder != nil {
		p.DefaultReminderOffset = *c.Reminder
	}
	if c.Alarm != "" {
		p.AlarmSound = c.Alarm
	}
	if c.Vibration != nil {
		p.VibrationEnabled = *c.Vibration
	}
	if c.Theme != "" {
		p.Theme = models.Theme(c.Theme)
	}

	ctx.App.UpdateProfile(p)
	fmt.Println("Profile updated.")
	return nil
}
