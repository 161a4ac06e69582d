package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"routinely/internal/app"
	"routinely/internal/cli"
	"routinely/internal/clock"
	"routinely/internal/logger"
	"routinely/internal/storage"
	"routinely/internal/templates"
)

var CLI struct {
	Version kong.VersionFlag
	Store   string `help:"Store file path." type:"path" default:"~/.config/routinely/routinely.db"`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Init  cli.InitCmd  `cmd:"" help:"Initialize routinely storage."`
	Tui   cli.TuiCmd   `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Today cli.TodayCmd `cmd:"" help:"Show today's agenda."`
	Stats cli.StatsCmd `cmd:"" help:"Show activity stats and streaks."`

	Routine struct {
		Add    cli.RoutineAddCmd    `cmd:"" help:"Add a new routine."`
		List   cli.RoutineListCmd   `cmd:"" help:"List routines."`
		Edit   cli.RoutineEditCmd   `cmd:"" help:"Edit an existing routine."`
		Delete cli.RoutineDeleteCmd `cmd:"" help:"Delete a routine."`
		Toggle cli.RoutineToggleCmd `cmd:"" help:"Enable or disable a routine."`
	} `cmd:"" help:"Manage routines."`

	Goal struct {
		Add    cli.GoalAddCmd    `cmd:"" help:"Add a new goal."`
		List   cli.GoalListCmd   `cmd:"" help:"List goals."`
		Edit   cli.GoalEditCmd   `cmd:"" help:"Edit an existing goal."`
		Delete cli.GoalDeleteCmd `cmd:"" help:"Delete a goal."`
		Check  cli.GoalCheckCmd  `cmd:"" help:"Toggle a goal's done state."`
		Up     cli.GoalUpCmd     `cmd:"" help:"Step a count goal up."`
		Down   cli.GoalDownCmd   `cmd:"" help:"Step a count goal down."`
	} `cmd:"" help:"Manage goals."`

	Profile struct {
		Show cli.ProfileShowCmd `cmd:"" help:"Show the user profile."`
		Set  cli.ProfileSetCmd  `cmd:"" help:"Update profile settings."`
	} `cmd:"" help:"Manage the user profile."`

	Plan struct {
		Status    cli.PlanStatusCmd    `cmd:"" help:"Show plan status and limits."`
		Upgrade   cli.PlanUpgradeCmd   `cmd:"" help:"Upgrade to premium."`
		Downgrade cli.PlanDowngradeCmd `cmd:"" help:"Return to the free plan."`
	} `cmd:"" help:"Manage the subscription plan."`

	Template struct {
		List  cli.TemplateListCmd  `cmd:"" help:"List available template packs."`
		Apply cli.TemplateApplyCmd `cmd:"" help:"Apply a template pack's routines."`
	} `cmd:"" help:"Manage routine templates."`

	Backup struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a backup of the store."`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore the store from a backup."`
	} `cmd:"" help:"Manage store backups."`

	Doctor cli.DoctorCmd `cmd:"" help:"Run health checks."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("routinely"),
		kong.Description("Personal routine and goal tracker with reminders and streaks"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: filepath.Dir(CLI.Store)}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	// Determine storage type based on extension
	var store storage.Provider
	if strings.HasSuffix(CLI.Store, ".json") {
		store = storage.NewJSONStore(CLI.Store)
	} else {
		store = storage.NewSQLiteStore(CLI.Store)
	}

	library := templates.NewLibrary()
	if err := library.LoadDir(filepath.Join(filepath.Dir(CLI.Store), "templates")); err != nil {
		logger.Warn("failed to load user template packs", "error", err)
	}

	appCtx := &cli.Context{
		Store:     store,
		App:       app.New(store, clock.System()),
		Templates: library,
	}

	err := ctx.Run(appCtx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
