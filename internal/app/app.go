package app

import (
	"errors"

	"routinely/internal/clock"
	"routinely/internal/entitlement"
	"routinely/internal/logger"
	"routinely/internal/models"
	"routinely/internal/observable"
	"routinely/internal/storage"
	"routinely/internal/tracker"
)

var (
	// ErrNotFound signals an operation against an unknown entity id. The
	// core state is left untouched; the CLI turns it into a message.
	ErrNotFound = errors.New("not found")

	// ErrPlanLimit signals that the free plan's entity cap is reached.
	ErrPlanLimit = errors.New("free plan limit reached, upgrade with 'routinely plan upgrade'")
)

// App owns the in-memory collections and applies every mutation before
// writing back to storage. Persistence is best-effort: write failures are
// logged and swallowed, read failures fall back to defaults. Exactly one
// App instance owns the store for the life of the process.
type App struct {
	store storage.Provider
	clock clock.Clock

	// Warn receives swallowed persistence failures. Defaults to the
	// shared rotating-file logger so normal runs stay quiet on stderr.
	Warn func(msg string, keyvals ...any)

	routines []models.Routine
	goals    []models.Goal
	stats    models.UserStats

	profile *observable.Cell[models.UserProfile]
	sub     *observable.Cell[models.UserSubscription]

	Plans *entitlement.Service
}

func New(store storage.Provider, clk clock.Clock) *App {
	return &App{
		store: store,
		clock: clk,
		Warn:  logger.Warn,
	}
}

// Load reads every record and runs the once-per-load sweeps, in order:
// goal cycle reset first, then the activity streak reconcile, then the
// subscription expiry check. No goal may be read or mutated before the
// reset sweep has finished.
func (a *App) Load() error {
	if err := a.store.Load(); err != nil {
		return err
	}

	routines, err := a.store.GetRoutines()
	if err != nil {
		a.Warn("failed to load routines, starting empty", "error", err)
		routines = []models.Routine{}
	}
	a.routines = routines

	goals, err := a.store.GetGoals()
	if err != nil {
		a.Warn("failed to load goals, starting empty", "error", err)
		goals = []models.Goal{}
	}
	goals, changed := tracker.ResetGoals(goals, a.clock.Today(), a.clock.WeekStart(), a.clock.Now())
	a.goals = goals
	if changed {
		a.persistGoals()
	}

	stats, err := a.store.GetStats()
	if err != nil {
		a.Warn("failed to load stats, using defaults", "error", err)
		stats = models.DefaultStats()
	}
	reconciled := tracker.ReconcileStreak(stats, a.clock.Today())
	a.stats = reconciled
	if reconciled != stats {
		a.persistStats()
	}

	profile, err := a.store.GetProfile()
	if err != nil {
		a.Warn("failed to load profile, using defaults", "error", err)
		profile = models.DefaultProfile()
	}
	a.profile = observable.NewCell(profile)
	a.profile.Subscribe(func(p models.UserProfile) {
		if err := a.store.SaveProfile(p); err != nil {
			a.Warn("failed to save profile", "error", err)
		}
	})

	sub, err := a.store.GetSubscription()
	if err != nil {
		a.Warn("failed to load subscription, using free plan", "error", err)
		sub = models.DefaultSubscription()
	}
	expired := entitlement.Expire(sub, a.clock.Now())
	a.sub = observable.NewCell(expired)
	a.sub.Subscribe(func(s models.UserSubscription) {
		if err := a.store.SaveSubscription(s); err != nil {
			a.Warn("failed to save subscription", "error", err)
		}
	})
	if expired != sub {
		a.sub.Set(expired) // persist the collapse to free
	}

	a.Plans = entitlement.NewService(a.sub, a.clock)
	return nil
}

func (a *App) Close() error {
	return a.store.Close()
}

func (a *App) Clock() clock.Clock {
	return a.clock
}

func (a *App) persistRoutines() {
	if err := a.store.SaveRoutines(a.routines); err != nil {
		a.Warn("failed to save routines", "error", err)
	}
}

func (a *App) persistGoals() {
	if err := a.store.SaveGoals(a.goals); err != nil {
		a.Warn("failed to save goals", "error", err)
	}
}

func (a *App) persistStats() {
	if err := a.store.SaveStats(a.stats); err != nil {
		a.Warn("failed to save stats", "error", err)
	}
}

// recordActivity applies one completion event to the aggregate stats.
func (a *App) recordActivity() {
	a.stats = tracker.RecordActivity(a.stats, a.clock.Today())
	a.persistStats()
}

func (a *App) Stats() models.UserStats {
	return a.stats
}

func (a *App) Profile() models.UserProfile {
	return a.profile.Get()
}

func (a *App) UpdateProfile(p models.UserProfile) {
	a.profile.Set(p)
}

// SubscribeProfile registers a listener for profile changes.
func (a *App) SubscribeProfile(fn func(models.UserProfile)) func() {
	return a.profile.Subscribe(fn)
}

// SubscribeSubscription registers a listener for plan changes.
func (a *App) SubscribeSubscription(fn func(models.UserSubscription)) func() {
	return a.sub.Subscribe(fn)
}
