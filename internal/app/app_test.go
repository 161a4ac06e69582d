package app

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"routinely/internal/clock"
	"routinely/internal/models"
	"routinely/internal/storage"
)

// Dec 31 2025 is a Wednesday at 08:00; the week's Sunday is Dec 28.
var testNow = time.Date(2025, 12, 31, 8, 0, 0, 0, time.UTC)

func newTestApp(t *testing.T, seed func(storage.Provider)) *App {
	t.Helper()

	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "routinely.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("store init failed: %v", err)
	}
	if seed != nil {
		seed(store)
	}

	a := New(store, clock.Fixed(testNow))
	a.Warn = func(msg string, keyvals ...any) {
		t.Errorf("unexpected persistence warning: %s %v", msg, keyvals)
	}
	if err := a.Load(); err != nil {
		t.Fatalf("app load failed: %v", err)
	}
	return a
}

func TestLoad_RequiresInit(t *testing.T) {
	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "missing.json"))
	a := New(store, clock.Fixed(testNow))

	if err := a.Load(); !errors.Is(err, storage.ErrNotInitialized) {
		t.Errorf("Load = %v, want ErrNotInitialized", err)
	}
}

func TestLoad_ResetsGoalsBeforeAnyRead(t *testing.T) {
	a := newTestApp(t, func(store storage.Provider) {
		goals := []models.Goal{{
			ID:                "g1",
			Title:             "Read",
			Type:              models.GoalCheckbox,
			Frequency:         models.FrequencyDaily,
			CurrentCount:      1,
			IsCompleted:       true,
			Streak:            4,
			LastCompletedDate: "2025-12-30", // yesterday
		}}
		if err := store.SaveGoals(goals); err != nil {
			t.Fatalf("seed failed: %v", err)
		}
	})

	g, err := a.Goal("g1")
	if err != nil {
		t.Fatalf("goal lookup failed: %v", err)
	}
	if g.IsCompleted || g.CurrentCount != 0 {
		t.Errorf("goal should be re-armed at load: %+v", g)
	}
	if g.Streak != 4 {
		t.Errorf("streak = %d, want 4 (completed yesterday)", g.Streak)
	}

	// The reset result is persisted, not just held in memory.
	persisted, err := a.store.GetGoals()
	if err != nil || len(persisted) != 1 || persisted[0].IsCompleted {
		t.Errorf("reset sweep was not written back: %+v, %v", persisted, err)
	}
}

func TestLoad_BreaksStaleActivityStreak(t *testing.T) {
	a := newTestApp(t, func(store storage.Provider) {
		store.SaveStats(models.UserStats{
			TotalRoutinesCompleted: 9,
			CurrentStreak:          6,
			BestStreak:             6,
			LastActiveDate:         "2025-12-28", // older than yesterday
		})
	})

	stats := a.Stats()
	if stats.CurrentStreak != 0 {
		t.Errorf("current streak = %d, want 0 after a gap", stats.CurrentStreak)
	}
	if stats.BestStreak != 6 || stats.TotalRoutinesCompleted != 9 {
		t.Errorf("only the current streak should reset: %+v", stats)
	}
}

func TestLoad_ExpiredSubscriptionCollapsesToFree(t *testing.T) {
	a := newTestApp(t, func(store storage.Provider) {
		start := testNow.AddDate(0, -2, 0)
		end := testNow.AddDate(0, -1, 0)
		store.SaveSubscription(models.UserSubscription{
			PlanType:        models.PlanPremium,
			PremiumDuration: models.Premium1Month,
			StartDate:       &start,
			EndDate:         &end,
			IsActive:        true,
		})
	})

	if a.Plans.IsPremium() {
		t.Error("expired premium should read as free")
	}

	sub, err := a.store.GetSubscription()
	if err != nil || sub.PlanType != models.PlanFree {
		t.Errorf("collapse to free should be persisted: %+v, %v", sub, err)
	}
}

func TestAddRoutine_FreePlanCap(t *testing.T) {
	a := newTestApp(t, nil)

	form := RoutineForm{Title: "Stretch", Time: "07:00", ReminderOffset: 5, RepeatOption: models.RepeatDaily}
	for i := 0; i < models.FreePlanLimits.Routines; i++ {
		if _, err := a.AddRoutine(form); err != nil {
			t.Fatalf("add %d failed: %v", i+1, err)
		}
	}

	if _, err := a.AddRoutine(form); !errors.Is(err, ErrPlanLimit) {
		t.Fatalf("6th routine on free plan = %v, want ErrPlanLimit", err)
	}

	a.Plans.Upgrade(models.Premium1Month)
	if _, err := a.AddRoutine(form); err != nil {
		t.Errorf("premium add failed: %v", err)
	}
}

func TestAddRoutine_ExpandsCustomDays(t *testing.T) {
	a := newTestApp(t, nil)

	daily, err := a.AddRoutine(RoutineForm{Title: "A", Time: "07:00", RepeatOption: models.RepeatDaily})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if len(daily.CustomDays) != 7 {
		t.Errorf("daily routine should carry all 7 day tags, got %v", daily.CustomDays)
	}

	wk, _ := a.AddRoutine(RoutineForm{Title: "B", Time: "08:00", RepeatOption: models.RepeatWeekdays})
	if len(wk.CustomDays) != 5 {
		t.Errorf("weekdays routine should carry the 5 weekday tags, got %v", wk.CustomDays)
	}
}

func TestToggleRoutine_DisableRecordsActivity(t *testing.T) {
	a := newTestApp(t, nil)

	r, err := a.AddRoutine(RoutineForm{Title: "Gym", Time: "06:00", RepeatOption: models.RepeatDaily})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}

	// enabled -> disabled: counts as done for today
	toggled, err := a.ToggleRoutine(r.ID)
	if err != nil || toggled.IsEnabled {
		t.Fatalf("toggle failed: %+v, %v", toggled, err)
	}
	stats := a.Stats()
	if stats.TotalRoutinesCompleted != 1 || stats.CurrentStreak != 1 {
		t.Errorf("disable should record activity: %+v", stats)
	}

	// disabled -> enabled: no stats side effect
	if _, err := a.ToggleRoutine(r.ID); err != nil {
		t.Fatalf("re-enable failed: %v", err)
	}
	if got := a.Stats(); got.TotalRoutinesCompleted != 1 {
		t.Errorf("re-enable must not record activity: %+v", got)
	}

	// A second disable the same day bumps the counter but not the streak.
	a.ToggleRoutine(r.ID)
	if got := a.Stats(); got.TotalRoutinesCompleted != 2 || got.CurrentStreak != 1 {
		t.Errorf("same-day activity should be streak-neutral: %+v", got)
	}
}

func TestAgendaAndNextUp(t *testing.T) {
	a := newTestApp(t, nil)

	a.AddRoutine(RoutineForm{Title: "Lunch", Time: "12:00", RepeatOption: models.RepeatWeekdays})
	a.AddRoutine(RoutineForm{Title: "Wake Up", Time: "06:00", RepeatOption: models.RepeatDaily})
	weekend, _ := a.AddRoutine(RoutineForm{Title: "Hike", Time: "09:00", RepeatOption: models.RepeatCustom, CustomDays: []models.DayOfWeek{models.DaySat}})

	agenda := a.TodaysAgenda()
	if len(agenda) != 2 {
		t.Fatalf("agenda length = %d, want 2 (it is Wednesday)", len(agenda))
	}
	if agenda[0].Title != "Wake Up" || agenda[1].Title != "Lunch" {
		t.Errorf("agenda out of order: %s, %s", agenda[0].Title, agenda[1].Title)
	}
	for _, r := range agenda {
		if r.ID == weekend.ID {
			t.Error("Saturday routine should not be on Wednesday's agenda")
		}
	}

	next := a.NextUp()
	if next == nil || next.Title != "Lunch" {
		t.Fatalf("next at 08:00 = %+v, want Lunch", next)
	}
}

func TestGoalMutationsPersist(t *testing.T) {
	a := newTestApp(t, nil)

	g, err := a.AddGoal(GoalForm{Title: "Water", Type: models.GoalCount, Frequency: models.FrequencyDaily, TargetCount: 2})
	if err != nil {
		t.Fatalf("add goal failed: %v", err)
	}

	a.IncrementGoal(g.ID)
	updated, err := a.IncrementGoal(g.ID)
	if err != nil {
		t.Fatalf("increment failed: %v", err)
	}
	if !updated.IsCompleted || updated.Streak != 1 || updated.LastCompletedDate != "2025-12-31" {
		t.Errorf("goal should complete at target: %+v", updated)
	}

	persisted, err := a.store.GetGoals()
	if err != nil || len(persisted) != 1 || !persisted[0].IsCompleted {
		t.Errorf("goal mutation was not written back: %+v, %v", persisted, err)
	}
}

func TestUnknownIDsAreSafeNoOps(t *testing.T) {
	a := newTestApp(t, nil)
	a.AddGoal(GoalForm{Title: "Read", Type: models.GoalCheckbox, Frequency: models.FrequencyDaily})

	if _, err := a.ToggleGoalComplete("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("toggle unknown goal = %v, want ErrNotFound", err)
	}
	if _, err := a.ToggleRoutine("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("toggle unknown routine = %v, want ErrNotFound", err)
	}
	if err := a.DeleteRoutine("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("delete unknown routine = %v, want ErrNotFound", err)
	}

	if got := a.Goals(); len(got) != 1 || got[0].IsCompleted {
		t.Errorf("failed lookups must not touch state: %+v", got)
	}
}

func TestApplyTemplate_StopsAtPlanLimit(t *testing.T) {
	a := newTestApp(t, nil)

	tpl := models.BuiltinTemplates[1] // student pack, 5 routines
	added, skipped := a.ApplyTemplate(tpl)
	if added != 5 || skipped != 0 {
		t.Fatalf("first apply = %d added, %d skipped; want 5, 0", added, skipped)
	}

	added, skipped = a.ApplyTemplate(models.BuiltinTemplates[0])
	if added != 0 || skipped != 4 {
		t.Errorf("apply beyond the cap = %d added, %d skipped; want 0, 4", added, skipped)
	}
}

func TestProfileUpdatesPersistThroughCell(t *testing.T) {
	a := newTestApp(t, nil)

	notified := false
	a.SubscribeProfile(func(models.UserProfile) { notified = true })

	p := a.Profile()
	p.Name = "Sam"
	a.UpdateProfile(p)

	if !notified {
		t.Error("profile cell should notify subscribers")
	}
	persisted, err := a.store.GetProfile()
	if err != nil || persisted.Name != "Sam" {
		t.Errorf("profile change was not written back: %+v, %v", persisted, err)
	}
}

// failingSaves wraps a working store but rejects routine writes, standing
// in for a full disk after load succeeded.
type failingSaves struct {
	storage.Provider
}

func (failingSaves) SaveRoutines([]models.Routine) error {
	return errors.New("disk full")
}

func TestWriteFailuresAreWarnedAndSwallowed(t *testing.T) {
	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "routinely.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("store init failed: %v", err)
	}

	a := New(failingSaves{store}, clock.Fixed(testNow))
	var warned []string
	a.Warn = func(msg string, keyvals ...any) {
		warned = append(warned, msg)
	}
	if err := a.Load(); err != nil {
		t.Fatalf("app load failed: %v", err)
	}

	r, err := a.AddRoutine(RoutineForm{Title: "Stretch", Time: "07:00", RepeatOption: models.RepeatDaily})
	if err != nil {
		t.Fatalf("write failure must not surface to the caller: %v", err)
	}
	if _, err := a.Routine(r.ID); err != nil {
		t.Errorf("routine should exist in memory despite the failed write: %v", err)
	}

	if len(warned) != 1 || warned[0] != "failed to save routines" {
		t.Errorf("expected one save warning, got %v", warned)
	}
}
