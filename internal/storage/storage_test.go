package storage

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"routinely/internal/models"
)

func providers(t *testing.T) map[string]Provider {
	t.Helper()
	dir := t.TempDir()
	return map[string]Provider{
		"json":   NewJSONStore(filepath.Join(dir, "routinely.json")),
		"sqlite": NewSQLiteStore(filepath.Join(dir, "routinely.db")),
	}
}

func TestProvider_LoadBeforeInit(t *testing.T) {
	for name, store := range providers(t) {
		t.Run(name, func(t *testing.T) {
			if err := store.Load(); !errors.Is(err, ErrNotInitialized) {
				t.Errorf("Load before Init = %v, want ErrNotInitialized", err)
			}
		})
	}
}

func TestProvider_RoundTrip(t *testing.T) {
	created := time.Date(2025, 12, 30, 7, 0, 0, 0, time.UTC)

	routines := []models.Routine{
		{
			ID:             "r1",
			Title:          "Morning Stretch",
			Time:           "06:15",
			ReminderOffset: 5,
			RepeatOption:   models.RepeatCustom,
			CustomDays:     []models.DayOfWeek{models.DayMon, models.DayWed},
			IsEnabled:      true,
			CreatedAt:      created,
			UpdatedAt:      created,
		},
	}
	goals := []models.Goal{
		{
			ID:                "g1",
			Title:             "Drink Water",
			Type:              models.GoalCount,
			Frequency:         models.FrequencyDaily,
			TargetCount:       8,
			CurrentCount:      3,
			Streak:            4,
			LastCompletedDate: "2025-12-29",
			CreatedAt:         created,
			UpdatedAt:         created,
		},
	}

	for name, store := range providers(t) {
		t.Run(name, func(t *testing.T) {
			if err := store.Init(); err != nil {
				t.Fatalf("Init failed: %v", err)
			}
			defer store.Close()

			if err := store.SaveRoutines(routines); err != nil {
				t.Fatalf("SaveRoutines failed: %v", err)
			}
			if err := store.SaveGoals(goals); err != nil {
				t.Fatalf("SaveGoals failed: %v", err)
			}

			gotRoutines, err := store.GetRoutines()
			if err != nil {
				t.Fatalf("GetRoutines failed: %v", err)
			}
			if len(gotRoutines) != 1 || gotRoutines[0].ID != "r1" {
				t.Errorf("routines round-trip mismatch: %+v", gotRoutines)
			}
			if len(gotRoutines[0].CustomDays) != 2 {
				t.Errorf("custom days lost in round-trip: %+v", gotRoutines[0].CustomDays)
			}

			gotGoals, err := store.GetGoals()
			if err != nil {
				t.Fatalf("GetGoals failed: %v", err)
			}
			if len(gotGoals) != 1 || gotGoals[0].Streak != 4 || gotGoals[0].LastCompletedDate != "2025-12-29" {
				t.Errorf("goals round-trip mismatch: %+v", gotGoals)
			}
		})
	}
}

func TestProvider_MissingRecordsReturnDefaults(t *testing.T) {
	for name, store := range providers(t) {
		t.Run(name, func(t *testing.T) {
			if err := store.Init(); err != nil {
				t.Fatalf("Init failed: %v", err)
			}
			defer store.Close()

			routines, err := store.GetRoutines()
			if err != nil || len(routines) != 0 {
				t.Errorf("fresh store routines = %v, %v; want empty", routines, err)
			}

			profile, err := store.GetProfile()
			if err != nil {
				t.Fatalf("GetProfile failed: %v", err)
			}
			if profile != models.DefaultProfile() {
				t.Errorf("fresh store profile = %+v, want defaults", profile)
			}

			stats, err := store.GetStats()
			if err != nil || stats != models.DefaultStats() {
				t.Errorf("fresh store stats = %+v, %v; want zero defaults", stats, err)
			}

			sub, err := store.GetSubscription()
			if err != nil || sub.PlanType != models.PlanFree || !sub.IsActive {
				t.Errorf("fresh store subscription = %+v, %v; want free plan", sub, err)
			}
		})
	}
}

func TestProvider_SingletonRecords(t *testing.T) {
	end := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)

	for name, store := range providers(t) {
		t.Run(name, func(t *testing.T) {
			if err := store.Init(); err != nil {
				t.Fatalf("Init failed: %v", err)
			}
			defer store.Close()

			profile := models.DefaultProfile()
			profile.Name = "Sam"
			profile.Theme = models.ThemeLight
			if err := store.SaveProfile(profile); err != nil {
				t.Fatalf("SaveProfile failed: %v", err)
			}

			stats := models.UserStats{TotalRoutinesCompleted: 12, CurrentStreak: 3, BestStreak: 6, LastActiveDate: "2025-12-30"}
			if err := store.SaveStats(stats); err != nil {
				t.Fatalf("SaveStats failed: %v", err)
			}

			sub := models.UserSubscription{
				PlanType:        models.PlanPremium,
				PremiumDuration: models.Premium3Months,
				EndDate:         &end,
				IsActive:        true,
			}
			if err := store.SaveSubscription(sub); err != nil {
				t.Fatalf("SaveSubscription failed: %v", err)
			}

			gotProfile, _ := store.GetProfile()
			if gotProfile.Name != "Sam" || gotProfile.Theme != models.ThemeLight {
				t.Errorf("profile round-trip mismatch: %+v", gotProfile)
			}

			gotStats, _ := store.GetStats()
			if gotStats != stats {
				t.Errorf("stats round-trip mismatch: %+v", gotStats)
			}

			gotSub, _ := store.GetSubscription()
			if gotSub.PlanType != models.PlanPremium || gotSub.EndDate == nil || !gotSub.EndDate.Equal(end) {
				t.Errorf("subscription round-trip mismatch: %+v", gotSub)
			}
		})
	}
}

func TestJSONStore_InitTwiceFails(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "routinely.json"))

	if err := store.Init(); err != nil {
		t.Fatalf("first Init failed: %v", err)
	}
	if err := store.Init(); err == nil {
		t.Error("second Init should refuse to overwrite an existing store")
	}
}

func TestJSONStore_PersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "routinely.json")

	first := NewJSONStore(path)
	if err := first.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if err := first.SaveRoutines([]models.Routine{{ID: "r1", Title: "Wake Up", Time: "06:00", RepeatOption: models.RepeatDaily, IsEnabled: true}}); err != nil {
		t.Fatalf("SaveRoutines failed: %v", err)
	}

	second := NewJSONStore(path)
	if err := second.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	routines, err := second.GetRoutines()
	if err != nil || len(routines) != 1 || routines[0].ID != "r1" {
		t.Errorf("reloaded routines = %v, %v; want the saved routine", routines, err)
	}
}
