package app

import (
	"github.com/google/uuid"

	"routinely/internal/models"
	"routinely/internal/schedule"
)

// RoutineForm carries the user-editable routine fields.
type RoutineForm struct {
	Title          string
	Time           string
	ReminderOffset int
	RepeatOption   models.RepeatOption
	CustomDays     []models.DayOfWeek
}

// Routines returns a copy of the routine collection in insertion order.
func (a *App) Routines() []models.Routine {
	return append([]models.Routine(nil), a.routines...)
}

// Routine looks up a routine by id.
func (a *App) Routine(id string) (models.Routine, error) {
	for _, r := range a.routines {
		if r.ID == id {
			return r, nil
		}
	}
	return models.Routine{}, ErrNotFound
}

// AddRoutine creates a routine from a form, enforcing the free-plan cap.
// CustomDays is always written out as the full equivalent day set so the
// field stays consistent with the repeat option.
func (a *App) AddRoutine(form RoutineForm) (models.Routine, error) {
	if !a.Plans.CanAddRoutine(len(a.routines)) {
		return models.Routine{}, ErrPlanLimit
	}

	now := a.clock.Now()
	r := models.Routine{
		ID:             uuid.New().String(),
		Title:          form.Title,
		Time:           form.Time,
		ReminderOffset: form.ReminderOffset,
		RepeatOption:   form.RepeatOption,
		CustomDays:     models.RepeatDays(form.RepeatOption, form.CustomDays),
		IsEnabled:      true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	a.routines = append(a.routines, r)
	a.persistRoutines()
	return r, nil
}

// UpdateRoutine replaces a routine's editable fields.
func (a *App) UpdateRoutine(id string, form RoutineForm) (models.Routine, error) {
	for i, r := range a.routines {
		if r.ID != id {
			continue
		}
		r.Title = form.Title
		r.Time = form.Time
		r.ReminderOffset = form.ReminderOffset
		r.RepeatOption = form.RepeatOption
		r.CustomDays = models.RepeatDays(form.RepeatOption, form.CustomDays)
		r.UpdatedAt = a.clock.Now()
		a.routines[i] = r
		a.persistRoutines()
		return r, nil
	}
	return models.Routine{}, ErrNotFound
}

// DeleteRoutine removes a routine permanently.
func (a *App) DeleteRoutine(id string) error {
	for i, r := range a.routines {
		if r.ID == id {
			a.routines = append(a.routines[:i], a.routines[i+1:]...)
			a.persistRoutines()
			return nil
		}
	}
	return ErrNotFound
}

// ToggleRoutine flips a routine's enabled state. Disabling is treated
// app-wide as "completed for today" and records an activity event;
// re-enabling has no stats side effect.
func (a *App) ToggleRoutine(id string) (models.Routine, error) {
	for i, r := range a.routines {
		if r.ID != id {
			continue
		}
		r.IsEnabled = !r.IsEnabled
		r.UpdatedAt = a.clock.Now()
		a.routines[i] = r
		a.persistRoutines()

		if !r.IsEnabled {
			a.recordActivity()
		}
		return r, nil
	}
	return models.Routine{}, ErrNotFound
}

// TodaysAgenda projects the enabled routines applicable today, sorted by
// time. Recomputed on every call; never mutates state.
func (a *App) TodaysAgenda() []models.Routine {
	return schedule.TodaysAgenda(a.routines, a.clock.WeekdayTag())
}

// NextUp returns the next routine later today, or nil.
func (a *App) NextUp() *models.Routine {
	return schedule.NextUpcoming(a.routines, a.clock.WeekdayTag(), a.clock.TimeOfDay())
}

// ApplyTemplate adds a template pack's routines, stopping silently at the
// free-plan cap. It returns how many were added and how many skipped.
func (a *App) ApplyTemplate(tpl models.RoutineTemplate) (added, skipped int) {
	for _, tr := range tpl.Routines {
		_, err := a.AddRoutine(RoutineForm{
			Title:          tr.Title,
			Time:           tr.Time,
			ReminderOffset: tr.ReminderOffset,
			RepeatOption:   tr.RepeatOption,
			CustomDays:     tr.CustomDays,
		})
		if err != nil {
			skipped++
			continue
		}
		added++
	}
	return added, skipped
}
