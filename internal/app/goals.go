package app

import (
	"github.com/google/uuid"

	"routinely/internal/models"
	"routinely/internal/tracker"
)

// GoalForm carries the user-editable goal fields.
type GoalForm struct {
	Title       string
	Type        models.GoalType
	Frequency   models.GoalFrequency
	TargetCount int
}

// Goals returns a copy of the goal collection in insertion order.
func (a *App) Goals() []models.Goal {
	return append([]models.Goal(nil), a.goals...)
}

// Goal looks up a goal by id.
func (a *App) Goal(id string) (models.Goal, error) {
	for _, g := range a.goals {
		if g.ID == id {
			return g, nil
		}
	}
	return models.Goal{}, ErrNotFound
}

// AddGoal creates a goal from a form, enforcing the free-plan cap.
func (a *App) AddGoal(form GoalForm) (models.Goal, error) {
	if !a.Plans.CanAddGoal(len(a.goals)) {
		return models.Goal{}, ErrPlanLimit
	}

	now := a.clock.Now()
	g := models.Goal{
		ID:          uuid.New().String(),
		Title:       form.Title,
		Type:        form.Type,
		Frequency:   form.Frequency,
		TargetCount: form.TargetCount,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	a.goals = append(a.goals, g)
	a.persistGoals()
	return g, nil
}

// UpdateGoal replaces a goal's editable fields. Progress, streak, and
// completion state carry over unchanged.
func (a *App) UpdateGoal(id string, form GoalForm) (models.Goal, error) {
	return a.mutateGoal(id, func(g models.Goal) models.Goal {
		g.Title = form.Title
		g.Type = form.Type
		g.Frequency = form.Frequency
		g.TargetCount = form.TargetCount
		g.UpdatedAt = a.clock.Now()
		return g
	})
}

// DeleteGoal removes a goal permanently.
func (a *App) DeleteGoal(id string) error {
	for i, g := range a.goals {
		if g.ID == id {
			a.goals = append(a.goals[:i], a.goals[i+1:]...)
			a.persistGoals()
			return nil
		}
	}
	return ErrNotFound
}

// ToggleGoalComplete flips a goal's done state.
func (a *App) ToggleGoalComplete(id string) (models.Goal, error) {
	return a.mutateGoal(id, func(g models.Goal) models.Goal {
		return tracker.ToggleComplete(g, a.clock.Today(), a.clock.Now())
	})
}

// IncrementGoal advances a count goal by one. Checkbox goals are left
// untouched.
func (a *App) IncrementGoal(id string) (models.Goal, error) {
	return a.mutateGoal(id, func(g models.Goal) models.Goal {
		return tracker.IncrementCount(g, a.clock.Today(), a.clock.Now())
	})
}

// DecrementGoal steps a count goal back by one, floored at zero.
func (a *App) DecrementGoal(id string) (models.Goal, error) {
	return a.mutateGoal(id, func(g models.Goal) models.Goal {
		return tracker.DecrementCount(g, a.clock.Now())
	})
}

// CompletedGoalsToday counts goals currently marked complete.
func (a *App) CompletedGoalsToday() int {
	n := 0
	for _, g := range a.goals {
		if g.IsCompleted {
			n++
		}
	}
	return n
}

// mutateGoal applies fn to one goal atomically and persists the result.
func (a *App) mutateGoal(id string, fn func(models.Goal) models.Goal) (models.Goal, error) {
	for i, g := range a.goals {
		if g.ID != id {
			continue
		}
		updated := fn(g)
		a.goals[i] = updated
		a.persistGoals()
		return updated, nil
	}
	return models.Goal{}, ErrNotFound
}
