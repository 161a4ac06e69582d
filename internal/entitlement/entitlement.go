package entitlement

import (
	"math"
	"time"

	"routinely/internal/clock"
	"routinely/internal/models"
	"routinely/internal/observable"
)

// Unlimited is returned by the Remaining* helpers on the premium plan.
const Unlimited = math.MaxInt

// Service gates routine and goal creation behind the free/premium plan.
// Plan state lives in an observable cell so the CLI and TUI see upgrades
// as soon as they happen.
type Service struct {
	cell  *observable.Cell[models.UserSubscription]
	clock clock.Clock
}

func NewService(cell *observable.Cell[models.UserSubscription], clk clock.Clock) *Service {
	return &Service{cell: cell, clock: clk}
}

// Expire collapses an expired subscription back to the free default. It is
// applied once per load, on read, never proactively.
func Expire(sub models.UserSubscription, now time.Time) models.UserSubscription {
	if sub.EndDate != nil && sub.EndDate.Before(now) {
		return models.DefaultSubscription()
	}
	return sub
}

func (s *Service) Subscription() models.UserSubscription {
	return s.cell.Get()
}

func (s *Service) IsPremium() bool {
	sub := s.cell.Get()
	return sub.PlanType == models.PlanPremium && sub.IsActive
}

// Upgrade activates a premium plan for the given duration, counted in
// calendar months from now.
func (s *Service) Upgrade(duration models.PremiumDuration) models.UserSubscription {
	now := s.clock.Now()
	end := now.AddDate(0, duration.Months(), 0)

	sub := models.UserSubscription{
		PlanType:        models.PlanPremium,
		PremiumDuration: duration,
		StartDate:       &now,
		EndDate:         &end,
		IsActive:        true,
	}
	s.cell.Set(sub)
	return sub
}

// Downgrade returns to the free plan immediately.
func (s *Service) Downgrade() models.UserSubscription {
	sub := models.DefaultSubscription()
	s.cell.Set(sub)
	return sub
}

func (s *Service) CanAddRoutine(current int) bool {
	if s.IsPremium() {
		return true
	}
	return current < models.FreePlanLimits.Routines
}

func (s *Service) CanAddGoal(current int) bool {
	if s.IsPremium() {
		return true
	}
	return current < models.FreePlanLimits.Goals
}

func (s *Service) RemainingRoutines(current int) int {
	if s.IsPremium() {
		return Unlimited
	}
	return max(0, models.FreePlanLimits.Routines-current)
}

func (s *Service) RemainingGoals(current int) int {
	if s.IsPremium() {
		return Unlimited
	}
	return max(0, models.FreePlanLimits.Goals-current)
}

// DaysRemaining reports the days left on a premium plan, rounded up, or -1
// when no end date applies.
func (s *Service) DaysRemaining() int {
	sub := s.cell.Get()
	if sub.EndDate == nil {
		return -1
	}
	diff := sub.EndDate.Sub(s.clock.Now())
	days := int(math.Ceil(diff.Hours() / 24))
	return max(0, days)
}
