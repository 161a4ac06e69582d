package models

import "time"

type PlanType string

const (
	PlanFree    PlanType = "free"
	PlanPremium PlanType = "premium"
)

type PremiumDuration string

const (
	Premium1Month  PremiumDuration = "1_month"
	Premium3Months PremiumDuration = "3_months"
	Premium6Months PremiumDuration = "6_months"
	Premium1Year   PremiumDuration = "1_year"
)

// Months returns the calendar length of a premium duration.
func (d PremiumDuration) Months() int {
	switch d {
	case Premium1Month:
		return 1
	case Premium3Months:
		return 3
	case Premium6Months:
		return 6
	case Premium1Year:
		return 12
	default:
		return 0
	}
}

func (d PremiumDuration) Label() string {
	switch d {
	case Premium1Month:
		return "1 Month"
	case Premium3Months:
		return "3 Months"
	case Premium6Months:
		return "6 Months"
	case Premium1Year:
		return "1 Year"
	default:
		return string(d)
	}
}

// UserSubscription records the active plan. EndDate is checked at load
// time only; an expired record collapses back to the free default.
type UserSubscription struct {
	PlanType        PlanType        `json:"plan_type"`
	PremiumDuration PremiumDuration `json:"premium_duration,omitempty"`
	StartDate       *time.Time      `json:"start_date,omitempty"`
	EndDate         *time.Time      `json:"end_date,omitempty"`
	IsActive        bool            `json:"is_active"`
}

func DefaultSubscription() UserSubscription {
	return UserSubscription{PlanType: PlanFree, IsActive: true}
}

// PlanLimits caps entity counts on the free plan.
type PlanLimits struct {
	Routines int
	Goals    int
}

var FreePlanLimits = PlanLimits{Routines: 5, Goals: 3}

type PlanFeature struct {
	Text     string `json:"text"`
	Included bool   `json:"included"`
}

// Plan is catalog data for the plans screen.
type Plan struct {
	ID       PlanType        `json:"id"`
	Name     string          `json:"name"`
	Price    int             `json:"price"`
	Duration PremiumDuration `json:"duration,omitempty"`
	Discount int             `json:"discount,omitempty"`
	Features []PlanFeature   `json:"features"`
}

var premiumFeatures = []PlanFeature{
	{Text: "No ads", Included: true},
	{Text: "Unlimited routines", Included: true},
	{Text: "Unlimited goals", Included: true},
	{Text: "Advanced alarms", Included: true},
	{Text: "Stats & streaks", Included: true},
	{Text: "Custom themes", Included: true},
}

var FreePlan = Plan{
	ID:    PlanFree,
	Name:  "Free",
	Price: 0,
	Features: []PlanFeature{
		{Text: "Up to 5 routines", Included: true},
		{Text: "Up to 3 goals", Included: true},
		{Text: "Basic alarms", Included: true},
		{Text: "Advanced stats", Included: false},
		{Text: "Custom alarm sounds", Included: false},
		{Text: "Ad-free experience", Included: false},
	},
}

var PremiumPlans = []Plan{
	{ID: PlanPremium, Name: "Premium", Price: 39, Duration: Premium1Month, Features: premiumFeatures},
	{ID: PlanPremium, Name: "Premium", Price: 109, Duration: Premium3Months, Discount: 10, Features: premiumFeatures},
	{ID: PlanPremium, Name: "Premium", Price: 189, Duration: Premium6Months, Discount: 20, Features: premiumFeatures},
	{ID: PlanPremium, Name: "Premium", Price: 329, Duration: Premium1Year, Discount: 30, Features: premiumFeatures},
}
