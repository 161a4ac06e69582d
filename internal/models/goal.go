package models

import "time"

type GoalType string

const (
	GoalCheckbox GoalType = "checkbox"
	GoalCount    GoalType = "count"
)

type GoalFrequency string

const (
	FrequencyDaily  GoalFrequency = "daily"
	FrequencyWeekly GoalFrequency = "weekly"
)

// CountCap bounds a count goal with no explicit target.
const CountCap = 999

// Goal represents a recurring daily/weekly target tracked as binary or
// numeric progress. IsCompleted is persisted redundantly for count goals
// and must be recomputed by every mutation that touches CurrentCount.
type Goal struct {
	ID                string        `json:"id"`
	Title             string        `json:"title"`
	Type              GoalType      `json:"type"`
	Frequency         GoalFrequency `json:"frequency"`
	TargetCount       int           `json:"target_count,omitempty"`
	CurrentCount      int           `json:"current_count"`
	IsCompleted       bool          `json:"is_completed"`
	Streak            int           `json:"streak"`
	LastCompletedDate string        `json:"last_completed_date,omitempty"` // YYYY-MM-DD
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
}

// EffectiveTarget is the completion threshold for a count goal.
func (g Goal) EffectiveTarget() int {
	if g.TargetCount > 0 {
		return g.TargetCount
	}
	return 1
}

// CountLimit is the hard ceiling increments may reach.
func (g Goal) CountLimit() int {
	if g.TargetCount > 0 {
		return g.TargetCount
	}
	return CountCap
}
