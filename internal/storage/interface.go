package storage

import (
	"errors"

	"routinely/internal/models"
)

// Logical record keys in the persisted store.
const (
	KeyRoutines     = "daily-routines"
	KeyGoals        = "daily-goals"
	KeyProfile      = "user-profile"
	KeyStats        = "user-stats"
	KeySubscription = "user-subscription"
)

// ErrNotInitialized is returned by Load when no store file exists yet.
var ErrNotInitialized = errors.New("storage not initialized, run 'routinely init' first")

// Provider persists the five logical records as JSON values in an opaque
// key-value store. Missing records come back as empty collections or
// documented defaults; there are no cross-key transactions.
//
// A Provider is not safe for concurrent use by multiple goroutines or
// processes sharing the same store path.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Records
	GetRoutines() ([]models.Routine, error)
	SaveRoutines([]models.Routine) error
	GetGoals() ([]models.Goal, error)
	SaveGoals([]models.Goal) error
	GetProfile() (models.UserProfile, error)
	SaveProfile(models.UserProfile) error
	GetStats() (models.UserStats, error)
	SaveStats(models.UserStats) error
	GetSubscription() (models.UserSubscription, error)
	SaveSubscription(models.UserSubscription) error

	// Utils
	GetConfigPath() string
}
