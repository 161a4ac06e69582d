package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"routinely/internal/models"
)

// fileStore is the on-disk JSON layout: one field per logical record key.
// Pointer fields distinguish "never written" from a zero value so reads
// can merge in defaults.
type fileStore struct {
	Version      int                      `json:"version"`
	Routines     []models.Routine         `json:"daily-routines"`
	Goals        []models.Goal            `json:"daily-goals"`
	Profile      *models.UserProfile      `json:"user-profile,omitempty"`
	Stats        *models.UserStats        `json:"user-stats,omitempty"`
	Subscription *models.UserSubscription `json:"user-subscription,omitempty"`
}

type JSONStore struct {
	path  string
	store *fileStore
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.store = &fileStore{
		Version:  1,
		Routines: []models.Routine{},
		Goals:    []models.Goal{},
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return ErrNotInitialized
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.store = &fileStore{}
	if err := json.Unmarshal(data, s.store); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	// Ensure collections are initialized
	if s.store.Routines == nil {
		s.store.Routines = []models.Routine{}
	}
	if s.store.Goals == nil {
		s.store.Goals = []models.Goal{}
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) GetRoutines() ([]models.Routine, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	return append([]models.Routine(nil), s.store.Routines...), nil
}

func (s *JSONStore) SaveRoutines(routines []models.Routine) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.Routines = append([]models.Routine(nil), routines...)
	return s.save()
}

func (s *JSONStore) GetGoals() ([]models.Goal, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	return append([]models.Goal(nil), s.store.Goals...), nil
}

func (s *JSONStore) SaveGoals(goals []models.Goal) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.Goals = append([]models.Goal(nil), goals...)
	return s.save()
}

func (s *JSONStore) GetProfile() (models.UserProfile, error) {
	if s.store == nil {
		return models.DefaultProfile(), fmt.Errorf("storage not loaded")
	}
	if s.store.Profile == nil {
		return models.DefaultProfile(), nil
	}
	return *s.store.Profile, nil
}

func (s *JSONStore) SaveProfile(profile models.UserProfile) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.Profile = &profile
	return s.save()
}

func (s *JSONStore) GetStats() (models.UserStats, error) {
	if s.store == nil {
		return models.DefaultStats(), fmt.Errorf("storage not loaded")
	}
	if s.store.Stats == nil {
		return models.DefaultStats(), nil
	}
	return *s.store.Stats, nil
}

func (s *JSONStore) SaveStats(stats models.UserStats) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.Stats = &stats
	return s.save()
}

func (s *JSONStore) GetSubscription() (models.UserSubscription, error) {
	if s.store == nil {
		return models.DefaultSubscription(), fmt.Errorf("storage not loaded")
	}
	if s.store.Subscription == nil {
		return models.DefaultSubscription(), nil
	}
	return *s.store.Subscription, nil
}

func (s *JSONStore) SaveSubscription(sub models.UserSubscription) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.Subscription = &sub
	return s.save()
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
