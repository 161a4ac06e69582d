package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"routinely/internal/models"
	_ "modernc.org/sqlite"
)

// SQLiteStore keeps each logical record as a JSON value in a single
// key-value table. The schema is one fixed table, created inline.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

const schema = `
CREATE TABLE IF NOT EXISTS records (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);`

func (s *SQLiteStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	// Seed the collection records so a fresh store reads as empty rather
	// than missing.
	if err := s.SaveRoutines([]models.Routine{}); err != nil {
		return err
	}
	return s.SaveGoals([]models.Goal{})
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return ErrNotInitialized
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	// The table may be missing when the file was created out of band.
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// getRecord unmarshals the value stored under key into out. It reports
// whether the key was present.
func (s *SQLiteStore) getRecord(key string, out any) (bool, error) {
	if s.db == nil {
		return false, fmt.Errorf("storage not loaded")
	}

	var value string
	err := s.db.QueryRow("SELECT value FROM records WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read record %s: %w", key, err)
	}

	if err := json.Unmarshal([]byte(value), out); err != nil {
		return false, fmt.Errorf("failed to parse record %s: %w", key, err)
	}
	return true, nil
}

func (s *SQLiteStore) saveRecord(key string, v any) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to serialize record %s: %w", key, err)
	}

	if _, err := s.db.Exec(
		"INSERT OR REPLACE INTO records (key, value) VALUES (?, ?)", key, string(data),
	); err != nil {
		return fmt.Errorf("failed to write record %s: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) GetRoutines() ([]models.Routine, error) {
	var routines []models.Routine
	if _, err := s.getRecord(KeyRoutines, &routines); err != nil {
		return nil, err
	}
	if routines == nil {
		routines = []models.Routine{}
	}
	return routines, nil
}

func (s *SQLiteStore) SaveRoutines(routines []models.Routine) error {
	return s.saveRecord(KeyRoutines, routines)
}

func (s *SQLiteStore) GetGoals() ([]models.Goal, error) {
	var goals []models.Goal
	if _, err := s.getRecord(KeyGoals, &goals); err != nil {
		return nil, err
	}
	if goals == nil {
		goals = []models.Goal{}
	}
	return goals, nil
}

func (s *SQLiteStore) SaveGoals(goals []models.Goal) error {
	return s.saveRecord(KeyGoals, goals)
}

func (s *SQLiteStore) GetProfile() (models.UserProfile, error) {
	profile := models.DefaultProfile()
	if _, err := s.getRecord(KeyProfile, &profile); err != nil {
		return models.DefaultProfile(), err
	}
	return profile, nil
}

func (s *SQLiteStore) SaveProfile(profile models.UserProfile) error {
	return s.saveRecord(KeyProfile, profile)
}

func (s *SQLiteStore) GetStats() (models.UserStats, error) {
	stats := models.DefaultStats()
	if _, err := s.getRecord(KeyStats, &stats); err != nil {
		return models.DefaultStats(), err
	}
	return stats, nil
}

func (s *SQLiteStore) SaveStats(stats models.UserStats) error {
	return s.saveRecord(KeyStats, stats)
}

func (s *SQLiteStore) GetSubscription() (models.UserSubscription, error) {
	sub := models.DefaultSubscription()
	if _, err := s.getRecord(KeySubscription, &sub); err != nil {
		return models.DefaultSubscription(), err
	}
	return sub, nil
}

func (s *SQLiteStore) SaveSubscription(sub models.UserSubscription) error {
	return s.saveRecord(KeySubscription, sub)
}

// GetDB exposes the underlying handle for diagnostics.
func (s *SQLiteStore) GetDB() *sql.DB {
	return s.db
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}
