package templates

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"routinely/internal/models"
	"routinely/internal/schedule"
)

// Library holds the built-in template packs plus any user packs loaded
// from YAML files.
type Library struct {
	templates []models.RoutineTemplate
}

// NewLibrary returns a library seeded with the built-in packs.
func NewLibrary() *Library {
	return &Library{
		templates: append([]models.RoutineTemplate(nil), models.BuiltinTemplates...),
	}
}

// All returns the packs in load order, built-ins first.
func (l *Library) All() []models.RoutineTemplate {
	return append([]models.RoutineTemplate(nil), l.templates...)
}

// Find looks a pack up by id.
func (l *Library) Find(id string) (models.RoutineTemplate, bool) {
	for _, t := range l.templates {
		if t.ID == id {
			return t, true
		}
	}
	return models.RoutineTemplate{}, false
}

// LoadDir reads every *.yaml/*.yml file in dir as a template pack. A
// missing directory is fine; a malformed pack is an error. User packs
// with a built-in's id replace it.
func (l *Library) LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read template directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		tpl, err := loadFile(path)
		if err != nil {
			return fmt.Errorf("template pack %s: %w", entry.Name(), err)
		}
		l.add(tpl)
	}

	return nil
}

func (l *Library) add(tpl models.RoutineTemplate) {
	for i, existing := range l.templates {
		if existing.ID == tpl.ID {
			l.templates[i] = tpl
			return
		}
	}
	l.templates = append(l.templates, tpl)
}

func loadFile(path string) (models.RoutineTemplate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.RoutineTemplate{}, err
	}

	var tpl models.RoutineTemplate
	if err := yaml.Unmarshal(data, &tpl); err != nil {
		return models.RoutineTemplate{}, fmt.Errorf("failed to parse: %w", err)
	}

	if err := Validate(tpl); err != nil {
		return models.RoutineTemplate{}, err
	}
	return tpl, nil
}

// Validate checks a pack is usable before it reaches the routine store.
func Validate(tpl models.RoutineTemplate) error {
	if tpl.ID == "" {
		return fmt.Errorf("template id is required")
	}
	if tpl.Name == "" {
		return fmt.Errorf("template name is required")
	}
	if len(tpl.Routines) == 0 {
		return fmt.Errorf("template %q has no routines", tpl.ID)
	}

	for i, r := range tpl.Routines {
		if r.Title == "" {
			return fmt.Errorf("routine %d: title is required", i+1)
		}
		if !schedule.ValidTime(r.Time) {
			return fmt.Errorf("routine %q: invalid time %q, want HH:MM", r.Title, r.Time)
		}
		if !models.ValidReminderOffset(r.ReminderOffset) {
			return fmt.Errorf("routine %q: invalid reminder offset %d", r.Title, r.ReminderOffset)
		}
		switch r.RepeatOption {
		case models.RepeatDaily, models.RepeatWeekdays, models.RepeatCustom:
		default:
			return fmt.Errorf("routine %q: invalid repeat option %q", r.Title, r.RepeatOption)
		}
	}
	return nil
}
