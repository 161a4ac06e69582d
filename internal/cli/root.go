package cli

import (
	"fmt"
	"strings"

	"routinely/internal/app"
	"routinely/internal/models"
	"routinely/internal/storage"
	"routinely/internal/templates"
)

type Context struct {
	Store     storage.Provider
	App       *app.App
	Templates *templates.Library
}

// parseDays turns a comma-separated list of day names into tags.
func parseDays(s string) ([]models.DayOfWeek, error) {
	dayMap := map[string]models.DayOfWeek{
		"sun": models.DaySun, "sunday": models.DaySun,
		"mon": models.DayMon, "monday": models.DayMon,
		"tue": models.DayTue, "tuesday": models.DayTue,
		"wed": models.DayWed, "wednesday": models.DayWed,
		"thu": models.DayThu, "thursday": models.DayThu,
		"fri": models.DayFri, "friday": models.DayFri,
		"sat": models.DaySat, "saturday": models.DaySat,
	}

	var days []models.DayOfWeek
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(strings.ToLower(part))
		if part == "" {
			continue
		}
		tag, ok := dayMap[part]
		if !ok {
			return nil, fmt.Errorf("invalid weekday: %s", part)
		}
		days = append(days, tag)
	}
	return days, nil
}

func formatRepeat(r models.Routine) string {
	switch r.RepeatOption {
	case models.RepeatDaily:
		return "daily"
	case models.RepeatWeekdays:
		return "weekdays"
	case models.RepeatCustom:
		if len(r.CustomDays) == 0 {
			return "custom (no days)"
		}
		var days []string
		for _, d := range r.CustomDays {
			days = append(days, string(d))
		}
		return "custom on " + strings.Join(days, ",")
	default:
		return "unknown"
	}
}

func formatGoalProgress(g models.Goal) string {
	switch g.Type {
	case models.GoalCount:
		return fmt.Sprintf("%d/%d", g.CurrentCount, g.EffectiveTarget())
	default:
		if g.IsCompleted {
			return "done"
		}
		return "open"
	}
}

func enabledMark(enabled bool) string {
	if enabled {
		return "✓"
	}
	return "○"
}
