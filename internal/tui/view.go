package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"routinely/internal/models"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateToday:
		content = m.viewToday()
	case StateGoals:
		content = m.viewGoals()
	}

	sections := []string{m.viewTabs(), content}
	if m.status != "" {
		sections = append(sections, statusStyle.Render(m.status))
	}
	sections = append(sections, m.help.View(m))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{"Today", "Goals"} {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewToday() string {
	if len(m.agenda) == 0 {
		return dimStyle.Render("\n  No routines scheduled for today.\n")
	}

	var b strings.Builder
	b.WriteString("\n")
	now := m.app.Clock().TimeOfDay()
	for i, r := range m.agenda {
		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("> ")
		}
		line := fmt.Sprintf("%s%s  %s", cursor, r.Time, r.Title)
		if r.Time <= now {
			line += dimStyle.Render("  (past)")
		}
		b.WriteString(line + "\n")
	}

	if next := m.app.NextUp(); next != nil {
		b.WriteString(fmt.Sprintf("\n  Next up: %s at %s\n", next.Title, next.Time))
	}
	return b.String()
}

func (m Model) viewGoals() string {
	if len(m.goals) == 0 {
		return dimStyle.Render("\n  No goals yet.\n")
	}

	var b strings.Builder
	b.WriteString("\n")
	for i, g := range m.goals {
		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("> ")
		}

		mark := "○"
		if g.IsCompleted {
			mark = doneStyle.Render("✓")
		}

		progress := ""
		if g.Type == models.GoalCount {
			progress = fmt.Sprintf("  %d/%d", g.CurrentCount, g.EffectiveTarget())
		}

		b.WriteString(fmt.Sprintf("%s%s %s%s  %s\n",
			cursor, mark, g.Title, progress, dimStyle.Render(fmt.Sprintf("streak %d", g.Streak))))
	}
	return b.String()
}
