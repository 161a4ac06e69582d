package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"routinely/internal/models"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		m.status = ""
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % tabCount
			m.clampCursor()
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state - 1 + tabCount) % tabCount
			m.clampCursor()
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < m.listLen()-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Refresh):
			if err := m.app.Load(); err != nil {
				m.status = fmt.Sprintf("reload failed: %v", err)
				break
			}
			m.refresh()
		case key.Matches(msg, m.keys.Toggle):
			m.toggleSelected()
		case key.Matches(msg, m.keys.Increment):
			m.stepSelected(+1)
		case key.Matches(msg, m.keys.Decrement):
			m.stepSelected(-1)
		}
	}

	return m, nil
}

func (m *Model) toggleSelected() {
	switch m.state {
	case StateToday:
		if m.cursor >= len(m.agenda) {
			return
		}
		r, err := m.app.ToggleRoutine(m.agenda[m.cursor].ID)
		if err != nil {
			m.status = err.Error()
			return
		}
		if !r.IsEnabled {
			m.status = fmt.Sprintf("%s marked done for today", r.Title)
		}
		m.refresh()
	case StateGoals:
		if m.cursor >= len(m.goals) {
			return
		}
		g := m.goals[m.cursor]
		if g.Type == models.GoalCount {
			m.stepSelected(+1)
			return
		}
		if _, err := m.app.ToggleGoalComplete(g.ID); err != nil {
			m.status = err.Error()
			return
		}
		m.refresh()
	}
}

func (m *Model) stepSelected(delta int) {
	if m.state != StateGoals || m.cursor >= len(m.goals) {
		return
	}
	g := m.goals[m.cursor]
	if g.Type != models.GoalCount {
		return
	}

	var err error
	if delta > 0 {
		_, err = m.app.IncrementGoal(g.ID)
	} else {
		_, err = m.app.DecrementGoal(g.ID)
	}
	if err != nil {
		m.status = err.Error()
		return
	}
	m.refresh()
}
