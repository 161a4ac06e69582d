package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"routinely/internal/app"
	"routinely/internal/models"
)

type SessionState int

const (
	StateToday SessionState = iota
	StateGoals

	tabCount = 2
)

// Model is a two-tab view over the loaded app state. All mutations go
// through the App so the same reset and streak rules apply as in the CLI.
type Model struct {
	app      *app.App
	state    SessionState
	keys     KeyMap
	help     help.Model
	cursor   int
	status   string
	quitting bool
	width    int
	height   int

	agenda []models.Routine
	goals  []models.Goal
}

// NewModel builds the TUI over an already-loaded App.
func NewModel(a *app.App) Model {
	m := Model{
		app:   a,
		state: StateToday,
		keys:  DefaultKeyMap(),
		help:  help.New(),
	}
	m.refresh()
	return m
}

// refresh re-reads the projected agenda and goal list from the app.
func (m *Model) refresh() {
	m.agenda = m.app.TodaysAgenda()
	m.goals = m.app.Goals()
	m.clampCursor()
}

func (m *Model) clampCursor() {
	n := m.listLen()
	if n == 0 {
		m.cursor = 0
		return
	}
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) listLen() int {
	if m.state == StateGoals {
		return len(m.goals)
	}
	return len(m.agenda)
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Toggle}
	if m.state == StateGoals {
		keys = append(keys, m.keys.Increment, m.keys.Decrement)
	}
	return append(keys, m.keys.Quit, m.keys.Help)
}

func (m Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help},
		{m.keys.Up, m.keys.Down, m.keys.Toggle, m.keys.Increment, m.keys.Decrement, m.keys.Refresh},
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}
