// Package tui implements the interactive history browser.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/carbontrack/internal/ledger"
)

// Default dimensions before the first WindowSizeMsg arrives.
const (
	defaultWidth  = 80
	defaultHeight = 24
)

// pageStep is the rows jumped by PgUp/PgDn.
const pageStep = 7

// keyMap defines the history browser keybindings.
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Quit     key.Binding
}

// ShortHelp returns the bindings shown in the one-line help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp returns bindings for the expanded help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.PageUp, k.PageDown}, {k.Quit}}
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "previous day")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next day")),
		PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "week back")),
		PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "week forward")),
		Quit:     key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// HistoryModel is the Bubble Tea model for browsing daily emission
// records with a per-category detail pane.
type HistoryModel struct {
	days     []ledger.DayRecord
	selected int

	keys keyMap
	help help.Model

	width  int
	height int

	quitting bool
}

// NewHistoryModel creates a history browser over days (oldest first).
// The newest day starts selected.
func NewHistoryModel(days []ledger.DayRecord) *HistoryModel {
	selected := 0
	if len(days) > 0 {
		selected = len(days) - 1
	}
	return &HistoryModel{
		days:     days,
		selected: selected,
		keys:     defaultKeyMap(),
		help:     help.New(),
		width:    defaultWidth,
		height:   defaultHeight,
	}
}

// Selected returns the currently selected day index.
func (m *HistoryModel) Selected() int { return m.selected }

// Init implements tea.Model.
func (m *HistoryModel) Init() tea.Cmd { return nil }

// Update handles keyboard and resize messages.
func (m *HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			m.move(-1)
		case key.Matches(msg, m.keys.Down):
			m.move(1)
		case key.Matches(msg, m.keys.PageUp):
			m.move(-pageStep)
		case key.Matches(msg, m.keys.PageDown):
			m.move(pageStep)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}

	return m, nil
}

// move shifts the selection by delta, clamped to the list bounds.
func (m *HistoryModel) move(delta int) {
	if len(m.days) == 0 {
		return
	}
	m.selected += delta
	if m.selected < 0 {
		m.selected = 0
	}
	if m.selected > len(m.days)-1 {
		m.selected = len(m.days) - 1
	}
}
