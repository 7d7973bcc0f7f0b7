// Package picker is the interactive terminal menu for choosing a stored
// script.
package picker

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pike/scripts"
)

// Styles using ANSI colors 0–15 (follow terminal theme)
var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(14)).Bold(true)
	metaStyle     = lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(8))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(8))
)

// Model is the bubbletea model for the picker. The cursor wraps at both
// ends; confirm returns the item under it, cancel returns nothing.
type Model struct {
	items     []*scripts.Record
	cursor    int
	confirmed int // chosen index, -1 until confirmed
	cancelled bool
	keys      KeyMap
}

func newModel(items []*scripts.Record) Model {
	return Model{items: items, confirmed: -1, keys: defaultKeys}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Up):
		m.cursor = (m.cursor - 1 + len(m.items)) % len(m.items)

	case key.Matches(keyMsg, m.keys.Down):
		m.cursor = (m.cursor + 1) % len(m.items)

	case key.Matches(keyMsg, m.keys.Confirm):
		m.confirmed = m.cursor
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Cancel):
		m.cancelled = true
		return m, tea.Quit
	}

	return m, nil
}

func (m Model) View() string {
	s := titleStyle.Render("Run a script") + "\n\n"
	for i, record := range m.items {
		line := fmt.Sprintf("%-28s %s %8d bytes",
			record.Name,
			metaStyle.Render(record.Modified.Format("2006-01-02 15:04")),
			record.Size,
		)
		if i == m.cursor {
			s += selectedStyle.Render("> "+line) + "\n"
		} else {
			s += "  " + line + "\n"
		}
	}
	s += "\n" + helpStyle.Render("j/k move · enter run · esc cancel")
	return s
}

// Select shows the picker and returns the chosen record, or nil when the
// user cancels. An empty list returns nil immediately, without starting the
// program or switching terminal modes.
func Select(items []*scripts.Record) (*scripts.Record, error) {
	if len(items) == 0 {
		return nil, nil
	}

	final, err := tea.NewProgram(newModel(items)).Run()
	if err != nil {
		// A SIGINT during selection is a cancel, not a failure
		if errors.Is(err, tea.ErrInterrupted) {
			return nil, nil
		}
		return nil, err
	}

	m := final.(Model)
	if m.cancelled || m.confirmed < 0 {
		return nil, nil
	}
	return m.items[m.confirmed], nil
}
