package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		m.clampOffset()
		return m, nil

	case tea.KeyMsg:
		if m.filtering {
			return m.updateFilter(msg)
		}
		return m.handleKeys(msg)
	}

	return m, nil
}

func (m Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Apply):
		m.filtering = false
		m.filter.Blur()
		return m, nil

	case key.Matches(msg, m.keymap.ClearFilter):
		m.filtering = false
		m.filter.Blur()
		m.filter.SetValue("")
		m.refreshKeys()
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.cursor = 0
	m.offset = 0
	m.refreshKeys()
	return m, cmd
}

func (m Model) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keymap.Filter):
		m.filtering = true
		cmd := m.filter.Focus()
		return m, cmd

	case key.Matches(msg, m.keymap.ClearFilter):
		if m.filter.Value() != "" {
			m.filter.SetValue("")
			m.refreshKeys()
		}

	case key.Matches(msg, m.keymap.ToggleGrouping):
		if m.grouping == GroupingPattern {
			m.grouping = GroupingSubtree
		} else {
			m.grouping = GroupingPattern
		}
		m.cursor = 0
		m.offset = 0
		m.refreshKeys()

	case key.Matches(msg, m.keymap.Up):
		m.moveCursor(-1)

	case key.Matches(msg, m.keymap.Down):
		m.moveCursor(1)

	case key.Matches(msg, m.keymap.PageUp):
		m.moveCursor(-m.bodyHeight())

	case key.Matches(msg, m.keymap.PageDown):
		m.moveCursor(m.bodyHeight())

	case key.Matches(msg, m.keymap.Home):
		m.moveCursor(-len(m.keys))

	case key.Matches(msg, m.keymap.End):
		m.moveCursor(len(m.keys))

	case key.Matches(msg, m.keymap.ScrollUp):
		m.viewport.LineUp(1)

	case key.Matches(msg, m.keymap.ScrollDown):
		m.viewport.LineDown(1)
	}

	return m, nil
}

func (m *Model) moveCursor(delta int) {
	if len(m.keys) == 0 {
		return
	}
	next := m.cursor + delta
	if next < 0 {
		next = 0
	}
	if next >= len(m.keys) {
		next = len(m.keys) - 1
	}
	if next == m.cursor {
		return
	}
	m.cursor = next
	m.clampOffset()
	m.refreshDetail()
}
