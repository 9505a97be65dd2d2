package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the browser.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	title := m.theme.Title.Render(m.title())
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.renderList(), m.renderDetail())

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		body,
		m.renderStatusBar(),
		m.help.View(m.keymap),
	)
}

func (m Model) title() string {
	groups := m.Groups()
	if groups == nil {
		return ""
	}
	if m.grouping == GroupingSubtree {
		return fmt.Sprintf("Subtrees after '%s': %d second guesses, %d paths",
			m.guess, groups.Len(), groups.Total())
	}
	return fmt.Sprintf("Colour patterns for '%s': %d patterns, %d words",
		m.guess, groups.Len(), groups.Total())
}

func (m Model) renderList() string {
	listWidth := m.width / listWidthRatio
	if listWidth < 12 {
		listWidth = 12
	}
	rows := m.bodyHeight()

	var lines []string
	if len(m.keys) == 0 {
		lines = append(lines, m.theme.Muted.Render("no buckets"))
	}

	groups := m.Groups()
	end := m.offset + rows
	if end > len(m.keys) {
		end = len(m.keys)
	}
	for i := m.offset; i < end; i++ {
		k := m.keys[i]
		label := k
		if m.grouping == GroupingPattern && i != m.cursor {
			label = m.theme.RenderPattern(k)
		}
		line := fmt.Sprintf("%s %s", label, m.theme.Count.Render(fmt.Sprintf("(%d)", groups.Count(k))))
		if i == m.cursor {
			line = m.theme.Selected.Render(fmt.Sprintf("%s (%d)", k, groups.Count(k)))
		}
		lines = append(lines, line)
	}

	return m.theme.BorderedBox.
		Width(listWidth).
		Height(rows).
		Render(strings.Join(lines, "\n"))
}

func (m Model) renderDetail() string {
	return m.theme.BorderedBox.
		Width(m.viewport.Width + 2).
		Height(m.viewport.Height).
		Render(m.viewport.View())
}

func (m Model) renderStatusBar() string {
	if m.filtering {
		return m.filter.View()
	}

	status := fmt.Sprintf("mode: %s", m.grouping)
	if f := m.filter.Value(); f != "" {
		status += fmt.Sprintf("  filter: %s (%d of %d)", f, len(m.keys), m.Groups().Len())
	}
	if key, ok := m.Selected(); ok {
		status += fmt.Sprintf("  bucket %d/%d: %s", m.cursor+1, len(m.keys), key)
	}
	return m.theme.StatusBar.Render(status)
}
