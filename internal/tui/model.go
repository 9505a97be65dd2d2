// Package tui implements the interactive bucket browser.
package tui

import (
	"strings"

	"github.com/Veraticus/slate/internal/classification"
	"github.com/Veraticus/slate/internal/tui/themes"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

const listWidthRatio = 3 // list gets 1/listWidthRatio of the width

// Model holds the browser state.
type Model struct {
	theme     themes.Theme
	patterns  *classification.Groups
	subtrees  *classification.Groups
	keymap    KeyMap
	help      help.Model
	filter    textinput.Model
	viewport  viewport.Model
	guess     string
	keys      []string
	cursor    int
	offset    int
	width     int
	height    int
	grouping  Grouping
	filtering bool
	quitting  bool
}

// New creates a browser over both groupings.
func New(patterns, subtrees *classification.Groups, opts ...Option) Model {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	ti := textinput.New()
	ti.Placeholder = "filter keys"
	ti.Prompt = "/"
	ti.CharLimit = 32

	m := Model{
		theme:    cfg.Theme,
		patterns: patterns,
		subtrees: subtrees,
		keymap:   DefaultKeyMap(),
		help:     help.New(),
		filter:   ti,
		viewport: viewport.New(0, 0),
		guess:    cfg.Guess,
		grouping: cfg.Grouping,
	}
	m.resize(cfg.Width, cfg.Height)
	m.refreshKeys()
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Groups returns the grouping currently shown.
func (m Model) Groups() *classification.Groups {
	if m.grouping == GroupingSubtree {
		return m.subtrees
	}
	return m.patterns
}

// Grouping returns the grouping mode currently shown.
func (m Model) Grouping() Grouping {
	return m.grouping
}

// VisibleKeys returns the keys that pass the current filter.
func (m Model) VisibleKeys() []string {
	return append([]string(nil), m.keys...)
}

// Selected returns the key under the cursor.
func (m Model) Selected() (string, bool) {
	if len(m.keys) == 0 {
		return "", false
	}
	return m.keys[m.cursor], true
}

// Filter returns the current filter text.
func (m Model) Filter() string {
	return m.filter.Value()
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width

	detailWidth := width - width/listWidthRatio - 4
	if detailWidth < 10 {
		detailWidth = 10
	}
	m.viewport.Width = detailWidth
	m.viewport.Height = m.bodyHeight()
}

// bodyHeight is the number of rows left for the list and detail panes.
func (m Model) bodyHeight() int {
	h := m.height - 6 // title, borders, filter line and help line
	if h < 1 {
		h = 1
	}
	return h
}

// refreshKeys recomputes the visible keys and clamps the cursor.
func (m *Model) refreshKeys() {
	groups := m.Groups()
	m.keys = nil
	if groups != nil {
		query := strings.ToLower(strings.TrimSpace(m.filter.Value()))
		for _, k := range groups.SortedKeys() {
			if query == "" || strings.Contains(k, query) {
				m.keys = append(m.keys, k)
			}
		}
	}

	if m.cursor >= len(m.keys) {
		m.cursor = len(m.keys) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.clampOffset()
	m.refreshDetail()
}

func (m *Model) clampOffset() {
	rows := m.bodyHeight()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+rows {
		m.offset = m.cursor - rows + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

// refreshDetail loads the selected bucket's paths into the viewport.
func (m *Model) refreshDetail() {
	key, ok := m.Selected()
	if !ok {
		m.viewport.SetContent("")
		return
	}

	recs := m.Groups().Sorted(key)
	lines := make([]string, 0, len(recs))
	for _, rec := range recs {
		lines = append(lines, rec.Line)
	}
	m.viewport.SetContent(strings.Join(lines, "\n"))
	m.viewport.GotoTop()
}
