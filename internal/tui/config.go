package tui

import (
	"github.com/Veraticus/slate/internal/classification"
	"github.com/Veraticus/slate/internal/tui/themes"
)

// Grouping selects which bucket set the browser shows.
type Grouping int

const (
	GroupingPattern Grouping = iota
	GroupingSubtree
)

// String returns the mode name used on the command line.
func (g Grouping) String() string {
	if g == GroupingSubtree {
		return "subtree"
	}
	return "color"
}

// Config holds TUI configuration.
type Config struct {
	Theme    themes.Theme
	Patterns *classification.Groups
	Subtrees *classification.Groups
	Guess    string
	Width    int
	Height   int
	Grouping Grouping
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

func defaultConfig() Config {
	return Config{
		Theme:    themes.Default,
		Guess:    "slate",
		Width:    80,
		Height:   24,
		Grouping: GroupingPattern,
	}
}

// WithTheme sets the color theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithGrouping sets the grouping shown first.
func WithGrouping(g Grouping) Option {
	return func(c *Config) {
		c.Grouping = g
	}
}

// WithSize sets the initial terminal size used before the first resize event.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithGuess sets the opening guess shown in the title.
func WithGuess(guess string) Option {
	return func(c *Config) {
		c.Guess = guess
	}
}
