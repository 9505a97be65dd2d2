// Package themes holds the color schemes of the bucket browser.
package themes

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the visual style for the TUI.
type Theme struct {
	Title       lipgloss.Style
	Subtitle    lipgloss.Style
	Normal      lipgloss.Style
	Selected    lipgloss.Style
	Count       lipgloss.Style
	Muted       lipgloss.Style
	BorderedBox lipgloss.Style
	StatusBar   lipgloss.Style
	StatusError lipgloss.Style
	TileGreen   lipgloss.Style
	TileYellow  lipgloss.Style
	TileGrey    lipgloss.Style
	Primary     lipgloss.Color
	Border      lipgloss.Color
}

// Default is the default theme.
var Default = Theme{
	Primary: lipgloss.Color("#7c3aed"),
	Border:  lipgloss.Color("#404040"),

	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#fafafa")),
	Subtitle: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#a3a3a3")),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#fafafa")),
	Selected: lipgloss.NewStyle().
		Background(lipgloss.Color("#7c3aed")).
		Foreground(lipgloss.Color("#fafafa")).
		Bold(true),
	Count: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#3b82f6")),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#737373")),
	BorderedBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#404040")).
		Padding(0, 1),
	StatusBar: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#a3a3a3")),
	StatusError: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#ef4444")).
		Bold(true),

	TileGreen: lipgloss.NewStyle().
		Background(lipgloss.Color("#538d4e")).
		Foreground(lipgloss.Color("#ffffff")).
		Bold(true),
	TileYellow: lipgloss.NewStyle().
		Background(lipgloss.Color("#b59f3b")).
		Foreground(lipgloss.Color("#ffffff")).
		Bold(true),
	TileGrey: lipgloss.NewStyle().
		Background(lipgloss.Color("#3a3a3c")).
		Foreground(lipgloss.Color("#ffffff")),
}

// CatppuccinMocha is the Catppuccin Mocha theme.
var CatppuccinMocha = Theme{
	Primary: lipgloss.Color("#cba6f7"),
	Border:  lipgloss.Color("#45475a"),

	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#cdd6f4")),
	Subtitle: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#a6adc8")),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#cdd6f4")),
	Selected: lipgloss.NewStyle().
		Background(lipgloss.Color("#cba6f7")).
		Foreground(lipgloss.Color("#1e1e2e")).
		Bold(true),
	Count: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#89dceb")),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#6c7086")),
	BorderedBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#45475a")).
		Padding(0, 1),
	StatusBar: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#a6adc8")),
	StatusError: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#f38ba8")).
		Bold(true),

	TileGreen: lipgloss.NewStyle().
		Background(lipgloss.Color("#a6e3a1")).
		Foreground(lipgloss.Color("#1e1e2e")).
		Bold(true),
	TileYellow: lipgloss.NewStyle().
		Background(lipgloss.Color("#f9e2af")).
		Foreground(lipgloss.Color("#1e1e2e")).
		Bold(true),
	TileGrey: lipgloss.NewStyle().
		Background(lipgloss.Color("#45475a")).
		Foreground(lipgloss.Color("#cdd6f4")),
}

// ByName returns the theme called name.
func ByName(name string) (Theme, error) {
	switch name {
	case "", "default":
		return Default, nil
	case "catppuccin", "catppuccin-mocha":
		return CatppuccinMocha, nil
	default:
		return Theme{}, fmt.Errorf("unknown theme %q", name)
	}
}

// RenderPattern draws a pattern key as a row of tiles.
func (t Theme) RenderPattern(p string) string {
	tiles := make([]string, 0, len(p))
	for _, r := range p {
		sym := string(r)
		switch r {
		case 'g':
			tiles = append(tiles, t.TileGreen.Render(sym))
		case 'y':
			tiles = append(tiles, t.TileYellow.Render(sym))
		default:
			tiles = append(tiles, t.TileGrey.Render(sym))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tiles...)
}
