package report

import (
	"io"
	"strings"

	"github.com/Veraticus/slate/internal/cli"
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all styling definitions for report formatting.
type Styles struct {
	Title   lipgloss.Style
	Key     lipgloss.Style
	Count   lipgloss.Style
	Subtle  lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Green   lipgloss.Style
	Yellow  lipgloss.Style
	Grey    lipgloss.Style
}

// NewStyles creates styles whose color profile follows the destination writer,
// so output redirected to a file or buffer stays free of escape codes.
func NewStyles(w io.Writer) *Styles {
	r := lipgloss.NewRenderer(w)

	return &Styles{
		Title:   r.NewStyle().Bold(true).Foreground(cli.PrimaryColor),
		Key:     r.NewStyle().Bold(true),
		Count:   r.NewStyle().Foreground(cli.InfoColor),
		Subtle:  r.NewStyle().Foreground(cli.SubtleColor),
		Success: r.NewStyle().Foreground(cli.SuccessColor),
		Error:   r.NewStyle().Foreground(cli.ErrorColor),
		Green:   r.NewStyle().Bold(true).Foreground(cli.GreenColor),
		Yellow:  r.NewStyle().Bold(true).Foreground(cli.YellowColor),
		Grey:    r.NewStyle().Foreground(cli.GreyColor),
	}
}

// RenderPattern colors each symbol of a pattern key like a Wordle tile.
func (s *Styles) RenderPattern(p string) string {
	var b strings.Builder
	for _, r := range p {
		sym := string(r)
		switch r {
		case 'g':
			b.WriteString(s.Green.Render(sym))
		case 'y':
			b.WriteString(s.Yellow.Render(sym))
		default:
			b.WriteString(s.Grey.Render(sym))
		}
	}
	return b.String()
}
