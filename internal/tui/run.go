package tui

import (
	"context"
	"fmt"
	"io"

	"github.com/Veraticus/slate/internal/classification"
	tea "github.com/charmbracelet/bubbletea"
)

// Run opens the browser and blocks until the user quits or ctx is cancelled.
func Run(ctx context.Context, in io.Reader, out io.Writer, patterns, subtrees *classification.Groups, opts ...Option) error {
	if patterns == nil || subtrees == nil {
		return fmt.Errorf("both groupings are required")
	}

	p := tea.NewProgram(
		New(patterns, subtrees, opts...),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("browser failed: %w", err)
	}
	return nil
}
