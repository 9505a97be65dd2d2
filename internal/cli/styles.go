// Package cli provides styled terminal output using lipgloss.
package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// PrimaryColor is the main theme color.
	PrimaryColor = lipgloss.Color("#6AAA64")
	// GreenColor is the tile color of a correctly placed letter.
	GreenColor = lipgloss.Color("#6AAA64")
	// YellowColor is the tile color of a misplaced letter.
	YellowColor = lipgloss.Color("#C9B458")
	// GreyColor is the tile color of an absent letter.
	GreyColor = lipgloss.Color("#787C7E")
	// SuccessColor indicates successful operations.
	SuccessColor = lipgloss.Color("#4ECDC4") // Teal
	// WarningColor indicates warnings or caution messages.
	WarningColor = lipgloss.Color("#FFE66D")
	// ErrorColor indicates errors or failure messages.
	ErrorColor = lipgloss.Color("#FF6B6B")
	// InfoColor indicates informational messages.
	InfoColor = lipgloss.Color("#95E1D3")
	// SubtleColor indicates less prominent UI elements.
	SubtleColor = lipgloss.Color("#666666")

	// WarningStyle formats warning messages.
	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	// ErrorStyle formats error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	// InfoStyle formats informational messages.
	InfoStyle = lipgloss.NewStyle().
			Foreground(InfoColor)
)

// Icons.
const (
	SuccessIcon = "✅"
	ErrorIcon   = "❌"
	WarningIcon = "⚠️"
	ChartIcon   = "📊"
	TreeIcon    = "🌳"
	SearchIcon  = "🔍"
	PartyIcon   = "🎉"
	ArrowIcon   = "→"
)

// Rule is the heavy separator printed above and below section titles.
var Rule = strings.Repeat("=", 80)

// Divider is the light separator printed between buckets.
var Divider = strings.Repeat("-", 70)

// FormatError formats an error message with icon.
func FormatError(message string) string {
	return ErrorStyle.Render(ErrorIcon + " " + message)
}

// FormatWarning formats a warning message with icon.
func FormatWarning(message string) string {
	return WarningStyle.Render(WarningIcon + " " + message)
}
