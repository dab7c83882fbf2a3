// Package style defines the terminal styling used by dirkeep reports:
// lipgloss adaptive styles for text and pterm status styles for
// outcome markers. Colors adjust to light and dark terminal themes.
package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Base styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true)

	// Rule directory paths
	PathStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	CountStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)
)

// Helper functions
func Bold(s string) string {
	return lipgloss.NewStyle().Bold(true).Render(s)
}

func Italic(s string) string {
	return lipgloss.NewStyle().Italic(true).Render(s)
}

func Indent(s string, level int) string {
	return lipgloss.NewStyle().PaddingLeft(level * 2).Render(s)
}
