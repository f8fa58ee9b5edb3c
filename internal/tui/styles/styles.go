// ABOUTME: Shared lipgloss styles for consistent terminal appearance
// ABOUTME: Defines the palette, level colors, and panel styles used across widgets

package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/markalston/campboard/internal/utilization"
)

var (
	// Colors - Core palette
	Primary = lipgloss.Color("#15803D") // Forest green
	Accent  = lipgloss.Color("#22C55E") // Bright green for highlights
	Muted   = lipgloss.Color("#6B7280") // Gray
	Text    = lipgloss.Color("#1F2937") // Dark text for light terminals
	Empty   = lipgloss.Color("#374151") // Unfilled bar cells

	// Colors - Boosted palette for dark backgrounds
	PrimaryBoost = lipgloss.Color("#4ADE80")
	TextBoost    = lipgloss.Color("#F9FAFB")

	// Colors - Utilization levels
	OverCapacity = lipgloss.Color("#DC2626") // Red
	High         = lipgloss.Color("#F97316") // Orange
	Elevated     = lipgloss.Color("#FACC15") // Yellow
	Healthy      = lipgloss.Color("#22C55E") // Green

	// Panels
	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Muted).
		Padding(0, 1)

	ActivePanel = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Accent).
			Padding(0, 1)

	// Help text
	Help = lipgloss.NewStyle().
		Foreground(Muted).
		MarginTop(1)

	// Error text
	Error = lipgloss.NewStyle().
		Foreground(OverCapacity).
		Bold(true)
)

// LevelColor returns the fill color for a utilization level
func LevelColor(level utilization.Level) lipgloss.Color {
	switch level {
	case utilization.OverCapacity:
		return OverCapacity
	case utilization.High:
		return High
	case utilization.Elevated:
		return Elevated
	default:
		return Healthy
	}
}

// Foreground picks the primary and text colors for the background hint
func Foreground(dark bool) (primary, text lipgloss.Color) {
	if dark {
		return PrimaryBoost, TextBoost
	}
	return Primary, Text
}
