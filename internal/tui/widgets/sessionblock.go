// ABOUTME: Compact session block widget for board displays
// ABOUTME: Combines session name, level badge, utilization bar, and occupancy in a panel

package widgets

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/markalston/campboard/internal/roster"
	"github.com/markalston/campboard/internal/tui/icons"
	"github.com/markalston/campboard/internal/tui/styles"
	"github.com/markalston/campboard/internal/utilization"
)

// SessionBlockConfig holds configuration for a session block
type SessionBlockConfig struct {
	Width    int
	Selected bool
	Dark     bool
}

// DefaultSessionBlockConfig returns sensible defaults
func DefaultSessionBlockConfig() SessionBlockConfig {
	return SessionBlockConfig{Width: 40}
}

// SessionBlock renders one roster session
func SessionBlock(s roster.Session, config SessionBlockConfig) string {
	if config.Width <= 0 {
		config.Width = 40
	}

	// Border (2) + padding (2)
	innerWidth := config.Width - 4
	// Leave room for brackets, " 100%" and the icon
	barWidth := max(4, innerWidth-11)

	reading := s.Reading()
	level := utilization.Classify(reading)
	_, text := styles.Foreground(config.Dark)

	title := lipgloss.NewStyle().Foreground(text).Bold(true).Render(truncate(s.Name, innerWidth-len(levelLabels[level])-3))
	header := lipgloss.JoinHorizontal(lipgloss.Top, title, " ", LevelBadge(level))

	occupancy := lipgloss.NewStyle().Foreground(styles.Muted).Render(
		fmt.Sprintf("%s %d / %d", icons.Users.String(), reading.Occupancy, reading.Capacity))

	panel := styles.Panel
	if config.Selected {
		panel = styles.ActivePanel
	}

	return panel.Width(config.Width - 2).Render(lipgloss.JoinVertical(lipgloss.Left,
		header,
		UtilizationBar(reading, barWidth),
		occupancy,
	))
}

// truncate shortens a string to maxLen with ellipsis if needed
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if maxLen <= 0 {
		return ""
	}
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
