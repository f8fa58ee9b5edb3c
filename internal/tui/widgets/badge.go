// ABOUTME: Level badge widgets for quick visual status indication
// ABOUTME: Provides colored inline badges and icons per utilization level

package widgets

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/markalston/campboard/internal/tui/icons"
	"github.com/markalston/campboard/internal/tui/styles"
	"github.com/markalston/campboard/internal/utilization"
)

// Badge foregrounds per level; yellow and orange need dark text
var badgeFg = map[utilization.Level]lipgloss.Color{
	utilization.OverCapacity: lipgloss.Color("#FFFFFF"),
	utilization.High:         lipgloss.Color("#000000"),
	utilization.Elevated:     lipgloss.Color("#000000"),
	utilization.Healthy:      lipgloss.Color("#FFFFFF"),
}

// levelLabels are the short badge texts
var levelLabels = map[utilization.Level]string{
	utilization.OverCapacity: "OVER",
	utilization.High:         "HIGH",
	utilization.Elevated:     "BUSY",
	utilization.Healthy:      "OK",
}

// Badge renders text on a level-colored background
func Badge(text string, level utilization.Level) string {
	return lipgloss.NewStyle().
		Background(styles.LevelColor(level)).
		Foreground(badgeFg[level]).
		Padding(0, 1).
		Bold(true).
		Render(text)
}

// LevelBadge renders the predefined badge for a level (OK, BUSY, HIGH, OVER)
func LevelBadge(level utilization.Level) string {
	return Badge(levelLabels[level], level)
}

// LevelIcon returns the colored icon for a level
func LevelIcon(level utilization.Level) string {
	var icon icons.Icon
	switch level {
	case utilization.OverCapacity:
		icon = icons.Full
	case utilization.High:
		icon = icons.Critical
	case utilization.Elevated:
		icon = icons.Warning
	default:
		icon = icons.CheckOK
	}
	return lipgloss.NewStyle().Foreground(styles.LevelColor(level)).Render(icon.String())
}
