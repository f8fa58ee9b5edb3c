// ABOUTME: Terminal utilization bar colored by level
// ABOUTME: Shares classification and fill capping with the HTML bar

package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/markalston/campboard/internal/tui/styles"
	"github.com/markalston/campboard/internal/utilization"
)

const defaultBarWidth = 20

// FilledCells converts a reading to the number of filled cells out of width.
// Cells are clamped to [0, width]; a terminal cannot draw a negative bar.
func FilledCells(r utilization.Reading, width int) int {
	filled := int(utilization.FillWidth(r.Utilization) / 100.0 * float64(width))
	if filled < 0 {
		return 0
	}
	if filled > width {
		return width
	}
	return filled
}

// UtilizationBar renders [████░░░░]  42% ✓ for a reading
func UtilizationBar(r utilization.Reading, width int) string {
	if width <= 0 {
		width = defaultBarWidth
	}

	level := utilization.Classify(r)
	color := styles.LevelColor(level)
	filled := FilledCells(r, width)

	var bar strings.Builder
	bar.WriteString("[")
	bar.WriteString(lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled)))
	bar.WriteString(lipgloss.NewStyle().Foreground(styles.Empty).Render(strings.Repeat("░", width-filled)))
	bar.WriteString("]")

	percent := lipgloss.NewStyle().Foreground(color).Render(fmt.Sprintf("%4.0f%%", r.Utilization))
	return fmt.Sprintf("%s %s %s", bar.String(), percent, LevelIcon(level))
}
