// ABOUTME: Terminal wordmark for the camp brand
// ABOUTME: Compact is a bold inline name; large is the full name in a rounded panel

package widgets

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/markalston/campboard/internal/branding"
	"github.com/markalston/campboard/internal/tui/icons"
	"github.com/markalston/campboard/internal/tui/styles"
)

// Wordmark renders the camp name for terminals. Terminals cannot show the
// configured logo images, so both sizes are text; dark switches to the
// boosted palette.
func Wordmark(b branding.Branding, size branding.Size, dark bool) string {
	primary, text := styles.Foreground(dark)

	if size == branding.SizeCompact {
		return lipgloss.NewStyle().Foreground(primary).Bold(true).Render(b.Short())
	}

	name := lipgloss.NewStyle().Foreground(text).Bold(true).Render(b.Name)
	icon := lipgloss.NewStyle().Foreground(primary).Render(icons.Camp.String())

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(primary).
		Padding(0, 2).
		Render(icon + " " + name)
}
