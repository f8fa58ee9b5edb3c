// ABOUTME: Class assembly for the camp logo component
// ABOUTME: Combines size, dark-background boost, and caller CSS classes

package components

import (
	"strings"

	"github.com/markalston/campboard/internal/branding"
)

// CSS classes applied to logo images and text, by size
var (
	imageSizeClasses = map[branding.Size]string{
		branding.SizeCompact: "h-8 w-auto",
		branding.SizeLarge:   "h-16 w-auto",
	}
	textSizeClasses = map[branding.Size]string{
		branding.SizeCompact: "text-lg font-bold tracking-tight",
		branding.SizeLarge:   "text-3xl font-bold tracking-tight",
	}
)

// DarkBoostClasses lift a logo image for legibility on dark surfaces
const DarkBoostClasses = "brightness-110 contrast-125"

// LogoProps are the per-render inputs of Logo
type LogoProps struct {
	Size           branding.Size
	ExtraClass     string // appended verbatim after computed classes
	DarkBackground bool
}

// LogoClasses returns the class list for an image (image=true) or a text
// logo. The dark-background boost only applies to images.
func LogoClasses(p LogoProps, image bool) string {
	if !image {
		return joinClasses(textSizeClasses[p.Size], p.ExtraClass)
	}
	boost := ""
	if p.DarkBackground {
		boost = DarkBoostClasses
	}
	return joinClasses(imageSizeClasses[p.Size], boost, p.ExtraClass)
}

func joinClasses(parts ...string) string {
	fields := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			fields = append(fields, p)
		}
	}
	return strings.Join(fields, " ")
}
