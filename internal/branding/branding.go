// ABOUTME: Camp branding collaborator consumed by logo renderers
// ABOUTME: Resolves display names and per-size logo image paths from config or YAML

package branding

import (
	"fmt"
	"os"
	"strings"

	"github.com/markalston/campboard/internal/config"
	"gopkg.in/yaml.v3"
)

// Size selects a logo variant
type Size int

const (
	SizeCompact Size = iota
	SizeLarge
)

// String returns the flag/query name of the size
func (s Size) String() string {
	switch s {
	case SizeCompact:
		return "compact"
	case SizeLarge:
		return "large"
	default:
		return "unknown"
	}
}

// ParseSize converts a flag or query value into a Size. An empty value
// selects compact.
func ParseSize(s string) (Size, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "compact", "small", "sm":
		return SizeCompact, nil
	case "large", "lg":
		return SizeLarge, nil
	default:
		return SizeCompact, fmt.Errorf("unknown logo size %q (want compact or large)", s)
	}
}

// LogoResolver looks up the image path for a logo size. An empty string
// means no image is configured for that size.
type LogoResolver interface {
	LogoPath(size Size) string
}

// StaticLogos is a LogoResolver backed by two fixed paths
type StaticLogos struct {
	Compact string `yaml:"compact"`
	Large   string `yaml:"large"`
}

// LogoPath implements LogoResolver
func (l StaticLogos) LogoPath(size Size) string {
	switch size {
	case SizeLarge:
		return l.Large
	default:
		return l.Compact
	}
}

// Branding is the read-only camp identity shared by all renderers
type Branding struct {
	Name      string
	ShortName string
	Logos     LogoResolver
}

// Short returns the short display name, falling back to the full name
func (b Branding) Short() string {
	if b.ShortName != "" {
		return b.ShortName
	}
	return b.Name
}

// ImagePath returns the configured image path for size, or "" if none
func (b Branding) ImagePath(size Size) string {
	if b.Logos == nil {
		return ""
	}
	return strings.TrimSpace(b.Logos.LogoPath(size))
}

// file is the on-disk YAML shape of a branding file
type file struct {
	Name      string      `yaml:"name"`
	ShortName string      `yaml:"short_name"`
	Logos     StaticLogos `yaml:"logos"`
}

// LoadFile reads branding from a YAML file
func LoadFile(path string) (Branding, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Branding{}, fmt.Errorf("read branding file: %w", err)
	}

	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Branding{}, fmt.Errorf("parse branding file %s: %w", path, err)
	}

	return Branding{
		Name:      f.Name,
		ShortName: f.ShortName,
		Logos:     f.Logos,
	}, nil
}

// FromConfig builds branding from configuration. When a branding file is
// configured it is loaded first; non-empty environment values override it.
func FromConfig(cfg *config.Config) (Branding, error) {
	var (
		b     Branding
		logos StaticLogos
	)

	if cfg.BrandingFile != "" {
		loaded, err := LoadFile(cfg.BrandingFile)
		if err != nil {
			return Branding{}, err
		}
		b = loaded
		if l, ok := loaded.Logos.(StaticLogos); ok {
			logos = l
		}
	}

	if cfg.CampName != "" {
		b.Name = cfg.CampName
	}
	if b.Name == "" {
		b.Name = config.DefaultCampName
	}
	if cfg.CampShortName != "" {
		b.ShortName = cfg.CampShortName
	}
	if cfg.LogoCompact != "" {
		logos.Compact = cfg.LogoCompact
	}
	if cfg.LogoLarge != "" {
		logos.Large = cfg.LogoLarge
	}
	b.Logos = logos

	return b, nil
}
