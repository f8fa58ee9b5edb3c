// ABOUTME: Configuration loader for campboard
// ABOUTME: Loads settings from environment variables and an optional .env file

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	// DefaultEnvFile is read by Load when present
	DefaultEnvFile = ".env"

	// DefaultCampName is shown when neither CAMP_NAME nor a branding file names the camp
	DefaultCampName = "Camp"
)

type Config struct {
	// Server
	Port           string
	RenderCacheTTL int // seconds, 0 disables expiry (default 300)

	// Branding
	CampName       string
	CampShortName  string
	LogoCompact    string // image path for the compact logo variant
	LogoLarge      string // image path for the large logo variant
	BrandingFile   string // optional YAML file, env values override it
	DarkBackground bool   // default dark-background hint for CLI output

	// Roster
	RosterFile string
}

// HasRoster returns true if a roster file is configured
func (c *Config) HasRoster() bool {
	return c.RosterFile != ""
}

// Load reads configuration from the environment, seeding it from .env when
// that file exists.
func Load() (*Config, error) {
	return LoadFrom(DefaultEnvFile)
}

// LoadFrom reads configuration from the environment after loading envFile.
// A missing envFile is not an error. Variables already set in the process
// environment are never overwritten by the file.
func LoadFrom(envFile string) (*Config, error) {
	if err := loadEnvFile(envFile); err != nil {
		return nil, err
	}

	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		RenderCacheTTL: getEnvInt("RENDER_CACHE_TTL", 300),

		CampName:       os.Getenv("CAMP_NAME"),
		CampShortName:  os.Getenv("CAMP_SHORT_NAME"),
		LogoCompact:    strings.TrimSpace(os.Getenv("CAMP_LOGO_COMPACT")),
		LogoLarge:      strings.TrimSpace(os.Getenv("CAMP_LOGO_LARGE")),
		BrandingFile:   os.Getenv("BRANDING_FILE"),
		DarkBackground: getEnvBool("CAMPBOARD_DARK", false),

		RosterFile: os.Getenv("ROSTER_FILE"),
	}

	port, err := strconv.Atoi(cfg.Port)
	if err != nil || port < 1 || port > 65535 {
		return nil, fmt.Errorf("PORT must be a number between 1 and 65535, got %q", cfg.Port)
	}
	if cfg.RenderCacheTTL < 0 {
		return nil, fmt.Errorf("RENDER_CACHE_TTL must not be negative, got %d", cfg.RenderCacheTTL)
	}

	return cfg, nil
}

func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("stat env file %s: %w", path, err)
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
