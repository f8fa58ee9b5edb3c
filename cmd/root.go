// ABOUTME: Root command for campboard CLI
// ABOUTME: Handles global flags, logging setup, and configuration loading

package cmd

import (
	"fmt"
	"os"

	"github.com/markalston/campboard/internal/branding"
	"github.com/markalston/campboard/internal/config"
	"github.com/markalston/campboard/internal/logger"
	"github.com/spf13/cobra"
)

var (
	envFile    string
	jsonOutput bool
)

// exitUsage is returned for invalid flags, input, or configuration
const exitUsage = 2

// rootCmd is the base command
var rootCmd = &cobra.Command{
	Use:   "campboard",
	Short: "Camp logo and utilization widgets",
	Long: `campboard renders the camp logo and session utilization bars for
terminals and as HTML fragments, and serves them over HTTP.

Environment Variables:
  CAMP_NAME, CAMP_SHORT_NAME        Display names
  CAMP_LOGO_COMPACT, CAMP_LOGO_LARGE Logo image paths per size
  BRANDING_FILE                     YAML branding file (env overrides it)
  ROSTER_FILE                       YAML session roster
  CAMPBOARD_DARK                    Default dark-background hint
  PORT, RENDER_CACHE_TTL            HTTP server settings
  LOG_LEVEL, LOG_FORMAT             Logging (debug|info|warn|error, text|json)`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(os.Stderr)
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", config.DefaultEnvFile, "Env file to load before reading the environment")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output JSON instead of human-readable text")
}

// IsJSONOutput returns whether JSON output is requested
func IsJSONOutput() bool {
	return jsonOutput
}

// loadSettings reads configuration and branding together
func loadSettings() (*config.Config, branding.Branding, error) {
	cfg, err := config.LoadFrom(envFile)
	if err != nil {
		return nil, branding.Branding{}, fmt.Errorf("load configuration: %w", err)
	}
	b, err := branding.FromConfig(cfg)
	if err != nil {
		return nil, branding.Branding{}, fmt.Errorf("load branding: %w", err)
	}
	return cfg, b, nil
}
