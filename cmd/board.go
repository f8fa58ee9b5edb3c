// ABOUTME: Board command for campboard CLI
// ABOUTME: Launches the interactive roster board in the terminal

package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/markalston/campboard/internal/tui/board"
	"github.com/spf13/cobra"
)

var boardRoster string

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Interactive roster board",
	Long:  `Show every roster session with its utilization bar. Press r to reload the roster file, d to toggle dark mode, q to quit.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, b, err := loadSettings()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(exitUsage)
		}

		path := boardRoster
		if path == "" {
			path = cfg.RosterFile
		}
		if path == "" {
			fmt.Fprintln(os.Stderr, "Error: no roster file (use --roster or ROSTER_FILE)")
			os.Exit(exitUsage)
		}

		p := tea.NewProgram(board.New(b, path, cfg.DarkBackground), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(boardCmd)
	boardCmd.Flags().StringVar(&boardRoster, "roster", "", "Roster YAML file (overrides ROSTER_FILE)")
}
