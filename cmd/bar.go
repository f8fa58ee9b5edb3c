// ABOUTME: Bar command for campboard CLI
// ABOUTME: Classifies a utilization reading and prints a terminal bar, JSON, or HTML

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/markalston/campboard/internal/tui/prompt"
	"github.com/markalston/campboard/internal/tui/widgets"
	"github.com/markalston/campboard/internal/utilization"
	"github.com/markalston/campboard/internal/web/components"
	"github.com/spf13/cobra"
)

var (
	barUtilization float64
	barOccupancy   int
	barCapacity    int
	barWidth       int
	barHTML        bool
	barPrompt      bool
)

var barCmd = &cobra.Command{
	Use:   "bar",
	Short: "Render a utilization bar",
	Long: `Render a utilization bar for one reading.

The color is chosen in order: occupancy over capacity, utilization >= 90,
utilization >= 70, otherwise healthy. When --utilization is omitted it is
derived from occupancy and capacity.`,
	Run: func(cmd *cobra.Command, args []string) {
		explicit := cmd.Flags().Changed("utilization")
		reading := readingFromFlags(explicit)

		if barPrompt {
			var err error
			if reading, err = prompt.Run(reading, explicit); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(exitUsage)
			}
		}

		if code := runBar(cmd.Context(), os.Stdout, os.Stderr, reading); code != 0 {
			os.Exit(code)
		}
	},
}

func init() {
	rootCmd.AddCommand(barCmd)
	barCmd.Flags().Float64Var(&barUtilization, "utilization", 0, "Utilization percentage (default: derived from occupancy/capacity)")
	barCmd.Flags().IntVar(&barOccupancy, "occupancy", 0, "Current occupancy count")
	barCmd.Flags().IntVar(&barCapacity, "capacity", 0, "Capacity count")
	barCmd.Flags().IntVar(&barWidth, "width", 20, "Terminal bar width in cells")
	barCmd.Flags().BoolVar(&barHTML, "html", false, "Print the HTML fragment")
	barCmd.Flags().BoolVar(&barPrompt, "prompt", false, "Enter the reading interactively")
}

// readingFromFlags builds the reading, deriving utilization unless it was set
func readingFromFlags(utilizationSet bool) utilization.Reading {
	percent := barUtilization
	if !utilizationSet {
		percent = utilization.PercentOf(barOccupancy, barCapacity)
	}
	return utilization.Reading{Utilization: percent, Occupancy: barOccupancy, Capacity: barCapacity}
}

// barJSON is the --json output shape
type barJSON struct {
	utilization.Reading
	Level        utilization.Level `json:"level"`
	FillWidth    float64           `json:"fill_width"`
	OverCapacity bool              `json:"over_capacity"`
}

// runBar renders the reading to w and returns an exit code. Errors go to errW.
func runBar(ctx context.Context, w, errW io.Writer, r utilization.Reading) int {
	if ctx == nil {
		ctx = context.Background()
	}
	if barWidth <= 0 {
		fmt.Fprintf(errW, "Error: --width must be positive, got %d\n", barWidth)
		return exitUsage
	}

	switch {
	case IsJSONOutput():
		out, err := formatBarJSON(r)
		if err != nil {
			fmt.Fprintf(errW, "Error: %v\n", err)
			return exitUsage
		}
		fmt.Fprintln(w, out)
	case barHTML:
		if err := components.UtilizationBar(r).Render(ctx, w); err != nil {
			fmt.Fprintf(errW, "Error: %v\n", err)
			return exitUsage
		}
		fmt.Fprintln(w)
	default:
		fmt.Fprintln(w, widgets.UtilizationBar(r, barWidth))
	}
	return 0
}

func formatBarJSON(r utilization.Reading) (string, error) {
	data, err := json.MarshalIndent(barJSON{
		Reading:      r,
		Level:        utilization.Classify(r),
		FillWidth:    utilization.FillWidth(r.Utilization),
		OverCapacity: r.OverCapacity(),
	}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode reading as JSON: %w", err)
	}
	return string(data), nil
}
