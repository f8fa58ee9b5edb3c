// ABOUTME: Logo command for campboard CLI
// ABOUTME: Prints the camp wordmark for terminals or the HTML logo fragment

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/markalston/campboard/internal/branding"
	"github.com/markalston/campboard/internal/tui/widgets"
	"github.com/markalston/campboard/internal/web/components"
	"github.com/spf13/cobra"
)

var (
	logoSize  string
	logoDark  bool
	logoClass string
	logoHTML  bool
)

var logoCmd = &cobra.Command{
	Use:   "logo",
	Short: "Render the camp logo",
	Long: `Render the camp logo. By default a terminal wordmark is printed; --html
prints the fragment a page would embed (an <img> when a logo image is
configured for the size, the short name as text otherwise).`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, b, err := loadSettings()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(exitUsage)
		}
		dark := logoDark || cfg.DarkBackground
		if code := runLogo(cmd.Context(), os.Stdout, os.Stderr, b, dark); code != 0 {
			os.Exit(code)
		}
	},
}

func init() {
	rootCmd.AddCommand(logoCmd)
	logoCmd.Flags().StringVar(&logoSize, "size", "compact", "Logo size: compact or large")
	logoCmd.Flags().BoolVar(&logoDark, "dark", false, "Boost contrast for dark backgrounds (default from CAMPBOARD_DARK)")
	logoCmd.Flags().StringVar(&logoClass, "class", "", "Extra CSS classes for the HTML fragment")
	logoCmd.Flags().BoolVar(&logoHTML, "html", false, "Print the HTML fragment")
}

// logoJSON is the --json output shape
type logoJSON struct {
	Size    string `json:"size"`
	Image   string `json:"image,omitempty"`
	Alt     string `json:"alt"`
	Text    string `json:"text,omitempty"`
	Classes string `json:"classes"`
}

// runLogo renders the logo to w and returns an exit code. Errors go to errW.
func runLogo(ctx context.Context, w, errW io.Writer, b branding.Branding, dark bool) int {
	if ctx == nil {
		ctx = context.Background()
	}

	size, err := branding.ParseSize(logoSize)
	if err != nil {
		fmt.Fprintf(errW, "Error: %v\n", err)
		return exitUsage
	}
	props := components.LogoProps{Size: size, ExtraClass: logoClass, DarkBackground: dark}

	switch {
	case IsJSONOutput():
		out, err := formatLogoJSON(b, props)
		if err != nil {
			fmt.Fprintf(errW, "Error: %v\n", err)
			return exitUsage
		}
		fmt.Fprintln(w, out)
	case logoHTML:
		if err := components.Logo(b, props).Render(ctx, w); err != nil {
			fmt.Fprintf(errW, "Error: %v\n", err)
			return exitUsage
		}
		fmt.Fprintln(w)
	default:
		fmt.Fprintln(w, widgets.Wordmark(b, size, dark))
	}
	return 0
}

func formatLogoJSON(b branding.Branding, props components.LogoProps) (string, error) {
	out := logoJSON{Size: props.Size.String(), Alt: b.Name}
	if path := b.ImagePath(props.Size); path != "" {
		out.Image = path
		out.Classes = components.LogoClasses(props, true)
	} else {
		out.Text = b.Short()
		out.Classes = components.LogoClasses(props, false)
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode logo as JSON: %w", err)
	}
	return string(data), nil
}
