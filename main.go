// ABOUTME: Entry point for campboard CLI
// ABOUTME: Renders camp logo and utilization widgets and serves them over HTTP

package main

import (
	"fmt"
	"os"

	"github.com/markalston/campboard/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}
