// Command gridwalk solves grid puzzles listed in a YAML manifest or given
// directly on the command line, and renders their grids with the search
// overlaid.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Build information, set with -ldflags.
var (
	AppName = "gridwalk"
	Version = "dev"
)

func main() {
	// Load .env if present so GRIDWALK_MANIFEST can live next to the puzzles.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "warning: loading .env: %v\n", err)
	}

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
