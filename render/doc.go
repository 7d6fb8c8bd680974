// Package render draws a grid for the terminal, optionally overlaid with the
// cells a search visited and the path it chose.
//
// Styling goes through lipgloss. Runs of cells sharing a style are rendered
// together, so a line costs a handful of escape sequences rather than one per
// cell. With WithPlain, or when the terminal has no colour support, the output
// is the raw characters and round-trips through grid.Parse.
package render
