// Package puzzle wires the search packages to concrete puzzle inputs.
//
// A Manifest (YAML) lists named puzzles, each with a kind, an input file or
// inline text, optional kind-specific params and optional expected answers.
// A Registry maps each kind to a Solver that turns raw input into an Answer of
// two parts, and optionally to a Drawer that produces a grid and overlay for
// the terminal renderer. A Runner ties both together and logs every solve.
//
// Params arrive as loosely typed maps (from YAML or "k=v" command-line pairs)
// and are decoded into per-kind structs with mapstructure, weakly typed so
// "71" and 71 are the same size.
package puzzle
