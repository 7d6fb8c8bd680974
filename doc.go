// Package gridwalk is a grid state-search engine: parse a 2D character grid,
// put an agent with a position and a heading on it, explore the states it can
// reach under move and turn rules, and either detect a cycle or reach a goal.
//
// 🚀 What is in the box?
//
//	• Patrol simulation with loop detection and coverage (patrol)
//	• Optimal paths under turn costs with A*, plus every optimal tile (astar)
//	• Binary search over a timeline of corrupting obstacles (blockade)
//	• In-place box pushing, narrow and wide boxes (warehouse)
//	• Region pricing, trailhead scoring, memoized recursions
//	• Terminal rendering and a manifest-driven CLI
//
// ✨ Shared vocabulary
//
//   - One Direction type (North, East, South, West) with Right/Left/Reverse.
//   - State{Pos, Dir} is comparable and is the key of every visited set.
//   - Searches never mutate their input grid; WithCell makes a copy.
//   - Malformed input fails fast with errors wrapping grid.ErrMalformedInput;
//     an unreachable goal is an ordinary outcome (astar.ErrNoPath).
//
// Packages:
//
//	grid/         Grid, Position, Direction, State, parsing, regions
//	patrol/       Mode A: deterministic walk, LoopDetected / PatrolEnd
//	astar/        Mode B: A* over (position, heading) with pluggable rules
//	blockade/     first blocking drop via binary search on reachability
//	warehouse/    box pushing with grid mutation
//	trail/        elevation trails: BFS scores, memoized ratings
//	garden/       area × perimeter and area × sides
//	memo/         explicit memo table used by the recursive solvers
//	towels/       memoized pattern decomposition
//	stones/       memoized stone splitting keyed by (stone, blinks)
//	render/       lipgloss grid rendering with path/visited overlays
//	puzzle/       YAML manifest, solver registry, logged runner
//	cmd/gridwalk  CLI
//
// Quick ASCII example:
//
//	#####
//	#..E#     S faces East; the cheapest route turns left, then right:
//	#S###     cost 1001 + 1001 + 1 = 2003 with the default turn rules.
//	#####
//
//	go install github.com/katalvlaran/gridwalk/cmd/gridwalk@latest
package gridwalk
