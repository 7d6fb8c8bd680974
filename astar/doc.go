// Package astar finds minimum-cost paths for an oriented agent on a grid.
//
// The search space is the set of agent states (position, heading). A Rules
// value maps a state to its legal successors and their step costs; a
// Heuristic estimates the remaining cost to the goal position. With an
// admissible heuristic (never overestimating) the returned cost is optimal.
// The default estimate is Manhattan distance times the cheapest cost of
// entering a cell, as reported by Rules.MinStep, so it stays admissible when
// forward moves are cheap or free.
//
// Open and closed sets are keyed by the full state, not the position alone:
// under turn costs two arrivals at the same cell facing different ways are
// different states with different futures.
//
// Complexity:
//
//   - Time:  O(S log S) where S = 4·W·H states.
//   - Space: O(S) for the node arena, best-cost and closed maps.
//
// Notes on implementation choices:
//
//   - Paths live in an arena of nodes addressed by index; each node stores its
//     parent index, so a frontier entry is a single integer handle and
//     extending a path never mutates a shared prefix.
//   - We use lazy decrease-key: a cheaper arrival pushes a fresh entry and the
//     stale one is dropped when popped.
//   - The search does not stop at the first completion. It keeps popping
//     until the lowest estimate in the open set exceeds the best completion,
//     collecting every completion, then returns the minimum. Equal-cost
//     predecessors are recorded so Result.Tiles can report every cell on any
//     optimal path.
//
// Example usage:
//
//	g, _ := grid.Parse(maze)
//	start, goal, _ := astar.MazeStart(g)
//	res, err := astar.Search(g, start, goal)
//	if errors.Is(err, astar.ErrNoPath) {
//	    // unreachable, not a failure of the input
//	}
//	fmt.Println(res.Cost, len(res.Tiles()))
package astar
