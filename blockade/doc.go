// Package blockade tracks a square memory grid that is corrupted one cell at a
// time and answers two questions about it: how short is the walk from the
// top-left to the bottom-right corner after n drops, and which drop is the
// first to cut that walk off completely.
//
// Reachability only ever shrinks as drops accumulate, so the first blocking
// drop is found by binary search over the timeline rather than by re-running
// the search after every drop.
//
// Complexity (N = grid side, D = drops):
//
//   - Corrupt:       O(N² + D).
//   - ShortestExit:  O(N² log N), one unit-cost A* over the corrupted grid.
//   - FirstBlocking: O(log D) searches, O(N² log N · log D) in total.
//
// Example usage:
//
//	drops, _ := blockade.ParseDrops(text)
//	steps, _ := blockade.ShortestExit(71, drops, 1024)
//	idx, err := blockade.FirstBlocking(71, drops)
//	if errors.Is(err, blockade.ErrNeverBlocked) {
//		// every prefix leaves a way out
//	}
package blockade
