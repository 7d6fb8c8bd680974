// Package patrol simulates a guard walking a grid under a fixed rule:
// step forward while the cell ahead is free, turn right when it is blocked.
//
// The walk ends in one of two ways:
//
//   - PatrolEnd: the next position would leave the grid.
//   - LoopDetected: the guard re-enters a (position, heading) pair it has
//     already occupied. Because the rule is deterministic, the walk from
//     there repeats forever.
//
// A guard boxed in on all four sides can do neither and Step reports
// ErrTrapped.
//
// Complexity:
//
//   - Simulate: O(W·H·4) steps at most; history and the seen-set grow with it.
//   - LoopingObstacles: one Simulate per visited cell, O(C·W·H·4) overall.
//
// Example usage:
//
//	g, _ := grid.Parse(lab)
//	start, _ := patrol.StartState(g)
//	res, _ := patrol.Simulate(g, start)
//	fmt.Println(res.Outcome, res.Coverage())
package patrol
