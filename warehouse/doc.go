// Package warehouse simulates a robot pushing boxes around a walled floor.
//
// Unlike the read-only searches elsewhere in this module, the warehouse
// mutates its grid in place: every successful move rewrites the cells of the
// robot and every box it shoves.
//
// Two box shapes are supported. A narrow box 'O' fills one cell. A wide box
// "[]" fills two horizontally adjacent cells and moves as a rigid pair, so a
// vertical push on either half drags the other half with it and can fan out
// into a pyramid of boxes. A push succeeds only if no box in the affected set
// would move into a wall.
//
// Complexity:
//
//   - Move: O(B) for the B boxes in the pushed set, found by BFS.
//   - Run:  O(M·B) over M moves.
//   - GPS:  O(W·H).
//
// Example usage:
//
//	w, moves, err := warehouse.Parse(text)
//	if err != nil {
//		return err
//	}
//	wide := w.Widen()
//	w.Run(moves)
//	wide.Run(moves)
//	fmt.Println(w.GPS(), wide.GPS())
package warehouse
