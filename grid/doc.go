// Package grid is the shared data model of the gridwalk search engine:
// a rectangular character grid, integer positions, the four cardinal
// directions and the (position, direction) agent state.
//
// What:
//
//   - Grid wraps a rectangular row-major []byte parsed from text.
//   - Position is a (Row, Col) pair; validity is checked by Grid.InBounds.
//   - Direction is one of North, East, South, West with vector and rotation helpers.
//   - State pairs a Position with a Direction; it is comparable and used as a map key.
//   - Regions finds 4-connected components of equal cells.
//
// Why:
//
//   - Every search in this module (patrol, astar, blockade, warehouse, trail)
//     shares one Direction type instead of redefining it per puzzle.
//
// Complexity:
//
//   - Parse:   O(W×H) time and memory.
//   - Regions: O(W×H) time, O(W×H) memory for the seen flags.
//
// Errors:
//
//   - ErrMalformedInput: parent of every input error below.
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrMarkerNotFound: a required marker (start, goal, robot) is absent.
//   - ErrOutOfBounds: At or Set was called with an invalid position (panic, not returned).
package grid
