// Package trail finds hiking trails on a topographic map of single-digit
// heights. A trail starts at height 0, ends at height 9 and climbs by exactly
// one at every orthogonal step. Cells marked '.' are impassable.
//
// Two measures are reported per trailhead:
//
//   - Score:  how many distinct summits it can reach (breadth-first search).
//   - Rating: how many distinct trails start there (memoized recursion, since
//     the number of trails can grow exponentially with the map).
//
// Complexity: Score is O(W·H) per trailhead; Rating is O(W·H) for the whole
// map when one Cache is shared across trailheads.
package trail
