// Package heuristic provides admissible distance estimators for informed
// N-puzzle search (Greedy best-first and A*).
//
// What:
//
//   - MisplacedTiles: number of tiles out of place.
//   - ManhattanDistance: sum of per-tile grid distances to the goal cell.
//   - LinearConflict: Manhattan plus 2 per adjacent same-line reversed pair
//     of correctly-homed tiles.
//   - ByID: selection by stable identifier ("misplaced", "manhattan",
//     "manhattan_linear_conflict").
//
// Why:
//   - A* with any of these returns optimal paths (admissibility)
//   - More informed estimators expand fewer nodes on the same instance
//   - String identifiers let callers pick a heuristic from configuration
//
// Guarantees, for every reachable state pair:
//
//	0 ≤ MisplacedTiles ≤ ManhattanDistance ≤ LinearConflict ≤ true distance
//
// All functions are pure: no state, no side effects, stable outputs.
//
// Complexity: O(n) per evaluation in the cell count n (n ≤ 25).
//
// Errors:
//
//   - ErrUnknownHeuristic   identifier not in IDs()
package heuristic
