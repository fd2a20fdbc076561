// Package metrics compares search algorithms over identical puzzle
// instances and reports the outcome.
//
// What:
//
//   - Spec / Compare: run a list of (algorithm, heuristic) specs against
//     one puzzle, sequentially, under shared options.
//   - Collector: accumulate labeled search.Result values in run order.
//   - Best / BestScore: rank successful runs by one criterion (depth,
//     time, memory) or by a normalized weighted score
//     (depth 0.3, expanded nodes 0.4, time 0.3).
//   - Table / WriteCSV / WriteJSON: render or export the comparison.
//
// Why:
//   - Put BFS, DFS, IDS, Greedy, and A* side by side on one instance
//   - Keep statistics comparable: sequential runs, never concurrent
//   - Feed spreadsheets and dashboards without touching search internals
//
// The package only reads search.Result values; it never inspects or
// alters traversal state.
//
// Errors:
//
//   - ErrEmptySpecs                Compare with nothing to run
//   - ErrNoResults                 ranking over zero successful runs
//   - heuristic.ErrUnknownHeuristic bad identifier in an informed spec
package metrics
