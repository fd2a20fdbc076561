// Package puzzle models sliding-tile boards (8-, 15- and 24-puzzle) as
// immutable values and provides the operators the search packages build on.
//
// What:
//
//   - State: an immutable side×side grid, blank marked 0, with a stable
//     cheap Key for visited-set membership.
//   - Move: the four blank directions (UP, DOWN, LEFT, RIGHT) with a fixed
//     successor expansion order for reproducible searches.
//   - Successors: the ≤4 one-move neighbors of a state.
//   - Puzzle: a validated (initial, goal) pair.
//   - Solvable: inversion-parity reachability check, evaluated before any
//     search runs.
//   - Preset / Scramble: shared example boards and seeded random walks.
//
// Why:
//   - Give BFS/DFS/IDS/Greedy/A* one deterministic successor generator
//   - Reject malformed boards at the boundary, before a search ever starts
//   - Rule out provably unreachable goals without burning a node budget
//
// Invariants:
//
//   - A State always holds a permutation of 0..side²-1; the blank occupies
//     exactly one cell.
//   - States are never mutated after construction; Apply and Successors
//     return fresh values, so parent links in search trees are safe to share.
//
// Complexity:
//
//   - Apply / Key:   O(side²) per call (tile copy)
//   - Successors:    O(side²) per neighbor, ≤4 neighbors
//   - Solvable:      O(n²) in the cell count (n ≤ 25)
//
// Errors:
//
//   - ErrInvalidPuzzle     root of all construction failures
//   - ErrUnsupportedSide   side outside {3,4,5}
//   - ErrNotPermutation    duplicate or out-of-range tile values
//   - ErrSideMismatch      initial and goal grids differ in side
//   - ErrUnknownPreset     unknown preset name
//   - ErrNegativeSteps     negative scramble length
package puzzle
