// Package search implements the five classical N-puzzle search algorithms
// over the implicit graph defined by puzzle.Successors: BFS, depth-bounded
// DFS, Iterative Deepening (IDS), Greedy best-first, and A*.
//
// What:
//
//   - BFS(p): FIFO frontier, minimal path guaranteed.
//   - DFS(p): LIFO frontier with a configurable depth bound; fast, not
//     optimal, incomplete beyond the bound.
//   - IDS(p): repeated bounded DFS, bound 0,1,2,… (BoundStep at a time) up
//     to DepthBound; optimal with BoundStep 1, cumulative statistics.
//   - Greedy(p, h): priority frontier ordered strictly by h(n); fast,
//     not optimal.
//   - AStar(p, h): priority frontier ordered by f(n) = g(n) + h(n), ties on
//     lower h(n) then FIFO; optimal for admissible h.
//   - Run(alg, p, h): one-capability dispatcher over the five.
//
// Why:
//   - Compare uninformed vs informed strategies on identical instances
//   - Produce reproducible statistics (fixed successor order, stable ties)
//   - Bound memory and time on state spaces up to the 24-puzzle
//
// Shared semantics:
//
//   - Solvability is decided by parity before any expansion; unsolvable
//     instances terminate with Outcome Unsolvable and zero counters,
//     distinct from a merely exhausted budget.
//   - Duplicate suppression uses a full visited set of expanded states
//     (per IDS iteration), never ancestor-only path checking: chosen for
//     determinism and bounded memory. BFS and A* never expand a state
//     twice; the bounded DFS walker re-expands a state only when reached
//     strictly shallower, which keeps depth-limited runs complete and IDS
//     optimal.
//   - The goal test runs when a node is expanded, preserving the A*
//     optimality argument.
//   - Limits (NodeLimit, TimeLimit, Ctx) are sampled once per expansion —
//     cooperative and coarse; a search may overshoot by one step. A hit
//     limit is a Result flag (NodeLimitExceeded, TimeLimitExceeded,
//     Canceled), never an error.
//   - Searches own their nodes through frontier and visited containers;
//     parent links are non-owning back-references for path reconstruction,
//     and the whole structure is released when the call returns.
//
// Complexity (b ≤ 4 branching, d solution depth, V states visited):
//
//   - BFS:    Time O(b^d), Memory O(b^d)
//   - DFS:    Time O(b^bound), Memory O(bound·b + V)
//   - IDS:    Time O(b^d) amortized, Memory as DFS per iteration
//   - Greedy: Time O(V log V), Memory O(V)
//   - A*:     Time O(V log V), Memory O(V)
//
// Errors:
//
//   - ErrUninitializedPuzzle   zero-value puzzle or states
//   - ErrNilHeuristic          Greedy/AStar without a heuristic
//   - ErrOptionViolation       negative or nonsensical option values
//   - ErrUnknownAlgorithm      Run with an unknown Algorithm
package search
