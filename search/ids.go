package search

import "github.com/katalvlaran/npuzzle/puzzle"

// IDS runs iterative deepening search on p: repeated depth-bounded DFS
// with the bound starting at 0 and growing by BoundStep (default 1) per
// iteration, up to DepthBound (default 50).
//
// Each iteration uses a fresh visited set; node and time budgets are
// shared across iterations, so NodesExpanded in the Result is cumulative.
// With BoundStep 1, the first iteration to reach the goal does so at the
// minimal depth, making the returned path length optimal.
//
// The search stops deepening when an iteration drains its frontier without
// the bound pruning any unvisited state — at that point the whole reachable
// space has been explored and deeper bounds cannot differ
// (Outcome == FrontierExhausted).
// Returns ErrUninitializedPuzzle or ErrOptionViolation for invalid input.
func IDS(p puzzle.Puzzle, opts ...Option) (*Result, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if err = checkPuzzle(p); err != nil {
		return nil, err
	}

	t := newTracker(o)
	if !puzzle.Solvable(p.Initial, p.Goal) {
		return t.result(AlgoIDS, Unsolvable, nil), nil
	}

	for bound := 0; bound <= o.DepthBound; bound += o.BoundStep {
		w := newDFSWalker(p.Goal, t, bound)
		goal, out := w.run(&node{state: p.Initial})

		switch {
		case goal != nil:
			return t.result(AlgoIDS, GoalFound, goal.path()), nil
		case out != FrontierExhausted:
			// A node/time/cancellation limit fired mid-iteration.
			return t.result(AlgoIDS, out, nil), nil
		case !w.cutoff:
			// Frontier drained with nothing pruned: provably no goal at
			// any depth, deepening further would repeat the same run.
			return t.result(AlgoIDS, FrontierExhausted, nil), nil
		}
	}

	// Deepening cap reached with the bound still pruning states.
	return t.result(AlgoIDS, FrontierExhausted, nil), nil
}
