package search

import "github.com/katalvlaran/npuzzle/puzzle"

// dfsWalker encapsulates one depth-bounded DFS traversal. It is shared by
// DFS (a single run at the configured bound) and IDS (one fresh walker per
// deepening iteration over the same tracker, so counters accumulate).
//
// Duplicate suppression is depth-aware: visited records the shallowest
// depth at which each state was expanded, and a state is re-expanded only
// when reached strictly shallower. Depth-first order can hit a state via a
// deep branch before the shallow one, and pruning on a bare key set there
// would cut off descendants that are still within the bound; keeping the
// depth makes the bounded run complete and keeps iterative deepening
// optimal.
type dfsWalker struct {
	goal    puzzle.State
	t       *tracker
	bound   int
	stack   []*node
	visited map[puzzle.Key]int // shallowest expansion depth per state
	cutoff  bool               // true when the bound pruned at least one state
}

// DFS runs depth-first search on p with the configured DepthBound
// (default 50). DFS is neither complete beyond the bound nor optimal: the
// first goal found along the deepest-first branch wins.
//
// Successors are pushed in reverse so UP is explored first, keeping the
// expansion order aligned with the fixed successor order.
// Returns ErrUninitializedPuzzle or ErrOptionViolation for invalid input.
func DFS(p puzzle.Puzzle, opts ...Option) (*Result, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if err = checkPuzzle(p); err != nil {
		return nil, err
	}

	t := newTracker(o)
	if !puzzle.Solvable(p.Initial, p.Goal) {
		return t.result(AlgoDFS, Unsolvable, nil), nil
	}

	w := newDFSWalker(p.Goal, t, o.DepthBound)
	goal, out := w.run(&node{state: p.Initial})
	if goal != nil {
		return t.result(AlgoDFS, GoalFound, goal.path()), nil
	}

	return t.result(AlgoDFS, out, nil), nil
}

func newDFSWalker(goal puzzle.State, t *tracker, bound int) *dfsWalker {
	return &dfsWalker{
		goal:    goal,
		t:       t,
		bound:   bound,
		stack:   make([]*node, 0, 64),
		visited: make(map[puzzle.Key]int, 64),
	}
}

// run drives the LIFO loop from root. It returns the goal node when found,
// otherwise nil plus the terminating Outcome (FrontierExhausted when the
// stack drained, or the limit that fired).
func (w *dfsWalker) run(root *node) (*node, Outcome) {
	w.t.generate(1) // root
	w.stack = append(w.stack, root)

	for len(w.stack) > 0 {
		if out, stop := w.t.checkBounds(); stop {
			return nil, out
		}

		n := w.pop()
		key := n.state.Key()
		if d, seen := w.visited[key]; seen && d <= n.depth {
			// Already expanded at this depth or shallower.
			continue
		}
		w.visited[key] = n.depth
		w.t.expand(n)

		if n.state.Equal(w.goal) {
			return n, GoalFound
		}

		w.pushSuccessors(n)
		w.t.frontier(len(w.stack) + len(w.visited))
	}

	return nil, FrontierExhausted
}

// pop removes the most recently pushed node.
func (w *dfsWalker) pop() *node {
	last := len(w.stack) - 1
	n := w.stack[last]
	w.stack[last] = nil
	w.stack = w.stack[:last]

	return n
}

// pushSuccessors generates n's successors onto the stack, reversed so the
// first move order entry ends up on top. Successors past the depth bound
// are pruned and recorded in the cutoff flag, which IDS reads to decide
// whether deepening can still make progress; successors already expanded
// at an equal or shallower depth are dropped silently.
func (w *dfsWalker) pushSuccessors(n *node) {
	succ := n.state.Successors()
	for i := len(succ) - 1; i >= 0; i-- {
		sc := succ[i]
		if d, seen := w.visited[sc.State.Key()]; seen && d <= n.depth+1 {
			continue
		}
		if n.depth+1 > w.bound {
			w.cutoff = true
			continue
		}
		w.t.generate(1)
		w.stack = append(w.stack, &node{state: sc.State, parent: n, move: sc.Move, depth: n.depth + 1})
	}
}
