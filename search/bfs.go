// Package search implements breadth-first search over the implicit state
// graph defined by puzzle.Successors.
//
// BFS explores states in increasing move distance from the initial board.
// With unit move costs, the first expansion of the goal is guaranteed to
// lie on a minimal path.
package search

import "github.com/katalvlaran/npuzzle/puzzle"

// bfsWalker encapsulates mutable BFS state.
type bfsWalker struct {
	goal    puzzle.State
	t       *tracker
	queue   []*node
	visited map[puzzle.Key]struct{}
}

// BFS runs breadth-first search on p, applying any number of functional
// Options. The returned path, when Success is true, is of minimal length.
//
// Termination: goal expanded, frontier empty, or a configured limit hit —
// all surfaced via Result.Outcome. An unsolvable instance is rejected by
// the parity check before any expansion (Outcome == Unsolvable).
// Returns ErrUninitializedPuzzle or ErrOptionViolation for invalid input.
func BFS(p puzzle.Puzzle, opts ...Option) (*Result, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if err = checkPuzzle(p); err != nil {
		return nil, err
	}

	t := newTracker(o)
	if !puzzle.Solvable(p.Initial, p.Goal) {
		return t.result(AlgoBFS, Unsolvable, nil), nil
	}

	w := &bfsWalker{
		goal:    p.Goal,
		t:       t,
		queue:   make([]*node, 0, 64),
		visited: make(map[puzzle.Key]struct{}, 64),
	}
	w.enqueue(&node{state: p.Initial})

	return w.run(), nil
}

// enqueue marks the node's state visited and appends it to the queue.
// Marking at generation time guarantees no state is ever enqueued twice.
func (w *bfsWalker) enqueue(n *node) {
	w.visited[n.state.Key()] = struct{}{}
	w.queue = append(w.queue, n)
	w.t.generate(1)
}

// run processes the queue until the goal, exhaustion, or a limit.
func (w *bfsWalker) run() *Result {
	for len(w.queue) > 0 {
		if out, stop := w.t.checkBounds(); stop {
			return w.t.result(AlgoBFS, out, nil)
		}

		n := w.queue[0]
		w.queue = w.queue[1:]
		w.t.expand(n)

		if n.state.Equal(w.goal) {
			return w.t.result(AlgoBFS, GoalFound, n.path())
		}

		for _, sc := range n.state.Successors() {
			if _, seen := w.visited[sc.State.Key()]; seen {
				continue
			}
			w.enqueue(&node{state: sc.State, parent: n, move: sc.Move, depth: n.depth + 1})
		}
		w.t.frontier(len(w.queue) + len(w.visited))
	}

	// Finite state space fully explored; unreachable in practice because
	// the parity check already filtered unsolvable instances.
	return w.t.result(AlgoBFS, FrontierExhausted, nil)
}
