// Package search - A* best-first search.
//
// A* orders its frontier by f(n) = g(n) + h(n) and, with an admissible
// heuristic, the first expansion of the goal is optimal. The frontier uses
// the lazy decrease-key pattern: a better path to a known state pushes a
// fresh entry, and stale entries are discarded at pop time via the closed
// set.
package search

import (
	"container/heap"

	"github.com/katalvlaran/npuzzle/heuristic"
	"github.com/katalvlaran/npuzzle/puzzle"
)

// astarWalker holds the mutable state for one A* execution.
type astarWalker struct {
	goal   puzzle.State
	h      heuristic.Func
	t      *tracker
	pq     frontierPQ
	seq    uint64
	gScore map[puzzle.Key]int      // best known path cost per state
	closed map[puzzle.Key]struct{} // states with finalized cost
}

// AStar runs A* search on p with heuristic h. Ties on f(n) expand the
// lower h(n) first, then FIFO. Because every heuristic in this module is
// admissible, a GoalFound result carries a minimal-length path.
//
// Returns ErrNilHeuristic when h is nil, plus the usual
// ErrUninitializedPuzzle / ErrOptionViolation for invalid input.
func AStar(p puzzle.Puzzle, h heuristic.Func, opts ...Option) (*Result, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if err = checkPuzzle(p); err != nil {
		return nil, err
	}
	if h == nil {
		return nil, ErrNilHeuristic
	}

	t := newTracker(o)
	if !puzzle.Solvable(p.Initial, p.Goal) {
		return t.result(AlgoAStar, Unsolvable, nil), nil
	}

	w := &astarWalker{
		goal:   p.Goal,
		h:      h,
		t:      t,
		pq:     make(frontierPQ, 0, 64),
		gScore: make(map[puzzle.Key]int, 64),
		closed: make(map[puzzle.Key]struct{}, 64),
	}
	heap.Init(&w.pq)

	root := &node{state: p.Initial, h: h(p.Initial, p.Goal)}
	w.gScore[p.Initial.Key()] = 0
	w.push(root)

	return w.run(), nil
}

// push offers a node to the frontier keyed by f = g + h, tie-broken by h.
func (w *astarWalker) push(n *node) {
	w.seq++
	heap.Push(&w.pq, &frontierItem{n: n, prio: n.depth + n.h, tie: n.h, seq: w.seq})
	w.t.generate(1)
}

// run pops the lowest-f node until the goal, exhaustion, or a limit.
func (w *astarWalker) run() *Result {
	for w.pq.Len() > 0 {
		if out, stop := w.t.checkBounds(); stop {
			return w.t.result(AlgoAStar, out, nil)
		}

		n := heap.Pop(&w.pq).(*frontierItem).n
		key := n.state.Key()
		if _, done := w.closed[key]; done {
			// stale entry superseded by a cheaper path
			continue
		}
		w.closed[key] = struct{}{}
		w.t.expand(n)

		if n.state.Equal(w.goal) {
			return w.t.result(AlgoAStar, GoalFound, n.path())
		}

		w.relax(n)
		w.t.frontier(w.pq.Len() + len(w.closed))
	}

	return w.t.result(AlgoAStar, FrontierExhausted, nil)
}

// relax offers each successor reached by a strictly cheaper path than any
// known before. Unit move costs make g(successor) = g(n) + 1.
func (w *astarWalker) relax(n *node) {
	for _, sc := range n.state.Successors() {
		key := sc.State.Key()
		newG := n.depth + 1
		if best, known := w.gScore[key]; known && newG >= best {
			continue
		}
		w.gScore[key] = newG
		w.push(&node{
			state:  sc.State,
			parent: n,
			move:   sc.Move,
			depth:  newG,
			h:      w.h(sc.State, w.goal),
		})
	}
}
