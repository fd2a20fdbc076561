package search

import (
	"container/heap"

	"github.com/katalvlaran/npuzzle/heuristic"
	"github.com/katalvlaran/npuzzle/puzzle"
)

// greedyWalker holds the mutable state for one Greedy execution.
type greedyWalker struct {
	goal    puzzle.State
	h       heuristic.Func
	t       *tracker
	pq      frontierPQ
	seq     uint64
	visited map[puzzle.Key]struct{}
}

// Greedy runs greedy best-first search on p: the frontier is ordered
// strictly by h(n) ascending, FIFO among equal-h nodes. Greedy is fast but
// not optimal — the returned path length is only bounded below by the true
// minimum.
//
// Returns ErrNilHeuristic when h is nil, plus the usual
// ErrUninitializedPuzzle / ErrOptionViolation for invalid input.
func Greedy(p puzzle.Puzzle, h heuristic.Func, opts ...Option) (*Result, error) {
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
		return t.result(AlgoGreedy, Unsolvable, nil), nil
	}

	w := &greedyWalker{
		goal:    p.Goal,
		h:       h,
		t:       t,
		pq:      make(frontierPQ, 0, 64),
		visited: make(map[puzzle.Key]struct{}, 64),
	}
	heap.Init(&w.pq)
	w.push(&node{state: p.Initial, h: h(p.Initial, p.Goal)})

	return w.run(), nil
}

// push offers a node to the frontier keyed by its heuristic value.
func (w *greedyWalker) push(n *node) {
	w.seq++
	heap.Push(&w.pq, &frontierItem{n: n, prio: n.h, seq: w.seq})
	w.t.generate(1)
}

// run pops the lowest-h node until the goal, exhaustion, or a limit.
func (w *greedyWalker) run() *Result {
	for w.pq.Len() > 0 {
		if out, stop := w.t.checkBounds(); stop {
			return w.t.result(AlgoGreedy, out, nil)
		}

		n := heap.Pop(&w.pq).(*frontierItem).n
		key := n.state.Key()
		if _, seen := w.visited[key]; seen {
			// stale duplicate from a different path
			continue
		}
		w.visited[key] = struct{}{}
		w.t.expand(n)

		if n.state.Equal(w.goal) {
			return w.t.result(AlgoGreedy, GoalFound, n.path())
		}

		for _, sc := range n.state.Successors() {
			if _, seen := w.visited[sc.State.Key()]; seen {
				continue
			}
			w.push(&node{
				state:  sc.State,
				parent: n,
				move:   sc.Move,
				depth:  n.depth + 1,
				h:      w.h(sc.State, w.goal),
			})
		}
		w.t.frontier(w.pq.Len() + len(w.visited))
	}

	return w.t.result(AlgoGreedy, FrontierExhausted, nil)
}
