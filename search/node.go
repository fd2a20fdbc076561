package search

import (
	"time"

	"github.com/katalvlaran/npuzzle/puzzle"
)

// node is a search-tree element. The search structures (frontier, visited
// map) own the nodes; parent is a non-owning back-reference used only for
// path reconstruction, so the whole tree is released together when the
// search call returns.
type node struct {
	state  puzzle.State
	parent *node       // nil for the root
	move   puzzle.Move // move that produced this node; unset for the root
	depth  int         // path cost g(n): moves from the root
	h      int         // heuristic estimate; informed searches only
}

// path walks the parent back-references to the root and returns the move
// sequence in forward order. The root yields an empty, non-nil path.
func (n *node) path() []puzzle.Move {
	moves := make([]puzzle.Move, 0, n.depth)
	for cur := n; cur.parent != nil; cur = cur.parent {
		moves = append(moves, cur.move)
	}
	// built goal→root; reverse to root→goal
	for i, j := 0, len(moves)-1; i < j; i, j = i+1, j-1 {
		moves[i], moves[j] = moves[j], moves[i]
	}

	return moves
}

// tracker accumulates the statistics and enforces the resource limits
// shared by all five algorithms.
type tracker struct {
	opts        Options
	start       time.Time
	expanded    int
	generated   int
	maxDepth    int
	maxFrontier int
}

func newTracker(opts Options) *tracker {
	return &tracker{opts: opts, start: time.Now()}
}

// checkBounds samples the cooperative limits. Called once per expansion
// step, so a search may overshoot a limit by at most one step.
func (t *tracker) checkBounds() (Outcome, bool) {
	select {
	case <-t.opts.Ctx.Done():
		return Canceled, true
	default:
	}
	if t.opts.TimeLimit > 0 && time.Since(t.start) > t.opts.TimeLimit {
		return TimeLimitExceeded, true
	}
	if t.opts.NodeLimit > 0 && t.expanded >= t.opts.NodeLimit {
		return NodeLimitExceeded, true
	}

	return GoalFound, false
}

// expand records one expansion and fires the diagnostics hook.
func (t *tracker) expand(n *node) {
	t.expanded++
	if n.depth > t.maxDepth {
		t.maxDepth = n.depth
	}
	if t.opts.OnExpand != nil {
		t.opts.OnExpand(n.state.Key(), n.depth)
	}
}

// generate records nodes offered to the frontier.
func (t *tracker) generate(count int) {
	t.generated += count
}

// frontier tracks the peak memory proxy (frontier + visited sizes).
func (t *tracker) frontier(size int) {
	if size > t.maxFrontier {
		t.maxFrontier = size
	}
}

// result assembles the final Result for the given termination.
func (t *tracker) result(alg Algorithm, out Outcome, path []puzzle.Move) *Result {
	return &Result{
		Algorithm:      alg,
		Success:        out == GoalFound,
		Outcome:        out,
		Path:           path,
		NodesExpanded:  t.expanded,
		NodesGenerated: t.generated,
		MaxDepth:       t.maxDepth,
		MaxFrontier:    t.maxFrontier,
		Elapsed:        time.Since(t.start),
	}
}
