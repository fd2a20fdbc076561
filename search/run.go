package search

import (
	"github.com/katalvlaran/npuzzle/heuristic"
	"github.com/katalvlaran/npuzzle/puzzle"
)

// Run dispatches to the named algorithm, expressing all five strategies as
// one search capability. Uninformed algorithms ignore h; the informed two
// require it (ErrNilHeuristic otherwise). Unrecognized algorithms return
// ErrUnknownAlgorithm.
func Run(alg Algorithm, p puzzle.Puzzle, h heuristic.Func, opts ...Option) (*Result, error) {
	switch alg {
	case AlgoBFS:
		return BFS(p, opts...)
	case AlgoDFS:
		return DFS(p, opts...)
	case AlgoIDS:
		return IDS(p, opts...)
	case AlgoGreedy:
		return Greedy(p, h, opts...)
	case AlgoAStar:
		return AStar(p, h, opts...)
	default:
		return nil, ErrUnknownAlgorithm
	}
}
