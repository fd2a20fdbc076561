package metrics

import (
	"fmt"

	"github.com/katalvlaran/npuzzle/heuristic"
	"github.com/katalvlaran/npuzzle/puzzle"
	"github.com/katalvlaran/npuzzle/search"
)

// Compare runs every spec against the same puzzle, sequentially and in
// order, and collects the results. Runs are never concurrent: sequential
// execution keeps per-run timing and memory statistics comparable.
//
// The heuristic identifier of an informed spec is resolved via
// heuristic.ByID; an unknown identifier aborts the comparison with
// heuristic.ErrUnknownHeuristic before any search runs.
// Returns ErrEmptySpecs for an empty spec list; search invocation errors
// propagate wrapped with the offending label.
func Compare(p puzzle.Puzzle, specs []Spec, opts ...search.Option) (*Collector, error) {
	if len(specs) == 0 {
		return nil, ErrEmptySpecs
	}

	// Resolve every heuristic up front so a bad spec fails fast.
	funcs := make([]heuristic.Func, len(specs))
	for i, s := range specs {
		if s.Algorithm != search.AlgoGreedy && s.Algorithm != search.AlgoAStar {
			continue
		}
		fn, err := heuristic.ByID(s.Heuristic)
		if err != nil {
			return nil, fmt.Errorf("metrics: spec %q: %w", s.Label(), err)
		}
		funcs[i] = fn
	}

	c := NewCollector()
	for i, s := range specs {
		res, err := search.Run(s.Algorithm, p, funcs[i], opts...)
		if err != nil {
			return nil, fmt.Errorf("metrics: spec %q: %w", s.Label(), err)
		}
		c.Add(s.Label(), s.Heuristic, res)
	}

	return c, nil
}

// DefaultSpecs is the canonical five-way comparison: the three uninformed
// algorithms plus Greedy and A*, both on the given heuristic.
func DefaultSpecs(hid heuristic.ID) []Spec {
	return []Spec{
		{Algorithm: search.AlgoBFS},
		{Algorithm: search.AlgoDFS},
		{Algorithm: search.AlgoIDS},
		{Algorithm: search.AlgoGreedy, Heuristic: hid},
		{Algorithm: search.AlgoAStar, Heuristic: hid},
	}
}
