// Package metrics aggregates search results for cross-algorithm
// comparison. It is a pure consumer of search.Result values: nothing here
// reaches into the traversal internals.
package metrics

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/npuzzle/heuristic"
	"github.com/katalvlaran/npuzzle/search"
)

// Sentinel errors for comparison runs and ranking.
var (
	// ErrNoResults is returned when a ranking is requested over a collector
	// holding no successful results.
	ErrNoResults = errors.New("metrics: no successful results to rank")

	// ErrEmptySpecs is returned when Compare is invoked with nothing to run.
	ErrEmptySpecs = errors.New("metrics: at least one run spec required")
)

// Spec names one algorithm run: which strategy, and for the informed two,
// which heuristic identifier.
type Spec struct {
	Algorithm search.Algorithm
	Heuristic heuristic.ID // ignored by BFS/DFS/IDS
}

// Label renders the conventional display name, e.g. "A* (manhattan)".
func (s Spec) Label() string {
	switch s.Algorithm {
	case search.AlgoGreedy, search.AlgoAStar:
		return fmt.Sprintf("%s (%s)", s.Algorithm, s.Heuristic)
	default:
		return s.Algorithm.String()
	}
}

// Entry pairs a labeled run with its result.
type Entry struct {
	Label     string
	Heuristic heuristic.ID
	Result    *search.Result
}

// Collector accumulates comparison entries in insertion order.
type Collector struct {
	entries []Entry
}

// NewCollector returns an empty Collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Add records one labeled result.
func (c *Collector) Add(label string, hid heuristic.ID, r *search.Result) {
	c.entries = append(c.entries, Entry{Label: label, Heuristic: hid, Result: r})
}

// Entries returns the recorded entries in insertion order.
func (c *Collector) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)

	return out
}

// Reset discards all recorded entries.
func (c *Collector) Reset() {
	c.entries = c.entries[:0]
}

// Criterion selects the metric a ranking minimizes.
type Criterion int

const (
	// ByDepth ranks by solution path length (optimality).
	ByDepth Criterion = iota
	// ByTime ranks by wall-clock duration.
	ByTime
	// ByMemory ranks by peak frontier + visited size.
	ByMemory
)

// Best returns the successful entry minimizing the criterion.
// Returns ErrNoResults when no entry succeeded.
func (c *Collector) Best(cr Criterion) (Entry, error) {
	var best Entry
	found := false
	for _, e := range c.entries {
		if !e.Result.Success {
			continue
		}
		if !found || less(cr, e, best) {
			best = e
			found = true
		}
	}
	if !found {
		return Entry{}, ErrNoResults
	}

	return best, nil
}

func less(cr Criterion, a, b Entry) bool {
	switch cr {
	case ByTime:
		return a.Result.Elapsed < b.Result.Elapsed
	case ByMemory:
		return a.Result.MaxFrontier < b.Result.MaxFrontier
	default:
		return len(a.Result.Path) < len(b.Result.Path)
	}
}

// Score weights for BestScore: solution depth 30%, expanded nodes 40%,
// elapsed time 30%.
const (
	depthWeight = 0.3
	nodesWeight = 0.4
	timeWeight  = 0.3
)

// BestScore ranks successful entries by a normalized weighted score over
// path length, expanded nodes, and elapsed time (lower is better on each
// axis), and returns the entry with the lowest score.
// Returns ErrNoResults when no entry succeeded.
func (c *Collector) BestScore() (Entry, error) {
	succ := make([]Entry, 0, len(c.entries))
	for _, e := range c.entries {
		if e.Result.Success {
			succ = append(succ, e)
		}
	}
	if len(succ) == 0 {
		return Entry{}, ErrNoResults
	}
	if len(succ) == 1 {
		return succ[0], nil
	}

	minD, maxD := minMax(succ, func(e Entry) float64 { return float64(len(e.Result.Path)) })
	minN, maxN := minMax(succ, func(e Entry) float64 { return float64(e.Result.NodesExpanded) })
	minT, maxT := minMax(succ, func(e Entry) float64 { return e.Result.Elapsed.Seconds() })

	best := succ[0]
	bestScore := -1.0
	for _, e := range succ {
		score := depthWeight*normalize(float64(len(e.Result.Path)), minD, maxD) +
			nodesWeight*normalize(float64(e.Result.NodesExpanded), minN, maxN) +
			timeWeight*normalize(e.Result.Elapsed.Seconds(), minT, maxT)
		if bestScore < 0 || score < bestScore {
			bestScore = score
			best = e
		}
	}

	return best, nil
}

func minMax(entries []Entry, f func(Entry) float64) (lo, hi float64) {
	lo, hi = f(entries[0]), f(entries[0])
	for _, e := range entries[1:] {
		v := f(e)
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	return lo, hi
}

// normalize maps v into [0,1] over [lo,hi]; a degenerate range maps to 0.
func normalize(v, lo, hi float64) float64 {
	if hi == lo {
		return 0
	}

	return (v - lo) / (hi - lo)
}
