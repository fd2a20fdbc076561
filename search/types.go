// Package search provides tunable options, result types, and error
// definitions shared by the five N-puzzle search algorithms.
package search

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/npuzzle/puzzle"
)

// Default resource limits applied by DefaultOptions.
const (
	// DefaultNodeLimit caps node expansions per search call.
	DefaultNodeLimit = 100_000
	// DefaultTimeLimit caps wall-clock time per search call.
	DefaultTimeLimit = 5 * time.Minute
	// DefaultDepthBound is the DFS branch bound and the IDS deepening cap.
	DefaultDepthBound = 50
)

// Sentinel errors for search invocation.
var (
	// ErrUninitializedPuzzle is returned when a zero-value Puzzle (or one
	// holding zero States) is passed to a search.
	ErrUninitializedPuzzle = errors.New("search: puzzle states are uninitialized")

	// ErrNilHeuristic is returned when Greedy or AStar receives a nil
	// heuristic function.
	ErrNilHeuristic = errors.New("search: heuristic function is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrUnknownAlgorithm is returned by Run for an unrecognized Algorithm.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")
)

// Algorithm identifies one of the five traversal strategies.
type Algorithm int

const (
	// AlgoBFS is breadth-first search over a FIFO frontier.
	AlgoBFS Algorithm = iota
	// AlgoDFS is depth-bounded depth-first search over a LIFO frontier.
	AlgoDFS
	// AlgoIDS is iterative deepening: repeated bounded DFS.
	AlgoIDS
	// AlgoGreedy is best-first search ordered by h(n).
	AlgoGreedy
	// AlgoAStar is best-first search ordered by f(n) = g(n) + h(n).
	AlgoAStar
)

var algorithmNames = [...]string{"BFS", "DFS", "IDS", "Greedy", "A*"}

// String returns the conventional short name of the algorithm.
func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(algorithmNames) {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}

	return algorithmNames[a]
}

// Outcome classifies how a search terminated. Abort reasons are result
// flags, never errors: a search that runs out of budget still returns a
// well-formed Result with Success=false.
type Outcome int

const (
	// GoalFound: the goal state was expanded; Path holds the move sequence.
	GoalFound Outcome = iota
	// FrontierExhausted: every reachable state (within any configured depth
	// bound) was expanded without finding the goal.
	FrontierExhausted
	// NodeLimitExceeded: the expansion budget ran out first.
	NodeLimitExceeded
	// TimeLimitExceeded: the wall-clock budget ran out first.
	TimeLimitExceeded
	// Unsolvable: the parity check rejected the instance before any
	// expansion — provably unreachable, as opposed to merely exhausted.
	Unsolvable
	// Canceled: the caller's context was done.
	Canceled
)

var outcomeNames = [...]string{
	"GOAL_FOUND",
	"FRONTIER_EXHAUSTED",
	"NODE_LIMIT_EXCEEDED",
	"TIME_LIMIT_EXCEEDED",
	"UNSOLVABLE",
	"CANCELED",
}

// String returns the stable wire name of the outcome.
func (o Outcome) String() string {
	if o < 0 || int(o) >= len(outcomeNames) {
		return fmt.Sprintf("Outcome(%d)", int(o))
	}

	return outcomeNames[o]
}

// Result holds the outcome and statistics of one search call.
type Result struct {
	// Algorithm that produced this result.
	Algorithm Algorithm

	// Success is true iff Outcome == GoalFound.
	Success bool

	// Outcome classifies the termination; see the Outcome constants.
	Outcome Outcome

	// Path is the move sequence from the initial state to the goal, in
	// order; nil when the search failed. Replaying Path on the initial
	// state yields exactly the goal state.
	Path []puzzle.Move

	// NodesExpanded counts states popped from the frontier and explored.
	NodesExpanded int

	// NodesGenerated counts states created and offered to the frontier,
	// the root included.
	NodesGenerated int

	// MaxDepth is the deepest tree depth reached during the search.
	MaxDepth int

	// MaxFrontier is the peak of frontier size plus visited-set size — a
	// proxy for the search's memory footprint in nodes.
	MaxFrontier int

	// Elapsed is the wall-clock duration of the call.
	Elapsed time.Duration
}

// Option configures search behavior via functional arguments.
// If an Option is invalid (e.g. a negative limit), it is recorded
// internally and surfaced as ErrOptionViolation when the search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks shared by all five algorithms.
// DFS-only and IDS-only knobs are ignored by the other algorithms.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per expansion.
	Ctx context.Context

	// NodeLimit caps expansions; 0 explicitly disables the cap.
	NodeLimit int

	// TimeLimit caps wall-clock time, sampled between expansion steps
	// (coarse: a search may overshoot by one step); 0 disables the cap.
	TimeLimit time.Duration

	// DepthBound bounds DFS branches and caps IDS deepening.
	// A bound of 0 expands only the initial state.
	DepthBound int

	// BoundStep is the IDS bound increment per iteration (≥ 1).
	BoundStep int

	// OnExpand, if non-nil, is called as each node is expanded with the
	// state key and tree depth. Diagnostics only; must not block.
	OnExpand func(key puzzle.Key, depth int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with the documented defaults:
// background context, NodeLimit 100000, TimeLimit 5m, DepthBound 50,
// BoundStep 1, no hook.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		NodeLimit:  DefaultNodeLimit,
		TimeLimit:  DefaultTimeLimit,
		DepthBound: DefaultDepthBound,
		BoundStep:  1,
		OnExpand:   nil,
		err:        nil,
	}
}

// WithContext sets a custom context for cancellation.
// Passing nil has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithNodeLimit caps node expansions.
//
//	n > 0:  limit to n expansions
//	n == 0: explicit no limit
//	n < 0:  invalid option → ErrOptionViolation
func WithNodeLimit(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: NodeLimit cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.NodeLimit = n
	}
}

// WithTimeLimit caps wall-clock time; 0 disables the cap, negative values
// are an ErrOptionViolation.
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: TimeLimit cannot be negative (%s)", ErrOptionViolation, d)
			return
		}
		o.TimeLimit = d
	}
}

// WithDepthBound sets the DFS branch bound / IDS deepening cap.
// A bound of 0 expands only the initial state; negative bounds are an
// ErrOptionViolation.
func WithDepthBound(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: DepthBound cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.DepthBound = d
	}
}

// WithBoundStep sets the IDS bound increment; values < 1 are an
// ErrOptionViolation.
func WithBoundStep(step int) Option {
	return func(o *Options) {
		if step < 1 {
			o.err = fmt.Errorf("%w: BoundStep must be at least 1 (%d)", ErrOptionViolation, step)
			return
		}
		o.BoundStep = step
	}
}

// WithOnExpand registers a diagnostics hook invoked on every expansion.
func WithOnExpand(fn func(key puzzle.Key, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// buildOptions applies opts over the defaults and surfaces any recorded
// option violation.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Options{}, o.err
	}

	return o, nil
}

// checkPuzzle rejects zero-value puzzles before any traversal state is
// allocated.
func checkPuzzle(p puzzle.Puzzle) error {
	if p.Initial.Side() == 0 || p.Goal.Side() == 0 {
		return ErrUninitializedPuzzle
	}

	return nil
}
