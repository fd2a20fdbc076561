package puzzle

import "fmt"

// Puzzle pairs an initial board with the goal it must reach.
// Both states are guaranteed to share the same side and tile multiset once
// constructed; fields are read-only by convention (State is immutable).
type Puzzle struct {
	Initial State
	Goal    State
}

// NewPuzzle validates the (initial, goal) pair and returns a Puzzle.
// Returns an error wrapping ErrInvalidPuzzle for uninitialized states and
// ErrSideMismatch when the two grids differ in side. The tile multisets
// already match by State construction (each is a permutation of 0..N).
func NewPuzzle(initial, goal State) (Puzzle, error) {
	if initial.side == 0 || goal.side == 0 {
		return Puzzle{}, fmt.Errorf("%w: uninitialized state", ErrInvalidPuzzle)
	}
	if initial.side != goal.side {
		return Puzzle{}, fmt.Errorf("%w: %d vs %d", ErrSideMismatch, initial.side, goal.side)
	}

	return Puzzle{Initial: initial, Goal: goal}, nil
}

// NewClassic returns a Puzzle from initial to the conventional goal
// (ascending tiles, blank last) of the same side.
func NewClassic(initial State) (Puzzle, error) {
	if initial.side == 0 {
		return Puzzle{}, fmt.Errorf("%w: uninitialized state", ErrInvalidPuzzle)
	}

	return Puzzle{Initial: initial, Goal: goalState(initial.side)}, nil
}

// Side returns the grid side shared by both states.
func (p Puzzle) Side() int { return p.Initial.side }

// Solvable reports whether the puzzle's goal is reachable from its initial
// state. See Solvable for the parity rule.
func (p Puzzle) Solvable() bool {
	return Solvable(p.Initial, p.Goal)
}
