// Package heuristic defines identifiers and error values for the distance
// estimators used by informed search.
package heuristic

import (
	"errors"

	"github.com/katalvlaran/npuzzle/puzzle"
)

// ErrUnknownHeuristic is returned by ByID for an unrecognized identifier.
var ErrUnknownHeuristic = errors.New("heuristic: unknown heuristic identifier")

// Func estimates the remaining distance from s to goal in blank moves.
// Implementations must be pure (no side effects, same input ⇒ same output)
// and non-negative; every Func in this package is also admissible.
type Func func(s, goal puzzle.State) int

// ID selects a heuristic by a stable identifier string.
type ID string

// Identifiers accepted by ByID.
const (
	// Misplaced counts tiles out of place.
	Misplaced ID = "misplaced"
	// Manhattan sums per-tile grid distances.
	Manhattan ID = "manhattan"
	// ManhattanLinearConflict adds linear-conflict penalties to Manhattan.
	ManhattanLinearConflict ID = "manhattan_linear_conflict"
)

// ByID resolves an identifier to its Func.
// Returns ErrUnknownHeuristic for anything outside IDs().
func ByID(id ID) (Func, error) {
	switch id {
	case Misplaced:
		return MisplacedTiles, nil
	case Manhattan:
		return ManhattanDistance, nil
	case ManhattanLinearConflict:
		return LinearConflict, nil
	default:
		return nil, ErrUnknownHeuristic
	}
}

// IDs lists the accepted identifiers in increasing informedness order.
func IDs() []ID {
	return []ID{Misplaced, Manhattan, ManhattanLinearConflict}
}
