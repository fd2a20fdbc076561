// Package puzzle defines the board model, move primitives, and sentinel
// errors for the npuzzle module.
package puzzle

import (
	"errors"
	"fmt"
)

// Supported grid dimensions: 3×3 (8-puzzle), 4×4 (15-puzzle), 5×5 (24-puzzle).
const (
	// MinSide is the smallest supported grid side.
	MinSide = 3
	// MaxSide is the largest supported grid side.
	MaxSide = 5
)

// Sentinel errors for board construction and generation.
var (
	// ErrInvalidPuzzle is the root error for every malformed board input.
	// All construction-time violations wrap it, so callers can match the
	// whole family with errors.Is(err, ErrInvalidPuzzle).
	ErrInvalidPuzzle = errors.New("puzzle: invalid puzzle configuration")

	// ErrUnsupportedSide is returned when the grid side is outside {3,4,5}.
	ErrUnsupportedSide = fmt.Errorf("%w: grid side must be between 3 and 5", ErrInvalidPuzzle)

	// ErrNotPermutation is returned when the tile values are not a
	// permutation of 0..side²-1.
	ErrNotPermutation = fmt.Errorf("%w: tiles must be a permutation of 0..N", ErrInvalidPuzzle)

	// ErrSideMismatch is returned when an initial and goal state pair has
	// differing grid sides.
	ErrSideMismatch = errors.New("puzzle: initial and goal grid sides differ")

	// ErrUnknownPreset is returned when a requested preset name is absent.
	ErrUnknownPreset = errors.New("puzzle: unknown preset name")

	// ErrNegativeSteps is returned when Scramble is asked for a negative
	// number of random moves.
	ErrNegativeSteps = errors.New("puzzle: scramble steps must be non-negative")
)

// Blank is the tile value representing the empty cell.
const Blank = 0

// Move is the direction the blank cell travels in a single step.
// Equivalently, the adjacent tile slides the opposite way into the blank.
type Move uint8

const (
	// Up moves the blank one row towards the top of the grid.
	Up Move = iota
	// Down moves the blank one row towards the bottom of the grid.
	Down
	// Left moves the blank one column towards the left edge.
	Left
	// Right moves the blank one column towards the right edge.
	Right
)

// moveOrder fixes the successor expansion order. Keeping it stable makes
// every search in this module reproducible for a given input.
var moveOrder = [4]Move{Up, Down, Left, Right}

// moveNames maps each Move to its canonical wire/display name.
var moveNames = [4]string{"UP", "DOWN", "LEFT", "RIGHT"}

// String returns the canonical name of the move (UP, DOWN, LEFT, RIGHT).
func (m Move) String() string {
	if int(m) >= len(moveNames) {
		return fmt.Sprintf("Move(%d)", uint8(m))
	}

	return moveNames[m]
}

// Opposite returns the move that undoes m.
func (m Move) Opposite() Move {
	switch m {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// delta returns the (row, col) displacement of the blank for move m.
func (m Move) delta() (dr, dc int) {
	switch m {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	default:
		return 0, 1
	}
}

// Successor pairs a legal move with the state it produces.
type Successor struct {
	Move  Move
	State State
}

// Key is a stable, cheap identifier for a State, suitable for visited-set
// membership. Two states are equal iff their keys are equal.
type Key string
