// Package puzzle models sliding-tile boards as immutable values.
//
// A State is a side×side grid stored row-major as a flat slice of tile
// values, 0 marking the blank cell. States are deep-copied on construction
// and never mutated afterwards; Apply and Successors always return fresh
// values. This keeps parent back-references in search trees safe to share.
package puzzle

import (
	"fmt"
	"strings"
)

// State is an immutable board configuration.
// The zero State is invalid; build one with New, Goal, Preset or Scramble.
type State struct {
	tiles []int // row-major tile values, Blank marks the empty cell
	side  int   // grid side length
	blank int   // flat index of the blank cell
}

// New validates tiles as a side×side board and returns the corresponding
// State. The input slice is deep-copied.
//
// Returns ErrUnsupportedSide when side is outside [MinSide, MaxSide], and
// an error wrapping ErrInvalidPuzzle (ErrNotPermutation for duplicate or
// out-of-range values) for any other malformed input.
// Complexity: O(side²) time and memory.
func New(tiles []int, side int) (State, error) {
	if side < MinSide || side > MaxSide {
		return State{}, fmt.Errorf("%w: got %d", ErrUnsupportedSide, side)
	}
	n := side * side
	if len(tiles) != n {
		return State{}, fmt.Errorf("%w: expected %d tiles, got %d", ErrInvalidPuzzle, n, len(tiles))
	}

	// Verify the multiset {0..n-1} while locating the blank.
	seen := make([]bool, n)
	blank := -1
	for i, v := range tiles {
		if v < 0 || v >= n {
			return State{}, fmt.Errorf("%w: value %d out of range at index %d", ErrNotPermutation, v, i)
		}
		if seen[v] {
			return State{}, fmt.Errorf("%w: duplicate value %d", ErrNotPermutation, v)
		}
		seen[v] = true
		if v == Blank {
			blank = i
		}
	}

	// Deep copy to guarantee immutability against caller mutation.
	own := make([]int, n)
	copy(own, tiles)

	return State{tiles: own, side: side, blank: blank}, nil
}

// Goal returns the conventional goal state for the given side:
// tiles in ascending order with the blank in the last cell.
func Goal(side int) (State, error) {
	if side < MinSide || side > MaxSide {
		return State{}, fmt.Errorf("%w: got %d", ErrUnsupportedSide, side)
	}

	return goalState(side), nil
}

// goalState builds the ascending goal board. side must already be valid.
func goalState(side int) State {
	n := side * side
	tiles := make([]int, n)
	for i := 0; i < n-1; i++ {
		tiles[i] = i + 1
	}
	tiles[n-1] = Blank

	return State{tiles: tiles, side: side, blank: n - 1}
}

// Side returns the grid side length.
func (s State) Side() int { return s.side }

// Len returns the number of cells (side²).
func (s State) Len() int { return len(s.tiles) }

// At returns the tile value at row r, column c.
// Panics when (r,c) is out of bounds; an out-of-range read is a
// programming error, not a recoverable condition.
func (s State) At(r, c int) int {
	if r < 0 || r >= s.side || c < 0 || c >= s.side {
		panic(fmt.Sprintf("puzzle: At(%d,%d) out of bounds for side %d", r, c, s.side))
	}

	return s.tiles[r*s.side+c]
}

// Tiles returns a defensive copy of the row-major tile values.
func (s State) Tiles() []int {
	out := make([]int, len(s.tiles))
	copy(out, s.tiles)

	return out
}

// Blank returns the row and column of the blank cell.
func (s State) Blank() (r, c int) {
	return s.blank / s.side, s.blank % s.side
}

// Key returns a stable identifier for the state. Each tile value fits in a
// byte (N ≤ 24), so the key is simply the tile bytes — O(side²) to build,
// O(1) amortized to compare and hash as a map key.
func (s State) Key() Key {
	b := make([]byte, len(s.tiles))
	for i, v := range s.tiles {
		b[i] = byte(v)
	}

	return Key(b)
}

// Equal reports whether two states hold identical tile sequences.
func (s State) Equal(o State) bool {
	if s.side != o.side {
		return false
	}
	for i, v := range s.tiles {
		if o.tiles[i] != v {
			return false
		}
	}

	return true
}

// Apply moves the blank in direction m and returns the resulting state.
// The second return value is false when the move would leave the grid;
// the receiver is returned unchanged in that case.
// Complexity: O(side²) for the tile copy.
func (s State) Apply(m Move) (State, bool) {
	dr, dc := m.delta()
	r, c := s.Blank()
	nr, nc := r+dr, c+dc
	if nr < 0 || nr >= s.side || nc < 0 || nc >= s.side {
		return s, false
	}

	next := nr*s.side + nc
	tiles := make([]int, len(s.tiles))
	copy(tiles, s.tiles)
	tiles[s.blank], tiles[next] = tiles[next], tiles[s.blank]

	return State{tiles: tiles, side: s.side, blank: next}, true
}

// Successors returns every state reachable by one blank move, paired with
// the move that produced it, in the fixed order UP, DOWN, LEFT, RIGHT.
// A corner position yields 2 successors, an edge 3, the center 4.
func (s State) Successors() []Successor {
	out := make([]Successor, 0, len(moveOrder))
	for _, m := range moveOrder {
		if next, ok := s.Apply(m); ok {
			out = append(out, Successor{Move: m, State: next})
		}
	}

	return out
}

// ApplyAll replays moves in order and returns the final state.
// It fails with an error naming the offending step if any move is illegal
// from the state it is applied to. Useful for solution-path verification.
func (s State) ApplyAll(moves []Move) (State, error) {
	cur := s
	var ok bool
	for i, m := range moves {
		if cur, ok = cur.Apply(m); !ok {
			return State{}, fmt.Errorf("puzzle: illegal move %s at step %d", m, i)
		}
	}

	return cur, nil
}

// String renders the grid with right-aligned tiles and the blank as "·".
func (s State) String() string {
	var b strings.Builder
	width := 1
	if s.side > MinSide {
		width = 2
	}
	for r := 0; r < s.side; r++ {
		for c := 0; c < s.side; c++ {
			if c > 0 {
				b.WriteByte(' ')
			}
			v := s.tiles[r*s.side+c]
			if v == Blank {
				fmt.Fprintf(&b, "%*s", width, "·")
			} else {
				fmt.Fprintf(&b, "%*d", width, v)
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}
