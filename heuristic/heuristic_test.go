package heuristic_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/npuzzle/heuristic"
	"github.com/katalvlaran/npuzzle/puzzle"
)

func mustState(t *testing.T, tiles []int, side int) puzzle.State {
	t.Helper()
	s, err := puzzle.New(tiles, side)
	if err != nil {
		t.Fatalf("bad fixture %v: %v", tiles, err)
	}

	return s
}

// TestKnownValues pins hand-computed estimates on small boards.
func TestKnownValues(t *testing.T) {
	goal, _ := puzzle.Goal(3)

	cases := []struct {
		name                            string
		tiles                           []int
		misplaced, manhattan, linearConflict int
	}{
		{"goal", []int{1, 2, 3, 4, 5, 6, 7, 8, 0}, 0, 0, 0},
		// 5 and 8 one cell from home, no shared lines reversed
		{"easy8", []int{1, 2, 3, 4, 0, 6, 7, 5, 8}, 2, 2, 2},
		// 1 and 2 swapped in their goal row: +2 conflict
		{"row swap", []int{2, 1, 3, 4, 5, 6, 7, 8, 0}, 2, 2, 4},
		// 1 and 4 swapped in their goal column: +2 conflict
		{"column swap", []int{4, 2, 3, 1, 5, 6, 7, 8, 0}, 2, 2, 4},
	}

	for _, tc := range cases {
		s := mustState(t, tc.tiles, 3)
		if got := heuristic.MisplacedTiles(s, goal); got != tc.misplaced {
			t.Errorf("%s: MisplacedTiles = %d; want %d", tc.name, got, tc.misplaced)
		}
		if got := heuristic.ManhattanDistance(s, goal); got != tc.manhattan {
			t.Errorf("%s: ManhattanDistance = %d; want %d", tc.name, got, tc.manhattan)
		}
		if got := heuristic.LinearConflict(s, goal); got != tc.linearConflict {
			t.Errorf("%s: LinearConflict = %d; want %d", tc.name, got, tc.linearConflict)
		}
	}
}

// TestBlankIgnored: the blank cell never contributes to any estimate.
func TestBlankIgnored(t *testing.T) {
	goal, _ := puzzle.Goal(3)
	// Blank far from its goal corner, every tile at home except 8.
	s := mustState(t, []int{1, 2, 3, 4, 5, 6, 7, 0, 8}, 3)
	if got := heuristic.MisplacedTiles(s, goal); got != 1 {
		t.Errorf("MisplacedTiles = %d; want 1", got)
	}
	if got := heuristic.ManhattanDistance(s, goal); got != 1 {
		t.Errorf("ManhattanDistance = %d; want 1", got)
	}
}

// TestDominanceOrdering verifies misplaced ≤ manhattan ≤ linear conflict on
// a spread of scrambled boards of every supported side.
func TestDominanceOrdering(t *testing.T) {
	for _, side := range []int{3, 4, 5} {
		goal, _ := puzzle.Goal(side)
		for seed := int64(1); seed <= 50; seed++ {
			s, err := puzzle.Scramble(goal, 40, seed)
			if err != nil {
				t.Fatalf("side %d seed %d: %v", side, seed, err)
			}
			mp := heuristic.MisplacedTiles(s, goal)
			md := heuristic.ManhattanDistance(s, goal)
			lc := heuristic.LinearConflict(s, goal)
			if mp > md || md > lc {
				t.Errorf("side %d seed %d: ordering violated: %d, %d, %d", side, seed, mp, md, lc)
			}
		}
	}
}

// TestAdmissibleNearGoal: within a known optimal distance the estimates
// must not exceed it. easy8 is exactly 2 moves from the goal.
func TestAdmissibleNearGoal(t *testing.T) {
	goal, _ := puzzle.Goal(3)
	s := mustState(t, []int{1, 2, 3, 4, 0, 6, 7, 5, 8}, 3)
	for _, h := range []heuristic.Func{
		heuristic.MisplacedTiles,
		heuristic.ManhattanDistance,
		heuristic.LinearConflict,
	} {
		if got := h(s, goal); got > 2 {
			t.Errorf("estimate %d exceeds the optimal 2-move distance", got)
		}
	}
}

// TestPurity: repeated evaluation neither changes the answer nor the state.
func TestPurity(t *testing.T) {
	goal, _ := puzzle.Goal(4)
	s, _ := puzzle.Scramble(goal, 30, 9)
	before := s.Key()
	first := heuristic.LinearConflict(s, goal)
	for i := 0; i < 10; i++ {
		if got := heuristic.LinearConflict(s, goal); got != first {
			t.Fatalf("evaluation %d returned %d; want %d", i, got, first)
		}
	}
	if s.Key() != before {
		t.Error("heuristic evaluation mutated the state")
	}
}

// TestByID resolves registered identifiers and rejects unknown ones.
func TestByID(t *testing.T) {
	goal, _ := puzzle.Goal(3)
	s := mustState(t, []int{2, 1, 3, 4, 5, 6, 7, 8, 0}, 3)

	cases := []struct {
		id   heuristic.ID
		want int
	}{
		{heuristic.Misplaced, 2},
		{heuristic.Manhattan, 2},
		{heuristic.ManhattanLinearConflict, 4},
	}
	for _, tc := range cases {
		fn, err := heuristic.ByID(tc.id)
		if err != nil {
			t.Fatalf("ByID(%q): unexpected error: %v", tc.id, err)
		}
		if got := fn(s, goal); got != tc.want {
			t.Errorf("ByID(%q) = %d; want %d", tc.id, got, tc.want)
		}
	}

	if _, err := heuristic.ByID("euclidean"); !errors.Is(err, heuristic.ErrUnknownHeuristic) {
		t.Errorf("unknown id: want ErrUnknownHeuristic, got %v", err)
	}

	ids := heuristic.IDs()
	if len(ids) != 3 {
		t.Errorf("IDs() returned %d identifiers; want 3", len(ids))
	}
}
