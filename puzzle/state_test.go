package puzzle_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/npuzzle/puzzle"
)

// TestNew_Errors verifies that malformed boards are rejected at the boundary.
func TestNew_Errors(t *testing.T) {
	// unsupported side
	if _, err := puzzle.New([]int{0, 1, 2, 3}, 2); !errors.Is(err, puzzle.ErrUnsupportedSide) {
		t.Errorf("side 2: want ErrUnsupportedSide, got %v", err)
	}
	if _, err := puzzle.New(make([]int, 36), 6); !errors.Is(err, puzzle.ErrUnsupportedSide) {
		t.Errorf("side 6: want ErrUnsupportedSide, got %v", err)
	}
	// wrong tile count
	if _, err := puzzle.New([]int{0, 1, 2}, 3); !errors.Is(err, puzzle.ErrInvalidPuzzle) {
		t.Errorf("short slice: want ErrInvalidPuzzle, got %v", err)
	}
	// duplicate value
	if _, err := puzzle.New([]int{1, 1, 2, 3, 4, 5, 6, 7, 0}, 3); !errors.Is(err, puzzle.ErrNotPermutation) {
		t.Errorf("duplicate: want ErrNotPermutation, got %v", err)
	}
	// out-of-range value
	if _, err := puzzle.New([]int{1, 2, 3, 4, 5, 6, 7, 8, 9}, 3); !errors.Is(err, puzzle.ErrNotPermutation) {
		t.Errorf("out of range: want ErrNotPermutation, got %v", err)
	}
	// every construction error is part of the ErrInvalidPuzzle family
	if _, err := puzzle.New([]int{1, 1, 2, 3, 4, 5, 6, 7, 0}, 3); !errors.Is(err, puzzle.ErrInvalidPuzzle) {
		t.Errorf("duplicate: want ErrInvalidPuzzle family, got %v", err)
	}
}

// TestNew_DeepCopies ensures a State is immune to caller-side mutation.
func TestNew_DeepCopies(t *testing.T) {
	tiles := []int{1, 2, 3, 4, 0, 6, 7, 5, 8}
	s, err := puzzle.New(tiles, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tiles[0] = 99
	if got := s.Tiles()[0]; got != 1 {
		t.Errorf("state mutated through input slice: tile[0] = %d; want 1", got)
	}
	// Tiles() must also hand out a copy.
	s.Tiles()[0] = 99
	if got := s.Tiles()[0]; got != 1 {
		t.Errorf("state mutated through Tiles(): tile[0] = %d; want 1", got)
	}
}

// TestGoal checks the conventional goal layout for each supported side.
func TestGoal(t *testing.T) {
	g, err := puzzle.Goal(3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []int{1, 2, 3, 4, 5, 6, 7, 8, 0}
	if got := g.Tiles(); !reflect.DeepEqual(got, want) {
		t.Errorf("Goal(3) = %v; want %v", got, want)
	}
	if r, c := g.Blank(); r != 2 || c != 2 {
		t.Errorf("Goal(3) blank at (%d,%d); want (2,2)", r, c)
	}
	if _, err = puzzle.Goal(6); !errors.Is(err, puzzle.ErrUnsupportedSide) {
		t.Errorf("Goal(6): want ErrUnsupportedSide, got %v", err)
	}
}

// TestApply covers legal moves, illegal moves, and immutability.
func TestApply(t *testing.T) {
	g, _ := puzzle.Goal(3) // blank in the bottom-right corner
	if _, ok := g.Apply(puzzle.Down); ok {
		t.Error("Down from the bottom row must be illegal")
	}
	if _, ok := g.Apply(puzzle.Right); ok {
		t.Error("Right from the last column must be illegal")
	}

	up, ok := g.Apply(puzzle.Up)
	if !ok {
		t.Fatal("Up from the corner must be legal")
	}
	want := []int{1, 2, 3, 4, 5, 0, 7, 8, 6}
	if got := up.Tiles(); !reflect.DeepEqual(got, want) {
		t.Errorf("after Up: %v; want %v", got, want)
	}
	// receiver untouched
	if r, c := g.Blank(); r != 2 || c != 2 {
		t.Errorf("receiver mutated: blank at (%d,%d)", r, c)
	}
	// Opposite undoes
	back, ok := up.Apply(puzzle.Up.Opposite())
	if !ok || !back.Equal(g) {
		t.Error("Down after Up must restore the goal state")
	}
}

// TestSuccessors_FixedOrder asserts the UP, DOWN, LEFT, RIGHT contract.
func TestSuccessors_FixedOrder(t *testing.T) {
	center, _ := puzzle.New([]int{1, 2, 3, 4, 0, 6, 7, 5, 8}, 3)
	succ := center.Successors()
	if len(succ) != 4 {
		t.Fatalf("center blank: %d successors; want 4", len(succ))
	}
	wantOrder := []puzzle.Move{puzzle.Up, puzzle.Down, puzzle.Left, puzzle.Right}
	for i, sc := range succ {
		if sc.Move != wantOrder[i] {
			t.Errorf("successor %d move = %s; want %s", i, sc.Move, wantOrder[i])
		}
	}

	corner, _ := puzzle.Goal(3)
	succ = corner.Successors()
	if len(succ) != 2 {
		t.Fatalf("corner blank: %d successors; want 2", len(succ))
	}
	if succ[0].Move != puzzle.Up || succ[1].Move != puzzle.Left {
		t.Errorf("corner successors = [%s %s]; want [UP LEFT]", succ[0].Move, succ[1].Move)
	}
}

// TestKeyAndEqual ties state identity to the tile sequence.
func TestKeyAndEqual(t *testing.T) {
	a, _ := puzzle.New([]int{1, 2, 3, 4, 0, 6, 7, 5, 8}, 3)
	b, _ := puzzle.New([]int{1, 2, 3, 4, 0, 6, 7, 5, 8}, 3)
	c, _ := puzzle.Goal(3)

	if !a.Equal(b) || a.Key() != b.Key() {
		t.Error("identical tile sequences must be equal with equal keys")
	}
	if a.Equal(c) || a.Key() == c.Key() {
		t.Error("different tile sequences must differ in key")
	}
}

// TestApplyAll replays a move sequence and reports illegal steps.
func TestApplyAll(t *testing.T) {
	initial, _ := puzzle.New([]int{1, 2, 3, 4, 0, 6, 7, 5, 8}, 3)
	goal, _ := puzzle.Goal(3)

	got, err := initial.ApplyAll([]puzzle.Move{puzzle.Down, puzzle.Right})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(goal) {
		t.Errorf("replay ended at\n%s want\n%s", got, goal)
	}

	if _, err = goal.ApplyAll([]puzzle.Move{puzzle.Down}); err == nil {
		t.Error("illegal step must be reported")
	}
}

// TestString checks the grid rendering, blank drawn as the middle dot.
func TestString(t *testing.T) {
	s, _ := puzzle.New([]int{1, 2, 3, 4, 0, 6, 7, 5, 8}, 3)
	want := "1 2 3\n4 · 6\n7 5 8\n"
	if got := s.String(); got != want {
		t.Errorf("String() = %q; want %q", got, want)
	}
}

// TestPuzzleConstruction covers pairing validation.
func TestPuzzleConstruction(t *testing.T) {
	init3, _ := puzzle.Goal(3)
	goal4, _ := puzzle.Goal(4)

	if _, err := puzzle.NewPuzzle(init3, goal4); !errors.Is(err, puzzle.ErrSideMismatch) {
		t.Errorf("mixed sides: want ErrSideMismatch, got %v", err)
	}
	if _, err := puzzle.NewPuzzle(puzzle.State{}, init3); !errors.Is(err, puzzle.ErrInvalidPuzzle) {
		t.Errorf("zero state: want ErrInvalidPuzzle, got %v", err)
	}

	p, err := puzzle.NewClassic(init3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !p.Goal.Equal(init3) {
		t.Error("NewClassic of the goal state must pair it with itself")
	}
	if p.Side() != 3 {
		t.Errorf("Side() = %d; want 3", p.Side())
	}
}
