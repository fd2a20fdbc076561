package puzzle_test

import (
	"fmt"

	"github.com/katalvlaran/npuzzle/puzzle"
)

// ExampleState_Apply walks the blank two moves from an easy board to the
// goal and prints each configuration.
func ExampleState_Apply() {
	s, _ := puzzle.New([]int{1, 2, 3, 4, 0, 6, 7, 5, 8}, 3)
	fmt.Print(s)
	for _, m := range []puzzle.Move{puzzle.Down, puzzle.Right} {
		s, _ = s.Apply(m)
		fmt.Println(m)
		fmt.Print(s)
	}

	// Output:
	// 1 2 3
	// 4 · 6
	// 7 5 8
	// DOWN
	// 1 2 3
	// 4 5 6
	// 7 · 8
	// RIGHT
	// 1 2 3
	// 4 5 6
	// 7 8 ·
}

// ExampleSolvable shows the parity check catching a single tile swap.
func ExampleSolvable() {
	goal, _ := puzzle.Goal(3)
	swapped, _ := puzzle.New([]int{1, 2, 3, 4, 5, 6, 8, 7, 0}, 3)

	fmt.Println(puzzle.Solvable(goal, goal))
	fmt.Println(puzzle.Solvable(swapped, goal))

	// Output:
	// true
	// false
}

// ExamplePresetNames lists the bundled boards.
func ExamplePresetNames() {
	for _, name := range puzzle.PresetNames() {
		fmt.Println(name)
	}

	// Output:
	// classic15
	// classic24
	// classic8
	// easy8
}
