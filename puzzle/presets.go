package puzzle

import "sort"

// Preset board library: shared example instances loaded once as immutable
// package data. Preset always hands out fresh State values, so callers can
// never corrupt the library.
//
// Difficulty notes are optimal solution lengths against the classic goal.
var presets = map[string]struct {
	side  int
	tiles []int
}{
	// Two moves from the goal; the scenario board for smoke tests.
	"easy8": {3, []int{1, 2, 3, 4, 0, 6, 7, 5, 8}},
	// 20-move 8-puzzle.
	"classic8": {3, []int{7, 2, 4, 5, 0, 6, 8, 3, 1}},
	// Mid-difficulty 15-puzzle.
	"classic15": {4, []int{
		2, 3, 4, 8,
		1, 6, 0, 12,
		5, 10, 7, 11,
		9, 13, 14, 15,
	}},
	// Shallow 24-puzzle; deep 5×5 instances are beyond the default limits.
	"classic24": {5, []int{
		1, 2, 3, 9, 4,
		6, 7, 8, 5, 10,
		11, 12, 13, 14, 15,
		16, 17, 0, 18, 19,
		21, 22, 23, 24, 20,
	}},
}

// Preset returns the named example instance paired with the classic goal.
// Returns ErrUnknownPreset for any name not in PresetNames.
func Preset(name string) (Puzzle, error) {
	p, ok := presets[name]
	if !ok {
		return Puzzle{}, ErrUnknownPreset
	}

	initial, err := New(p.tiles, p.side)
	if err != nil {
		// Preset data is validated by tests; a malformed entry is a bug.
		panic("puzzle: malformed preset " + name + ": " + err.Error())
	}

	return Puzzle{Initial: initial, Goal: goalState(p.side)}, nil
}

// PresetNames lists the available preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
