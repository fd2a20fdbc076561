package puzzle

// Solvable reports whether goal is reachable from initial by blank moves.
//
// The check is the classic inversion-parity argument, generalized to an
// arbitrary goal ordering: each tile of the initial board is replaced by its
// rank in the goal's row-major scan, and inversions are counted over that
// sequence with the blank ignored.
//
//   - Odd side: every blank move preserves inversion parity, so the boards
//     are mutually reachable iff the inversion count is even.
//   - Even side: a vertical blank move flips inversion parity, so the
//     invariant is inversion parity XOR blank-row-distance parity.
//
// States of differing sides are never mutually reachable.
// Complexity: O(n²) in the cell count n; n ≤ 25 here, so the quadratic
// inversion count is cheaper than a Fenwick-tree variant would be.
func Solvable(initial, goal State) bool {
	if initial.side != goal.side || initial.side == 0 {
		return false
	}

	// Rank each tile value by its position in the goal scan.
	rank := make([]int, len(goal.tiles))
	for pos, v := range goal.tiles {
		rank[v] = pos
	}

	// Project the initial board through the goal ranking, blank excluded.
	seq := make([]int, 0, len(initial.tiles)-1)
	for _, v := range initial.tiles {
		if v != Blank {
			seq = append(seq, rank[v])
		}
	}

	inversions := 0
	for i := 0; i < len(seq); i++ {
		for j := i + 1; j < len(seq); j++ {
			if seq[i] > seq[j] {
				inversions++
			}
		}
	}

	if initial.side%2 == 1 {
		return inversions%2 == 0
	}

	rowInit := initial.blank / initial.side
	rowGoal := goal.blank / goal.side
	rowDist := rowInit - rowGoal
	if rowDist < 0 {
		rowDist = -rowDist
	}

	return (inversions+rowDist)%2 == 0
}
