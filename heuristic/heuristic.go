// Package heuristic implements admissible distance estimators for the
// N-puzzle, used by Greedy best-first and A* search.
//
// All three estimators never overestimate the true remaining move count,
// and they are totally ordered in informedness for every state pair:
//
//	MisplacedTiles(s) ≤ ManhattanDistance(s) ≤ LinearConflict(s)
package heuristic

import "github.com/katalvlaran/npuzzle/puzzle"

// MisplacedTiles counts the non-blank cells whose tile differs from the
// goal's tile in the same cell. Each misplaced tile needs at least one
// move, so the count is admissible.
// Complexity: O(n) in the cell count.
func MisplacedTiles(s, goal puzzle.State) int {
	st, gt := s.Tiles(), goal.Tiles()
	count := 0
	for i, v := range st {
		if v != puzzle.Blank && v != gt[i] {
			count++
		}
	}

	return count
}

// ManhattanDistance sums, over all non-blank tiles, the grid distance
// |Δrow| + |Δcol| between the tile's cell and its cell in goal. A tile
// moves one cell per move, so the sum is admissible and dominates
// MisplacedTiles (every misplaced tile contributes ≥ 1).
// Complexity: O(n).
func ManhattanDistance(s, goal puzzle.State) int {
	side := s.Side()
	pos := goalPositions(goal)
	total := 0
	for i, v := range s.Tiles() {
		if v == puzzle.Blank {
			continue
		}
		g := pos[v]
		total += abs(i/side-g/side) + abs(i%side-g%side)
	}

	return total
}

// LinearConflict returns ManhattanDistance plus 2 for each adjacent pair of
// tiles that share their goal row (or column), already sit in that row
// (column), and appear in reversed relative order. Resolving such a
// conflict forces one of the two tiles to leave the line and re-enter,
// which costs at least 2 moves beyond its Manhattan contribution, so the
// penalty stays admissible. Only grid-adjacent pairs are counted: that
// undercounts long reversed runs but never overcounts.
// Complexity: O(n).
func LinearConflict(s, goal puzzle.State) int {
	side := s.Side()
	pos := goalPositions(goal)
	conflicts := 0

	// Row conflicts: tiles at (r,c) and (r,c+1), both homed in row r.
	for r := 0; r < side; r++ {
		for c := 0; c < side-1; c++ {
			a, b := s.At(r, c), s.At(r, c+1)
			if a == puzzle.Blank || b == puzzle.Blank {
				continue
			}
			ga, gb := pos[a], pos[b]
			if ga/side == r && gb/side == r && ga%side > gb%side {
				conflicts += 2
			}
		}
	}

	// Column conflicts: tiles at (r,c) and (r+1,c), both homed in column c.
	for c := 0; c < side; c++ {
		for r := 0; r < side-1; r++ {
			a, b := s.At(r, c), s.At(r+1, c)
			if a == puzzle.Blank || b == puzzle.Blank {
				continue
			}
			ga, gb := pos[a], pos[b]
			if ga%side == c && gb%side == c && ga/side > gb/side {
				conflicts += 2
			}
		}
	}

	return ManhattanDistance(s, goal) + conflicts
}

// goalPositions maps each tile value to its flat index in goal.
func goalPositions(goal puzzle.State) []int {
	tiles := goal.Tiles()
	pos := make([]int, len(tiles))
	for i, v := range tiles {
		pos[v] = i
	}

	return pos
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
