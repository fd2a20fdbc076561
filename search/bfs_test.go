package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/npuzzle/puzzle"
	"github.com/katalvlaran/npuzzle/search"
)

// TestBFS_Easy8 pins the exact traversal on the two-move board: the root,
// its four children, and four depth-2 nodes before the goal pops.
func TestBFS_Easy8(t *testing.T) {
	res, err := search.BFS(easy8(t))
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.Equal(t, search.GoalFound, res.Outcome)
	assert.Equal(t, []puzzle.Move{puzzle.Down, puzzle.Right}, res.Path)
	assert.Equal(t, 9, res.NodesExpanded)
	assert.Equal(t, search.AlgoBFS, res.Algorithm)
}

// TestBFS_OptimalOnDeepScramble: BFS path length never exceeds the walk
// length that produced the board.
func TestBFS_OptimalOnDeepScramble(t *testing.T) {
	goal, _ := puzzle.Goal(3)
	s, err := puzzle.Scramble(goal, 20, 6)
	require.NoError(t, err)
	p, err := puzzle.NewClassic(s)
	require.NoError(t, err)

	res, err := search.BFS(p, search.WithNodeLimit(0))
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.LessOrEqual(t, len(res.Path), 20)

	end, err := p.Initial.ApplyAll(res.Path)
	require.NoError(t, err)
	assert.True(t, end.Equal(goal))
}
