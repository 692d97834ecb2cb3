package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineScore(t *testing.T) {
	tests := []struct {
		columns, k int
		expected   int
	}{
		{10, 0, 0},
		{10, -1, 0},
		{10, 1, 10},
		{10, 2, 100},
		{10, 4, 10000},
		{6, 2, 36},
		{8, 3, 512},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, LineScore(tc.columns, tc.k), "columns=%d k=%d", tc.columns, tc.k)
	}
}

func TestFullRows(t *testing.T) {
	b := boardFromLayout(t,
		"......",
		"######",
		"#####.",
		"######",
		"oooo##",
	)

	// active blocks never complete a row
	assert.Equal(t, []int{1, 3}, b.FullRows())
}

func TestCheckClearsNonAdjacentRows(t *testing.T) {
	b := boardFromLayout(t,
		"......",
		"......",
		"#.....",
		".#....",
		"......",
		"######",
		"..#...",
		"######",
		"#.#.#.",
		".#.#.#",
	)

	res := b.Check()

	assert.Equal(t, []int{5, 7}, res.Rows)
	assert.Equal(t, 36, res.Points)
	assert.False(t, res.GameOver)
	assert.Equal(t, 36, b.Score())
	assert.Equal(t, 2, b.LinesCleared())

	expected := []Position{
		P(0, 4),
		P(1, 5),
		P(2, 7),
		P(0, 8), P(2, 8), P(4, 8),
		P(1, 9), P(3, 9), P(5, 9),
	}
	assert.ElementsMatch(t, expected, positions(b, StatusFixed))

	// the board was left without a cohort, so a new piece spawns
	assert.Len(t, b.ActiveCohort(), 4)
	assert.Equal(t, 1, b.PiecesSpawned())
	assert.NoError(t, b.Validate())
}

func TestCheckClearsAdjacentRows(t *testing.T) {
	b := boardFromLayout(t,
		"......",
		"......",
		"......",
		"..#...",
		"######",
		"######",
		"#.####",
	)

	res := b.Check()

	assert.Equal(t, []int{4, 5}, res.Rows)
	assert.Equal(t, 36, res.Points)
	assert.ElementsMatch(t,
		[]Position{P(2, 5), P(0, 6), P(2, 6), P(3, 6), P(4, 6), P(5, 6)},
		positions(b, StatusFixed))
	assert.NoError(t, b.Validate())
}

func TestCheckWithoutFullRows(t *testing.T) {
	b := boardFromLayout(t,
		"......",
		"......",
		"......",
		"......",
		"##.###",
	)

	res := b.Check()

	assert.Empty(t, res.Rows)
	assert.Zero(t, res.Points)
	assert.False(t, res.GameOver)
	assert.Zero(t, b.Score())
	assert.Len(t, b.ActiveCohort(), 4)
}

func TestCheckKeepsExistingCohort(t *testing.T) {
	b := boardFromLayout(t,
		"......",
		"..oo..",
		"..oo..",
		"......",
		"######",
	)

	res := b.Check()

	assert.Equal(t, []int{4}, res.Rows)
	assert.Equal(t, 6, b.Score())
	assert.Equal(t, []Position{P(2, 1), P(3, 1), P(2, 2), P(3, 2)}, positions(b, StatusMovable))
	assert.Equal(t, 0, b.PiecesSpawned(), "no spawn while a cohort exists")
}

func TestCheckGameOverAtTopRow(t *testing.T) {
	tests := []struct {
		name         string
		score, high  int
		expectedHigh int
	}{
		{"new high score", 40, 10, 40},
		{"high score kept", 40, 90, 90},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := boardFromLayout(t,
				"...#..",
				"...#..",
				"...#..",
				"...#..",
			)
			b.score = tc.score
			b.highScore = tc.high

			res := b.Check()

			assert.True(t, res.GameOver)
			assert.False(t, b.Active())
			assert.Empty(t, b.Blocks())
			assert.Zero(t, b.Score())
			assert.Equal(t, tc.expectedHigh, b.HighScore())
			assert.Equal(t, tc.score, b.LastScore())
		})
	}
}

func TestLockAtTopEndsGame(t *testing.T) {
	b := boardFromLayout(t,
		"..s...",
		"..s...",
		"..#...",
		"..#...",
		"..#...",
		"..#...",
	)
	b.score = 12

	require.Equal(t, MoveLocked, b.SoftDrop())

	assert.False(t, b.Active())
	assert.Empty(t, b.Blocks())
	assert.Equal(t, 12, b.HighScore())
	assert.Equal(t, 12, b.LastScore())
}

func TestClearThenSpawnBlockedOut(t *testing.T) {
	// columns 2..5 are filled below the top row, so any spawn overlaps
	b := boardFromLayout(t,
		"......",
		"#.####",
		"#.####",
		"#.####",
		"......",
		"......",
		"......",
		"......",
	)

	res := b.Check()

	assert.True(t, res.GameOver)
	assert.False(t, b.Active())
	assert.Empty(t, b.Blocks())
	assert.NoError(t, b.Validate())
}

func TestLineClearAfterLock(t *testing.T) {
	b := boardFromLayout(t,
		"......",
		"......",
		"......",
		"......",
		"......",
		"#.....",
		"oooo..",
		"##....",
	)
	require.Equal(t, MoveShifted, b.MoveRight())
	require.Equal(t, MoveShifted, b.MoveRight())
	require.Equal(t, MoveShifted, b.SoftDrop())
	require.Equal(t, MoveSettled, b.SoftDrop())
	require.Equal(t, MoveLocked, b.SoftDrop())

	assert.Equal(t, 6, b.Score())
	assert.Equal(t, 1, b.LinesCleared())
	assert.Equal(t, []Position{P(0, 6)}, positions(b, StatusFixed))
	assert.True(t, b.Active())
	assert.NoError(t, b.Validate())
}
