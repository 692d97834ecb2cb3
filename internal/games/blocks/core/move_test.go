package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveRejectsInvalidDelta(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy int
	}{
		{"zero", 0, 0},
		{"up", 0, -1},
		{"diagonal", 1, 1},
		{"two columns", 2, 0},
		{"two rows", 0, 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := boardFromLayout(t,
				"......",
				"..oo..",
				"..oo..",
				"......",
			)
			before := b.Snapshot()

			res, err := b.Move(tc.dx, tc.dy)

			assert.True(t, errors.Is(err, ErrInvalidDelta), "got %v", err)
			assert.Equal(t, MoveNone, res)
			assert.Equal(t, before, b.Snapshot())
		})
	}
}

func TestMoveShiftsCohort(t *testing.T) {
	b := boardFromLayout(t,
		"......",
		"..oo..",
		"..oo..",
		"......",
		"......",
	)

	assert.Equal(t, MoveShifted, b.MoveLeft())
	assert.Equal(t, []Position{P(1, 1), P(2, 1), P(1, 2), P(2, 2)}, positions(b, StatusMovable))

	assert.Equal(t, MoveShifted, b.MoveRight())
	assert.Equal(t, MoveShifted, b.MoveRight())
	assert.Equal(t, []Position{P(3, 1), P(4, 1), P(3, 2), P(4, 2)}, positions(b, StatusMovable))

	assert.Equal(t, MoveShifted, b.SoftDrop())
	assert.Equal(t, []Position{P(3, 2), P(4, 2), P(3, 3), P(4, 3)}, positions(b, StatusMovable))
}

func TestMoveBlockedHorizontally(t *testing.T) {
	tests := []struct {
		name   string
		layout []string
		move   func(*Board) MoveResult
	}{
		{
			name: "left wall",
			layout: []string{
				"......",
				"oo....",
				"oo....",
				"......",
			},
			move: (*Board).MoveLeft,
		},
		{
			name: "right wall",
			layout: []string{
				"......",
				"....oo",
				"....oo",
				"......",
			},
			move: (*Board).MoveRight,
		},
		{
			name: "fixed block",
			layout: []string{
				"......",
				"..oo..",
				"..oo#.",
				"......",
			},
			move: (*Board).MoveRight,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := boardFromLayout(t, tc.layout...)
			before := b.Snapshot()

			assert.Equal(t, MoveBlocked, tc.move(b))
			assert.Equal(t, before, b.Snapshot(), "blocked move must not change the board")
		})
	}
}

func TestMovableBlocksAreNotObstacles(t *testing.T) {
	// a horizontal I slides into cells its own blocks occupy
	b := boardFromLayout(t,
		"......",
		".oooo.",
		"......",
		"......",
	)

	assert.Equal(t, MoveShifted, b.MoveRight())
	assert.Equal(t, []Position{P(2, 1), P(3, 1), P(4, 1), P(5, 1)}, positions(b, StatusMovable))
}

func TestLockDelay(t *testing.T) {
	b := boardFromLayout(t,
		"......",
		"......",
		"......",
		"......",
		"......",
		"......",
		"..oo..",
		"..oo..",
		"..##..",
		"......",
		"......",
		"......",
	)
	cohort := positions(b, StatusMovable)

	// first blocked drop: Settling, nothing moves
	require.Equal(t, MoveSettled, b.SoftDrop())
	assert.Equal(t, map[Status]int{StatusSettling: 4}, cohortStatuses(b))
	assert.Equal(t, cohort, positions(b, StatusSettling))
	assert.Equal(t, 0, b.PiecesSpawned())

	// second blocked drop: Fixed, next piece spawns
	require.Equal(t, MoveLocked, b.SoftDrop())
	assert.Equal(t, []Position{P(2, 6), P(3, 6), P(2, 7), P(3, 7), P(2, 8), P(3, 8)}, positions(b, StatusFixed))
	assert.Equal(t, map[Status]int{StatusMovable: 4}, cohortStatuses(b))
	assert.Equal(t, 1, b.PiecesSpawned())
	assert.True(t, b.Active())
	assert.NoError(t, b.Validate())
}

func TestSettlingCohortStillSlides(t *testing.T) {
	b := boardFromLayout(t,
		"......",
		"..ss..",
		"..ss..",
		"..##..",
		"......",
		"......",
	)

	// horizontal moves keep the lock delay running
	require.Equal(t, MoveShifted, b.MoveRight())
	require.Equal(t, MoveShifted, b.MoveRight())
	assert.Equal(t, map[Status]int{StatusSettling: 4}, cohortStatuses(b))
	assert.Equal(t, []Position{P(4, 1), P(5, 1), P(4, 2), P(5, 2)}, positions(b, StatusSettling))

	// off the ledge the piece falls again and the delay resets
	require.Equal(t, MoveShifted, b.SoftDrop())
	assert.Equal(t, map[Status]int{StatusMovable: 4}, cohortStatuses(b))
	assert.Equal(t, []Position{P(4, 2), P(5, 2), P(4, 3), P(5, 3)}, positions(b, StatusMovable))
}

func TestMoveWithoutCohort(t *testing.T) {
	b := boardFromLayout(t,
		"......",
		"......",
		"......",
		"#.....",
	)
	before := b.Snapshot()

	assert.Equal(t, MoveNone, b.MoveLeft())
	assert.Equal(t, MoveNone, b.MoveRight())
	assert.Equal(t, MoveNone, b.SoftDrop())
	assert.Equal(t, before, b.Snapshot())
}

func TestMoveResultString(t *testing.T) {
	assert.Equal(t, "none", MoveNone.String())
	assert.Equal(t, "shifted", MoveShifted.String())
	assert.Equal(t, "blocked", MoveBlocked.String())
	assert.Equal(t, "settled", MoveSettled.String())
	assert.Equal(t, "locked", MoveLocked.String())
	assert.Equal(t, "unknown", MoveResult(42).String())
}
