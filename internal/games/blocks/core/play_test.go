package core

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// playRandom drives the board with a seeded stream of actions and restarts
// after every game over.
func playRandom(t *testing.T, b *Board, seed int64, steps int, each func(step int)) {
	t.Helper()
	r := rand.New(rand.NewSource(seed))
	for i := 0; i < steps; i++ {
		if !b.Active() {
			b.Start()
		}
		switch r.Intn(5) {
		case 0:
			b.MoveLeft()
		case 1:
			b.MoveRight()
		case 2:
			b.Rotate()
		default:
			b.SoftDrop()
		}
		if each != nil {
			each(i)
		}
	}
}

func TestRandomPlayKeepsInvariants(t *testing.T) {
	sizes := []struct{ rows, columns int }{
		{20, 10},
		{14, 8},
		{MinRows, MinColumns},
	}

	for _, size := range sizes {
		b, err := NewBoard(size.rows, size.columns, 2024)
		require.NoError(t, err)

		high := 0
		games := 0
		playRandom(t, b, 11, 5000, func(step int) {
			require.NoError(t, b.Validate(), "step %d\n%s", step, RenderASCII(b))

			cohort := b.ActiveCohort()
			if b.Active() {
				require.Len(t, cohort, 4, "step %d", step)
				statuses := cohortStatuses(b)
				require.Len(t, statuses, 1, "cohort must share one status")
			} else {
				require.Empty(t, b.Blocks())
				games++
			}
			for _, blk := range cohort {
				require.True(t, blk.Pos.X >= 0 && blk.Pos.X < b.Columns() &&
					blk.Pos.Y >= 0 && blk.Pos.Y < b.Rows(),
					"cohort block off board at %s, step %d", blk.Pos, step)
			}

			require.GreaterOrEqual(t, b.HighScore(), high, "high score never drops")
			high = b.HighScore()
		})
		assert.Positive(t, games, "%dx%d board should see at least one game over", size.rows, size.columns)
	}
}

func TestSameSeedSameGame(t *testing.T) {
	a, err := NewBoard(20, 10, 77)
	require.NoError(t, err)
	b, err := NewBoard(20, 10, 77)
	require.NoError(t, err)

	playRandom(t, a, 5, 3000, nil)
	playRandom(t, b, 5, 3000, nil)

	assert.Equal(t, a.Snapshot(), b.Snapshot())
}
