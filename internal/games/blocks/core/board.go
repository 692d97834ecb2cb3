package core

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/kamstrup/intmap"
)

// Minimum board dimensions. Spawned pieces occupy rows 0..3 and need an
// origin column range of [2, columns-4].
const (
	MinRows    = 4
	MinColumns = 6
)

var (
	// ErrInvalidDimensions is returned when a board cannot host a piece.
	ErrInvalidDimensions = errors.New("blocks: invalid board dimensions")

	// ErrInvariant is returned by Validate when the board state is corrupt.
	ErrInvariant = errors.New("blocks: board invariant violated")
)

// Board holds the complete state of one game session.
// All mutation goes through its methods; callers must not invoke them
// concurrently.
type Board struct {
	rows    int
	columns int
	blocks  []Block

	score     int
	highScore int
	lastScore int // score at the last game over
	active    bool

	lastPiece     int // catalog index of the last spawn, -1 before the first
	linesCleared  int
	piecesSpawned int

	rng *rand.Rand

	// fixed indexes Fixed blocks by cell (y*columns + x).
	fixed *intmap.Map[int, struct{}]
}

// NewBoard creates an active board with the first piece already spawned.
func NewBoard(rows, columns int, seed int64) (*Board, error) {
	if rows < MinRows || columns < MinColumns {
		return nil, fmt.Errorf("%w: %dx%d (need at least %dx%d)",
			ErrInvalidDimensions, rows, columns, MinRows, MinColumns)
	}

	b := newBoard(rows, columns, seed)
	b.Start()
	return b, nil
}

// newBoard returns an inactive, empty board.
func newBoard(rows, columns int, seed int64) *Board {
	return &Board{
		rows:      rows,
		columns:   columns,
		lastPiece: -1,
		rng:       rand.New(rand.NewSource(seed)),
		fixed:     intmap.New[int, struct{}](rows * columns),
	}
}

// Rows returns the board height.
func (b *Board) Rows() int { return b.rows }

// Columns returns the board width.
func (b *Board) Columns() int { return b.columns }

// Score returns the score of the running game.
func (b *Board) Score() int { return b.score }

// HighScore returns the best final score seen by this board.
func (b *Board) HighScore() int { return b.highScore }

// LastScore returns the score the previous game ended with.
func (b *Board) LastScore() int { return b.lastScore }

// Active reports whether a game is running.
func (b *Board) Active() bool { return b.active }

// LastPieceIndex returns the catalog index of the most recent spawn.
func (b *Board) LastPieceIndex() int { return b.lastPiece }

// LinesCleared returns the number of rows removed in the running game.
func (b *Board) LinesCleared() int { return b.linesCleared }

// PiecesSpawned returns the number of cohorts spawned in the running game.
func (b *Board) PiecesSpawned() int { return b.piecesSpawned }

// SetHighScore seeds the high score, e.g. when a board replaces an older one.
func (b *Board) SetHighScore(score int) {
	if score > b.highScore {
		b.highScore = score
	}
}

// Blocks returns a copy of all blocks in spawn order.
func (b *Board) Blocks() []Block {
	out := make([]Block, len(b.blocks))
	copy(out, b.blocks)
	return out
}

// ActiveCohort returns a copy of the blocks that are not Fixed.
func (b *Board) ActiveCohort() []Block {
	var out []Block
	for _, blk := range b.blocks {
		if !blk.IsFixed() {
			out = append(out, blk)
		}
	}
	return out
}

// PositionIsFree reports whether (x, y) is on the board and not occupied by
// a Fixed block. Movable and Settling blocks never count as obstacles.
func (b *Board) PositionIsFree(x, y int) bool {
	if x < 0 || x >= b.columns || y < 0 || y >= b.rows {
		return false
	}
	_, taken := b.fixed.Get(b.cellKey(x, y))
	return !taken
}

// cellKey maps an in-bounds cell to its index key.
func (b *Board) cellKey(x, y int) int {
	return y*b.columns + x
}

// reindex rebuilds the Fixed occupancy index from the block list.
func (b *Board) reindex() {
	b.fixed.Clear()
	for _, blk := range b.blocks {
		if blk.IsFixed() {
			b.fixed.Put(b.cellKey(blk.Pos.X, blk.Pos.Y), struct{}{})
		}
	}
}

// hasCohort reports whether any block is still Movable or Settling.
func (b *Board) hasCohort() bool {
	for _, blk := range b.blocks {
		if !blk.IsFixed() {
			return true
		}
	}
	return false
}

// End stops the game: the high score is updated, the score is reset and
// every block is removed.
func (b *Board) End() {
	b.active = false
	b.lastScore = b.score
	if b.score > b.highScore {
		b.highScore = b.score
	}
	b.score = 0
	b.blocks = nil
	b.fixed.Clear()
}

// Start begins a new game on an inactive board. No-op while a game is running.
func (b *Board) Start() {
	if b.active {
		return
	}
	b.active = true
	b.linesCleared = 0
	b.piecesSpawned = 0
	b.spawn()
}

// Validate checks the board invariants: Fixed blocks are in bounds and
// unique, and the index agrees with the block list.
func (b *Board) Validate() error {
	seen := make(map[Position]bool, len(b.blocks))
	fixedCount := 0
	for _, blk := range b.blocks {
		if !blk.IsFixed() {
			continue
		}
		fixedCount++
		p := blk.Pos
		if p.X < 0 || p.X >= b.columns || p.Y < 0 || p.Y >= b.rows {
			return fmt.Errorf("%w: fixed block out of bounds at %s", ErrInvariant, p)
		}
		if seen[p] {
			return fmt.Errorf("%w: two fixed blocks at %s", ErrInvariant, p)
		}
		seen[p] = true
	}
	if b.fixed.Len() != fixedCount {
		return fmt.Errorf("%w: index holds %d cells, board has %d fixed blocks",
			ErrInvariant, b.fixed.Len(), fixedCount)
	}
	return nil
}

// Snapshot captures the observable board state for comparison and replay checks.
type Snapshot struct {
	Rows          int
	Columns       int
	Blocks        []Block
	Score         int
	HighScore     int
	LastScore     int
	Active        bool
	LastPiece     int
	LinesCleared  int
	PiecesSpawned int
}

// Snapshot returns a deep copy of the observable state.
func (b *Board) Snapshot() Snapshot {
	return Snapshot{
		Rows:          b.rows,
		Columns:       b.columns,
		Blocks:        b.Blocks(),
		Score:         b.score,
		HighScore:     b.highScore,
		LastScore:     b.lastScore,
		Active:        b.active,
		LastPiece:     b.lastPiece,
		LinesCleared:  b.linesCleared,
		PiecesSpawned: b.piecesSpawned,
	}
}
