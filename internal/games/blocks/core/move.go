package core

import (
	"errors"
	"fmt"
)

// ErrInvalidDelta is returned by Move for anything other than a single step
// left, right or down.
var ErrInvalidDelta = errors.New("blocks: invalid move delta")

// MoveResult describes what a Move call did.
type MoveResult int

const (
	MoveNone    MoveResult = iota // nothing to move
	MoveShifted                   // cohort moved by the delta
	MoveBlocked                   // horizontal move denied
	MoveSettled                   // cohort entered lock delay
	MoveLocked                    // cohort became Fixed
)

// String returns the result name.
func (r MoveResult) String() string {
	switch r {
	case MoveNone:
		return "none"
	case MoveShifted:
		return "shifted"
	case MoveBlocked:
		return "blocked"
	case MoveSettled:
		return "settled"
	case MoveLocked:
		return "locked"
	default:
		return "unknown"
	}
}

func validDelta(dx, dy int) bool {
	switch {
	case dx == -1 && dy == 0, dx == 1 && dy == 0, dx == 0 && dy == 1:
		return true
	default:
		return false
	}
}

// Move advances the active cohort by (dx, dy).
//
// A blocked downward move first promotes a Movable cohort to Settling, and a
// Settling cohort to Fixed on the next blocked attempt; neither moves the
// blocks. Locking runs the line-clear check, which may end the game or spawn
// the next piece. A blocked horizontal move is ignored.
func (b *Board) Move(dx, dy int) (MoveResult, error) {
	if !validDelta(dx, dy) {
		return MoveNone, fmt.Errorf("%w: (%d,%d)", ErrInvalidDelta, dx, dy)
	}

	var (
		cohort   bool
		settle   bool
		lock     bool
		blockedX bool
	)
	for _, blk := range b.blocks {
		if blk.IsFixed() {
			continue
		}
		cohort = true
		if b.PositionIsFree(blk.Pos.X+dx, blk.Pos.Y+dy) {
			continue
		}
		if dy > 0 {
			switch blk.Status {
			case StatusMovable:
				settle = true
			case StatusSettling:
				lock = true
			}
		}
		if dx != 0 {
			blockedX = true
		}
	}

	switch {
	case !cohort:
		return MoveNone, nil
	case lock:
		b.promote(StatusSettling, StatusFixed)
		b.Check()
		return MoveLocked, nil
	case settle:
		b.promote(StatusMovable, StatusSettling)
		return MoveSettled, nil
	case blockedX:
		return MoveBlocked, nil
	}

	for i := range b.blocks {
		blk := &b.blocks[i]
		if blk.IsFixed() {
			continue
		}
		blk.Pos = blk.Pos.Add(dx, dy)
		// lock delay starts over once the piece actually falls
		if dy > 0 && blk.Status == StatusSettling {
			blk.Status = StatusMovable
		}
	}
	return MoveShifted, nil
}

// MoveLeft shifts the cohort one column left if possible.
func (b *Board) MoveLeft() MoveResult {
	r, _ := b.Move(-1, 0)
	return r
}

// MoveRight shifts the cohort one column right if possible.
func (b *Board) MoveRight() MoveResult {
	r, _ := b.Move(1, 0)
	return r
}

// SoftDrop moves the cohort one row down or advances its lock state.
func (b *Board) SoftDrop() MoveResult {
	r, _ := b.Move(0, 1)
	return r
}

// promote changes every block in status from to status to.
func (b *Board) promote(from, to Status) {
	for i := range b.blocks {
		if b.blocks[i].Status == from {
			b.blocks[i].Status = to
		}
	}
	if to == StatusFixed {
		b.reindex()
	}
}
