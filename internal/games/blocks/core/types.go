// Package core provides the grid simulation engine for the Falling Blocks game.
// This package is UI-agnostic and deterministic for a given seed: it owns the
// board, the piece cohort, lock delay, rotation, line clears and game over.
package core

import "fmt"

// Position is a cell coordinate on the board.
// X is the column, Y is the row (row 0 is the top, rows grow downwards).
type Position struct {
	X, Y int
}

// P is a shorthand constructor for Position.
func P(x, y int) Position {
	return Position{X: x, Y: y}
}

// Add returns the position shifted by (dx, dy).
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// String returns the position as "(x,y)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Status is the lock state of a block.
type Status uint8

const (
	// StatusMovable marks blocks of the falling cohort.
	StatusMovable Status = iota
	// StatusSettling marks a cohort that failed one downward move (lock delay).
	StatusSettling
	// StatusFixed marks permanently placed blocks.
	StatusFixed
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusMovable:
		return "Movable"
	case StatusSettling:
		return "Settling"
	case StatusFixed:
		return "Fixed"
	default:
		return "Unknown"
	}
}

// Color is an opaque display tag carried by every block.
// The engine never interprets it.
type Color uint8

const (
	ColorNone Color = iota
	ColorYellow
	ColorCyan
	ColorMagenta
	ColorBlue
	ColorOrange
	ColorGreen
	ColorRed
)

// String returns the color name.
func (c Color) String() string {
	switch c {
	case ColorNone:
		return "none"
	case ColorYellow:
		return "yellow"
	case ColorCyan:
		return "cyan"
	case ColorMagenta:
		return "magenta"
	case ColorBlue:
		return "blue"
	case ColorOrange:
		return "orange"
	case ColorGreen:
		return "green"
	case ColorRed:
		return "red"
	default:
		return "unknown"
	}
}

// Block is a single occupied cell.
type Block struct {
	Status Status
	Pos    Position
	Color  Color
}

// IsFixed reports whether the block is permanently placed.
func (b Block) IsFixed() bool {
	return b.Status == StatusFixed
}
