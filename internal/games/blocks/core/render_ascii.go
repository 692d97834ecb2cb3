package core

import (
	"fmt"
	"strings"
)

// Glyphs used by RenderASCII.
const (
	GlyphEmpty    = '.'
	GlyphFixed    = '#'
	GlyphMovable  = 'o'
	GlyphSettling = 's'
)

// Glyph returns the ASCII rune for a block status.
func (s Status) Glyph() rune {
	switch s {
	case StatusMovable:
		return GlyphMovable
	case StatusSettling:
		return GlyphSettling
	case StatusFixed:
		return GlyphFixed
	default:
		return '?'
	}
}

// RenderASCII creates an ASCII picture of the board, one line per row.
// Used for debugging and test failure output.
//
// Format: '.' empty, '#' Fixed, 'o' Movable, 's' Settling. Cells above the
// top row are not drawn.
func RenderASCII(b *Board) string {
	grid := make([][]rune, b.rows)
	for y := range grid {
		grid[y] = []rune(strings.Repeat(string(GlyphEmpty), b.columns))
	}
	for _, blk := range b.blocks {
		p := blk.Pos
		if p.X < 0 || p.X >= b.columns || p.Y < 0 || p.Y >= b.rows {
			continue
		}
		grid[p.Y][p.X] = blk.Status.Glyph()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("score=%d high=%d active=%v\n", b.score, b.highScore, b.active))
	for _, row := range grid {
		sb.WriteString(string(row))
		sb.WriteString("\n")
	}
	return sb.String()
}
