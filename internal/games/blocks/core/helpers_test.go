package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// boardFromLayout builds an active board from an ASCII picture.
// '#' is Fixed, 'o' Movable, 's' Settling, anything else is empty.
// Blocks are added row by row, left to right.
func boardFromLayout(t *testing.T, layout ...string) *Board {
	t.Helper()
	require.NotEmpty(t, layout)

	b := newBoard(len(layout), len(layout[0]), 1)
	b.active = true
	for y, line := range layout {
		require.Len(t, line, b.columns, "row %d has the wrong width", y)
		for x, ch := range line {
			var status Status
			switch ch {
			case GlyphFixed:
				status = StatusFixed
			case GlyphMovable:
				status = StatusMovable
			case GlyphSettling:
				status = StatusSettling
			default:
				continue
			}
			b.blocks = append(b.blocks, Block{Status: status, Pos: P(x, y), Color: ColorCyan})
		}
	}
	b.reindex()
	require.NoError(t, b.Validate())
	return b
}

// positions returns the positions of blocks with the given status, in order.
func positions(b *Board, status Status) []Position {
	var out []Position
	for _, blk := range b.blocks {
		if blk.Status == status {
			out = append(out, blk.Pos)
		}
	}
	return out
}

// cohortStatuses counts the statuses present in the active cohort.
func cohortStatuses(b *Board) map[Status]int {
	out := make(map[Status]int)
	for _, blk := range b.blocks {
		if !blk.IsFixed() {
			out[blk.Status]++
		}
	}
	return out
}
