package core

// RotatedPlacement rotates cells by 90 degrees around their bounding box and
// finds the first horizontal placement where every cell is free.
//
// Each cell (x, y) maps to (y-minY+minX, -(x-minX)+maxY). Offsets 0 through
// maxX-minX are tried in order, shifting the rotated set left by the offset.
// The returned slice keeps the input order. Returns false if no offset fits.
func RotatedPlacement(cells []Position, free func(x, y int) bool) ([]Position, bool) {
	if len(cells) == 0 {
		return nil, false
	}

	minX, maxX := cells[0].X, cells[0].X
	minY, maxY := cells[0].Y, cells[0].Y
	for _, c := range cells[1:] {
		minX = min(minX, c.X)
		maxX = max(maxX, c.X)
		minY = min(minY, c.Y)
		maxY = max(maxY, c.Y)
	}

	rotated := make([]Position, len(cells))
	for i, c := range cells {
		relX, relY := c.X-minX, c.Y-minY
		rotated[i] = Position{X: relY + minX, Y: -relX + maxY}
	}

	for offset := 0; offset <= maxX-minX; offset++ {
		if fits(rotated, offset, free) {
			placed := make([]Position, len(rotated))
			for i, c := range rotated {
				placed[i] = Position{X: c.X - offset, Y: c.Y}
			}
			return placed, true
		}
	}
	return nil, false
}

func fits(cells []Position, offset int, free func(x, y int) bool) bool {
	for _, c := range cells {
		if !free(c.X-offset, c.Y) {
			return false
		}
	}
	return true
}

// Rotate turns the active cohort by 90 degrees. The board is left untouched
// when there is no cohort or the rotated piece does not fit.
// Returns true if the rotation was applied.
func (b *Board) Rotate() bool {
	var idx []int
	var cells []Position
	for i, blk := range b.blocks {
		if blk.IsFixed() {
			continue
		}
		idx = append(idx, i)
		cells = append(cells, blk.Pos)
	}
	if len(cells) == 0 {
		return false
	}

	placed, ok := RotatedPlacement(cells, b.PositionIsFree)
	if !ok {
		return false
	}
	for n, i := range idx {
		b.blocks[i].Pos = placed[n]
	}
	return true
}
