package core

// ClearResult reports the outcome of a line-clear check.
type ClearResult struct {
	Rows     []int // full rows, ascending, as indexed before the clear
	Points   int   // score awarded
	GameOver bool  // the check ended the game
}

// LineScore returns the points for clearing k rows at once: columns^k.
// Zero rows score nothing.
func LineScore(columns, k int) int {
	if k <= 0 {
		return 0
	}
	points := 1
	for range k {
		points *= columns
	}
	return points
}

// FullRows returns, in ascending order, every row in which no cell is free.
func (b *Board) FullRows() []int {
	var full []int
	for y := 0; y < b.rows; y++ {
		complete := true
		for x := 0; x < b.columns; x++ {
			if b.PositionIsFree(x, y) {
				complete = false
				break
			}
		}
		if complete {
			full = append(full, y)
		}
	}
	return full
}

// Check runs after a cohort locks. It removes full rows, shifts the rows
// above them down, scores the clear, ends the game if any block reached the
// top row, and otherwise spawns the next piece.
func (b *Board) Check() ClearResult {
	full := b.FullRows()
	res := ClearResult{Rows: full}

	// Bottom-most first; every removal moves the remaining full rows down one.
	for i := range full {
		row := full[len(full)-1-i]
		b.removeRow(row + i)
	}

	if k := len(full); k > 0 {
		res.Points = LineScore(b.columns, k)
		b.score += res.Points
		b.linesCleared += k
		b.reindex()
	}

	for _, blk := range b.blocks {
		if blk.Pos.Y <= 0 {
			b.End()
			res.GameOver = true
			return res
		}
	}

	if !b.hasCohort() {
		b.spawn()
		if b.blockedOut() {
			b.End()
			res.GameOver = true
		}
	}
	return res
}

// removeRow deletes the Fixed blocks on row and moves every Fixed block above
// it down by one.
func (b *Board) removeRow(row int) {
	kept := b.blocks[:0]
	for _, blk := range b.blocks {
		if blk.IsFixed() && blk.Pos.Y == row {
			continue
		}
		if blk.IsFixed() && blk.Pos.Y < row {
			blk.Pos.Y++
		}
		kept = append(kept, blk)
	}
	b.blocks = kept
}
