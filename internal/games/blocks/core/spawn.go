package core

// Spawn origin. Pieces are placed at (originX+dx, spawnY+dy) with dx, dy >= 1.
const (
	spawnMinX = 2
	spawnY    = -1
)

// spawn appends a new Movable cohort at the top of the board.
// The catalog index never repeats the previous one.
func (b *Board) spawn() {
	idx := b.rng.Intn(CatalogSize)
	for idx == b.lastPiece {
		idx = b.rng.Intn(CatalogSize)
	}
	b.lastPiece = idx

	// originX in [2, columns-4]
	originX := spawnMinX + b.rng.Intn(b.columns-4-spawnMinX+1)

	def := catalog[idx]
	for _, off := range def.Offsets {
		b.blocks = append(b.blocks, Block{
			Status: StatusMovable,
			Pos:    Position{X: originX + off.DX, Y: spawnY + off.DY},
			Color:  def.Color,
		})
	}
	b.piecesSpawned++
}

// blockedOut reports whether the active cohort overlaps a Fixed block.
func (b *Board) blockedOut() bool {
	for _, blk := range b.blocks {
		if blk.IsFixed() {
			continue
		}
		if !b.PositionIsFree(blk.Pos.X, blk.Pos.Y) {
			return true
		}
	}
	return false
}
