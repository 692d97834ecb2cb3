package core

// Offset is a cell offset inside a piece definition.
// Offsets use a 1-based local frame (DX, DY >= 1).
type Offset struct {
	DX, DY int
}

// PieceDef describes one spawnable shape.
type PieceDef struct {
	Name    string
	Color   Color
	Offsets [4]Offset
}

// CatalogSize is the number of piece definitions.
const CatalogSize = 7

// catalog holds the seven tetromino shapes.
// No shape is wider than 3 columns, so the I piece is stored upright: with an
// origin in [2, columns-4] every spawned cell stays on the board.
var catalog = [CatalogSize]PieceDef{
	{Name: "O", Color: ColorYellow, Offsets: [4]Offset{{1, 1}, {2, 1}, {1, 2}, {2, 2}}},
	{Name: "I", Color: ColorCyan, Offsets: [4]Offset{{1, 1}, {1, 2}, {1, 3}, {1, 4}}},
	{Name: "T", Color: ColorMagenta, Offsets: [4]Offset{{1, 1}, {2, 1}, {3, 1}, {2, 2}}},
	{Name: "J", Color: ColorBlue, Offsets: [4]Offset{{2, 1}, {2, 2}, {2, 3}, {1, 3}}},
	{Name: "L", Color: ColorOrange, Offsets: [4]Offset{{1, 1}, {1, 2}, {1, 3}, {2, 3}}},
	{Name: "S", Color: ColorGreen, Offsets: [4]Offset{{2, 1}, {3, 1}, {1, 2}, {2, 2}}},
	{Name: "Z", Color: ColorRed, Offsets: [4]Offset{{1, 1}, {2, 1}, {2, 2}, {3, 2}}},
}

// Catalog returns a copy of the piece table.
func Catalog() []PieceDef {
	out := make([]PieceDef, CatalogSize)
	copy(out, catalog[:])
	return out
}

// Piece returns the definition at index i.
// Returns false if i is out of range.
func Piece(i int) (PieceDef, bool) {
	if i < 0 || i >= CatalogSize {
		return PieceDef{}, false
	}
	return catalog[i], true
}
