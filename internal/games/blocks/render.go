package blocks

import (
	"fmt"

	platformcore "github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/games/blocks/core"
)

// Layout constants
const (
	hudHeight = 2 // score line + separator
	cellW     = 2 // terminal columns per board cell
	panelW    = 18
	panelGap  = 2
)

// Cell glyphs, drawn cellW times per board cell.
const (
	glyphBlock    = '█'
	glyphSettling = '▓'
	glyphEmpty    = '·'
)

// layout holds the screen placement of the well.
type layout struct {
	well      platformcore.Rect // including border
	panel     platformcore.Rect // side panel, zero when it does not fit
	screenW   int
	screenH   int
	needW     int
	needH     int
	tooSmall  bool
	showPanel bool
}

func computeLayout(rows, columns, screenW, screenH int) layout {
	wellW := columns*cellW + 2
	wellH := rows + 2

	l := layout{
		screenW: screenW,
		screenH: screenH,
		needW:   wellW,
		needH:   wellH + hudHeight,
	}
	if screenW < l.needW || screenH < l.needH {
		l.tooSmall = true
		return l
	}

	body := platformcore.NewRect(0, hudHeight, screenW, screenH-hudHeight)
	l.showPanel = screenW >= wellW+panelGap+panelW
	total := wellW
	if l.showPanel {
		total += panelGap + panelW
	}
	area := platformcore.CenteredIn(body, total, wellH)
	l.well = platformcore.NewRect(area.X, area.Y, wellW, wellH)
	if l.showPanel {
		l.panel = platformcore.NewRect(l.well.Right()+panelGap, area.Y, panelW, wellH)
	}
	return l
}

// blockColors maps engine color tags to screen colors.
var blockColors = map[core.Color]platformcore.Color{
	core.ColorYellow:  platformcore.ColorYellow,
	core.ColorCyan:    platformcore.ColorCyan,
	core.ColorMagenta: platformcore.ColorMagenta,
	core.ColorBlue:    platformcore.ColorBlue,
	core.ColorOrange:  platformcore.ColorOrange,
	core.ColorGreen:   platformcore.ColorGreen,
	core.ColorRed:     platformcore.ColorRed,
}

// Render draws the game to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()
	if g.board == nil {
		return
	}

	g.renderHUD(dst)

	if g.layout.tooSmall {
		renderOverlay(dst, "Window too small",
			fmt.Sprintf("Need %dx%d", g.layout.needW, g.layout.needH))
		return
	}

	g.renderWell(dst)
	if g.layout.showPanel {
		g.renderPanel(dst)
	}

	switch {
	case !g.board.Active():
		st := g.State()
		renderOverlay(dst, "Game Over",
			fmt.Sprintf("Score: %d  High: %d", st.Score, st.HighScore),
			"R restart  B menu")
	case g.paused:
		renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *platformcore.Screen) {
	st := g.State()
	hud := fmt.Sprintf(" %s | Score: %d  High: %d  Lines: %d", g.title, st.Score, st.HighScore, st.Lines)
	dst.DrawTextColored(0, 0, hud, platformcore.ColorBrightWhite)
	for x := range dst.Width() {
		dst.SetColored(x, 1, '─', platformcore.ColorGray)
	}
}

// renderWell draws the border, the empty grid and every block.
func (g *Game) renderWell(dst *platformcore.Screen) {
	w := g.layout.well
	dst.DrawBoxColored(w, platformcore.ColorGray)

	inner := platformcore.NewRect(w.X+1, w.Y+1, w.W-2, w.H-2)
	for y := inner.Y; y < inner.Bottom(); y++ {
		for x := inner.X; x < inner.Right(); x += cellW {
			dst.SetColored(x, y, glyphEmpty, platformcore.ColorGray)
		}
	}

	for _, blk := range g.board.Blocks() {
		if blk.Pos.Y < 0 || blk.Pos.Y >= g.board.Rows() {
			continue
		}
		glyph := glyphBlock
		if blk.Status == core.StatusSettling {
			glyph = glyphSettling
		}
		color, ok := blockColors[blk.Color]
		if !ok {
			color = platformcore.ColorWhite
		}
		sx := inner.X + blk.Pos.X*cellW
		sy := inner.Y + blk.Pos.Y
		for i := range cellW {
			dst.SetColored(sx+i, sy, glyph, color)
		}
	}
}

// renderPanel draws stats and controls beside the well.
func (g *Game) renderPanel(dst *platformcore.Screen) {
	p := g.layout.panel
	st := g.State()

	lines := []struct {
		text  string
		color platformcore.Color
	}{
		{"STATS", platformcore.ColorBrightWhite},
		{fmt.Sprintf("Score  %d", st.Score), platformcore.ColorDefault},
		{fmt.Sprintf("High   %d", st.HighScore), platformcore.ColorYellow},
		{fmt.Sprintf("Lines  %d", st.Lines), platformcore.ColorDefault},
		{fmt.Sprintf("Pieces %d", st.Pieces), platformcore.ColorDefault},
		{"", platformcore.ColorDefault},
		{"CONTROLS", platformcore.ColorBrightWhite},
		{"←/→   move", platformcore.ColorGray},
		{"↓     drop", platformcore.ColorGray},
		{"↑/spc rotate", platformcore.ColorGray},
		{"P     pause", platformcore.ColorGray},
		{"B     menu", platformcore.ColorGray},
		{"Q     quit", platformcore.ColorGray},
	}
	for i, l := range lines {
		if i >= p.H {
			break
		}
		dst.DrawTextColored(p.X, p.Y+i, l.text, l.color)
	}
}

// renderOverlay draws a centered box with the given lines.
func renderOverlay(dst *platformcore.Screen, lines ...string) {
	maxLen := 0
	for _, l := range lines {
		maxLen = max(maxLen, len([]rune(l)))
	}
	box := platformcore.CenteredIn(dst.Bounds(), maxLen+4, len(lines)*2+1)

	dst.DrawRect(box, ' ')
	dst.DrawBoxColored(box, platformcore.ColorBrightWhite)
	for i, l := range lines {
		dst.DrawTextCenteredColored(box.Y+1+i*2, l, platformcore.ColorBrightWhite)
	}
}
