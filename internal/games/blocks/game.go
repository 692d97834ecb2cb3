// Package blocks provides the Falling Blocks game for the terminal platform.
// It wraps the engine in internal/games/blocks/core and adds gravity,
// pause handling and terminal rendering.
package blocks

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-blocks/internal/config"
	platformcore "github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/games/blocks/core"
	"github.com/vovakirdan/tui-blocks/internal/registry"
)

// Variant ids.
const (
	IDClassic = "blocks"
	IDMini    = "blocks_mini"
)

// Package-level settings picked up by new games, set once by the CLI.
var (
	gameConfig = config.DefaultBlocksConfig()
	logger     = log.New(io.Discard)
)

// SetConfig sets the configuration used by games created afterwards.
func SetConfig(cfg config.BlocksConfig) {
	gameConfig = cfg
}

// SetLogger sets the logger used by games created afterwards.
// A nil logger discards output.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

func init() {
	registry.Register(IDClassic, func() registry.Game {
		return New()
	})
	registry.Register(IDMini, func() registry.Game {
		return NewMini()
	})
}

// Game implements registry.Game around one engine Board.
type Game struct {
	id    string
	title string
	mini  bool

	cfg    config.BlocksConfig
	log    *log.Logger
	board  *core.Board
	layout layout

	tick       uint64
	dropEvery  int // ticks between gravity drops
	dropTicker int
	paused     bool
	startedAt  time.Time

	// highScore survives Reset so restarts within a session keep it.
	highScore int
}

// New creates a game on the configured full-size board.
func New() *Game {
	return newGame(IDClassic, "Falling Blocks", false)
}

// NewMini creates a game on the configured small board.
func NewMini() *Game {
	return newGame(IDMini, "Falling Blocks (Mini)", true)
}

func newGame(id, title string, mini bool) *Game {
	return &Game{
		id:    id,
		title: title,
		mini:  mini,
		cfg:   gameConfig,
		log:   logger.With("game", id),
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.title
}

// boardSize returns the dimensions for this variant.
func (g *Game) boardSize() config.BoardConfig {
	if g.mini {
		return g.cfg.Mini
	}
	return g.cfg.Board
}

// Reset builds a fresh board. The session high score carries over.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	if g.board != nil {
		g.highScore = max(g.highScore, g.board.HighScore())
	}

	size := g.boardSize()
	board, err := core.NewBoard(size.Rows, size.Columns, cfg.Seed)
	if err != nil {
		// Config is validated on load; fall back to the defaults anyway.
		g.log.Error("invalid board size, using defaults", "rows", size.Rows, "columns", size.Columns, "err", err)
		def := config.DefaultBlocksConfig().Board
		board, _ = core.NewBoard(def.Rows, def.Columns, cfg.Seed)
	}
	board.SetHighScore(g.highScore)
	g.board = board

	timing := g.cfg.Timing
	if cfg.TickRate > 0 {
		timing.TickRate = cfg.TickRate
	}
	g.dropEvery = timing.DropEveryTicks()
	g.dropTicker = 0
	g.tick = 0
	g.paused = false
	g.startedAt = time.Now()

	g.Resize(cfg.ScreenW, cfg.ScreenH)

	g.log.Debug("game reset",
		"rows", board.Rows(), "columns", board.Columns(),
		"seed", cfg.Seed, "drop_every_ticks", g.dropEvery)
}

// Resize recomputes the screen layout without touching the board.
func (g *Game) Resize(width, height int) {
	if g.board == nil {
		return
	}
	g.layout = computeLayout(g.board.Rows(), g.board.Columns(), width, height)
}

// SetHighScore seeds the session high score, e.g. from the scoreboard.
// A lower value than the one already held is ignored.
func (g *Game) SetHighScore(score int) {
	g.highScore = max(g.highScore, score)
	if g.board != nil {
		g.board.SetHighScore(g.highScore)
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	g.tick++

	if in.Has(platformcore.ActionRestart) && !g.board.Active() {
		g.board.Start()
		g.dropTicker = 0
		g.paused = false
		g.startedAt = time.Now()
		g.log.Debug("game restarted", "high", g.board.HighScore())
		return platformcore.StepResult{State: g.State()}
	}

	if in.Has(platformcore.ActionPause) && g.board.Active() {
		g.paused = !g.paused
	}

	if g.paused || g.layout.tooSmall || !g.board.Active() {
		return platformcore.StepResult{State: g.State()}
	}

	if in.Has(platformcore.ActionLeft) {
		g.board.MoveLeft()
	}
	if in.Has(platformcore.ActionRight) {
		g.board.MoveRight()
	}
	if in.Has(platformcore.ActionRotate) {
		g.board.Rotate()
	}
	if in.Has(platformcore.ActionDown) {
		g.drop()
	}

	// Gravity
	if g.board.Active() {
		g.dropTicker++
		if g.dropTicker >= g.dropEvery {
			g.drop()
		}
	}

	res := platformcore.StepResult{State: g.State()}
	if !g.board.Active() {
		ended := res.State
		res.Ended = &ended
		g.highScore = max(g.highScore, g.board.HighScore())
		g.log.Info("game over",
			"score", ended.Score, "high", ended.HighScore,
			"lines", ended.Lines, "pieces", ended.Pieces,
			"duration", time.Since(g.startedAt).Round(time.Second))
	}
	return res
}

// drop performs one soft drop and restarts the gravity timer.
func (g *Game) drop() {
	lines := g.board.LinesCleared()
	res := g.board.SoftDrop()
	g.dropTicker = 0

	if res != core.MoveLocked {
		return
	}
	if cleared := g.board.LinesCleared() - lines; cleared > 0 {
		g.log.Debug("lines cleared",
			"count", cleared,
			"points", core.LineScore(g.board.Columns(), cleared),
			"score", g.board.Score())
	}
}

// State returns the current game state. After game over Score holds the
// final score of the finished game.
func (g *Game) State() platformcore.GameState {
	if g.board == nil {
		return platformcore.GameState{}
	}
	score := g.board.Score()
	if !g.board.Active() {
		score = g.board.LastScore()
	}
	return platformcore.GameState{
		Score:     score,
		HighScore: g.board.HighScore(),
		Lines:     g.board.LinesCleared(),
		Pieces:    g.board.PiecesSpawned(),
		GameOver:  !g.board.Active(),
		Paused:    g.paused,
	}
}
