package blocks

import "github.com/vovakirdan/tui-blocks/internal/games/blocks/core"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick       uint64
	ID         string
	State      GameStateType
	DropEvery  int
	DropTicker int
	Board      core.Snapshot
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.layout.tooSmall:
		state = StatePausedSmall
	case g.board == nil || !g.board.Active():
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	snap := Snapshot{
		Tick:       g.tick,
		ID:         g.id,
		State:      state,
		DropEvery:  g.dropEvery,
		DropTicker: g.dropTicker,
	}
	if g.board != nil {
		snap.Board = g.board.Snapshot()
	}
	return snap
}
