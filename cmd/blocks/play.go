package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-blocks/internal/games/blocks"
	"github.com/vovakirdan/tui-blocks/internal/platform/tui"
	"github.com/vovakirdan/tui-blocks/internal/registry"
	"github.com/vovakirdan/tui-blocks/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [board]",
	Short: "Play a board",
	Long: `Start playing the given board (default: blocks).

Controls:
  Left/A/H       - Move left
  Right/D/L      - Move right
  Down/S/J       - Soft drop
  Up/W/K/Space   - Rotate
  P              - Pause
  R              - Restart (after game over)
  Ctrl+S         - Save a screenshot to ~/.blocks/screenshots
  Esc/B          - Leave the game
  Q/Ctrl+C       - Quit

Examples:
  blocks play
  blocks play blocks_mini
  blocks play --seed 42
  blocks play --config ./my-blocks.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := blocks.IDClassic
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown board %q, run 'blocks list' to see available boards", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store, err := storage.Open()
	if err != nil {
		logger.Warn("could not open scoreboard", "err", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	if _, err := tui.Run(game, store, runtimeConfig(), logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	printSummary(cmd.OutOrStdout(), store)
	return nil
}
