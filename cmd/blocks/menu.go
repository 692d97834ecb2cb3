package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-blocks/internal/platform/tui"
	"github.com/vovakirdan/tui-blocks/internal/registry"
	"github.com/vovakirdan/tui-blocks/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a board picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a board.
Leave a game with Esc to return to the menu. Tab opens the session
scoreboard. Scores live only as long as the program runs.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select board
  Tab          - Session scores
  Q            - Quit

Examples:
  blocks menu
  blocks menu --fps 30`,
	RunE: runMenu,
}

func runMenu(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open()
	if err != nil {
		logger.Warn("could not open scoreboard", "err", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			return fmt.Errorf("menu: %w", err)
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return fmt.Errorf("scoreboard: %w", err)
			}
			if goBack {
				continue
			}
			break
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			logger.Error("cannot create game", "game", menuResult.GameID, "err", err)
			continue
		}

		// A fixed --seed replays the same sequence every time.
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		res, err := tui.Run(game, store, cfg, logger)
		if err != nil {
			return fmt.Errorf("running game: %w", err)
		}
		logger.Debug("left game", "game", game.ID(), "saved", res.Saved)

		if !res.Back {
			break
		}
	}

	printSummary(cmd.OutOrStdout(), store)
	return nil
}
