package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-blocks/internal/config"
	"github.com/vovakirdan/tui-blocks/internal/games/blocks"
	"github.com/vovakirdan/tui-blocks/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available boards",
	Long:  `Shows every registered board with its size from the effective config.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, _ []string) {
	games := registry.List()
	out := cmd.OutOrStdout()

	if len(games) == 0 {
		fmt.Fprintln(out, "No boards available.")
		return
	}

	fmt.Fprintln(out, "Available boards:")
	fmt.Fprintln(out)

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Fprintf(out, "  %-*s  %-7s  %s\n", maxIDLen, "ID", "Size", "Title")
	fmt.Fprintf(out, "  %-*s  %-7s  %s\n", maxIDLen, "--", "----", "-----")

	for _, g := range games {
		fmt.Fprintf(out, "  %-*s  %-7s  %s\n", maxIDLen, g.ID, boardSize(g.ID), g.Title)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'blocks play <id>' to play a board.")
}

// boardSize formats the configured size of a board variant as rows x columns.
func boardSize(id string) string {
	var b config.BoardConfig
	switch id {
	case blocks.IDClassic:
		b = gameCfg.Board
	case blocks.IDMini:
		b = gameCfg.Mini
	default:
		return "-"
	}
	return fmt.Sprintf("%dx%d", b.Rows, b.Columns)
}
