package main

import (
	"fmt"
	"io"

	"github.com/vovakirdan/tui-blocks/internal/registry"
	"github.com/vovakirdan/tui-blocks/internal/storage"
)

// summaryLimit is the number of results printed per board.
const summaryLimit = 5

// printSummary prints the session scoreboard after the TUI exits.
// Boards without finished games are skipped.
func printSummary(w io.Writer, store *storage.Store) {
	if store == nil {
		return
	}

	printed := false
	for _, g := range registry.List() {
		stats, err := store.Stats(g.ID)
		if err != nil {
			logger.Warn("cannot read stats", "game", g.ID, "err", err)
			continue
		}
		if stats.Games == 0 {
			continue
		}

		results, err := store.TopScores(g.ID, summaryLimit)
		if err != nil {
			logger.Warn("cannot read scores", "game", g.ID, "err", err)
			continue
		}

		if !printed {
			fmt.Fprintln(w, "Session scores")
			printed = true
		}
		fmt.Fprintln(w)
		fmt.Fprintf(w, "%s - %d games, best %d, %d lines\n", g.Title, stats.Games, stats.BestScore, stats.TotalLines)
		fmt.Fprintf(w, "  %-4s  %-8s  %-5s  %-6s  %s\n", "Rank", "Score", "Lines", "Pieces", "Time")
		fmt.Fprintf(w, "  %-4s  %-8s  %-5s  %-6s  %s\n", "----", "-----", "-----", "------", "----")
		for i, r := range results {
			fmt.Fprintf(w, "  %-4d  %-8d  %-5d  %-6d  %s\n", i+1, r.Score, r.Lines, r.Pieces, r.CreatedAt.Format("15:04:05"))
		}
	}
}
