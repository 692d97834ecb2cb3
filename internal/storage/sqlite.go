// Package storage keeps the session scoreboard in an in-memory SQLite
// database. Uses the pure-Go modernc.org/sqlite driver to avoid CGO.
//
// Nothing is written to disk: results live exactly as long as the process.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the session scoreboard.
type Store struct {
	db *sql.DB
}

// GameResult is one finished game.
type GameResult struct {
	ID        int64
	GameID    string
	Score     int
	Lines     int
	Pieces    int
	CreatedAt time.Time
}

// GameStats aggregates all results recorded for one game id.
type GameStats struct {
	Games      int
	BestScore  int
	TotalLines int
	MostLines  int
}

// Open creates a fresh in-memory scoreboard and runs migrations.
func Open() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Every connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS games (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			lines INTEGER NOT NULL DEFAULT 0,
			pieces INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_games_top ON games(game_id, score DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection. The scoreboard is gone afterwards.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveGame records a finished game and returns its row ID.
func (s *Store) SaveGame(gameID string, score, lines, pieces int) (int64, error) {
	if gameID == "" {
		return 0, fmt.Errorf("storage: cannot save game: empty game id")
	}

	result, err := s.db.Exec(
		"INSERT INTO games (game_id, score, lines, pieces) VALUES (?, ?, ?, ?)",
		gameID, score, lines, pieces,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save game: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopScores retrieves the best N results for the given game, highest score
// first. Ties keep insertion order.
func (s *Store) TopScores(gameID string, limit int) ([]GameResult, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, score, lines, pieces, created_at
		 FROM games
		 WHERE game_id = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []GameResult
	for rows.Next() {
		var e GameResult
		var createdAt any
		if err := rows.Scan(&e.ID, &e.GameID, &e.Score, &e.Lines, &e.Pieces, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTimestamp(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the highest score for the given game, or 0.
func (s *Store) HighScore(gameID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM games WHERE game_id = ?",
		gameID,
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// Stats returns aggregate numbers for the given game.
func (s *Store) Stats(gameID string) (GameStats, error) {
	var st GameStats
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(SUM(lines), 0), COALESCE(MAX(lines), 0)
		 FROM games
		 WHERE game_id = ?`,
		gameID,
	).Scan(&st.Games, &st.BestScore, &st.TotalLines, &st.MostLines)
	if err != nil {
		return GameStats{}, fmt.Errorf("storage: cannot query stats: %w", err)
	}
	return st, nil
}

// parseTimestamp handles both driver representations of DATETIME.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		for _, layout := range []string{"2006-01-02 15:04:05", time.RFC3339} {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed
			}
		}
	}
	return time.Time{}
}
