// Package storage provides SQLite-based persistence for round results and
// per-player best stats. Uses the pure-Go modernc.org/sqlite driver to avoid
// CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/avasilyev/chainpop/internal/game"
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// RoundEntry represents a single finished round.
type RoundEntry struct {
	ID        int64
	Player    string
	Score     int
	MaxChain  int
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

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

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS rounds (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			player TEXT NOT NULL,
			score INTEGER NOT NULL,
			max_chain INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_player ON rounds(player);
		CREATE INDEX IF NOT EXISTS idx_rounds_top ON rounds(score DESC);

		CREATE TABLE IF NOT EXISTS best_stats (
			player TEXT PRIMARY KEY,
			best_score INTEGER NOT NULL DEFAULT 0,
			best_chain INTEGER NOT NULL DEFAULT 0,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRound records a finished round. Returns the ID of the inserted record.
func (s *Store) SaveRound(player string, score, maxChain int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO rounds (player, score, max_chain) VALUES (?, ?, ?)",
		player, score, maxChain,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save round: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopRounds retrieves the top N rounds across all players, ordered by score
// descending.
func (s *Store) TopRounds(limit int) ([]RoundEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, player, score, max_chain, created_at
		 FROM rounds
		 ORDER BY score DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	return scanRounds(rows)
}

// PlayerRounds retrieves the most recent rounds for one player.
func (s *Store) PlayerRounds(player string, limit int) ([]RoundEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, player, score, max_chain, created_at
		 FROM rounds
		 WHERE player = ?
		 ORDER BY created_at DESC
		 LIMIT ?`,
		player, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query player rounds: %w", err)
	}
	defer rows.Close()

	return scanRounds(rows)
}

// LastRound returns the most recently recorded round for a player, or nil if
// none exists.
func (s *Store) LastRound(player string) (*RoundEntry, error) {
	entries, err := s.PlayerRounds(player, 1)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}
	return &entries[0], nil
}

func scanRounds(rows *sql.Rows) ([]RoundEntry, error) {
	var entries []RoundEntry
	for rows.Next() {
		var e RoundEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Player, &e.Score, &e.MaxChain, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// parseTime handles both time.Time and string datetime representations
// returned by the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// LoadBest returns the persisted high-water marks for a player.
// A player with no record gets zero stats. Implements game.BestStore.
func (s *Store) LoadBest(name string) (game.BestStats, error) {
	var stats game.BestStats
	err := s.db.QueryRow(
		"SELECT best_score, best_chain FROM best_stats WHERE player = ?",
		name,
	).Scan(&stats.BestScore, &stats.BestChain)

	if err == sql.ErrNoRows {
		return game.BestStats{}, nil
	}
	if err != nil {
		return game.BestStats{}, fmt.Errorf("storage: cannot load best stats: %w", err)
	}

	return stats, nil
}

// SaveBest upserts a player's high-water marks. Stored values only ever
// increase. Implements game.BestStore.
func (s *Store) SaveBest(name string, stats game.BestStats) error {
	_, err := s.db.Exec(
		`INSERT INTO best_stats (player, best_score, best_chain, updated_at)
		 VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(player) DO UPDATE SET
			best_score = MAX(best_score, excluded.best_score),
			best_chain = MAX(best_chain, excluded.best_chain),
			updated_at = CURRENT_TIMESTAMP`,
		name, stats.BestScore, stats.BestChain,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save best stats: %w", err)
	}
	return nil
}

// SubmitScore records a round as a local leaderboard entry.
// Implements game.Submitter.
func (s *Store) SubmitScore(name string, score, maxChain int) error {
	_, err := s.SaveRound(name, score, maxChain)
	return err
}

// TopScores returns the local leaderboard. Implements game.Submitter.
func (s *Store) TopScores(limit int) ([]game.LeaderboardEntry, error) {
	rounds, err := s.TopRounds(limit)
	if err != nil {
		return nil, err
	}
	entries := make([]game.LeaderboardEntry, 0, len(rounds))
	for _, r := range rounds {
		entries = append(entries, game.LeaderboardEntry{
			Name:     r.Player,
			Score:    r.Score,
			MaxChain: r.MaxChain,
		})
	}
	return entries, nil
}

// Ensure Store satisfies the engine collaborator interfaces.
var (
	_ game.BestStore = (*Store)(nil)
	_ game.Submitter = (*Store)(nil)
)

// PlayerStats contains aggregated statistics for one player.
type PlayerStats struct {
	Player     string
	Rounds     int
	HighScore  int
	AvgScore   float64
	LastPlayed time.Time
}

// GetPlayerStats retrieves aggregated statistics for a player.
func (s *Store) GetPlayerStats(player string) (*PlayerStats, error) {
	stats := &PlayerStats{Player: player}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0)
		 FROM rounds WHERE player = ?`,
		player,
	).Scan(&stats.Rounds, &stats.HighScore, &stats.AvgScore)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get player stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM rounds WHERE player = ? ORDER BY created_at DESC LIMIT 1`,
		player,
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}
