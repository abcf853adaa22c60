// Package storage provides the SQLite-backed leaderboard.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
// The database lives in memory and is gone when the process exits.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

// DefaultLimit is the leaderboard size used when none is given.
const DefaultLimit = 10

// memoryDSN keeps the database private to the single pooled connection.
const memoryDSN = "file::memory:"

// Store is an in-memory top-N leaderboard keyed by player name.
type Store struct {
	db    *sql.DB
	limit int
}

// Ensure Store implements the engine's leaderboard.
var _ breakout.Leaderboard = (*Store)(nil)

// Open creates an empty in-memory leaderboard keeping the best limit entries.
func Open(ctx context.Context, limit int) (*Store, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	db, err := sql.Open("sqlite", memoryDSN)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Every new connection would get its own empty database.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db, limit: limit}
	if err := store.migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate(ctx context.Context) error {
	schema := `
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE,
			score INTEGER NOT NULL,
			level INTEGER NOT NULL DEFAULT 1,
			game_id TEXT NOT NULL DEFAULT '',
			created_at INTEGER NOT NULL,
			seq INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(score DESC, seq ASC);
	`

	_, err := s.db.ExecContext(ctx, schema)
	return err
}

// Close closes the database connection and discards the leaderboard.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Limit returns the number of entries kept.
func (s *Store) Limit() int {
	return s.limit
}

// SaveScore records entry. A name already on the board keeps its best score;
// a new best counts as the latest submission when breaking ties. Only the
// top entries survive.
func (s *Store) SaveScore(ctx context.Context, entry breakout.ScoreEntry) error {
	name := strings.TrimSpace(entry.Name)
	if name == "" {
		return breakout.ErrEmptyName
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	_, err = tx.ExecContext(ctx,
		`INSERT INTO scores (name, score, level, game_id, created_at, seq)
		 VALUES (?, ?, ?, ?, ?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM scores))
		 ON CONFLICT(name) DO UPDATE SET
		     score = excluded.score,
		     level = excluded.level,
		     game_id = excluded.game_id,
		     created_at = excluded.created_at,
		     seq = excluded.seq
		 WHERE excluded.score > scores.score`,
		name, entry.Score, entry.Level, entry.GameID, entry.CreatedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save score: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`DELETE FROM scores WHERE id NOT IN (
		     SELECT id FROM scores ORDER BY score DESC, seq ASC LIMIT ?
		 )`,
		s.limit,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot trim scores: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit score: %w", err)
	}
	return nil
}

// TopScores returns the leaderboard, best first. Equal scores keep
// submission order.
func (s *Store) TopScores(ctx context.Context) ([]breakout.ScoreEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name, score, level, game_id, created_at
		 FROM scores
		 ORDER BY score DESC, seq ASC
		 LIMIT ?`,
		s.limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []breakout.ScoreEntry
	for rows.Next() {
		var e breakout.ScoreEntry
		var createdAt int64
		if err := rows.Scan(&e.Name, &e.Score, &e.Level, &e.GameID, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = time.UnixMilli(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the best score on the board.
// Returns 0 if no scores exist.
func (s *Store) HighScore(ctx context.Context) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRowContext(ctx, "SELECT MAX(score) FROM scores").Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearScores empties the leaderboard.
func (s *Store) ClearScores(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM scores")
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}
