package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Run is one finished round.
type Run struct {
	ID        string
	Owner     string
	GameID    string
	Score     int
	Coins     int
	Ticks     uint64
	Seed      int64
	SkinID    string
	CreatedAt time.Time
}

// SaveRun records a finished round and credits its coins to the owner's
// wallet in the same transaction. Returns the new run ID.
func (s *Store) SaveRun(r Run) (string, error) {
	if r.Owner == "" {
		r.Owner = LocalOwner
	}
	id := uuid.NewString()

	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO runs (id, owner, game_id, score, coins, ticks, seed, skin_id)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id, r.Owner, r.GameID, r.Score, r.Coins, int64(r.Ticks), r.Seed, r.SkinID,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}

	if r.Coins > 0 {
		if err := addCoins(tx, r.Owner, r.Coins); err != nil {
			return "", err
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("storage: cannot commit run: %w", err)
	}
	return id, nil
}

// TopRuns retrieves the top N runs for the given game across all owners.
// Results are ordered by score descending.
func (s *Store) TopRuns(gameID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRuns(
		`SELECT id, owner, game_id, score, coins, ticks, seed, skin_id, created_at
		 FROM runs
		 WHERE game_id = ?
		 ORDER BY score DESC, created_at ASC
		 LIMIT ?`,
		gameID, limit,
	)
}

// RecentRuns retrieves an owner's most recent runs.
func (s *Store) RecentRuns(owner, gameID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRuns(
		`SELECT id, owner, game_id, score, coins, ticks, seed, skin_id, created_at
		 FROM runs
		 WHERE owner = ? AND game_id = ?
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		owner, gameID, limit,
	)
}

func (s *Store) queryRuns(query string, args ...any) ([]Run, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var ticks int64
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Owner, &r.GameID, &r.Score, &r.Coins, &ticks, &r.Seed, &r.SkinID, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Ticks = uint64(ticks)
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// HighScore returns the highest score for the given game. An empty owner
// means across all owners. Returns 0 if no runs exist.
func (s *Store) HighScore(gameID, owner string) (int, error) {
	var score sql.NullInt64
	var err error
	if owner == "" {
		err = s.db.QueryRow("SELECT MAX(score) FROM runs WHERE game_id = ?", gameID).Scan(&score)
	} else {
		err = s.db.QueryRow("SELECT MAX(score) FROM runs WHERE game_id = ? AND owner = ?", gameID, owner).Scan(&score)
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// ClearRuns deletes all runs for the given game. Wallets are untouched.
func (s *Store) ClearRuns(gameID string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// GameStats contains aggregated statistics for a game.
type GameStats struct {
	GameID     string
	GamesCount int
	HighScore  int
	AvgScore   float64
	TotalCoins int64
	LastPlayed time.Time
}

// Stats retrieves aggregated statistics for one owner's runs of a game.
func (s *Store) Stats(gameID, owner string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(SUM(coins), 0), MAX(created_at)
		 FROM runs WHERE game_id = ? AND owner = ?`,
		gameID, owner,
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.AvgScore, &stats.TotalCoins, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}
