// Package storage provides SQLite-based persistence for duel history and
// the coin ledger. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-duel/internal/core"
	"github.com/vovakirdan/tui-duel/internal/duel"
)

// Store manages the SQLite database connection for duel persistence.
type Store struct {
	db      *sql.DB
	rewards Rewards
}

// Rewards is the number of coins credited per outcome.
type Rewards struct {
	Win  int64
	Draw int64
}

// DuelRecord represents a single finished duel.
type DuelRecord struct {
	ID         string
	Players    [2]string
	Weapons    [2]string
	Winner     core.PlayerID // NoPlayer for draws and timeouts
	Draw       bool
	Reason     string
	DurationMs int64
	CreatedAt  time.Time
}

// WinnerName returns the winning player's name, or "" without a winner.
func (r DuelRecord) WinnerName() string {
	idx := r.Winner.Index()
	if idx < 0 {
		return ""
	}
	return r.Players[idx]
}

// Balance is one row of the coin ledger.
type Balance struct {
	Player  string
	Balance int64
}

// PlayerRecord is a player's win/loss/draw tally.
type PlayerRecord struct {
	Player string
	Wins   int
	Losses int
	Draws  int
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
		CREATE TABLE IF NOT EXISTS duels (
			id TEXT PRIMARY KEY,
			player1 TEXT NOT NULL,
			player2 TEXT NOT NULL,
			weapon1 TEXT NOT NULL,
			weapon2 TEXT NOT NULL,
			winner INTEGER NOT NULL DEFAULT 0,
			draw INTEGER NOT NULL DEFAULT 0,
			reason TEXT NOT NULL,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_duels_player1 ON duels(player1);
		CREATE INDEX IF NOT EXISTS idx_duels_player2 ON duels(player2);

		CREATE TABLE IF NOT EXISTS coins (
			player TEXT PRIMARY KEY,
			balance INTEGER NOT NULL DEFAULT 0
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

// SetRewards configures the coins credited by SaveDuelResult.
func (s *Store) SetRewards(r Rewards) {
	s.rewards = r
}

// SaveDuelResult implements duel.ResultSaver. It records the duel and
// credits coins in one transaction: the winner receives the win reward, and
// on a draw both players receive the draw reward.
func (s *Store) SaveDuelResult(r duel.Result) error {
	id := r.DuelID
	if id == "" {
		id = uuid.NewString()
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO duels
		 (id, player1, player2, weapon1, weapon2, winner, draw, reason, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id,
		r.Players[0], r.Players[1],
		r.Weapons[0], r.Weapons[1],
		int(r.Outcome.Winner),
		r.Outcome.Draw,
		r.Outcome.Reason,
		int64(r.Duration()),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save duel %s: %w", id, err)
	}

	switch {
	case r.Outcome.Draw && s.rewards.Draw > 0:
		for _, p := range r.Players {
			if err := credit(tx, p, s.rewards.Draw); err != nil {
				return err
			}
		}
	case r.WinnerName() != "" && s.rewards.Win > 0:
		if err := credit(tx, r.WinnerName(), s.rewards.Win); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit duel %s: %w", id, err)
	}
	return nil
}

// Ensure Store implements ResultSaver
var _ duel.ResultSaver = (*Store)(nil)

func credit(tx *sql.Tx, player string, amount int64) error {
	_, err := tx.Exec(
		`INSERT INTO coins (player, balance) VALUES (?, ?)
		 ON CONFLICT(player) DO UPDATE SET balance = balance + excluded.balance`,
		player, amount,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot credit %s: %w", player, err)
	}
	return nil
}

const duelColumns = `id, player1, player2, weapon1, weapon2, winner, draw, reason, duration_ms, created_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanDuel(row scanner) (DuelRecord, error) {
	var r DuelRecord
	var winner int
	var createdAt any
	err := row.Scan(
		&r.ID,
		&r.Players[0], &r.Players[1],
		&r.Weapons[0], &r.Weapons[1],
		&winner,
		&r.Draw,
		&r.Reason,
		&r.DurationMs,
		&createdAt,
	)
	if err != nil {
		return r, err
	}
	r.Winner = core.PlayerID(winner)
	r.CreatedAt = parseTime(createdAt)
	return r, nil
}

// parseTime handles both time.Time and string datetimes.
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

// DuelByID retrieves a duel by its id. Returns nil if it does not exist.
func (s *Store) DuelByID(id string) (*DuelRecord, error) {
	r, err := scanDuel(s.db.QueryRow(`SELECT `+duelColumns+` FROM duels WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query duel: %w", err)
	}
	return &r, nil
}

// RecentDuels retrieves the most recent duels, newest first.
func (s *Store) RecentDuels(limit int) ([]DuelRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryDuels(
		`SELECT `+duelColumns+` FROM duels ORDER BY created_at DESC, rowid DESC LIMIT ?`,
		limit,
	)
}

// PlayerDuels retrieves the most recent duels a player took part in.
func (s *Store) PlayerDuels(player string, limit int) ([]DuelRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryDuels(
		`SELECT `+duelColumns+` FROM duels
		 WHERE player1 = ? OR player2 = ?
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		player, player, limit,
	)
}

func (s *Store) queryDuels(query string, args ...any) ([]DuelRecord, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query duels: %w", err)
	}
	defer rows.Close()

	var records []DuelRecord
	for rows.Next() {
		r, err := scanDuel(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return records, nil
}

// Balance returns a player's coin balance. Unknown players have 0.
func (s *Store) Balance(player string) (int64, error) {
	var balance int64
	err := s.db.QueryRow("SELECT balance FROM coins WHERE player = ?", player).Scan(&balance)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query balance: %w", err)
	}
	return balance, nil
}

// Balances returns the whole ledger, richest first.
func (s *Store) Balances() ([]Balance, error) {
	rows, err := s.db.Query("SELECT player, balance FROM coins ORDER BY balance DESC, player ASC")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query balances: %w", err)
	}
	defer rows.Close()

	var out []Balance
	for rows.Next() {
		var b Balance
		if err := rows.Scan(&b.Player, &b.Balance); err != nil {
			return nil, fmt.Errorf("storage: cannot scan balance: %w", err)
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}

// Record returns a player's tally over all stored duels.
func (s *Store) Record(player string) (PlayerRecord, error) {
	rec := PlayerRecord{Player: player}
	err := s.db.QueryRow(
		`SELECT
			COALESCE(SUM(CASE WHEN (winner = 1 AND player1 = ?) OR (winner = 2 AND player2 = ?) THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN (winner = 1 AND player2 = ?) OR (winner = 2 AND player1 = ?) THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN draw = 1 THEN 1 ELSE 0 END), 0)
		 FROM duels WHERE player1 = ? OR player2 = ?`,
		player, player, player, player, player, player,
	).Scan(&rec.Wins, &rec.Losses, &rec.Draws)
	if err != nil {
		return rec, fmt.Errorf("storage: cannot query record: %w", err)
	}
	return rec, nil
}
