// Package store caches fetched candle series and persists the watchlist in a
// local SQLite database, so the app starts with data even when the feed is
// unreachable.
package store

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"

	"CandleGlass/internal/model"
)

// Store wraps the SQLite database. Methods are safe for concurrent use.
type Store struct {
	db *sql.DB
	mu sync.Mutex
}

// Open opens (or creates) the database and runs migrations.
func Open(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so reads during a refresh don't block.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Info().Str("path", dbPath).Msg("store opened")
	return s, nil
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS watchlist (
			symbol   TEXT PRIMARY KEY,
			name     TEXT NOT NULL,
			position INTEGER NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS series (
			symbol     TEXT NOT NULL,
			interval   TEXT NOT NULL,
			fetched_at INTEGER NOT NULL,
			PRIMARY KEY (symbol, interval)
		)`,

		`CREATE TABLE IF NOT EXISTS candles (
			symbol   TEXT NOT NULL,
			interval TEXT NOT NULL,
			ts       INTEGER NOT NULL,
			open     REAL,
			high     REAL,
			low      REAL,
			close    REAL,
			volume   REAL,
			PRIMARY KEY (symbol, interval, ts)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_candles_series ON candles(symbol, interval)`,
	}

	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("exec %q: %w", stmt[:40], err)
		}
	}
	return nil
}

// SaveSeries replaces the cached candles for the series' symbol and interval.
func (s *Store) SaveSeries(series *model.Series) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	iv := series.Interval.Label()
	if _, err := tx.Exec(`DELETE FROM candles WHERE symbol = ? AND interval = ?`,
		series.Symbol, iv); err != nil {
		return fmt.Errorf("clear candles: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO candles
		(symbol, interval, ts, open, high, low, close, volume)
		VALUES (?,?,?,?,?,?,?,?)`)
	if err != nil {
		return fmt.Errorf("prepare: %w", err)
	}
	defer stmt.Close()

	for _, c := range series.Candles {
		if _, err := stmt.Exec(series.Symbol, iv, c.Time.Unix(),
			c.Open, c.High, c.Low, c.Close, c.Volume); err != nil {
			return fmt.Errorf("insert candle: %w", err)
		}
	}

	if _, err := tx.Exec(`INSERT INTO series (symbol, interval, fetched_at)
		VALUES (?,?,?)
		ON CONFLICT(symbol, interval) DO UPDATE SET fetched_at = excluded.fetched_at`,
		series.Symbol, iv, series.FetchedAt.Unix()); err != nil {
		return fmt.Errorf("upsert series: %w", err)
	}

	return tx.Commit()
}

// LoadSeries returns the cached series for symbol at interval, or nil when
// nothing is cached.
func (s *Store) LoadSeries(symbol string, interval model.Interval) (*model.Series, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	iv := interval.Label()

	var fetchedAt int64
	err := s.db.QueryRow(`SELECT fetched_at FROM series WHERE symbol = ? AND interval = ?`,
		symbol, iv).Scan(&fetchedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query series: %w", err)
	}

	rows, err := s.db.Query(`SELECT ts, open, high, low, close, volume
		FROM candles WHERE symbol = ? AND interval = ? ORDER BY ts ASC`,
		symbol, iv)
	if err != nil {
		return nil, fmt.Errorf("query candles: %w", err)
	}
	defer rows.Close()

	series := model.NewSeries(symbol, interval)
	series.FetchedAt = time.Unix(fetchedAt, 0)
	for rows.Next() {
		var ts int64
		var c model.Candle
		if err := rows.Scan(&ts, &c.Open, &c.High, &c.Low, &c.Close, &c.Volume); err != nil {
			return nil, fmt.Errorf("scan candle: %w", err)
		}
		c.Time = time.Unix(ts, 0)
		series.Candles = append(series.Candles, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate candles: %w", err)
	}
	if series.IsEmpty() {
		return nil, nil
	}
	return series, nil
}

// WatchlistEntry is one persisted watchlist row.
type WatchlistEntry struct {
	Symbol string
	Name   string
}

// SaveWatchlist replaces the persisted watchlist, preserving order.
func (s *Store) SaveWatchlist(entries []WatchlistEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM watchlist`); err != nil {
		return fmt.Errorf("clear watchlist: %w", err)
	}
	for i, e := range entries {
		if _, err := tx.Exec(`INSERT INTO watchlist (symbol, name, position) VALUES (?,?,?)`,
			e.Symbol, e.Name, i); err != nil {
			return fmt.Errorf("insert watchlist row: %w", err)
		}
	}
	return tx.Commit()
}

// LoadWatchlist returns the persisted watchlist in saved order. An empty
// result is not an error; the caller falls back to configuration.
func (s *Store) LoadWatchlist() ([]WatchlistEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query(`SELECT symbol, name FROM watchlist ORDER BY position ASC`)
	if err != nil {
		return nil, fmt.Errorf("query watchlist: %w", err)
	}
	defer rows.Close()

	var entries []WatchlistEntry
	for rows.Next() {
		var e WatchlistEntry
		if err := rows.Scan(&e.Symbol, &e.Name); err != nil {
			return nil, fmt.Errorf("scan watchlist row: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Close closes the database.
func (s *Store) Close() error {
	log.Info().Msg("closing store")
	return s.db.Close()
}
