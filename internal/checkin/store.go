package checkin

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Record is one saved check-in.
type Record struct {
	TS    time.Time `json:"ts"`
	Score int       `json:"score"`
	Note  string    `json:"note,omitempty"`
}

// DayScore is the mean score for one calendar day.
type DayScore struct {
	Date  string  `json:"date"`
	Score float64 `json:"score"`
}

// Store is the append-only check-in log plus the read queries the
// display layer needs.
type Store interface {
	Append(ctx context.Context, rec Record) error
	Recent(ctx context.Context, n int) ([]Record, error)
	DailyAverages(ctx context.Context, days int) ([]DayScore, error)
	HappyDays(ctx context.Context, now time.Time) (int, error)
	Close() error
}

// SQLiteStore implements Store on a local SQLite file.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLite(dbPath string) (*SQLiteStore, error) {
	if dir := filepath.Dir(dbPath); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}
	dsn := dbPath + "?_journal=WAL&_busy_timeout=5000"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}
	s := &SQLiteStore{db: db}
	if err := s.initSchema(); err != nil {
		return nil, fmt.Errorf("initialize schema: %w", err)
	}
	return s, nil
}

func (s *SQLiteStore) initSchema() error {
	query := `
	CREATE TABLE IF NOT EXISTS checkins (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		ts INTEGER NOT NULL,
		score INTEGER NOT NULL,
		note TEXT
	);
	CREATE INDEX IF NOT EXISTS idx_checkins_ts ON checkins(ts);
	`
	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Append(ctx context.Context, rec Record) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO checkins (ts, score, note) VALUES (?, ?, ?)`,
		rec.TS.Unix(), rec.Score, rec.Note,
	)
	if err != nil {
		return fmt.Errorf("append checkin: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Recent(ctx context.Context, n int) ([]Record, error) {
	if n <= 0 {
		n = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT ts, score, COALESCE(note, '') FROM checkins ORDER BY ts DESC, id DESC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("query recent checkins: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var ts int64
		var rec Record
		if err := rows.Scan(&ts, &rec.Score, &rec.Note); err != nil {
			return nil, fmt.Errorf("scan checkin row: %w", err)
		}
		rec.TS = time.Unix(ts, 0).UTC()
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate checkins: %w", err)
	}
	return out, nil
}

// DailyAverages returns the per-day mean score for the most recent days,
// ascending by date.
func (s *SQLiteStore) DailyAverages(ctx context.Context, days int) ([]DayScore, error) {
	if days <= 0 {
		days = 14
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT date(ts, 'unixepoch') AS day, AVG(score)
		 FROM checkins GROUP BY day ORDER BY day DESC LIMIT ?`, days)
	if err != nil {
		return nil, fmt.Errorf("query daily averages: %w", err)
	}
	defer rows.Close()

	var out []DayScore
	for rows.Next() {
		var d DayScore
		if err := rows.Scan(&d.Date, &d.Score); err != nil {
			return nil, fmt.Errorf("scan daily average: %w", err)
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate daily averages: %w", err)
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}

// HappyDays counts calendar days among the last seven (today included)
// whose daily average meets the happy threshold.
func (s *SQLiteStore) HappyDays(ctx context.Context, now time.Time) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM (
			SELECT date(ts, 'unixepoch') AS day, AVG(score) AS avg_score
			FROM checkins
			WHERE date(ts, 'unixepoch') >= date(?, 'unixepoch', '-6 days')
			GROUP BY day
		 ) WHERE avg_score >= ?`, now.Unix(), HappyThreshold).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("query happy days: %w", err)
	}
	return count, nil
}

func (s *SQLiteStore) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("close database: %w", err)
	}
	return nil
}
