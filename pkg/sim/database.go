package sim

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Store persists run summaries to SQLite
type Store struct {
	db *sql.DB
}

// OpenStore opens (creating if needed) the run history database at path
func OpenStore(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createTables(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createTables() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT,
			apples INTEGER,
			length_gain INTEGER,
			girth_gain INTEGER,
			final_length INTEGER,
			final_girth INTEGER,
			final_color TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
	}

	for _, query := range queries {
		if _, err := s.db.Exec(query); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}
	return nil
}

// SaveRun inserts one completed run
func (s *Store) SaveRun(sum RunSummary) error {
	_, err := s.db.Exec(
		`INSERT INTO runs (session_id, apples, length_gain, girth_gain, final_length, final_girth, final_color, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		sum.SessionID, sum.Apples, sum.LengthGain, sum.GirthGain,
		sum.FinalLength, sum.FinalGirth, sum.FinalColor, sum.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save run: %w", err)
	}
	return nil
}

// RecentRuns returns up to limit runs, newest first
func (s *Store) RecentRuns(limit int) ([]RunSummary, error) {
	rows, err := s.db.Query(
		`SELECT session_id, apples, length_gain, girth_gain, final_length, final_girth, final_color, created_at
		 FROM runs ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunSummary
	for rows.Next() {
		var sum RunSummary
		if err := rows.Scan(
			&sum.SessionID, &sum.Apples, &sum.LengthGain, &sum.GirthGain,
			&sum.FinalLength, &sum.FinalGirth, &sum.FinalColor, &sum.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, sum)
	}
	return runs, rows.Err()
}
