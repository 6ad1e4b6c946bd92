package store

import (
	"context"
	"database/sql"
	"fmt"
	"go-data-processor/internal/config"
	"go-data-processor/internal/model"
	"go-data-processor/pkg/utils"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// Store keeps a history of pipeline runs in SQLite
type Store struct {
	db *sql.DB
}

// Run is a stored pipeline run
type Run struct {
	ID        string                  `json:"id"`
	Config    config.Configuration    `json:"config"`
	Summary   model.Summary           `json:"summary"`
	Records   []model.ProcessedRecord `json:"records,omitempty"`
	CreatedAt time.Time               `json:"created_at"`
}

// Open opens (creating if needed) the run history database at dbPath
func Open(dbPath string) (*Store, error) {
	if err := utils.EnsureParentDir(dbPath); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	// Create tables if not exists
	runTable := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		config TEXT,
		total REAL,
		average REAL,
		record_count INTEGER,
		created_at DATETIME
	);
	`
	recordTable := `
	CREATE TABLE IF NOT EXISTS run_records (
		run_id TEXT,
		record_id INTEGER,
		name TEXT,
		value INTEGER,
		processed_value REAL,
		processed_at DATETIME,
		PRIMARY KEY (run_id, record_id)
	);
	`

	for _, ddl := range []string{runTable, recordTable} {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to create schema: %w", err)
		}
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveRun stores a completed run with all its records and returns the new run id
func (s *Store) SaveRun(ctx context.Context, cfg config.Configuration, result model.RunResult) (string, error) {
	cfgJSON, err := json.Marshal(cfg)
	if err != nil {
		return "", err
	}

	runID := uuid.New().String()
	now := time.Now().UTC()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `INSERT INTO runs (id, config, total, average, record_count, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		runID, string(cfgJSON), result.Summary.Total, result.Summary.Average, result.Summary.Count, now)
	if err != nil {
		return "", fmt.Errorf("failed to insert run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO run_records (run_id, record_id, name, value, processed_value, processed_at) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", err
	}
	defer stmt.Close()

	for _, rec := range result.Records {
		if _, err := stmt.ExecContext(ctx, runID, rec.ID, rec.Name, rec.Value, rec.ProcessedValue, rec.ProcessedAt.UTC()); err != nil {
			return "", fmt.Errorf("failed to insert record %d: %w", rec.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}
	return runID, nil
}

// ListRuns returns all runs, newest first, without their records
func (s *Store) ListRuns(ctx context.Context) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, config, total, average, record_count, created_at FROM runs ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// GetRun fetches a run and its records in generation order
func (s *Store) GetRun(ctx context.Context, runID string) (Run, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id, config, total, average, record_count, created_at FROM runs WHERE id = ?`, runID)
	run, err := scanRun(row)
	if err != nil {
		return Run{}, err
	}

	rows, err := s.db.QueryContext(ctx, `SELECT record_id, name, value, processed_value, processed_at FROM run_records WHERE run_id = ? ORDER BY record_id`, runID)
	if err != nil {
		return Run{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var rec model.ProcessedRecord
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.Value, &rec.ProcessedValue, &rec.ProcessedAt); err != nil {
			return Run{}, err
		}
		run.Records = append(run.Records, rec)
	}
	return run, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (Run, error) {
	var run Run
	var cfgJSON string
	if err := row.Scan(&run.ID, &cfgJSON, &run.Summary.Total, &run.Summary.Average, &run.Summary.Count, &run.CreatedAt); err != nil {
		return Run{}, err
	}
	if err := json.Unmarshal([]byte(cfgJSON), &run.Config); err != nil {
		return Run{}, err
	}
	return run, nil
}
