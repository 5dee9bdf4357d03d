package perfstore

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/cornndawwg/icatalyst-production-sub001/internal/domain"
	"github.com/google/uuid"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// Store is the append-only sink for detection outcomes. The surrounding
// reporting UI queries it; this core only appends.
type Store struct {
	db *sql.DB
}

// NewStore opens (and if needed creates) the performance database
func NewStore(dbPath string) (*Store, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("performance store db path is required")
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0750); err != nil {
		return nil, fmt.Errorf("failed to create performance store directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open performance database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping performance database: %w", err)
	}

	store := &Store{db: db}
	if err := store.initSchema(); err != nil {
		return nil, err
	}
	return store, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) initSchema() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS detection_results (
			id TEXT PRIMARY KEY,
			input_hash TEXT NOT NULL,
			detected TEXT NOT NULL,
			expected TEXT NOT NULL,
			confidence REAL NOT NULL,
			method TEXT NOT NULL,
			correct INTEGER NOT NULL,
			created_at TIMESTAMP NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_detection_results_created_at ON detection_results(created_at);
	`)
	if err != nil {
		return fmt.Errorf("failed to create performance schema: %w", err)
	}
	return nil
}

// Append writes one detection record. The record ID is assigned here when
// the caller left it empty.
func (s *Store) Append(ctx context.Context, rec domain.DetectionRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO detection_results
		(id, input_hash, detected, expected, confidence, method, correct, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.InputHash, rec.Detected, rec.Expected,
		rec.Confidence, string(rec.Method), rec.Correct, rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	return nil
}

// Recent returns the most recent detection records, newest first
func (s *Store) Recent(ctx context.Context, limit int) ([]domain.DetectionRecord, error) {
	if limit <= 0 {
		limit = 100
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, input_hash, detected, expected, confidence, method, correct, created_at
		FROM detection_results
		ORDER BY created_at DESC, id
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	defer func() { _ = rows.Close() }()

	var records []domain.DetectionRecord
	for rows.Next() {
		var rec domain.DetectionRecord
		var method string
		if err := rows.Scan(
			&rec.ID, &rec.InputHash, &rec.Detected, &rec.Expected,
			&rec.Confidence, &method, &rec.Correct, &rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan detection record: %w", err)
		}
		rec.Method = domain.DetectionMethod(method)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate detection records: %w", err)
	}

	return records, nil
}
