package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cornndawwg/icatalyst-production-sub001/internal/domain"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// Store is a read-only view over the product catalog backed by SQLite.
// This core never writes catalog rows at runtime; seeding happens once at
// startup when the table is empty.
type Store struct {
	db     *sql.DB
	dbPath string
}

// NewStore opens (and if needed creates) the catalog database
func NewStore(dbPath string) (*Store, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("catalog db path is required")
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0750); err != nil {
		return nil, fmt.Errorf("failed to create catalog directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog database: %w", err)
	}

	// SQLite doesn't benefit from multiple connections
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping catalog database: %w", err)
	}

	store := &Store{db: db, dbPath: dbPath}
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
		CREATE TABLE IF NOT EXISTS catalog_items (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			category TEXT NOT NULL,
			brand TEXT NOT NULL,
			base_price REAL NOT NULL,
			good_tier_price REAL NOT NULL,
			better_tier_price REAL NOT NULL,
			best_tier_price REAL NOT NULL,
			compatibility_tags TEXT NOT NULL DEFAULT '[]'
		);
		CREATE INDEX IF NOT EXISTS idx_catalog_items_category ON catalog_items(category);
	`)
	if err != nil {
		return fmt.Errorf("failed to create catalog schema: %w", err)
	}
	return nil
}

// ListItems returns catalog items, optionally filtered by category, ordered
// by id for deterministic downstream selection
func (s *Store) ListItems(ctx context.Context, category string) ([]domain.CatalogItem, error) {
	query := `
		SELECT id, name, category, brand, base_price,
		       good_tier_price, better_tier_price, best_tier_price,
		       compatibility_tags
		FROM catalog_items`
	args := []any{}
	if category != "" {
		query += ` WHERE category = ?`
		args = append(args, category)
	}
	query += ` ORDER BY id`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query catalog items: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var items []domain.CatalogItem
	for rows.Next() {
		var item domain.CatalogItem
		var tagsJSON string
		if err := rows.Scan(
			&item.ID, &item.Name, &item.Category, &item.Brand, &item.BasePrice,
			&item.GoodTierPrice, &item.BetterTierPrice, &item.BestTierPrice,
			&tagsJSON,
		); err != nil {
			return nil, fmt.Errorf("failed to scan catalog item: %w", err)
		}
		if tagsJSON != "" {
			if err := json.Unmarshal([]byte(tagsJSON), &item.CompatibilityTags); err != nil {
				return nil, fmt.Errorf("malformed compatibility tags for %s: %w", item.ID, err)
			}
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate catalog items: %w", err)
	}

	return items, nil
}

// Count returns the number of catalog rows; used to decide whether to seed
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM catalog_items`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count catalog items: %w", err)
	}
	return n, nil
}

// InsertItems writes items into the catalog. Only seeding paths call this;
// the engines never do.
func (s *Store) InsertItems(ctx context.Context, items []domain.CatalogItem) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR REPLACE INTO catalog_items
		(id, name, category, brand, base_price, good_tier_price, better_tier_price, best_tier_price, compatibility_tags)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare seed statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, item := range items {
		tags, err := json.Marshal(item.CompatibilityTags)
		if err != nil {
			return fmt.Errorf("failed to encode tags for %s: %w", item.ID, err)
		}
		if _, err := stmt.ExecContext(ctx,
			item.ID, item.Name, item.Category, item.Brand, item.BasePrice,
			item.GoodTierPrice, item.BetterTierPrice, item.BestTierPrice, string(tags),
		); err != nil {
			return fmt.Errorf("failed to insert catalog item %s: %w", item.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seed transaction: %w", err)
	}
	return nil
}

// SeedFromFile loads catalog items from a JSON file
func (s *Store) SeedFromFile(ctx context.Context, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read catalog seed file: %w", err)
	}
	var items []domain.CatalogItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return fmt.Errorf("failed to parse catalog seed file: %w", err)
	}
	return s.InsertItems(ctx, items)
}
