// Package sqlite provides a SQLite implementation of the CatalogStore
// interface. Each catalog section is a table of (id, position, data)
// rows with the record serialized as JSON; saves replace the whole
// section so the store always mirrors the last import.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/zkgirl/dreamlife/internal/domain/entities"
)

// Store implements ports.CatalogStore using SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore opens (creating if needed) the catalog database at path.
func NewStore(path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("sqlite path is required")
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}

	// Enable foreign keys for referential integrity
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	// Enable WAL mode for better concurrent read/write performance
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	// Set busy timeout to avoid "database is locked" errors
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}

	return &Store{
		db:   db,
		path: path,
	}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// sections lists every catalog table. They share one shape.
var sections = []string{
	"events",
	"careers",
	"majors",
	"business_types",
	"shop_items",
	"activities",
}

// EnsureSchema creates the catalog schema if it doesn't exist.
func (s *Store) EnsureSchema(ctx context.Context) error {
	for _, table := range sections {
		schema := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			id TEXT PRIMARY KEY,
			position INTEGER NOT NULL,
			data TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_%s_position ON %s(position);
		`, table, table, table)

		if _, err := s.db.ExecContext(ctx, schema); err != nil {
			return fmt.Errorf("creating %s schema: %w", table, err)
		}
	}
	return nil
}

// SaveEvents replaces all events in the store.
func (s *Store) SaveEvents(ctx context.Context, events []entities.Event) error {
	return replaceSection(ctx, s.db, "events", events, func(e *entities.Event) string { return e.ID })
}

// ListEvents returns every event in the store.
func (s *Store) ListEvents(ctx context.Context) ([]entities.Event, error) {
	return listSection[entities.Event](ctx, s.db, "events")
}

// SaveCareers replaces all careers in the store.
func (s *Store) SaveCareers(ctx context.Context, careers []entities.CareerPath) error {
	return replaceSection(ctx, s.db, "careers", careers, func(c *entities.CareerPath) string { return c.Title })
}

// ListCareers returns every career in the store.
func (s *Store) ListCareers(ctx context.Context) ([]entities.CareerPath, error) {
	return listSection[entities.CareerPath](ctx, s.db, "careers")
}

// SaveMajors replaces all university majors in the store.
func (s *Store) SaveMajors(ctx context.Context, majors []entities.Major) error {
	return replaceSection(ctx, s.db, "majors", majors, func(m *entities.Major) string { return m.ID })
}

// ListMajors returns every university major in the store.
func (s *Store) ListMajors(ctx context.Context) ([]entities.Major, error) {
	return listSection[entities.Major](ctx, s.db, "majors")
}

// SaveBusinessTypes replaces all business types in the store.
func (s *Store) SaveBusinessTypes(ctx context.Context, types []entities.BusinessType) error {
	return replaceSection(ctx, s.db, "business_types", types, func(t *entities.BusinessType) string { return t.ID })
}

// ListBusinessTypes returns every business type in the store.
func (s *Store) ListBusinessTypes(ctx context.Context) ([]entities.BusinessType, error) {
	return listSection[entities.BusinessType](ctx, s.db, "business_types")
}

// SaveShopItems replaces all shop items in the store.
func (s *Store) SaveShopItems(ctx context.Context, items []entities.ShopItem) error {
	return replaceSection(ctx, s.db, "shop_items", items, func(i *entities.ShopItem) string { return i.ID })
}

// ListShopItems returns every shop item in the store.
func (s *Store) ListShopItems(ctx context.Context) ([]entities.ShopItem, error) {
	return listSection[entities.ShopItem](ctx, s.db, "shop_items")
}

// SaveActivities replaces all activities in the store.
func (s *Store) SaveActivities(ctx context.Context, activities []entities.Activity) error {
	return replaceSection(ctx, s.db, "activities", activities, func(a *entities.Activity) string { return a.ID })
}

// ListActivities returns every activity in the store.
func (s *Store) ListActivities(ctx context.Context) ([]entities.Activity, error) {
	return listSection[entities.Activity](ctx, s.db, "activities")
}

// Counts returns the number of records per catalog section.
func (s *Store) Counts(ctx context.Context) (map[string]int, error) {
	counts := make(map[string]int, len(sections))
	for _, table := range sections {
		var n int
		query := fmt.Sprintf("SELECT COUNT(*) FROM %s", table)
		if err := s.db.QueryRowContext(ctx, query).Scan(&n); err != nil {
			return nil, fmt.Errorf("counting %s: %w", table, err)
		}
		counts[table] = n
	}
	return counts, nil
}

// replaceSection clears a table and writes the records in order inside
// one transaction.
func replaceSection[T any](ctx context.Context, db *sql.DB, table string, records []T, id func(*T) string) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s", table)); err != nil {
		return fmt.Errorf("clearing %s: %w", table, err)
	}

	insert := fmt.Sprintf("INSERT INTO %s (id, position, data) VALUES (?, ?, ?)", table)
	for i := range records {
		data, err := json.Marshal(&records[i])
		if err != nil {
			return fmt.Errorf("marshaling %s record: %w", table, err)
		}
		if _, err := tx.ExecContext(ctx, insert, id(&records[i]), i, string(data)); err != nil {
			return fmt.Errorf("inserting into %s: %w", table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing %s: %w", table, err)
	}
	return nil
}

// listSection reads a table back in insertion order.
func listSection[T any](ctx context.Context, db *sql.DB, table string) ([]T, error) {
	query := fmt.Sprintf("SELECT data FROM %s ORDER BY position", table)
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", table, err)
	}
	defer rows.Close()

	var records []T
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("scanning %s row: %w", table, err)
		}
		var record T
		if err := json.Unmarshal([]byte(data), &record); err != nil {
			return nil, fmt.Errorf("unmarshaling %s record: %w", table, err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating %s rows: %w", table, err)
	}
	return records, nil
}
