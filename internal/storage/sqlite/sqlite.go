// Package sqlite provides a SQLite-backed implementation of the storage.Source interface.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/mmynk/rentsplit/internal/storage"
)

// Ensure SQLiteSource implements storage.Source
var _ storage.Source = (*SQLiteSource)(nil)

// SQLiteSource reads input rows from a SQLite database.
// Rows are returned in insertion order.
type SQLiteSource struct {
	db *sql.DB
}

// New opens the database at dbPath, creating it and the input tables if
// needed. It is used to prepare input databases; runs read through Open.
func New(dbPath string) (*SQLiteSource, error) {
	// Create parent directory if it doesn't exist
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteSource{db: db}, nil
}

// Open opens an existing database at dbPath for reading. Unlike New it
// never creates the file or the schema, so a wrong path is an error.
func Open(dbPath string) (*SQLiteSource, error) {
	if _, err := os.Stat(dbPath); err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// query_only is per connection
	db.SetMaxOpenConns(1)
	if _, err := db.Exec("PRAGMA query_only = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to open database read-only: %w", err)
	}

	return &SQLiteSource{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteSource) Close() error {
	return s.db.Close()
}

// LoadDataset reads all cars, rentals and modifications.
func (s *SQLiteSource) LoadDataset(ctx context.Context) (*storage.Dataset, error) {
	ds := &storage.Dataset{}

	cars, err := s.listCars(ctx)
	if err != nil {
		return nil, err
	}
	ds.Cars = cars

	rentals, err := s.listRentals(ctx)
	if err != nil {
		return nil, err
	}
	ds.Rentals = rentals

	mods, err := s.listModifications(ctx)
	if err != nil {
		return nil, err
	}
	ds.Modifications = mods

	return ds, nil
}

func int64Ptr(n sql.NullInt64) *int64 {
	if !n.Valid {
		return nil
	}
	v := n.Int64
	return &v
}

func stringPtr(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}

func boolPtr(b sql.NullBool) *bool {
	if !b.Valid {
		return nil
	}
	v := b.Bool
	return &v
}
