// Package jsonfile provides a storage.Source reading a JSON document of the form
// {"cars": [...], "rentals": [...], "rental_modifications": [...]}.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mmynk/rentsplit/internal/models"
	"github.com/mmynk/rentsplit/internal/storage"
)

// Ensure FileSource implements storage.Source
var _ storage.Source = (*FileSource)(nil)

// FileSource reads a dataset from a JSON file on disk.
type FileSource struct {
	path string
}

// New returns a source for the file at path. The file is read by LoadDataset.
func New(path string) *FileSource {
	return &FileSource{path: path}
}

// LoadDataset reads and decodes the file.
func (s *FileSource) LoadDataset(ctx context.Context) (*storage.Dataset, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Close is a no-op; the file is closed after every load.
func (s *FileSource) Close() error {
	return nil
}

type document struct {
	Cars          []json.RawMessage `json:"cars"`
	Rentals       []json.RawMessage `json:"rentals"`
	Modifications []json.RawMessage `json:"rental_modifications"`
}

// Decode parses a dataset from r. Only a malformed document is an error;
// a malformed row is recorded in Dataset.Rejected and skipped.
func Decode(r io.Reader) (*storage.Dataset, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse input: %w", err)
	}

	ds := &storage.Dataset{}
	ds.Cars = decodeRows(doc.Cars, storage.TableCars, &ds.Rejected,
		func(r *storage.CarRow, i int) { r.Index = i })
	ds.Rentals = decodeRows(doc.Rentals, storage.TableRentals, &ds.Rejected,
		func(r *storage.RentalRow, i int) { r.Index = i })
	ds.Modifications = decodeRows(doc.Modifications, storage.TableModifications, &ds.Rejected,
		func(r *storage.ModificationRow, i int) { r.Index = i })
	return ds, nil
}

func decodeRows[T any](raw []json.RawMessage, table string, rejected *[]storage.RowError, setIndex func(*T, int)) []T {
	rows := make([]T, 0, len(raw))
	for i, msg := range raw {
		var row T
		if err := json.Unmarshal(msg, &row); err != nil {
			*rejected = append(*rejected, storage.RowError{
				Table: table,
				Index: i,
				Err:   fmt.Errorf("%w: %v", models.ErrInvalidValue, err),
			})
			continue
		}
		setIndex(&row, i)
		rows = append(rows, row)
	}
	return rows
}
