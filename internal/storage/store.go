// Package storage provides abstractions over the sources rental data is read from.
package storage

import (
	"context"
	"fmt"
)

// Source defines the interface for loading a batch of input rows.
// This abstraction allows swapping input backends (JSON file, SQLite)
// without changing the catalog or the service layer.
type Source interface {
	// LoadDataset reads every car, rental and modification row.
	// Rows that cannot be decoded at all are reported in Dataset.Rejected
	// instead of failing the whole load.
	LoadDataset(ctx context.Context) (*Dataset, error)

	// Close releases any resources held by the source.
	Close() error
}

// Dataset is the raw content of one input batch.
// Fields are pointers so the catalog can tell a missing key from a zero value.
type Dataset struct {
	Cars          []CarRow
	Rentals       []RentalRow
	Modifications []ModificationRow

	// Rejected lists rows that could not be decoded.
	Rejected []RowError
}

// CarRow is one car as found in the input.
type CarRow struct {
	// Index is the row's position in the input, counting rejected rows.
	Index int `json:"-"`

	ID          *int64 `json:"id"`
	PricePerDay *int64 `json:"price_per_day"`
	PricePerKm  *int64 `json:"price_per_km"`
}

// RentalRow is one rental as found in the input. Dates are kept as strings;
// parsing them is the catalog's job.
type RentalRow struct {
	Index int `json:"-"`

	ID                  *int64  `json:"id"`
	CarID               *int64  `json:"car_id"`
	StartDate           *string `json:"start_date"`
	EndDate             *string `json:"end_date"`
	Distance            *int64  `json:"distance"`
	DeductibleReduction *bool   `json:"deductible_reduction"`
}

// ModificationRow is one rental modification as found in the input.
type ModificationRow struct {
	Index int `json:"-"`

	ID        *int64  `json:"id"`
	RentalID  *int64  `json:"rental_id"`
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
	Distance  *int64  `json:"distance"`
}

// Table names used in diagnostics and metrics.
const (
	TableCars          = "cars"
	TableRentals       = "rentals"
	TableModifications = "rental_modifications"
)

// RowError describes a row that could not be decoded.
type RowError struct {
	Table string
	Index int
	Err   error
}

func (e RowError) Error() string {
	return fmt.Sprintf("%s[%d]: %v", e.Table, e.Index, e.Err)
}

func (e RowError) Unwrap() error {
	return e.Err
}
