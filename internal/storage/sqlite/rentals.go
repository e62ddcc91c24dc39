package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mmynk/rentsplit/internal/storage"
)

// listRentals retrieves every rental row.
func (s *SQLiteSource) listRentals(ctx context.Context) ([]storage.RentalRow, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, car_id, start_date, end_date, distance, deductible_reduction
		 FROM rentals ORDER BY position`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list rentals: %w", err)
	}
	defer rows.Close()

	var rentals []storage.RentalRow
	for rows.Next() {
		var (
			id, carID, distance sql.NullInt64
			start, end          sql.NullString
			deductible          sql.NullBool
		)
		if err := rows.Scan(&id, &carID, &start, &end, &distance, &deductible); err != nil {
			return nil, fmt.Errorf("failed to scan rental: %w", err)
		}
		rentals = append(rentals, storage.RentalRow{
			Index:               len(rentals),
			ID:                  int64Ptr(id),
			CarID:               int64Ptr(carID),
			StartDate:           stringPtr(start),
			EndDate:             stringPtr(end),
			Distance:            int64Ptr(distance),
			DeductibleReduction: boolPtr(deductible),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rentals: %w", err)
	}

	return rentals, nil
}

// listModifications retrieves every rental modification row.
func (s *SQLiteSource) listModifications(ctx context.Context) ([]storage.ModificationRow, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, rental_id, start_date, end_date, distance
		 FROM rental_modifications ORDER BY position`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list rental modifications: %w", err)
	}
	defer rows.Close()

	var mods []storage.ModificationRow
	for rows.Next() {
		var (
			id, rentalID, distance sql.NullInt64
			start, end             sql.NullString
		)
		if err := rows.Scan(&id, &rentalID, &start, &end, &distance); err != nil {
			return nil, fmt.Errorf("failed to scan rental modification: %w", err)
		}
		mods = append(mods, storage.ModificationRow{
			Index:     len(mods),
			ID:        int64Ptr(id),
			RentalID:  int64Ptr(rentalID),
			StartDate: stringPtr(start),
			EndDate:   stringPtr(end),
			Distance:  int64Ptr(distance),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rental modifications: %w", err)
	}

	return mods, nil
}
