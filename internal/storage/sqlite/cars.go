package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mmynk/rentsplit/internal/storage"
)

// listCars retrieves every car row.
func (s *SQLiteSource) listCars(ctx context.Context) ([]storage.CarRow, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, price_per_day, price_per_km FROM cars ORDER BY position",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list cars: %w", err)
	}
	defer rows.Close()

	var cars []storage.CarRow
	for rows.Next() {
		var id, perDay, perKm sql.NullInt64
		if err := rows.Scan(&id, &perDay, &perKm); err != nil {
			return nil, fmt.Errorf("failed to scan car: %w", err)
		}
		cars = append(cars, storage.CarRow{
			Index:       len(cars),
			ID:          int64Ptr(id),
			PricePerDay: int64Ptr(perDay),
			PricePerKm:  int64Ptr(perKm),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate cars: %w", err)
	}

	return cars, nil
}
