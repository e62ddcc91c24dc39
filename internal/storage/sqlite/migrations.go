package sqlite

import "database/sql"

// schema contains the SQL statements to set up the input tables.
// These run on open so an empty database file is a valid, empty batch.
// Columns are nullable. A NULL is reported as a missing field,
// the same way an absent JSON key is.
const schema = `
CREATE TABLE IF NOT EXISTS cars (
    position INTEGER PRIMARY KEY AUTOINCREMENT,
    id INTEGER,
    price_per_day INTEGER,
    price_per_km INTEGER
);

CREATE TABLE IF NOT EXISTS rentals (
    position INTEGER PRIMARY KEY AUTOINCREMENT,
    id INTEGER,
    car_id INTEGER,
    start_date TEXT,
    end_date TEXT,
    distance INTEGER,
    deductible_reduction INTEGER
);

CREATE TABLE IF NOT EXISTS rental_modifications (
    position INTEGER PRIMARY KEY AUTOINCREMENT,
    id INTEGER,
    rental_id INTEGER,
    start_date TEXT,
    end_date TEXT,
    distance INTEGER
);

CREATE INDEX IF NOT EXISTS idx_rentals_car_id ON rentals(car_id);
CREATE INDEX IF NOT EXISTS idx_rental_modifications_rental_id ON rental_modifications(rental_id);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
