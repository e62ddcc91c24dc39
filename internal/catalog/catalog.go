// Package catalog turns raw input rows into validated, keyed domain values.
package catalog

import (
	"fmt"
	"time"

	"github.com/mmynk/rentsplit/internal/models"
	"github.com/mmynk/rentsplit/internal/storage"
)

// Options control how strictly rows are validated.
type Options struct {
	// RequireOptions makes deductible_reduction a required rental field.
	// When false an absent value means the option is off.
	RequireOptions bool
}

// Modification is a validated modification together with the rental it amends.
type Modification struct {
	Patch    models.Modification
	Original models.RentalRecord
}

// Catalog holds the cars, rentals and modifications of one batch.
// Lookups by id are O(1); iteration follows input order.
type Catalog struct {
	cars    map[int64]*models.Car
	rentals map[int64]models.RentalRecord

	rentalOrder   []int64
	modifications []Modification
}

// Build validates every row of ds. Invalid rows are left out of the catalog
// and reported as diagnostics; they never abort the build.
func Build(ds *storage.Dataset, opts Options) (*Catalog, []Diagnostic) {
	c := &Catalog{
		cars:    make(map[int64]*models.Car, len(ds.Cars)),
		rentals: make(map[int64]models.RentalRecord, len(ds.Rentals)),
	}

	var diags []Diagnostic
	for _, rej := range ds.Rejected {
		diags = append(diags, Diagnostic{Table: rej.Table, Index: rej.Index, Err: rej.Err})
	}

	for _, row := range ds.Cars {
		if err := c.addCar(row); err != nil {
			diags = append(diags, newDiagnostic(storage.TableCars, row.Index, row.ID, err))
		}
	}
	for _, row := range ds.Rentals {
		if err := c.addRental(row, opts); err != nil {
			diags = append(diags, newDiagnostic(storage.TableRentals, row.Index, row.ID, err))
		}
	}
	for _, row := range ds.Modifications {
		if err := c.addModification(row); err != nil {
			diags = append(diags, newDiagnostic(storage.TableModifications, row.Index, row.ID, err))
		}
	}

	return c, diags
}

// Car returns the car with the given id.
func (c *Catalog) Car(id int64) (*models.Car, bool) {
	car, ok := c.cars[id]
	return car, ok
}

// NumCars returns the number of valid cars.
func (c *Catalog) NumCars() int {
	return len(c.cars)
}

// Rental returns the rental with the given id.
func (c *Catalog) Rental(id int64) (models.RentalRecord, bool) {
	r, ok := c.rentals[id]
	return r, ok
}

// Rentals returns every valid rental in input order.
func (c *Catalog) Rentals() []models.RentalRecord {
	out := make([]models.RentalRecord, 0, len(c.rentalOrder))
	for _, id := range c.rentalOrder {
		out = append(out, c.rentals[id])
	}
	return out
}

// Modifications returns every valid modification in input order.
func (c *Catalog) Modifications() []Modification {
	return append([]Modification(nil), c.modifications...)
}

func (c *Catalog) addCar(row storage.CarRow) error {
	if err := missing(
		field{"id", row.ID != nil},
		field{"price_per_day", row.PricePerDay != nil},
		field{"price_per_km", row.PricePerKm != nil},
	); err != nil {
		return err
	}
	if _, dup := c.cars[*row.ID]; dup {
		return fmt.Errorf("duplicate car id %d: %w", *row.ID, models.ErrInvalidValue)
	}
	if *row.PricePerDay < 0 || *row.PricePerKm < 0 {
		return fmt.Errorf("negative price: %w", models.ErrInvalidValue)
	}
	c.cars[*row.ID] = &models.Car{ID: *row.ID, PricePerDay: *row.PricePerDay, PricePerKm: *row.PricePerKm}
	return nil
}

func (c *Catalog) addRental(row storage.RentalRow, opts Options) error {
	if err := missing(
		field{"id", row.ID != nil},
		field{"car_id", row.CarID != nil},
		field{"distance", row.Distance != nil},
		field{"start_date", row.StartDate != nil},
		field{"end_date", row.EndDate != nil},
	); err != nil {
		return err
	}
	if opts.RequireOptions && row.DeductibleReduction == nil {
		return fmt.Errorf("deductible_reduction: %w", models.ErrMissingField)
	}
	if _, dup := c.rentals[*row.ID]; dup {
		return fmt.Errorf("duplicate rental id %d: %w", *row.ID, models.ErrInvalidValue)
	}

	start, err := parseDate("start_date", *row.StartDate)
	if err != nil {
		return err
	}
	end, err := parseDate("end_date", *row.EndDate)
	if err != nil {
		return err
	}

	car, ok := c.cars[*row.CarID]
	if !ok {
		return fmt.Errorf("car %d: %w", *row.CarID, models.ErrUnknownCar)
	}

	var options models.Options
	if row.DeductibleReduction != nil {
		options.DeductibleReduction = *row.DeductibleReduction
	}

	r, err := models.NewRentalRecord(*row.ID, car, start, end, *row.Distance, options)
	if err != nil {
		return err
	}
	c.rentals[r.ID] = r
	c.rentalOrder = append(c.rentalOrder, r.ID)
	return nil
}

func (c *Catalog) addModification(row storage.ModificationRow) error {
	if err := missing(field{"id", row.ID != nil}, field{"rental_id", row.RentalID != nil}); err != nil {
		return err
	}

	patch := models.Modification{ID: *row.ID, RentalID: *row.RentalID, Distance: row.Distance}
	if row.StartDate != nil {
		d, err := parseDate("start_date", *row.StartDate)
		if err != nil {
			return err
		}
		patch.StartDate = &d
	}
	if row.EndDate != nil {
		d, err := parseDate("end_date", *row.EndDate)
		if err != nil {
			return err
		}
		patch.EndDate = &d
	}

	original, ok := c.rentals[patch.RentalID]
	if !ok {
		return fmt.Errorf("rental %d: %w", patch.RentalID, models.ErrUnknownRental)
	}
	if _, err := original.Amend(patch); err != nil {
		return err
	}

	c.modifications = append(c.modifications, Modification{Patch: patch, Original: original})
	return nil
}

type field struct {
	name    string
	present bool
}

// missing reports the first absent field.
func missing(fields ...field) error {
	for _, f := range fields {
		if !f.present {
			return fmt.Errorf("%s: %w", f.name, models.ErrMissingField)
		}
	}
	return nil
}

// parseLayout accepts single-digit months and days ("2015-07-4") as well as
// the canonical zero-padded form.
const parseLayout = "2006-1-2"

func parseDate(name, value string) (time.Time, error) {
	d, err := time.Parse(parseLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s %q: %w", name, value, models.ErrMalformedDate)
	}
	return d, nil
}
