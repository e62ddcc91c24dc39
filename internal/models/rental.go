package models

import (
	"fmt"
	"time"
)

// DateLayout is the calendar date format used by every input source.
const DateLayout = "2006-01-02"

// Options are the optional paid extras chosen for a rental.
type Options struct {
	// DeductibleReduction lowers the driver's liability in case of damage
	// in exchange for a per-day fee.
	DeductibleReduction bool
}

// RentalRecord is one snapshot of a rental.
// It is a value: copying it copies the period, distance and options, while
// Car stays a shared reference.
type RentalRecord struct {
	// ID is the identifier of the rental in the input data.
	ID int64

	// Car is the rented vehicle. Never nil for records built with NewRentalRecord.
	Car *Car

	// StartDate is the first day of the rental (UTC midnight).
	StartDate time.Time

	// EndDate is the last day of the rental (UTC midnight), inclusive.
	EndDate time.Time

	// Distance is the distance driven, in the car's pricing unit.
	Distance int64

	// Options are the extras chosen by the driver.
	Options Options
}

// NewRentalRecord builds a validated RentalRecord.
// Dates are truncated to calendar days in UTC.
func NewRentalRecord(id int64, car *Car, start, end time.Time, distance int64, opts Options) (RentalRecord, error) {
	if car == nil {
		return RentalRecord{}, fmt.Errorf("rental %d: %w", id, ErrUnknownCar)
	}
	r := RentalRecord{
		ID:        id,
		Car:       car,
		StartDate: calendarDay(start),
		EndDate:   calendarDay(end),
		Distance:  distance,
		Options:   opts,
	}
	if err := r.Validate(); err != nil {
		return RentalRecord{}, err
	}
	return r, nil
}

// Validate checks the record invariants.
func (r RentalRecord) Validate() error {
	if r.EndDate.Before(r.StartDate) {
		return fmt.Errorf("rental %d: %s > %s: %w",
			r.ID, r.StartDate.Format(DateLayout), r.EndDate.Format(DateLayout), ErrInvalidPeriod)
	}
	if r.Distance < 0 {
		return fmt.Errorf("rental %d: distance %d: %w", r.ID, r.Distance, ErrInvalidValue)
	}
	return nil
}

// Days returns the number of rented days, both endpoints included.
// A same-day rental lasts one day.
func (r RentalRecord) Days() int {
	return int((r.EndDate.Unix()-r.StartDate.Unix())/secondsPerDay) + 1
}

// Amend returns a new record with the fields present in patch overridden.
// The receiver is not modified. The amended period is validated again.
func (r RentalRecord) Amend(patch Modification) (RentalRecord, error) {
	amended := r
	if patch.StartDate != nil {
		amended.StartDate = calendarDay(*patch.StartDate)
	}
	if patch.EndDate != nil {
		amended.EndDate = calendarDay(*patch.EndDate)
	}
	if patch.Distance != nil {
		amended.Distance = *patch.Distance
	}
	if err := amended.Validate(); err != nil {
		return RentalRecord{}, err
	}
	return amended, nil
}

const secondsPerDay = 24 * 60 * 60

func calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
