package models

import "time"

// Modification is a sparse patch on a rental: nil fields mean "unchanged".
type Modification struct {
	// ID is the identifier of the modification in the input data.
	ID int64

	// RentalID is the rental being amended.
	RentalID int64

	// StartDate, when set, replaces the rental start date.
	StartDate *time.Time

	// EndDate, when set, replaces the rental end date.
	EndDate *time.Time

	// Distance, when set, replaces the rental distance.
	Distance *int64
}

// IsEmpty reports whether the patch overrides nothing.
func (m Modification) IsEmpty() bool {
	return m.StartDate == nil && m.EndDate == nil && m.Distance == nil
}
