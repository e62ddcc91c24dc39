package models

import "errors"

// Record-level validation errors. A row failing with one of these is skipped;
// the rest of the batch is processed normally.
var (
	// ErrMissingField is returned when a required key is absent from an input row.
	ErrMissingField = errors.New("missing field")

	// ErrMalformedDate is returned when a date is not a year-month-day calendar
	// date. Zero padding is optional.
	ErrMalformedDate = errors.New("malformed date")

	// ErrInvalidPeriod is returned when a rental ends before it starts.
	ErrInvalidPeriod = errors.New("end date before start date")

	// ErrUnknownCar is returned when a rental references a car that is not in the catalog.
	ErrUnknownCar = errors.New("unknown car reference")

	// ErrUnknownRental is returned when a modification references a rental that is not in the catalog.
	ErrUnknownRental = errors.New("unknown rental reference")

	// ErrInvalidValue is returned for values of the wrong type, negative
	// distances or prices, and duplicate ids.
	ErrInvalidValue = errors.New("invalid value")
)
