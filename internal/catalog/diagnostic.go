package catalog

import (
	"errors"
	"fmt"

	"github.com/mmynk/rentsplit/internal/models"
)

// Diagnostic describes one input row that was skipped.
type Diagnostic struct {
	// Table is the input section the row came from.
	Table string

	// Index is the position of the row in its section.
	Index int

	// ID is the row id, nil when the row had none.
	ID *int64

	// Err is the validation error.
	Err error
}

func newDiagnostic(table string, index int, id *int64, err error) Diagnostic {
	return Diagnostic{Table: table, Index: index, ID: id, Err: err}
}

// Reason returns a short, stable label for the kind of error, suitable for
// metric labels.
func (d Diagnostic) Reason() string {
	switch {
	case errors.Is(d.Err, models.ErrMissingField):
		return "missing_field"
	case errors.Is(d.Err, models.ErrMalformedDate):
		return "malformed_date"
	case errors.Is(d.Err, models.ErrInvalidPeriod):
		return "invalid_period"
	case errors.Is(d.Err, models.ErrUnknownCar):
		return "unknown_car"
	case errors.Is(d.Err, models.ErrUnknownRental):
		return "unknown_rental"
	case errors.Is(d.Err, models.ErrInvalidValue):
		return "invalid_value"
	default:
		return "other"
	}
}

// Ref identifies the row: its id when known, otherwise its index.
func (d Diagnostic) Ref() string {
	if d.ID != nil {
		return fmt.Sprintf("id=%d", *d.ID)
	}
	return fmt.Sprintf("index=%d", d.Index)
}

func (d Diagnostic) Error() string {
	return fmt.Sprintf("%s %s: %v", d.Table, d.Ref(), d.Err)
}

func (d Diagnostic) Unwrap() error {
	return d.Err
}
