package calculator

import (
	"testing"
	"time"

	"github.com/mmynk/rentsplit/internal/models"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(models.DateLayout, s)
	if err != nil {
		t.Fatalf("bad test date %q: %v", s, err)
	}
	return d
}

func rental(t *testing.T, car *models.Car, start, end string, distance int64, deductible bool) models.RentalRecord {
	t.Helper()
	r, err := models.NewRentalRecord(1, car, date(t, start), date(t, end), distance, models.Options{DeductibleReduction: deductible})
	if err != nil {
		t.Fatalf("NewRentalRecord() error = %v", err)
	}
	return r
}

func settle(t *testing.T, r models.RentalRecord) models.Settlement {
	t.Helper()
	s, err := Settle(r)
	if err != nil {
		t.Fatalf("Settle() error = %v", err)
	}
	return s
}

func ptrTime(t time.Time) *time.Time { return &t }

func ptrInt(n int64) *int64 { return &n }
