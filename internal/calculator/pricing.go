package calculator

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mmynk/rentsplit/internal/models"
)

// tier is one step of the decreasing day-rate schedule.
// Days up to and including UpTo are charged at Factor times the daily rate;
// an UpTo of zero means the tier is unbounded.
type tier struct {
	UpTo   int
	Factor decimal.Decimal
}

// dayRateTiers is the discount schedule for longer rentals:
// the first day at full rate, days 2 to 4 at 90%, days 5 to 10 at 70%,
// every day after the 10th at 50%.
var dayRateTiers = []tier{
	{UpTo: 1, Factor: decimal.New(1, 0)},
	{UpTo: 4, Factor: decimal.New(9, -1)},
	{UpTo: 10, Factor: decimal.New(7, -1)},
	{UpTo: 0, Factor: decimal.New(5, -1)},
}

// Price computes the base rental price: the tiered time component, truncated
// toward zero, plus distance times the car's per-km rate.
func Price(car *models.Car, days int, distance int64) (int64, error) {
	if car == nil {
		return 0, fmt.Errorf("price: %w", models.ErrUnknownCar)
	}
	if days < 1 {
		return 0, fmt.Errorf("price: %d days: %w", days, models.ErrInvalidPeriod)
	}
	if distance < 0 {
		return 0, fmt.Errorf("price: distance %d: %w", distance, models.ErrInvalidValue)
	}
	return timeComponent(car.PricePerDay, days) + distance*car.PricePerKm, nil
}

// timeComponent sums every tier's contribution exactly and truncates once.
func timeComponent(pricePerDay int64, days int) int64 {
	rate := decimal.NewFromInt(pricePerDay)
	total := decimal.Zero
	charged := 0
	for _, t := range dayRateTiers {
		upTo := days
		if t.UpTo != 0 && t.UpTo < days {
			upTo = t.UpTo
		}
		if upTo <= charged {
			break
		}
		total = total.Add(rate.Mul(decimal.NewFromInt(int64(upTo - charged))).Mul(t.Factor))
		charged = upTo
	}
	return total.IntPart()
}
