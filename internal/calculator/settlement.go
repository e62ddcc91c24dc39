package calculator

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/rentsplit/internal/models"
)

const (
	// AssistanceFeePerDay goes to roadside assistance for every rented day.
	AssistanceFeePerDay = 100

	// DeductibleReductionFeePerDay is charged per day when the option is chosen.
	DeductibleReductionFeePerDay = 400
)

// commissionRate is the share of the price taken as commission.
var commissionRate = decimal.New(3, -1)

// Settle derives the full money breakdown of one rental snapshot.
//
// The commission is split like this:
//   - half goes to the insurance
//   - a fixed amount per day goes to roadside assistance
//   - the rest goes to the platform
//
// The platform fee is not clamped: a long, cheap rental can leave it negative.
func Settle(r models.RentalRecord) (models.Settlement, error) {
	days := r.Days()
	price, err := Price(r.Car, days, r.Distance)
	if err != nil {
		return models.Settlement{}, err
	}

	commission := decimal.NewFromInt(price).Mul(commissionRate).IntPart()
	insurance := commission / 2
	assistance := int64(days) * AssistanceFeePerDay

	var deductible int64
	if r.Options.DeductibleReduction {
		deductible = int64(days) * DeductibleReductionFeePerDay
	}

	return models.Settlement{
		Days:                   days,
		Price:                  price,
		Commission:             commission,
		InsuranceFee:           insurance,
		AssistanceFee:          assistance,
		PlatformFee:            commission - (insurance + assistance),
		DeductibleReductionFee: deductible,
	}, nil
}
