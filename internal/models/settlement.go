package models

// Settlement is the money breakdown of one RentalRecord.
// It is always derived, never stored. Commission == InsuranceFee +
// AssistanceFee + PlatformFee holds by construction.
type Settlement struct {
	// Days is the rental duration the figures were computed for.
	Days int

	// Price is what the rental costs before options.
	Price int64

	// Commission is the share of Price kept by the platform side.
	Commission int64

	// InsuranceFee is half of the commission.
	InsuranceFee int64

	// AssistanceFee is a fixed per-day amount for roadside assistance.
	AssistanceFee int64

	// PlatformFee is what remains of the commission. It can be negative
	// when the assistance fee exceeds the rest of the commission.
	PlatformFee int64

	// DeductibleReductionFee is the per-day option fee, zero when the option is off.
	DeductibleReductionFee int64
}

// OwnerShare is what the owner receives: the price minus the commission.
func (s Settlement) OwnerShare() int64 {
	return s.Price - s.Commission
}

// DriverTotal is what the driver pays: the price plus the option fee.
func (s Settlement) DriverTotal() int64 {
	return s.Price + s.DeductibleReductionFee
}

// PlatformTotal is what the platform receives: its fee plus the option fee.
func (s Settlement) PlatformTotal() int64 {
	return s.PlatformFee + s.DeductibleReductionFee
}
