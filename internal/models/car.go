package models

// Car holds the static pricing parameters of one vehicle.
// A Car is created once by the catalog and shared by every rental that uses it.
type Car struct {
	// ID is the identifier of the car in the input data.
	ID int64

	// PricePerDay is the full (undiscounted) daily rate.
	PricePerDay int64

	// PricePerKm is charged for every unit of distance driven.
	PricePerKm int64
}
