// Package models defines the core domain models for rentsplit.
//
// # Models
//
//   - Car: per-vehicle pricing parameters (price per day, price per km)
//   - RentalRecord: one snapshot of a rental (period, distance, options)
//   - Modification: a sparse patch applied to a RentalRecord
//   - Settlement: the money breakdown derived from one RentalRecord
//   - Action: one signed money movement for one actor
//
// # Design Principles
//
// 1. **Values, not shared state**: RentalRecord and Settlement are plain values.
// Amending a record returns a new record; the original is never touched.
// 2. **Integer money**: all amounts are integer currency units (cents).
// Truncation toward zero is the only rounding rule.
// 3. **Referenced cars**: records point at a Car owned by the catalog.
// Cars are never modified after construction.
package models
