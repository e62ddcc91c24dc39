package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mmynk/rentsplit/internal/calculator"
	"github.com/mmynk/rentsplit/internal/catalog"
	"github.com/mmynk/rentsplit/internal/metrics"
	"github.com/mmynk/rentsplit/internal/report"
	"github.com/mmynk/rentsplit/internal/storage"
)

// SettlementService prices a batch of rentals and produces the report for a
// feature level.
type SettlementService struct {
	source  storage.Source
	metrics *metrics.Recorder
}

// NewSettlementService creates a SettlementService reading from source.
func NewSettlementService(source storage.Source, recorder *metrics.Recorder) *SettlementService {
	if recorder == nil {
		recorder = metrics.New()
	}
	return &SettlementService{source: source, metrics: recorder}
}

// Run loads the batch, drops invalid rows with a diagnostic, and computes
// the report for level. Only failing to read the source is an error.
func (s *SettlementService) Run(ctx context.Context, level report.Level) (report.Report, error) {
	log := slog.With("run_id", uuid.NewString(), "level", string(level))

	build, ok := builders[level]
	if !ok {
		return nil, fmt.Errorf("unknown report level %q", level)
	}

	ds, err := s.source.LoadDataset(ctx)
	if err != nil {
		log.Error("Failed to load dataset", "error", err)
		return nil, err
	}

	c, diags := catalog.Build(ds, catalog.Options{RequireOptions: requiresOptions(level)})
	for _, d := range diags {
		log.Warn("Skipping invalid record",
			"table", d.Table,
			"record", d.Ref(),
			"reason", d.Reason(),
			"error", d.Err,
		)
		s.metrics.Skipped(d.Table, d.Reason())
	}
	s.metrics.Loaded(storage.TableCars, c.NumCars())
	s.metrics.Loaded(storage.TableRentals, len(c.Rentals()))
	s.metrics.Loaded(storage.TableModifications, len(c.Modifications()))

	rep, err := build(log, c)
	if err != nil {
		log.Error("Failed to build report", "error", err)
		return nil, err
	}

	s.metrics.Reported(string(level), rep.Len())
	log.Info("Report built", "entries", rep.Len(), "skipped", len(diags))
	return rep, nil
}

// requiresOptions reports whether rentals must state deductible_reduction
// explicitly at level.
func requiresOptions(level report.Level) bool {
	return level == report.LevelActions || level == report.LevelModifications
}

var builders = map[report.Level]func(*slog.Logger, *catalog.Catalog) (report.Report, error){
	report.LevelPrice:         buildPrices,
	report.LevelFees:          buildFees,
	report.LevelActions:       buildActions,
	report.LevelModifications: buildModifications,
}

func buildPrices(_ *slog.Logger, c *catalog.Catalog) (report.Report, error) {
	rep := report.PriceReport{Rentals: []report.RentalPrice{}}
	for _, r := range c.Rentals() {
		st, err := calculator.Settle(r)
		if err != nil {
			return nil, fmt.Errorf("rental %d: %w", r.ID, err)
		}
		rep.Rentals = append(rep.Rentals, report.RentalPrice{ID: r.ID, Price: st.Price})
	}
	return rep, nil
}

func buildFees(_ *slog.Logger, c *catalog.Catalog) (report.Report, error) {
	rep := report.FeeReport{Rentals: []report.RentalFees{}}
	for _, r := range c.Rentals() {
		st, err := calculator.Settle(r)
		if err != nil {
			return nil, fmt.Errorf("rental %d: %w", r.ID, err)
		}
		rep.Rentals = append(rep.Rentals, report.RentalFees{
			ID:    r.ID,
			Price: st.Price,
			Commission: report.Commission{
				InsuranceFee:  st.InsuranceFee,
				AssistanceFee: st.AssistanceFee,
				PlatformFee:   st.PlatformFee,
			},
		})
	}
	return rep, nil
}

func buildActions(_ *slog.Logger, c *catalog.Catalog) (report.Report, error) {
	rep := report.ActionReport{Rentals: []report.RentalActions{}}
	for _, r := range c.Rentals() {
		st, err := calculator.Settle(r)
		if err != nil {
			return nil, fmt.Errorf("rental %d: %w", r.ID, err)
		}
		rep.Rentals = append(rep.Rentals, report.RentalActions{
			ID:      r.ID,
			Actions: report.FromActions(calculator.Ledger(st)),
		})
	}
	return rep, nil
}

func buildModifications(log *slog.Logger, c *catalog.Catalog) (report.Report, error) {
	rep := report.ModificationReport{Modifications: []report.ModificationActions{}}
	for _, m := range c.Modifications() {
		amended, err := m.Original.Amend(m.Patch)
		if err != nil {
			return nil, fmt.Errorf("modification %d: %w", m.Patch.ID, err)
		}
		original, err := calculator.Settle(m.Original)
		if err != nil {
			return nil, fmt.Errorf("rental %d: %w", m.Original.ID, err)
		}
		modified, err := calculator.Settle(amended)
		if err != nil {
			return nil, fmt.Errorf("modification %d: %w", m.Patch.ID, err)
		}

		log.Debug("Modification settled",
			"modification_id", m.Patch.ID,
			"rental_id", m.Original.ID,
			"original_price", original.Price,
			"modified_price", modified.Price,
		)
		rep.Modifications = append(rep.Modifications, report.ModificationActions{
			ID:       m.Patch.ID,
			RentalID: m.Original.ID,
			Actions:  report.FromActions(calculator.Diff(original, modified)),
		})
	}
	return rep, nil
}
