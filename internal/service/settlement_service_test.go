package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/rentsplit/internal/metrics"
	"github.com/mmynk/rentsplit/internal/models"
	"github.com/mmynk/rentsplit/internal/report"
	"github.com/mmynk/rentsplit/internal/storage"
	"github.com/mmynk/rentsplit/internal/storage/jsonfile"
)

const batch = `{
  "cars": [
    { "id": 1, "price_per_day": 2000, "price_per_km": 10 }
  ],
  "rentals": [
    { "id": 1, "car_id": 1, "start_date": "2015-12-08", "end_date": "2015-12-08", "distance": 100, "deductible_reduction": true },
    { "id": 2, "car_id": 1, "start_date": "2015-03-31", "end_date": "2015-04-01", "distance": 300, "deductible_reduction": false },
    { "id": 3, "car_id": 1, "start_date": "2015-07-3", "end_date": "2015-07-14", "distance": 1000, "deductible_reduction": true },
    { "id": 4, "car_id": 1, "start_date": "2015-07-03", "end_date": "2015-07-14", "deductible_reduction": true },
    { "id": 5, "car_id": 7, "start_date": "2015-07-03", "end_date": "2015-07-14", "distance": 10, "deductible_reduction": true }
  ],
  "rental_modifications": [
    { "id": 1, "rental_id": 1, "end_date": "2015-12-10", "distance": 150 },
    { "id": 2, "rental_id": 3, "start_date": "2015-07-4" },
    { "id": 3, "rental_id": 2 },
    { "id": 4, "rental_id": 4, "distance": 10 }
  ]
}`

// staticSource serves a fixed dataset.
type staticSource struct {
	ds  *storage.Dataset
	err error
}

func (s *staticSource) LoadDataset(ctx context.Context) (*storage.Dataset, error) {
	return s.ds, s.err
}

func (s *staticSource) Close() error { return nil }

func newService(t *testing.T) (*SettlementService, *metrics.Recorder) {
	t.Helper()
	ds, err := jsonfile.Decode(strings.NewReader(batch))
	require.NoError(t, err)
	rec := metrics.New()
	return NewSettlementService(&staticSource{ds: ds}, rec), rec
}

func TestRun_Price(t *testing.T) {
	svc, _ := newService(t)

	rep, err := svc.Run(context.Background(), report.LevelPrice)
	require.NoError(t, err)

	assert.Equal(t, report.PriceReport{Rentals: []report.RentalPrice{
		{ID: 1, Price: 3000},
		{ID: 2, Price: 6800},
		{ID: 3, Price: 27800},
	}}, rep)
}

func TestRun_Fees(t *testing.T) {
	svc, _ := newService(t)

	rep, err := svc.Run(context.Background(), report.LevelFees)
	require.NoError(t, err)

	fees, ok := rep.(report.FeeReport)
	require.True(t, ok)
	require.Len(t, fees.Rentals, 3)
	assert.Equal(t, report.Commission{InsuranceFee: 450, AssistanceFee: 100, PlatformFee: 350}, fees.Rentals[0].Commission)
	assert.Equal(t, report.Commission{InsuranceFee: 1020, AssistanceFee: 200, PlatformFee: 820}, fees.Rentals[1].Commission)
	assert.Equal(t, report.Commission{InsuranceFee: 4170, AssistanceFee: 1200, PlatformFee: 2970}, fees.Rentals[2].Commission)
}

func TestRun_Actions(t *testing.T) {
	svc, rec := newService(t)

	rep, err := svc.Run(context.Background(), report.LevelActions)
	require.NoError(t, err)

	actions, ok := rep.(report.ActionReport)
	require.True(t, ok)
	require.Len(t, actions.Rentals, 3)

	assert.Equal(t, []report.Action{
		{Who: "driver", Type: "debit", Amount: 3400},
		{Who: "owner", Type: "credit", Amount: 2100},
		{Who: "insurance", Type: "credit", Amount: 450},
		{Who: "assistance", Type: "credit", Amount: 100},
		{Who: "drivy", Type: "credit", Amount: 750},
	}, actions.Rentals[0].Actions)

	for _, r := range actions.Rentals {
		assert.Len(t, r.Actions, len(models.Actors))
	}

	skipped := func(table, reason string) float64 {
		return counterValue(t, rec, "rentsplit_records_skipped_total", map[string]string{"table": table, "reason": reason})
	}
	assert.Equal(t, 1.0, skipped(storage.TableRentals, "missing_field"))
	assert.Equal(t, 1.0, skipped(storage.TableRentals, "unknown_car"))
	assert.Equal(t, 1.0, skipped(storage.TableModifications, "unknown_rental"))
	assert.Equal(t, 3.0, counterValue(t, rec, "rentsplit_records_loaded_total", map[string]string{"table": storage.TableRentals}))
	assert.Equal(t, 3.0, counterValue(t, rec, "rentsplit_report_entries_total", map[string]string{"level": "actions"}))
}

func TestRun_Modifications(t *testing.T) {
	svc, _ := newService(t)

	rep, err := svc.Run(context.Background(), report.LevelModifications)
	require.NoError(t, err)

	mods, ok := rep.(report.ModificationReport)
	require.True(t, ok)
	// modification 4 points at the rental dropped for its missing distance
	require.Len(t, mods.Modifications, 3)

	assert.Equal(t, report.ModificationActions{ID: 1, RentalID: 1, Actions: []report.Action{
		{Who: "driver", Type: "debit", Amount: 4900},
		{Who: "owner", Type: "credit", Amount: 2870},
		{Who: "insurance", Type: "credit", Amount: 615},
		{Who: "assistance", Type: "credit", Amount: 200},
		{Who: "drivy", Type: "credit", Amount: 1215},
	}}, mods.Modifications[0])

	assert.Equal(t, report.ModificationActions{ID: 2, RentalID: 3, Actions: []report.Action{
		{Who: "driver", Type: "credit", Amount: 1400},
		{Who: "owner", Type: "debit", Amount: 700},
		{Who: "insurance", Type: "debit", Amount: 150},
		{Who: "assistance", Type: "debit", Amount: 100},
		{Who: "drivy", Type: "debit", Amount: 450},
	}}, mods.Modifications[1])

	for _, a := range mods.Modifications[2].Actions {
		assert.Equal(t, int64(0), a.Amount, "identity modification moves no money for %s", a.Who)
	}
}

func TestRun_ModificationLogsCarryRunID(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })

	svc, _ := newService(t)
	_, err := svc.Run(context.Background(), report.LevelModifications)
	require.NoError(t, err)

	var settled int
	for _, line := range bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n")) {
		var entry map[string]any
		require.NoError(t, json.Unmarshal(line, &entry))
		if entry["msg"] != "Modification settled" {
			continue
		}
		settled++
		assert.NotEmpty(t, entry["run_id"])
		assert.Equal(t, "modifications", entry["level"])
	}
	assert.Equal(t, 3, settled)
}

func TestRun_PriceDoesNotRequireOptions(t *testing.T) {
	ds := &storage.Dataset{
		Cars: []storage.CarRow{{ID: ptr(int64(1)), PricePerDay: ptr(int64(100)), PricePerKm: ptr(int64(1))}},
		Rentals: []storage.RentalRow{{
			ID: ptr(int64(1)), CarID: ptr(int64(1)),
			StartDate: ptr("2020-01-01"), EndDate: ptr("2020-01-04"), Distance: ptr(int64(30)),
		}},
	}
	svc := NewSettlementService(&staticSource{ds: ds}, nil)

	rep, err := svc.Run(context.Background(), report.LevelPrice)
	require.NoError(t, err)
	assert.Equal(t, 1, rep.Len())

	rep, err = svc.Run(context.Background(), report.LevelActions)
	require.NoError(t, err)
	assert.Equal(t, 0, rep.Len())
}

func TestRun_Errors(t *testing.T) {
	loadErr := errors.New("disk on fire")
	svc := NewSettlementService(&staticSource{err: loadErr}, nil)

	_, err := svc.Run(context.Background(), report.LevelPrice)
	assert.ErrorIs(t, err, loadErr)

	_, err = svc.Run(context.Background(), report.Level("everything"))
	assert.Error(t, err)
}

func ptr[T any](v T) *T { return &v }

// counterValue gathers rec and returns the counter matching every label.
func counterValue(t *testing.T, rec *metrics.Recorder, name string, labels map[string]string) float64 {
	t.Helper()
	families, err := rec.Registry().Gather()
	require.NoError(t, err)

	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
	next:
		for _, m := range mf.GetMetric() {
			got := map[string]string{}
			for _, lp := range m.GetLabel() {
				got[lp.GetName()] = lp.GetValue()
			}
			for k, v := range labels {
				if got[k] != v {
					continue next
				}
			}
			return m.GetCounter().GetValue()
		}
	}
	return 0
}
