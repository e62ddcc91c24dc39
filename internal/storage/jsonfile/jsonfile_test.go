package jsonfile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/rentsplit/internal/models"
	"github.com/mmynk/rentsplit/internal/storage"
)

const sample = `{
  "cars": [
    { "id": 1, "price_per_day": 2000, "price_per_km": 10 },
    { "id": 2, "price_per_day": "a lot", "price_per_km": 10 }
  ],
  "rentals": [
    { "id": 1, "car_id": 1, "start_date": "2015-12-08", "end_date": "2015-12-08", "distance": 100, "deductible_reduction": true },
    { "id": 2, "car_id": 1, "start_date": "2015-03-31", "end_date": "2015-04-01" }
  ],
  "rental_modifications": [
    { "id": 1, "rental_id": 1, "end_date": "2015-12-10", "distance": 150 }
  ]
}`

func TestDecode(t *testing.T) {
	ds, err := Decode(strings.NewReader(sample))
	require.NoError(t, err)

	t.Run("valid rows are kept in order", func(t *testing.T) {
		require.Len(t, ds.Cars, 1)
		assert.Equal(t, int64(1), *ds.Cars[0].ID)
		assert.Equal(t, int64(2000), *ds.Cars[0].PricePerDay)

		require.Len(t, ds.Rentals, 2)
		assert.Equal(t, int64(1), *ds.Rentals[0].ID)
		assert.True(t, *ds.Rentals[0].DeductibleReduction)
		assert.Equal(t, int64(2), *ds.Rentals[1].ID)
	})

	t.Run("absent keys decode as nil", func(t *testing.T) {
		assert.Nil(t, ds.Rentals[1].Distance)
		assert.Nil(t, ds.Rentals[1].DeductibleReduction)
		assert.Nil(t, ds.Modifications[0].StartDate)
		require.NotNil(t, ds.Modifications[0].EndDate)
		assert.Equal(t, "2015-12-10", *ds.Modifications[0].EndDate)
	})

	t.Run("wrongly typed row is rejected on its own", func(t *testing.T) {
		require.Len(t, ds.Rejected, 1)
		rejected := ds.Rejected[0]
		assert.Equal(t, storage.TableCars, rejected.Table)
		assert.Equal(t, 1, rejected.Index)
		assert.True(t, errors.Is(rejected, models.ErrInvalidValue))
	})

	t.Run("rows keep their input position", func(t *testing.T) {
		assert.Equal(t, 0, ds.Cars[0].Index)
		assert.Equal(t, 1, ds.Rentals[1].Index)
	})
}

func TestDecode_MissingSections(t *testing.T) {
	ds, err := Decode(strings.NewReader(`{"cars": []}`))
	require.NoError(t, err)
	assert.Empty(t, ds.Rentals)
	assert.Empty(t, ds.Modifications)
	assert.Empty(t, ds.Rejected)
}

func TestDecode_MalformedDocument(t *testing.T) {
	_, err := Decode(strings.NewReader(`{"cars": [`))
	assert.Error(t, err)
}

func TestFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	source := New(path)
	defer source.Close()

	ds, err := source.LoadDataset(context.Background())
	require.NoError(t, err)
	assert.Len(t, ds.Rentals, 2)

	_, err = New(filepath.Join(t.TempDir(), "missing.json")).LoadDataset(context.Background())
	assert.Error(t, err)
}
