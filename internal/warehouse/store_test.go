package warehouse

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mateuslg/flightmart/internal/contract"
	"github.com/mateuslg/flightmart/schema"
)

func day(value string) time.Time {
	d, err := schema.ParseDate(value)
	if err != nil {
		panic(err)
	}
	return d
}

func strPtr(s string) *string { return &s }

func sampleFacts() []schema.ItineraryObservation {
	distance := 2475.0
	return []schema.ItineraryObservation{
		{
			ItinerarySK:         "L1_20260416_20260501_JFK_LAX",
			LegID:               "L1",
			SearchDate:          day("2026-04-16"),
			FlightDate:          day("2026-05-01"),
			StartingAirport:     "JFK",
			DestinationAirport:  "LAX",
			FareBasisCode:       "QAA0AKEN",
			TravelDuration:      "PT6H15M",
			ElapsedDays:         15,
			IsBasicEconomy:      false,
			IsRefundable:        false,
			IsNonStop:           true,
			BaseFare:            260.47,
			TotalFare:           348.60,
			SeatsRemaining:      9,
			TotalTravelDistance: &distance,
			IsCurrent:           false,
		},
		{
			ItinerarySK:        "L1_20260417_20260501_JFK_LAX",
			LegID:              "L1",
			SearchDate:         day("2026-04-17"),
			FlightDate:         day("2026-05-01"),
			StartingAirport:    "JFK",
			DestinationAirport: "LAX",
			IsNonStop:          true,
			TotalFare:          312.10,
			SeatsRemaining:     4,
			// No distance reported for this observation.
			TotalTravelDistance: nil,
			IsCurrent:           true,
		},
	}
}

func sampleSegments() []schema.FlightSegment {
	return []schema.FlightSegment{
		{
			ItinerarySK:          "L1_20260416_20260501_JFK_LAX",
			SegmentSK:            "L1_20260416_20260501_JFK_LAX_0",
			LegID:                "L1",
			SearchDate:           day("2026-04-16"),
			FlightDate:           day("2026-05-01"),
			StartingAirport:      "JFK",
			DestinationAirport:   "LAX",
			SegmentIndex:         0,
			DepartureTimeRaw:     "2026-05-01T09:00:00.000-04:00",
			ArrivalTimeRaw:       "2026-05-01T12:15:00.000-07:00",
			ArrivalAirportCode:   "LAX",
			DepartureAirportCode: "JFK",
			AirlineName:          strPtr("Delta"),
			AirlineCode:          strPtr("DL"),
			CabinCode:            strPtr("coach"),
			// The remaining optional columns stay nil.
		},
	}
}

func newSQLiteStore(t *testing.T) contract.WarehouseStore {
	t.Helper()
	store, err := NewStore(schema.SQLiteBackend, filepath.Join(t.TempDir(), "warehouse.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	store := newSQLiteStore(t)
	require.NoError(t, store.ReplaceAll(sampleFacts(), sampleSegments()))

	facts, err := store.LoadFacts()
	require.NoError(t, err)
	require.Len(t, facts, 2)
	assert.Equal(t, sampleFacts(), facts)

	segments, err := store.LoadSegments()
	require.NoError(t, err)
	require.Len(t, segments, 1)
	assert.Equal(t, sampleSegments(), segments)
}

func TestSQLiteStoreNilOptionalColumns(t *testing.T) {
	store := newSQLiteStore(t)
	require.NoError(t, store.ReplaceAll(sampleFacts(), sampleSegments()))

	facts, err := store.LoadFacts()
	require.NoError(t, err)
	assert.NotNil(t, facts[0].TotalTravelDistance)
	assert.Nil(t, facts[1].TotalTravelDistance)

	segments, err := store.LoadSegments()
	require.NoError(t, err)
	seg := segments[0]
	require.NotNil(t, seg.AirlineCode)
	assert.Equal(t, "DL", *seg.AirlineCode)
	assert.Nil(t, seg.EquipmentDescription)
	assert.Nil(t, seg.Distance)
}

func TestSQLiteStoreReplaceAllIsFullReplacement(t *testing.T) {
	store := newSQLiteStore(t)
	require.NoError(t, store.ReplaceAll(sampleFacts(), sampleSegments()))

	replacement := []schema.ItineraryObservation{
		{
			ItinerarySK:        "L2_20260418_20260502_BOS_SFO",
			LegID:              "L2",
			SearchDate:         day("2026-04-18"),
			FlightDate:         day("2026-05-02"),
			StartingAirport:    "BOS",
			DestinationAirport: "SFO",
			TotalFare:          412.60,
			SeatsRemaining:     5,
			IsCurrent:          true,
		},
	}
	require.NoError(t, store.ReplaceAll(replacement, nil))

	facts, err := store.LoadFacts()
	require.NoError(t, err)
	require.Len(t, facts, 1)
	assert.Equal(t, "L2", facts[0].LegID)

	segments, err := store.LoadSegments()
	require.NoError(t, err)
	assert.Empty(t, segments)
}

func TestSQLiteStoreStatusAndClear(t *testing.T) {
	store := newSQLiteStore(t)
	require.NoError(t, store.ReplaceAll(sampleFacts(), sampleSegments()))

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.True(t, status.Connected)
	assert.Equal(t, "sqlite", status.Backend)
	assert.Equal(t, int64(2), status.FactRows)
	assert.Equal(t, int64(2), status.TableSizes[factTable])
	assert.Equal(t, int64(1), status.TableSizes[segmentTable])

	require.NoError(t, store.Clear())
	status, err = store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, int64(0), status.FactRows)
}

func TestSQLiteStorePersistsAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "warehouse.db")

	first, err := NewStore(schema.SQLiteBackend, path)
	require.NoError(t, err)
	require.NoError(t, first.ReplaceAll(sampleFacts(), sampleSegments()))
	require.NoError(t, first.Close())

	second, err := NewStore(schema.SQLiteBackend, path)
	require.NoError(t, err)
	defer func() { _ = second.Close() }()

	facts, err := second.LoadFacts()
	require.NoError(t, err)
	assert.Len(t, facts, 2)
}

func TestMemStoreRoundTrip(t *testing.T) {
	store, err := NewStore(schema.NoneBackend, "")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	require.NoError(t, store.ReplaceAll(sampleFacts(), sampleSegments()))

	facts, err := store.LoadFacts()
	require.NoError(t, err)
	assert.Equal(t, sampleFacts(), facts)

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, "none", status.Backend)
	assert.Equal(t, int64(2), status.FactRows)

	require.NoError(t, store.Clear())
	facts, err = store.LoadFacts()
	require.NoError(t, err)
	assert.Empty(t, facts)
}

func TestClearWarehouseSQLiteDeletesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "warehouse.db")

	store, err := NewStore(schema.SQLiteBackend, path)
	require.NoError(t, err)
	require.NoError(t, store.ReplaceAll(sampleFacts(), nil))
	require.NoError(t, store.Close())

	require.NoError(t, ClearWarehouse(schema.SQLiteBackend, path, ""))
	assert.NoFileExists(t, path)

	// Clearing an already-clean warehouse is not an error.
	require.NoError(t, ClearWarehouse(schema.SQLiteBackend, path, ""))
	require.NoError(t, ClearWarehouse(schema.NoneBackend, "", ""))
}

func TestClearWarehouseSQLiteNeedsPath(t *testing.T) {
	assert.Error(t, ClearWarehouse(schema.SQLiteBackend, "", ""))
}

func TestMigrateWarehouseSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "warehouse.db")
	require.NoError(t, MigrateWarehouse(schema.SQLiteBackend, path, -1))

	store, err := NewStore(schema.SQLiteBackend, path)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	require.NoError(t, store.ReplaceAll(sampleFacts(), sampleSegments()))
	facts, err := store.LoadFacts()
	require.NoError(t, err)
	assert.Len(t, facts, 2)
}

func TestMigrateWarehouseRejectsNoneBackend(t *testing.T) {
	assert.Error(t, MigrateWarehouse(schema.NoneBackend, "", -1))
}
