package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mateuslg/flightmart/schema"
)

func trendFixture(t *testing.T) *Result {
	t.Helper()
	result, err := Run([]schema.RawObservation{
		nonStopRaw("L1", "2026-04-16", "348.60", "9"),
		nonStopRaw("L1", "2026-04-17", "312.10", "4"),
	})
	require.NoError(t, err)
	return result
}

func TestPriceTrendsTwoObservations(t *testing.T) {
	result := trendFixture(t)
	records := PriceTrends(result.Facts, nil)
	require.Len(t, records, 2)

	// Newest search day first.
	newest, oldest := records[0], records[1]
	assert.Equal(t, "2026-04-17", newest.SearchDate.Format(schema.DateLayout))
	assert.Equal(t, "2026-04-16", oldest.SearchDate.Format(schema.DateLayout))

	assert.Equal(t, 348.60, oldest.OldestTotalFare)
	assert.Nil(t, oldest.PreviousTotalFare)
	assert.Equal(t, schema.PriceChangeNA, oldest.PriceChangeVsPrevious)
	assert.False(t, oldest.PriceWentUpVsOldest)
	assert.False(t, oldest.PriceWentDownVsOldest)
	assert.False(t, oldest.PriceDownAndLowSeatsVsOldest)
	assert.False(t, oldest.IsCurrent)

	assert.Equal(t, 348.60, newest.OldestTotalFare)
	require.NotNil(t, newest.PreviousTotalFare)
	assert.Equal(t, 348.60, *newest.PreviousTotalFare)
	assert.Equal(t, schema.PriceChangeLower, newest.PriceChangeVsPrevious)
	assert.True(t, newest.PriceWentDownVsOldest)
	assert.False(t, newest.PriceWentUpVsOldest)
	assert.True(t, newest.PriceDownAndLowSeatsVsOldest, "fare dropped with 4 seats left")
	assert.True(t, newest.IsCurrent)
}

func TestPriceTrendsLowSeatsNeedsPriceDrop(t *testing.T) {
	result, err := Run([]schema.RawObservation{
		nonStopRaw("L1", "2026-04-16", "348.60", "4"),
		nonStopRaw("L1", "2026-04-17", "360.00", "2"),
	})
	require.NoError(t, err)

	records := PriceTrends(result.Facts, nil)
	require.Len(t, records, 2)
	for _, r := range records {
		assert.False(t, r.PriceDownAndLowSeatsVsOldest)
	}
	assert.Equal(t, schema.PriceChangeHigher, records[0].PriceChangeVsPrevious)
	assert.True(t, records[0].PriceWentUpVsOldest)
}

func TestPriceTrendsSameFare(t *testing.T) {
	result, err := Run([]schema.RawObservation{
		nonStopRaw("L1", "2026-04-16", "348.60", "9"),
		nonStopRaw("L1", "2026-04-17", "348.60", "9"),
	})
	require.NoError(t, err)

	records := PriceTrends(result.Facts, nil)
	require.Len(t, records, 2)
	assert.Equal(t, schema.PriceChangeSame, records[0].PriceChangeVsPrevious)
	assert.False(t, records[0].PriceWentUpVsOldest)
	assert.False(t, records[0].PriceWentDownVsOldest)
}

func TestPriceTrendsPreviousIsImmediatePredecessor(t *testing.T) {
	result, err := Run([]schema.RawObservation{
		nonStopRaw("L1", "2026-04-16", "348.60", "9"),
		nonStopRaw("L1", "2026-04-17", "312.10", "4"),
		nonStopRaw("L1", "2026-04-18", "329.93", "6"),
	})
	require.NoError(t, err)

	records := PriceTrends(result.Facts, nil)
	require.Len(t, records, 3)

	latest := records[0]
	assert.Equal(t, "2026-04-18", latest.SearchDate.Format(schema.DateLayout))
	require.NotNil(t, latest.PreviousTotalFare)
	assert.Equal(t, 312.10, *latest.PreviousTotalFare)
	assert.Equal(t, schema.PriceChangeHigher, latest.PriceChangeVsPrevious)
	// Still below the oldest fare even after the bounce.
	assert.True(t, latest.PriceWentDownVsOldest)
}

func TestPriceTrendsOrdering(t *testing.T) {
	result, err := Run([]schema.RawObservation{
		twoSegmentRaw("2026-04-17"),
		nonStopRaw("L1", "2026-04-16", "348.60", "9"),
		nonStopRaw("L1", "2026-04-17", "312.10", "4"),
	})
	require.NoError(t, err)

	records := PriceTrends(result.Facts, nil)
	require.Len(t, records, 3)

	// Search date descending, then route ascending: BOS before JFK on the
	// shared newest day.
	assert.Equal(t, "2026-04-17", records[0].SearchDate.Format(schema.DateLayout))
	assert.Equal(t, "BOS", records[0].StartingAirport)
	assert.Equal(t, "JFK", records[1].StartingAirport)
	assert.Equal(t, "2026-04-16", records[2].SearchDate.Format(schema.DateLayout))
}

func TestPriceTrendsSegmentEnrichment(t *testing.T) {
	result, err := Run([]schema.RawObservation{
		twoSegmentRaw("2026-04-17"),
		nonStopRaw("L1", "2026-04-17", "312.10", "4"),
	})
	require.NoError(t, err)

	records := PriceTrends(result.Facts, result.Segments)
	require.Len(t, records, 2)

	byLeg := make(map[string]schema.PriceTrendRecord)
	for _, r := range records {
		byLeg[r.LegID] = r
	}

	connecting := byLeg["LEG-BOS-SFO"]
	require.Len(t, connecting.Segments, 2)
	assert.Equal(t, "BOS", connecting.Segments[0].DepartureAirportCode)
	assert.Equal(t, "ORD", connecting.Segments[1].DepartureAirportCode)

	require.Len(t, byLeg["L1"].Segments, 1)

	// Without segment input the records stay lean.
	plain := PriceTrends(result.Facts, nil)
	for _, r := range plain {
		assert.Nil(t, r.Segments)
	}
}
