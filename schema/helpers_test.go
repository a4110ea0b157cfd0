package schema

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2026-04-16")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 4, 16, 0, 0, 0, 0, time.UTC), parsed)

	_, err = ParseDate("16/04/2026")
	assert.Error(t, err)

	_, err = ParseDate("")
	assert.Error(t, err)
}

func TestItinerarySK(t *testing.T) {
	searchDate := time.Date(2026, 4, 16, 0, 0, 0, 0, time.UTC)
	flightDate := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	sk := ItinerarySK("L1", searchDate, flightDate, "JFK", "LAX")
	assert.Equal(t, "L1_20260416_20260501_JFK_LAX", sk)
}

func TestSegmentSK(t *testing.T) {
	searchDate := time.Date(2026, 4, 16, 0, 0, 0, 0, time.UTC)
	flightDate := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	sk := ItinerarySK("L1", searchDate, flightDate, "JFK", "LAX")

	assert.Equal(t, "L1_20260416_20260501_JFK_LAX_0", SegmentSK(sk, 0))
	assert.Equal(t, "L1_20260416_20260501_JFK_LAX_2", SegmentSK(sk, 2))
}

func TestCohortKey(t *testing.T) {
	flightDate := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	a := ItineraryObservation{
		LegID:              "L1",
		SearchDate:         time.Date(2026, 4, 16, 0, 0, 0, 0, time.UTC),
		FlightDate:         flightDate,
		StartingAirport:    "JFK",
		DestinationAirport: "LAX",
	}
	b := ItineraryObservation{
		LegID:              "L1",
		SearchDate:         time.Date(2026, 4, 17, 0, 0, 0, 0, time.UTC),
		FlightDate:         flightDate,
		StartingAirport:    "JFK",
		DestinationAirport: "LAX",
	}

	// Different search days, same cohort
	assert.Equal(t, a.Cohort(), b.Cohort())

	c := b
	c.DestinationAirport = "SFO"
	assert.NotEqual(t, a.Cohort(), c.Cohort())
}

func TestRunSummaryTotalRejected(t *testing.T) {
	summary := NewRunSummary()
	assert.Equal(t, 0, summary.TotalRejected())

	summary.Rejected[RejectMissingField] = 2
	summary.Rejected[RejectMalformedSegments] = 1
	assert.Equal(t, 3, summary.TotalRejected())
}
