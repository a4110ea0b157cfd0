package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnnestRowSingleSegment(t *testing.T) {
	row := nonStopRaw("L1", "2026-04-16", "348.60", "9")
	segments, err := UnnestRow(&row)
	require.NoError(t, err)
	require.Len(t, segments, 1)

	seg := segments[0]
	assert.Equal(t, "L1_20260416_20260501_JFK_LAX", seg.ItinerarySK)
	assert.Equal(t, "L1_20260416_20260501_JFK_LAX_0", seg.SegmentSK)
	assert.Equal(t, 0, seg.SegmentIndex)
	assert.Equal(t, "JFK", seg.DepartureAirportCode)
	assert.Equal(t, "LAX", seg.ArrivalAirportCode)
	require.NotNil(t, seg.AirlineCode)
	assert.Equal(t, "DL", *seg.AirlineCode)
}

func TestUnnestRowPreservesLegOrder(t *testing.T) {
	row := twoSegmentRaw("2026-04-16")
	segments, err := UnnestRow(&row)
	require.NoError(t, err)
	require.Len(t, segments, 2)

	assert.Equal(t, 0, segments[0].SegmentIndex)
	assert.Equal(t, "BOS", segments[0].DepartureAirportCode)
	assert.Equal(t, "ORD", segments[0].ArrivalAirportCode)

	assert.Equal(t, 1, segments[1].SegmentIndex)
	assert.Equal(t, "ORD", segments[1].DepartureAirportCode)
	assert.Equal(t, "SFO", segments[1].ArrivalAirportCode)

	// Sibling segments share the parent key and differ only in the index
	// suffix.
	assert.Equal(t, segments[0].ItinerarySK, segments[1].ItinerarySK)
	assert.NotEqual(t, segments[0].SegmentSK, segments[1].SegmentSK)
}

func TestUnnestRowCoreListLengthMismatch(t *testing.T) {
	row := twoSegmentRaw("2026-04-16")
	row.SegmentsDepartureAirportCode = "BOS" // one entry short

	_, err := UnnestRow(&row)
	var malformed *MalformedSegmentsError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, "LEG-BOS-SFO", malformed.LegID)
	assert.Equal(t, 2, malformed.Lengths["segmentsDepartureTimeRaw"])
	assert.Equal(t, 1, malformed.Lengths["segmentsDepartureAirportCode"])
}

func TestUnnestRowShortOptionalListDegradesToNil(t *testing.T) {
	row := twoSegmentRaw("2026-04-16")
	row.SegmentsAirlineName = "United" // missing second entry
	row.SegmentsDistance = ""

	segments, err := UnnestRow(&row)
	require.NoError(t, err)
	require.Len(t, segments, 2)

	require.NotNil(t, segments[0].AirlineName)
	assert.Equal(t, "United", *segments[0].AirlineName)
	assert.Nil(t, segments[1].AirlineName)

	// An empty list splits to one empty token; only the overflow is nil.
	require.NotNil(t, segments[0].Distance)
	assert.Equal(t, "", *segments[0].Distance)
	assert.Nil(t, segments[1].Distance)
}

func TestUnnestRowLongOptionalListIsTruncated(t *testing.T) {
	row := nonStopRaw("L1", "2026-04-16", "348.60", "9")
	row.SegmentsCabinCode = "coach||premium coach"

	segments, err := UnnestRow(&row)
	require.NoError(t, err)
	require.Len(t, segments, 1)
	require.NotNil(t, segments[0].CabinCode)
	assert.Equal(t, "coach", *segments[0].CabinCode)
}
