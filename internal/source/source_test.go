package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mateuslg/flightmart/schema"
)

const csvSnapshot = `legId,searchDate,flightDate,startingAirport,destinationAirport,fareBasisCode,travelDuration,elapsedDays,isBasicEconomy,isRefundable,isNonStop,baseFare,totalFare,seatsRemaining,totalTravelDistance,segmentsDepartureTimeEpochSeconds,segmentsDepartureTimeRaw,segmentsArrivalTimeEpochSeconds,segmentsArrivalTimeRaw,segmentsArrivalAirportCode,segmentsDepartureAirportCode,segmentsAirlineName,segmentsAirlineCode,segmentsEquipmentDescription,segmentsDurationInSeconds,segmentsDistance,segmentsCabinCode
L1,2026-04-16,2026-05-01,JFK,LAX,QAA0AKEN,PT6H15M,15,false,false,true,260.47,348.60,9,2475,1777716000,2026-05-01T09:00:00.000-04:00,1777738500,2026-05-01T12:15:00.000-07:00,LAX,JFK,Delta,DL,Airbus A321,22500,2475,coach
L2,2026-04-16,2026-05-01,BOS,SFO,VH0CZKN1,PT10H10M,15,false,false,false,340.93,412.60,5,2713,1777707000||1777719900,2026-05-01T06:30:00.000-04:00||2026-05-01T10:05:00.000-05:00,1777714800||1777729200,2026-05-01T08:40:00.000-05:00||2026-05-01T12:40:00.000-07:00,ORD||SFO,BOS||ORD,United||United,UA||UA,Boeing 737-800||Boeing 757-200,7800||9300,867||1846,coach||coach
`

func writeCSVFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "itineraries.csv")
	require.NoError(t, os.WriteFile(path, []byte(csvSnapshot), 0o644))
	return path
}

func TestCSVSourceRead(t *testing.T) {
	src := NewFileSource(writeCSVFixture(t), schema.CSVFormat)
	rows, err := src.Read(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "L1", rows[0].LegID)
	assert.Equal(t, "348.60", rows[0].TotalFare)
	assert.Equal(t, "LAX", rows[0].SegmentsArrivalAirportCode)
	assert.Equal(t, "ORD||SFO", rows[1].SegmentsArrivalAirportCode)
	assert.Equal(t, "United||United", rows[1].SegmentsAirlineName)
}

func TestCSVSourceColumnOrderIndependent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reordered.csv")
	content := "totalFare,legId,searchDate\n123.45,L9,2026-04-16\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	rows, err := NewFileSource(path, schema.CSVFormat).Read(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "L9", rows[0].LegID)
	assert.Equal(t, "123.45", rows[0].TotalFare)
	// Absent columns come back empty for validation to reject.
	assert.Empty(t, rows[0].FlightDate)
}

func TestCSVSourceEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	_, err := NewFileSource(path, schema.CSVFormat).Read(context.Background())
	assert.ErrorContains(t, err, "empty")
}

func TestCSVSourceMissingFile(t *testing.T) {
	_, err := NewFileSource(filepath.Join(t.TempDir(), "nope.csv"), schema.CSVFormat).Read(context.Background())
	assert.Error(t, err)
}

func TestParquetRoundTripMatchesCSV(t *testing.T) {
	ctx := context.Background()
	csvRows, err := NewFileSource(writeCSVFixture(t), schema.CSVFormat).Read(ctx)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "itineraries.parquet")
	require.NoError(t, WriteRawParquet(csvRows, path))

	parquetRows, err := NewFileSource(path, schema.ParquetFormat).Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, csvRows, parquetRows)
}

func TestAutoFormatPicksByExtension(t *testing.T) {
	assert.IsType(t, &csvSource{}, NewFileSource("data.csv", schema.AutoFormat))
	assert.IsType(t, &parquetSource{}, NewFileSource("data.parquet", schema.AutoFormat))
	assert.IsType(t, &csvSource{}, NewFileSource("data", schema.AutoFormat))
	// Explicit format overrides the extension.
	assert.IsType(t, &parquetSource{}, NewFileSource("data.csv", schema.ParquetFormat))
}

func TestCSVSourceCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewFileSource(writeCSVFixture(t), schema.CSVFormat).Read(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
