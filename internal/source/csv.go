package source

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mateuslg/flightmart/schema"
)

// csvSource reads raw observations from a headered CSV file, the shape the
// upstream feed ships before columnar conversion. Columns are matched by
// header name, so column order does not matter and unknown columns are
// ignored. A missing column yields empty values, which the pipeline's
// validation then rejects per row.
type csvSource struct {
	path string
}

func (s *csvSource) Read(ctx context.Context) ([]schema.RawObservation, error) {
	file, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open csv input %q: %w", s.path, err)
	}
	defer func() { _ = file.Close() }()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // tolerate ragged rows; validation handles them

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("csv input %q is empty", s.path)
		}
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}

	var rows []schema.RawObservation
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv record: %w", err)
		}

		field := func(name string) string {
			i, ok := index[name]
			if !ok || i >= len(record) {
				return ""
			}
			return record[i]
		}

		rows = append(rows, schema.RawObservation{
			LegID:              field("legId"),
			SearchDate:         field("searchDate"),
			FlightDate:         field("flightDate"),
			StartingAirport:    field("startingAirport"),
			DestinationAirport: field("destinationAirport"),

			FareBasisCode:       field("fareBasisCode"),
			TravelDuration:      field("travelDuration"),
			ElapsedDays:         field("elapsedDays"),
			IsBasicEconomy:      field("isBasicEconomy"),
			IsRefundable:        field("isRefundable"),
			IsNonStop:           field("isNonStop"),
			BaseFare:            field("baseFare"),
			TotalFare:           field("totalFare"),
			SeatsRemaining:      field("seatsRemaining"),
			TotalTravelDistance: field("totalTravelDistance"),

			SegmentsDepartureTimeEpochSeconds: field("segmentsDepartureTimeEpochSeconds"),
			SegmentsDepartureTimeRaw:          field("segmentsDepartureTimeRaw"),
			SegmentsArrivalTimeEpochSeconds:   field("segmentsArrivalTimeEpochSeconds"),
			SegmentsArrivalTimeRaw:            field("segmentsArrivalTimeRaw"),
			SegmentsArrivalAirportCode:        field("segmentsArrivalAirportCode"),
			SegmentsDepartureAirportCode:      field("segmentsDepartureAirportCode"),
			SegmentsAirlineName:               field("segmentsAirlineName"),
			SegmentsAirlineCode:               field("segmentsAirlineCode"),
			SegmentsEquipmentDescription:      field("segmentsEquipmentDescription"),
			SegmentsDurationInSeconds:         field("segmentsDurationInSeconds"),
			SegmentsDistance:                  field("segmentsDistance"),
			SegmentsCabinCode:                 field("segmentsCabinCode"),
		})
	}

	return rows, nil
}
