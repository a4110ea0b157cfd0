package core

import (
	"strings"

	"github.com/mateuslg/flightmart/schema"
)

// segmentLists holds the twelve Segments* fields of one row, split on the
// segment delimiter. Building it first keeps the equal-length check in one
// place and lets UnnestRow index every list uniformly.
type segmentLists struct {
	departureTimeRaw     []string
	arrivalTimeRaw       []string
	arrivalAirportCode   []string
	departureAirportCode []string

	departureTimeEpochSeconds []string
	arrivalTimeEpochSeconds   []string
	airlineName               []string
	airlineCode               []string
	equipmentDescription      []string
	durationInSeconds         []string
	distance                  []string
	cabinCode                 []string
}

func splitSegments(row *schema.RawObservation) *segmentLists {
	split := func(s string) []string {
		return strings.Split(s, schema.SegmentDelimiter)
	}
	return &segmentLists{
		departureTimeRaw:          split(row.SegmentsDepartureTimeRaw),
		arrivalTimeRaw:            split(row.SegmentsArrivalTimeRaw),
		arrivalAirportCode:        split(row.SegmentsArrivalAirportCode),
		departureAirportCode:      split(row.SegmentsDepartureAirportCode),
		departureTimeEpochSeconds: split(row.SegmentsDepartureTimeEpochSeconds),
		arrivalTimeEpochSeconds:   split(row.SegmentsArrivalTimeEpochSeconds),
		airlineName:               split(row.SegmentsAirlineName),
		airlineCode:               split(row.SegmentsAirlineCode),
		equipmentDescription:      split(row.SegmentsEquipmentDescription),
		durationInSeconds:         split(row.SegmentsDurationInSeconds),
		distance:                  split(row.SegmentsDistance),
		cabinCode:                 split(row.SegmentsCabinCode),
	}
}

// checkShape verifies that the four itinerary-defining lists agree on the
// segment count. The remaining lists are read with a safe offset instead, so
// a trailing empty token or a short auxiliary list does not kill the row.
func (sl *segmentLists) checkShape(legID string) (int, error) {
	n := len(sl.departureTimeRaw)
	if len(sl.arrivalTimeRaw) != n ||
		len(sl.arrivalAirportCode) != n ||
		len(sl.departureAirportCode) != n {
		return 0, &MalformedSegmentsError{
			LegID: legID,
			Lengths: map[string]int{
				"segmentsDepartureTimeRaw":     len(sl.departureTimeRaw),
				"segmentsArrivalTimeRaw":       len(sl.arrivalTimeRaw),
				"segmentsArrivalAirportCode":   len(sl.arrivalAirportCode),
				"segmentsDepartureAirportCode": len(sl.departureAirportCode),
			},
		}
	}
	return n, nil
}

// safeAt returns the list entry at idx, or nil when the list is too short.
func safeAt(list []string, idx int) *string {
	if idx >= len(list) {
		return nil
	}
	v := list[idx]
	return &v
}

// UnnestRow splits one validated raw row into its ordered flight segments.
// Emitted segments carry indexes 0..n-1 in original list order, which is leg
// order: the departure segment comes first.
func UnnestRow(row *schema.RawObservation) ([]schema.FlightSegment, error) {
	lists := splitSegments(row)
	n, err := lists.checkShape(row.LegID)
	if err != nil {
		return nil, err
	}

	searchDate, err := schema.ParseDate(row.SearchDate)
	if err != nil {
		return nil, err
	}
	flightDate, err := schema.ParseDate(row.FlightDate)
	if err != nil {
		return nil, err
	}

	itinerarySK := schema.ItinerarySK(row.LegID, searchDate, flightDate, row.StartingAirport, row.DestinationAirport)

	segments := make([]schema.FlightSegment, 0, n)
	for i := 0; i < n; i++ {
		segments = append(segments, schema.FlightSegment{
			ItinerarySK:        itinerarySK,
			SegmentSK:          schema.SegmentSK(itinerarySK, i),
			LegID:              row.LegID,
			SearchDate:         searchDate,
			FlightDate:         flightDate,
			StartingAirport:    row.StartingAirport,
			DestinationAirport: row.DestinationAirport,
			SegmentIndex:       i,

			DepartureTimeRaw:     lists.departureTimeRaw[i],
			ArrivalTimeRaw:       lists.arrivalTimeRaw[i],
			ArrivalAirportCode:   lists.arrivalAirportCode[i],
			DepartureAirportCode: lists.departureAirportCode[i],

			DepartureTimeEpochSeconds: safeAt(lists.departureTimeEpochSeconds, i),
			ArrivalTimeEpochSeconds:   safeAt(lists.arrivalTimeEpochSeconds, i),
			AirlineName:               safeAt(lists.airlineName, i),
			AirlineCode:               safeAt(lists.airlineCode, i),
			EquipmentDescription:      safeAt(lists.equipmentDescription, i),
			DurationInSeconds:         safeAt(lists.durationInSeconds, i),
			Distance:                  safeAt(lists.distance, i),
			CabinCode:                 safeAt(lists.cabinCode, i),
		})
	}
	return segments, nil
}
