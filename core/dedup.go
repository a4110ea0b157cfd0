package core

import (
	"fmt"

	"github.com/mateuslg/flightmart/schema"
)

// Deduplicate removes exact-duplicate raw rows, keeping the first occurrence
// of each distinct row in input order. Rows are never mutated, only filtered.
func Deduplicate(rows []schema.RawObservation) (distinct []schema.RawObservation, removed int) {
	seen := make(map[schema.RawObservation]struct{}, len(rows))
	distinct = make([]schema.RawObservation, 0, len(rows))
	for _, row := range rows {
		if _, ok := seen[row]; ok {
			removed++
			continue
		}
		seen[row] = struct{}{}
		distinct = append(distinct, row)
	}
	return distinct, removed
}

// ValidateRow checks the mandatory fields of one raw row: the five natural-key
// fields must be present, both dates must parse as YYYY-MM-DD, the four core
// segment lists must be present, and the scalars the fact table cannot live
// without (total fare, non-stop flag, basic-economy flag, seats remaining)
// must be present and parseable.
func ValidateRow(row *schema.RawObservation) error {
	required := map[string]string{
		"legId":                        row.LegID,
		"searchDate":                   row.SearchDate,
		"flightDate":                   row.FlightDate,
		"startingAirport":              row.StartingAirport,
		"destinationAirport":           row.DestinationAirport,
		"segmentsDepartureTimeRaw":     row.SegmentsDepartureTimeRaw,
		"segmentsArrivalTimeRaw":       row.SegmentsArrivalTimeRaw,
		"segmentsArrivalAirportCode":   row.SegmentsArrivalAirportCode,
		"segmentsDepartureAirportCode": row.SegmentsDepartureAirportCode,
		"totalFare":                    row.TotalFare,
		"isNonStop":                    row.IsNonStop,
		"isBasicEconomy":               row.IsBasicEconomy,
		"seatsRemaining":               row.SeatsRemaining,
	}
	for name, value := range required {
		if value == "" {
			return fmt.Errorf("%w: %s", ErrMissingRequiredField, name)
		}
	}

	if _, err := schema.ParseDate(row.SearchDate); err != nil {
		return fmt.Errorf("%w: searchDate %q", ErrUnparseableDate, row.SearchDate)
	}
	if _, err := schema.ParseDate(row.FlightDate); err != nil {
		return fmt.Errorf("%w: flightDate %q", ErrUnparseableDate, row.FlightDate)
	}

	// The required scalars must convert cleanly for the fact projection.
	if _, err := parseFare(row.TotalFare); err != nil {
		return fmt.Errorf("%w: totalFare %q", ErrMissingRequiredField, row.TotalFare)
	}
	if _, err := parseFlag(row.IsNonStop); err != nil {
		return fmt.Errorf("%w: isNonStop %q", ErrMissingRequiredField, row.IsNonStop)
	}
	if _, err := parseFlag(row.IsBasicEconomy); err != nil {
		return fmt.Errorf("%w: isBasicEconomy %q", ErrMissingRequiredField, row.IsBasicEconomy)
	}
	if _, err := parseCount(row.SeatsRemaining); err != nil {
		return fmt.Errorf("%w: seatsRemaining %q", ErrMissingRequiredField, row.SeatsRemaining)
	}

	return nil
}
