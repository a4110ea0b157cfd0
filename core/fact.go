package core

import (
	"strconv"
	"strings"

	"github.com/mateuslg/flightmart/schema"
)

func parseFare(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

func parseFlag(s string) (bool, error) {
	return strconv.ParseBool(strings.TrimSpace(s))
}

func parseCount(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}

// BuildFact projects one validated raw row into a fact row. The optional
// scalars (fare basis, travel duration, elapsed days, refundable flag, base
// fare, total travel distance) degrade to zero values when absent or
// malformed; the required ones were already guaranteed by ValidateRow.
func BuildFact(row *schema.RawObservation) (schema.ItineraryObservation, error) {
	searchDate, err := schema.ParseDate(row.SearchDate)
	if err != nil {
		return schema.ItineraryObservation{}, err
	}
	flightDate, err := schema.ParseDate(row.FlightDate)
	if err != nil {
		return schema.ItineraryObservation{}, err
	}

	totalFare, err := parseFare(row.TotalFare)
	if err != nil {
		return schema.ItineraryObservation{}, err
	}
	isNonStop, err := parseFlag(row.IsNonStop)
	if err != nil {
		return schema.ItineraryObservation{}, err
	}
	isBasicEconomy, err := parseFlag(row.IsBasicEconomy)
	if err != nil {
		return schema.ItineraryObservation{}, err
	}
	seatsRemaining, err := parseCount(row.SeatsRemaining)
	if err != nil {
		return schema.ItineraryObservation{}, err
	}

	obs := schema.ItineraryObservation{
		ItinerarySK:        schema.ItinerarySK(row.LegID, searchDate, flightDate, row.StartingAirport, row.DestinationAirport),
		LegID:              row.LegID,
		SearchDate:         searchDate,
		FlightDate:         flightDate,
		StartingAirport:    row.StartingAirport,
		DestinationAirport: row.DestinationAirport,
		FareBasisCode:      row.FareBasisCode,
		TravelDuration:     row.TravelDuration,
		IsNonStop:          isNonStop,
		IsBasicEconomy:     isBasicEconomy,
		TotalFare:          totalFare,
		SeatsRemaining:     seatsRemaining,
	}

	if v, err := parseCount(row.ElapsedDays); err == nil {
		obs.ElapsedDays = v
	}
	if v, err := parseFlag(row.IsRefundable); err == nil {
		obs.IsRefundable = v
	}
	if v, err := parseFare(row.BaseFare); err == nil {
		obs.BaseFare = v
	}
	if v, err := parseFare(row.TotalTravelDistance); err == nil {
		obs.TotalTravelDistance = &v
	}

	return obs, nil
}

// partitionCohorts groups fact-row indexes by cohort key, preserving input
// order inside each partition.
func partitionCohorts(facts []schema.ItineraryObservation) map[schema.CohortKey][]int {
	cohorts := make(map[schema.CohortKey][]int)
	for i := range facts {
		key := facts[i].Cohort()
		cohorts[key] = append(cohorts[key], i)
	}
	return cohorts
}

// MarkCurrent flags exactly one row per cohort as current: the one with the
// maximum search date. When two rows tie on the maximum, the one appearing
// first in the input wins, which keeps reruns over identical input
// deterministic.
func MarkCurrent(facts []schema.ItineraryObservation) {
	for _, indexes := range partitionCohorts(facts) {
		best := indexes[0]
		for _, i := range indexes[1:] {
			if facts[i].SearchDate.After(facts[best].SearchDate) {
				best = i
			}
		}
		for _, i := range indexes {
			facts[i].IsCurrent = i == best
		}
	}
}

// VerifyCurrentInvariant confirms that every cohort carries exactly one
// current row. A violation means MarkCurrent is broken, not that the input is
// bad, so the caller should abort the run.
func VerifyCurrentInvariant(facts []schema.ItineraryObservation) error {
	for key, indexes := range partitionCohorts(facts) {
		count := 0
		for _, i := range indexes {
			if facts[i].IsCurrent {
				count++
			}
		}
		if count != 1 {
			return &DuplicateCohortCurrentError{Cohort: key, Count: count}
		}
	}
	return nil
}

// CountKeyDuplicates counts fact rows whose surrogate key collides with an
// earlier row. Exact duplicates were already removed, so collisions here are
// distinct observations sharing the full natural key.
func CountKeyDuplicates(facts []schema.ItineraryObservation) int {
	seen := make(map[string]struct{}, len(facts))
	dupes := 0
	for i := range facts {
		if _, ok := seen[facts[i].ItinerarySK]; ok {
			dupes++
			continue
		}
		seen[facts[i].ItinerarySK] = struct{}{}
	}
	return dupes
}
