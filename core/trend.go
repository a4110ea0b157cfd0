package core

import (
	"sort"

	"github.com/mateuslg/flightmart/schema"
)

// PriceTrends computes the price analysis view over the fact table. Each
// cohort is walked in ascending search-date order to resolve the oldest and
// previous fares, then every row is classified against them. When segments is
// non-nil, each record is enriched with its ordered per-segment summaries.
//
// Fare comparisons are exact: no rounding, no tolerance.
func PriceTrends(facts []schema.ItineraryObservation, segments []schema.FlightSegment) []schema.PriceTrendRecord {
	segmentsBySK := summarizeSegments(segments)

	records := make([]schema.PriceTrendRecord, 0, len(facts))
	for _, indexes := range partitionCohorts(facts) {
		// Ascending search date; stable so ties keep input order.
		ordered := make([]int, len(indexes))
		copy(ordered, indexes)
		sort.SliceStable(ordered, func(a, b int) bool {
			return facts[ordered[a]].SearchDate.Before(facts[ordered[b]].SearchDate)
		})

		oldestFare := facts[ordered[0]].TotalFare
		for pos, i := range ordered {
			f := &facts[i]
			record := schema.PriceTrendRecord{
				ItinerarySK:        f.ItinerarySK,
				LegID:              f.LegID,
				IsCurrent:          f.IsCurrent,
				SearchDate:         f.SearchDate,
				FlightDate:         f.FlightDate,
				StartingAirport:    f.StartingAirport,
				DestinationAirport: f.DestinationAirport,
				IsBasicEconomy:     f.IsBasicEconomy,
				IsRefundable:       f.IsRefundable,
				IsNonStop:          f.IsNonStop,
				SeatsRemaining:     f.SeatsRemaining,
				TotalFare:          f.TotalFare,
				OldestTotalFare:    oldestFare,
				Segments:           segmentsBySK[f.ItinerarySK],
			}

			if pos > 0 {
				prev := facts[ordered[pos-1]].TotalFare
				record.PreviousTotalFare = &prev
			}

			record.PriceWentUpVsOldest = f.TotalFare > oldestFare
			record.PriceWentDownVsOldest = f.TotalFare < oldestFare
			record.PriceChangeVsPrevious = classifyChange(f.TotalFare, record.PreviousTotalFare)
			record.PriceDownAndLowSeatsVsOldest = record.PriceWentDownVsOldest && f.SeatsRemaining < 10

			records = append(records, record)
		}
	}

	sortTrendRecords(records)
	return records
}

func classifyChange(fare float64, previous *float64) schema.PriceChange {
	switch {
	case previous == nil:
		return schema.PriceChangeNA
	case fare > *previous:
		return schema.PriceChangeHigher
	case fare < *previous:
		return schema.PriceChangeLower
	default:
		return schema.PriceChangeSame
	}
}

// summarizeSegments indexes segment summaries by parent key, ordered by
// segment index.
func summarizeSegments(segments []schema.FlightSegment) map[string][]schema.SegmentSummary {
	if len(segments) == 0 {
		return nil
	}
	ordered := make([]schema.FlightSegment, len(segments))
	copy(ordered, segments)
	sort.SliceStable(ordered, func(a, b int) bool {
		if ordered[a].ItinerarySK != ordered[b].ItinerarySK {
			return ordered[a].ItinerarySK < ordered[b].ItinerarySK
		}
		return ordered[a].SegmentIndex < ordered[b].SegmentIndex
	})

	bySK := make(map[string][]schema.SegmentSummary)
	for i := range ordered {
		seg := &ordered[i]
		bySK[seg.ItinerarySK] = append(bySK[seg.ItinerarySK], schema.SegmentSummary{
			DepartureTimeRaw:     seg.DepartureTimeRaw,
			ArrivalTimeRaw:       seg.ArrivalTimeRaw,
			ArrivalAirportCode:   seg.ArrivalAirportCode,
			DepartureAirportCode: seg.DepartureAirportCode,
		})
	}
	return bySK
}

// sortTrendRecords applies the view's fixed total order: search date
// descending, flight date descending, then route and leg ascending.
func sortTrendRecords(records []schema.PriceTrendRecord) {
	sort.SliceStable(records, func(a, b int) bool {
		ra, rb := &records[a], &records[b]
		if !ra.SearchDate.Equal(rb.SearchDate) {
			return ra.SearchDate.After(rb.SearchDate)
		}
		if !ra.FlightDate.Equal(rb.FlightDate) {
			return ra.FlightDate.After(rb.FlightDate)
		}
		if ra.StartingAirport != rb.StartingAirport {
			return ra.StartingAirport < rb.StartingAirport
		}
		if ra.DestinationAirport != rb.DestinationAirport {
			return ra.DestinationAirport < rb.DestinationAirport
		}
		return ra.LegID < rb.LegID
	})
}
