package core

import (
	"sort"
	"time"

	"github.com/mateuslg/flightmart/schema"
)

// routeDateKey groups current observations for the mix view.
type routeDateKey struct {
	flightDate         time.Time
	startingAirport    string
	destinationAirport string
}

// FlightMix counts current observations per route and flight date, split by
// the stop and fare-class combinations. Non-current rows are ignored
// entirely. Output is ordered by flight date, then route, ascending.
func FlightMix(facts []schema.ItineraryObservation) []schema.FlightMixRecord {
	groups := make(map[routeDateKey]*schema.FlightMixRecord)
	for i := range facts {
		f := &facts[i]
		if !f.IsCurrent {
			continue
		}
		key := routeDateKey{f.FlightDate, f.StartingAirport, f.DestinationAirport}
		rec, ok := groups[key]
		if !ok {
			rec = &schema.FlightMixRecord{
				FlightDate:         f.FlightDate,
				StartingAirport:    f.StartingAirport,
				DestinationAirport: f.DestinationAirport,
			}
			groups[key] = rec
		}

		rec.TotalFlightsInGroup++
		if f.IsNonStop {
			rec.NonStopFlights++
		} else {
			rec.NotNonStopFlights++
		}
		if f.IsBasicEconomy {
			rec.BasicEconomyFlights++
		} else {
			rec.NotBasicEconomyFlights++
		}
		switch {
		case f.IsNonStop && f.IsBasicEconomy:
			rec.NonStopEconomyFlights++
		case !f.IsNonStop && f.IsBasicEconomy:
			rec.StopEconomyFlights++
		case f.IsNonStop && !f.IsBasicEconomy:
			rec.NonStopNotEconomyFlights++
		default:
			rec.StopNotEconomyFlights++
		}
	}

	records := make([]schema.FlightMixRecord, 0, len(groups))
	for _, rec := range groups {
		records = append(records, *rec)
	}
	sort.SliceStable(records, func(a, b int) bool {
		ra, rb := &records[a], &records[b]
		if !ra.FlightDate.Equal(rb.FlightDate) {
			return ra.FlightDate.Before(rb.FlightDate)
		}
		if ra.StartingAirport != rb.StartingAirport {
			return ra.StartingAirport < rb.StartingAirport
		}
		return ra.DestinationAirport < rb.DestinationAirport
	})
	return records
}
