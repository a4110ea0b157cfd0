// Package schema has configs, models and shared helpers for all parts of flightmart.
package schema

// RawObservation is one denormalized row of the raw itinerary feed: a single
// price observation for one itinerary leg on one search day. All fields hold
// the source text verbatim; nothing is parsed or normalized at this stage so
// that exact-duplicate detection can compare full rows byte for byte.
//
// The twelve Segments* fields each hold a pipe-delimited ("||") ordered list
// with one entry per physical flight segment of the leg.
type RawObservation struct {
	LegID              string `parquet:"legId,snappy"`
	SearchDate         string `parquet:"searchDate,snappy"`
	FlightDate         string `parquet:"flightDate,snappy"`
	StartingAirport    string `parquet:"startingAirport,snappy"`
	DestinationAirport string `parquet:"destinationAirport,snappy"`

	FareBasisCode       string `parquet:"fareBasisCode,snappy"`
	TravelDuration      string `parquet:"travelDuration,snappy"`
	ElapsedDays         string `parquet:"elapsedDays,snappy"`
	IsBasicEconomy      string `parquet:"isBasicEconomy,snappy"`
	IsRefundable        string `parquet:"isRefundable,snappy"`
	IsNonStop           string `parquet:"isNonStop,snappy"`
	BaseFare            string `parquet:"baseFare,snappy"`
	TotalFare           string `parquet:"totalFare,snappy"`
	SeatsRemaining      string `parquet:"seatsRemaining,snappy"`
	TotalTravelDistance string `parquet:"totalTravelDistance,snappy"`

	SegmentsDepartureTimeEpochSeconds string `parquet:"segmentsDepartureTimeEpochSeconds,snappy"`
	SegmentsDepartureTimeRaw          string `parquet:"segmentsDepartureTimeRaw,snappy"`
	SegmentsArrivalTimeEpochSeconds   string `parquet:"segmentsArrivalTimeEpochSeconds,snappy"`
	SegmentsArrivalTimeRaw            string `parquet:"segmentsArrivalTimeRaw,snappy"`
	SegmentsArrivalAirportCode        string `parquet:"segmentsArrivalAirportCode,snappy"`
	SegmentsDepartureAirportCode      string `parquet:"segmentsDepartureAirportCode,snappy"`
	SegmentsAirlineName               string `parquet:"segmentsAirlineName,snappy"`
	SegmentsAirlineCode               string `parquet:"segmentsAirlineCode,snappy"`
	SegmentsEquipmentDescription      string `parquet:"segmentsEquipmentDescription,snappy"`
	SegmentsDurationInSeconds         string `parquet:"segmentsDurationInSeconds,snappy"`
	SegmentsDistance                  string `parquet:"segmentsDistance,snappy"`
	SegmentsCabinCode                 string `parquet:"segmentsCabinCode,snappy"`
}
