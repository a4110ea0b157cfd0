package schema

import "time"

// ItineraryObservation is one fact row: a retained raw observation with its
// surrogate key, typed scalar fields and the per-cohort current marker.
type ItineraryObservation struct {
	ItinerarySK        string    `json:"itinerary_sk" parquet:"itinerary_sk,snappy"`
	LegID              string    `json:"legId" parquet:"legId,snappy"`
	SearchDate         time.Time `json:"searchDate" parquet:"searchDate,snappy"`
	FlightDate         time.Time `json:"flightDate" parquet:"flightDate,snappy"`
	StartingAirport    string    `json:"startingAirport" parquet:"startingAirport,snappy"`
	DestinationAirport string    `json:"destinationAirport" parquet:"destinationAirport,snappy"`

	FareBasisCode       string   `json:"fareBasisCode" parquet:"fareBasisCode,snappy"`
	TravelDuration      string   `json:"travelDuration" parquet:"travelDuration,snappy"`
	ElapsedDays         int      `json:"elapsedDays" parquet:"elapsedDays,snappy"`
	IsBasicEconomy      bool     `json:"isBasicEconomy" parquet:"isBasicEconomy,snappy"`
	IsRefundable        bool     `json:"isRefundable" parquet:"isRefundable,snappy"`
	IsNonStop           bool     `json:"isNonStop" parquet:"isNonStop,snappy"`
	BaseFare            float64  `json:"baseFare" parquet:"baseFare,snappy"`
	TotalFare           float64  `json:"totalFare" parquet:"totalFare,snappy"`
	SeatsRemaining      int      `json:"seatsRemaining" parquet:"seatsRemaining,snappy"`
	TotalTravelDistance *float64 `json:"totalTravelDistance" parquet:"totalTravelDistance,optional,snappy"`

	// IsCurrent marks the single most recent observation of this leg for its
	// flight date and route. Exactly one row per cohort carries true.
	IsCurrent bool `json:"is_current" parquet:"is_current,snappy"`
}

// CohortKey identifies the set of observations that describe the same leg on
// the same flight date and route. Current-flagging and price-trend comparisons
// operate within one cohort at a time.
type CohortKey struct {
	FlightDate         time.Time
	StartingAirport    string
	DestinationAirport string
	LegID              string
}

// Cohort returns the grouping key for this observation.
func (o *ItineraryObservation) Cohort() CohortKey {
	return CohortKey{
		FlightDate:         o.FlightDate,
		StartingAirport:    o.StartingAirport,
		DestinationAirport: o.DestinationAirport,
		LegID:              o.LegID,
	}
}

// FlightSegment is one dimension row: a single physical flight within an
// itinerary observation, unnested from the parallel Segments* lists.
//
// The four itinerary-defining columns (departure/arrival time raw and
// airport codes) are always populated; the remaining per-segment values are
// pointers and nil when the source list was shorter than the segment count.
type FlightSegment struct {
	ItinerarySK        string    `json:"itinerary_sk" parquet:"itinerary_sk,snappy"`
	SegmentSK          string    `json:"segment_sk" parquet:"segment_sk,snappy"`
	LegID              string    `json:"legId" parquet:"legId,snappy"`
	SearchDate         time.Time `json:"searchDate" parquet:"searchDate,snappy"`
	FlightDate         time.Time `json:"flightDate" parquet:"flightDate,snappy"`
	StartingAirport    string    `json:"startingAirport" parquet:"startingAirport,snappy"`
	DestinationAirport string    `json:"destinationAirport" parquet:"destinationAirport,snappy"`
	SegmentIndex       int       `json:"segment_index" parquet:"segment_index,snappy"`

	DepartureTimeRaw     string `json:"segmentDepartureTimeRaw" parquet:"segmentDepartureTimeRaw,snappy"`
	ArrivalTimeRaw       string `json:"segmentArrivalTimeRaw" parquet:"segmentArrivalTimeRaw,snappy"`
	ArrivalAirportCode   string `json:"segmentArrivalAirportCode" parquet:"segmentArrivalAirportCode,snappy"`
	DepartureAirportCode string `json:"segmentDepartureAirportCode" parquet:"segmentDepartureAirportCode,snappy"`

	DepartureTimeEpochSeconds *string `json:"segmentDepartureTimeEpochSeconds" parquet:"segmentDepartureTimeEpochSeconds,optional,snappy"`
	ArrivalTimeEpochSeconds   *string `json:"segmentArrivalTimeEpochSeconds" parquet:"segmentArrivalTimeEpochSeconds,optional,snappy"`
	AirlineName               *string `json:"segmentAirlineName" parquet:"segmentAirlineName,optional,snappy"`
	AirlineCode               *string `json:"segmentAirlineCode" parquet:"segmentAirlineCode,optional,snappy"`
	EquipmentDescription      *string `json:"segmentEquipmentDescription" parquet:"segmentEquipmentDescription,optional,snappy"`
	DurationInSeconds         *string `json:"segmentDurationInSeconds" parquet:"segmentDurationInSeconds,optional,snappy"`
	Distance                  *string `json:"segmentDistance" parquet:"segmentDistance,optional,snappy"`
	CabinCode                 *string `json:"segmentCabinCode" parquet:"segmentCabinCode,optional,snappy"`
}
