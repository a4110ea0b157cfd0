package schema

import "time"

// SegmentSummary is the compact per-segment detail attached to a price trend
// record when segment enrichment is requested.
type SegmentSummary struct {
	DepartureTimeRaw     string `json:"segmentDepartureTimeRaw"`
	ArrivalTimeRaw       string `json:"segmentArrivalTimeRaw"`
	ArrivalAirportCode   string `json:"segmentArrivalAirportCode"`
	DepartureAirportCode string `json:"segmentDepartureAirportCode"`
}

// PriceTrendRecord is one row of the price analysis view: a fact row augmented
// with cohort-relative fare comparisons.
type PriceTrendRecord struct {
	ItinerarySK        string    `json:"itinerary_sk"`
	LegID              string    `json:"legId"`
	IsCurrent          bool      `json:"is_current"`
	SearchDate         time.Time `json:"searchDate"`
	FlightDate         time.Time `json:"flightDate"`
	StartingAirport    string    `json:"startingAirport"`
	DestinationAirport string    `json:"destinationAirport"`
	IsBasicEconomy     bool      `json:"isBasicEconomy"`
	IsRefundable       bool      `json:"isRefundable"`
	IsNonStop          bool      `json:"isNonStop"`
	SeatsRemaining     int       `json:"seatsRemaining"`
	TotalFare          float64   `json:"totalFare"`

	// OldestTotalFare is the fare of the cohort's earliest observation. It is
	// defined for every row, including the earliest one itself.
	OldestTotalFare float64 `json:"oldest_total_fare"`

	// PreviousTotalFare is the fare of the observation immediately before this
	// one in search-date order. Nil for the cohort's earliest observation.
	PreviousTotalFare *float64 `json:"previous_total_fare"`

	// Segments holds the ordered per-segment summaries when enrichment was
	// requested; nil otherwise.
	Segments []SegmentSummary `json:"flight_segments_details,omitempty"`

	PriceWentUpVsOldest          bool        `json:"price_went_up_vs_oldest"`
	PriceWentDownVsOldest        bool        `json:"price_went_down_vs_oldest"`
	PriceChangeVsPrevious        PriceChange `json:"price_change_vs_previous"`
	PriceDownAndLowSeatsVsOldest bool        `json:"price_down_and_low_seats_vs_oldest"`
}

// FlightMixRecord is one row of the flight mix view: counts of current
// observations for one route and flight date, split by stop and fare-class
// combinations.
type FlightMixRecord struct {
	FlightDate         time.Time `json:"flightDate"`
	StartingAirport    string    `json:"startingAirport"`
	DestinationAirport string    `json:"destinationAirport"`

	NonStopFlights         int `json:"non_stop_flights"`
	NotNonStopFlights      int `json:"not_non_stop_flights"`
	BasicEconomyFlights    int `json:"basic_economy_flights"`
	NotBasicEconomyFlights int `json:"not_basic_economy_flights"`

	NonStopEconomyFlights    int `json:"non_stop_economic_flights"`
	StopEconomyFlights       int `json:"stop_economic_flights"`
	NonStopNotEconomyFlights int `json:"non_stop_not_economic_flights"`
	StopNotEconomyFlights    int `json:"stop_not_economic_flights"`

	TotalFlightsInGroup int `json:"total_flights_in_group"`
}
