package schema

import (
	"fmt"
	"time"
)

// Date layouts used across the pipeline.
const (
	// DateLayout is the calendar date form used by the raw feed (YYYY-MM-DD).
	DateLayout = "2006-01-02"

	// KeyDateLayout is the compact date form embedded in surrogate keys (YYYYMMDD).
	KeyDateLayout = "20060102"
)

// SegmentDelimiter separates entries inside the multi-valued Segments* fields.
const SegmentDelimiter = "||"

// ParseDate parses a raw YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// ItinerarySK derives the surrogate key for one itinerary observation:
// <legId>_<searchDate:YYYYMMDD>_<flightDate:YYYYMMDD>_<start>_<destination>.
// The format is a compatibility contract with downstream consumers; do not
// change it without versioning the warehouse schema.
func ItinerarySK(legID string, searchDate, flightDate time.Time, start, destination string) string {
	return fmt.Sprintf("%s_%s_%s_%s_%s",
		legID,
		searchDate.Format(KeyDateLayout),
		flightDate.Format(KeyDateLayout),
		start,
		destination,
	)
}

// SegmentSK derives the surrogate key for one flight segment: the parent
// itinerary key plus the zero-based segment index.
func SegmentSK(itinerarySK string, index int) string {
	return fmt.Sprintf("%s_%d", itinerarySK, index)
}
