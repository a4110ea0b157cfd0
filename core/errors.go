package core

import (
	"errors"
	"fmt"

	"github.com/mateuslg/flightmart/schema"
)

// Sentinel errors for per-row validation failures. These are recovered by the
// pipeline: the offending row is excluded and tallied, and the run continues.
var (
	// ErrMissingRequiredField marks a row lacking a mandatory key or scalar field.
	ErrMissingRequiredField = errors.New("missing required field")

	// ErrUnparseableDate marks a row whose search or flight date is not a valid
	// YYYY-MM-DD calendar date.
	ErrUnparseableDate = errors.New("unparseable date")
)

// MalformedSegmentsError reports unequal lengths across the core segment
// lists of one raw row. The row is excluded from both fact and dimension
// output and tallied.
type MalformedSegmentsError struct {
	LegID   string
	Lengths map[string]int
}

func (e *MalformedSegmentsError) Error() string {
	return fmt.Sprintf("malformed segment lists for leg %q: unequal lengths %v", e.LegID, e.Lengths)
}

// DuplicateCohortCurrentError reports more than one current-flagged row in a
// cohort. This can only come from a logic defect, never from bad input, so it
// aborts the run instead of being tallied.
type DuplicateCohortCurrentError struct {
	Cohort schema.CohortKey
	Count  int
}

func (e *DuplicateCohortCurrentError) Error() string {
	return fmt.Sprintf("cohort %s/%s-%s leg %s has %d current rows, want exactly 1",
		e.Cohort.FlightDate.Format(schema.DateLayout),
		e.Cohort.StartingAirport, e.Cohort.DestinationAirport,
		e.Cohort.LegID, e.Count)
}

// rejectFor maps a recovered row error to its tally bucket.
func rejectFor(err error) (schema.RejectReason, bool) {
	var malformed *MalformedSegmentsError
	switch {
	case errors.Is(err, ErrMissingRequiredField):
		return schema.RejectMissingField, true
	case errors.Is(err, ErrUnparseableDate):
		return schema.RejectUnparseableDate, true
	case errors.As(err, &malformed):
		return schema.RejectMalformedSegments, true
	default:
		return "", false
	}
}
