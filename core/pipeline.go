// Package core implements the itinerary warehouse transformation: raw
// observation deduplication, fact and segment-dimension building, and the
// derived price-trend and flight-mix views.
package core

import (
	"time"

	"github.com/mateuslg/flightmart/schema"
)

// Result is the full output of one pipeline run: the replacement fact and
// dimension tables plus the per-row accounting.
type Result struct {
	Facts    []schema.ItineraryObservation
	Segments []schema.FlightSegment
	Summary  *schema.RunSummary
}

// Run transforms a raw observation snapshot into replacement fact and
// dimension tables. Per-row validation failures are recovered: the row is
// excluded from both outputs and tallied in the summary. Only a broken
// current-marking invariant returns an error, in which case the caller must
// not materialize anything.
//
// Grouped values (current flags, and later the trend view) need the whole
// cohort in hand before any row can be finalized, so the run materializes the
// retained snapshot in memory rather than streaming row by row.
func Run(raws []schema.RawObservation) (*Result, error) {
	start := time.Now()
	summary := schema.NewRunSummary()
	summary.TotalInput = len(raws)

	distinct, removed := Deduplicate(raws)
	summary.DuplicatesRemoved = removed

	facts := make([]schema.ItineraryObservation, 0, len(distinct))
	segments := make([]schema.FlightSegment, 0, len(distinct))
	for i := range distinct {
		row := &distinct[i]
		if err := ValidateRow(row); err != nil {
			tally(summary, err)
			continue
		}

		// Unnest first: a malformed segment row must reach neither table.
		rowSegments, err := UnnestRow(row)
		if err != nil {
			tally(summary, err)
			continue
		}

		fact, err := BuildFact(row)
		if err != nil {
			// ValidateRow guaranteed the required scalars, so this is
			// unreachable for recovered reasons; surface it.
			return nil, err
		}

		facts = append(facts, fact)
		segments = append(segments, rowSegments...)
	}

	MarkCurrent(facts)
	if err := VerifyCurrentInvariant(facts); err != nil {
		return nil, err
	}

	summary.Retained = len(facts)
	summary.KeyDuplicates = CountKeyDuplicates(facts)
	summary.FactRows = len(facts)
	summary.SegmentRows = len(segments)
	summary.Duration = time.Since(start)

	return &Result{Facts: facts, Segments: segments, Summary: summary}, nil
}

func tally(summary *schema.RunSummary, err error) {
	if reason, ok := rejectFor(err); ok {
		summary.Rejected[reason]++
	}
}
