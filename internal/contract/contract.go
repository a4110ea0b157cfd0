// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"

	"github.com/mateuslg/flightmart/schema"
)

// RawSource yields the raw observation snapshot for one pipeline run.
// Implementations read a bounded file (CSV, Parquet); upstream bulk ingestion
// and columnar conversion live outside this repository.
type RawSource interface {
	// Read returns every raw observation in the snapshot, in file order.
	Read(ctx context.Context) ([]schema.RawObservation, error)
}

// WarehouseStore persists the fact and dimension tables. Implementations must
// make ReplaceAll atomic: either both tables are fully swapped for the new
// run's rows, or the previous contents survive untouched.
type WarehouseStore interface {
	// ReplaceAll swaps both tables for the given rows in one transaction.
	ReplaceAll(facts []schema.ItineraryObservation, segments []schema.FlightSegment) error

	// LoadFacts returns every fact row, ordered by surrogate key.
	LoadFacts() ([]schema.ItineraryObservation, error)

	// LoadSegments returns every dimension row, ordered by surrogate key and index.
	LoadSegments() ([]schema.FlightSegment, error)

	// GetStatus returns status information about the warehouse.
	GetStatus() (schema.WarehouseStatus, error)

	// Clear removes all rows from both tables.
	Clear() error

	// Close closes the underlying connection.
	Close() error
}
