// Package outwriter has output and writer logic.
package outwriter

import (
	"time"

	"github.com/mateuslg/flightmart/internal/contract"
	"github.com/mateuslg/flightmart/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteTrends prints price trend records using the configured output format.
func (ow *OutWriter) WriteTrends(records []schema.PriceTrendRecord, cfg *contract.Config, duration time.Duration) error {
	return WriteTrendResults(records, cfg, duration)
}

// WriteMix prints flight mix records using the configured output format.
func (ow *OutWriter) WriteMix(records []schema.FlightMixRecord, cfg *contract.Config, duration time.Duration) error {
	return WriteMixResults(records, cfg, duration)
}

// WriteSummary prints the run summary for a warehouse build.
func (ow *OutWriter) WriteSummary(summary *schema.RunSummary, cfg *contract.Config) error {
	return WriteRunSummary(summary, cfg)
}
