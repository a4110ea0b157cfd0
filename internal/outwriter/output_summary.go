package outwriter

import (
	"fmt"
	"io"

	"github.com/mateuslg/flightmart/internal/contract"
	"github.com/mateuslg/flightmart/schema"
)

// WriteRunSummary outputs the build run summary, dispatching based on the output format configured.
func WriteRunSummary(summary *schema.RunSummary, cfg *contract.Config) error {
	if cfg.Output == schema.JSONOut {
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, summary)
		}, "Wrote JSON")
	}
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeSummaryText(w, summary, cfg)
	}, "Wrote summary")
}

// writeSummaryText prints the human-readable run summary.
func writeSummaryText(w io.Writer, summary *schema.RunSummary, cfg *contract.Config) error {
	fmt.Fprintf(w, "📥 Input rows: %d\n", summary.TotalInput)
	fmt.Fprintf(w, "🔁 Exact duplicates removed: %d\n", summary.DuplicatesRemoved)

	if rejected := summary.TotalRejected(); rejected > 0 {
		fmt.Fprintf(w, "🚫 Rejected rows: %d\n", rejected)
		for _, reason := range []schema.RejectReason{
			schema.RejectMissingField,
			schema.RejectUnparseableDate,
			schema.RejectMalformedSegments,
		} {
			if n := summary.Rejected[reason]; n > 0 {
				fmt.Fprintf(w, "   %s: %d\n", reason, n)
			}
		}
	}

	if summary.KeyDuplicates > 0 {
		fmt.Fprintf(w, "⚠️ Surrogate key collisions among retained rows: %d\n", summary.KeyDuplicates)
	}

	fmt.Fprintf(w, "✅ Fact rows: %d\n", summary.FactRows)
	fmt.Fprintf(w, "✅ Segment rows: %d\n", summary.SegmentRows)
	fmt.Fprintf(w, "Build completed in %v. Warehouse backend: %s\n", summary.Duration, cfg.Backend)
	return nil
}
