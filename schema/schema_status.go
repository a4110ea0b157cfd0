package schema

import "time"

// RunSummary reports what happened to every input row of one pipeline run.
type RunSummary struct {
	TotalInput        int `json:"total_input_rows"`
	DuplicatesRemoved int `json:"duplicates_removed"`
	Retained          int `json:"rows_retained"`

	// Rejected counts excluded rows by reason.
	Rejected map[RejectReason]int `json:"rejected_by_reason"`

	// KeyDuplicates counts retained rows whose five-field natural key collides
	// with another retained row. Such rows survive the run but share a
	// surrogate key, which downstream consumers may want to know about.
	KeyDuplicates int `json:"key_duplicates"`

	FactRows    int           `json:"fact_rows"`
	SegmentRows int           `json:"segment_rows"`
	Duration    time.Duration `json:"duration"`
}

// NewRunSummary returns a summary with the reject tally initialized.
func NewRunSummary() *RunSummary {
	return &RunSummary{Rejected: make(map[RejectReason]int)}
}

// TotalRejected sums the per-reason reject counts.
func (s *RunSummary) TotalRejected() int {
	total := 0
	for _, n := range s.Rejected {
		total += n
	}
	return total
}

// WarehouseStatus describes the state of the warehouse store.
type WarehouseStatus struct {
	Backend    string           `json:"backend"`
	Connected  bool             `json:"connected"`
	FactRows   int64            `json:"fact_rows"`
	TableSizes map[string]int64 `json:"table_sizes"`
}
