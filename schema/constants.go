package schema

// Custom string types for type safety.
type (
	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for the warehouse.
	DatabaseBackend string

	// InputFormat represents the format of the raw observation input.
	InputFormat string

	// PriceChange classifies a fare against the immediately preceding observation.
	PriceChange string

	// RejectReason labels why a raw row was excluded from the pipeline.
	RejectReason string
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All warehouse backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// All raw input formats supported.
const (
	AutoFormat    InputFormat = "auto" // default: pick by file extension
	CSVFormat     InputFormat = "csv"
	ParquetFormat InputFormat = "parquet"
)

// Price change classifications against the previous observation in a cohort.
const (
	PriceChangeNA     PriceChange = "N/A" // earliest observation, nothing to compare
	PriceChangeHigher PriceChange = "HIGHER"
	PriceChangeLower  PriceChange = "LOWER"
	PriceChangeSame   PriceChange = "SAME"
)

// Reject reasons tallied by the pipeline.
const (
	RejectMissingField      RejectReason = "missing_required_field"
	RejectUnparseableDate   RejectReason = "unparseable_date"
	RejectMalformedSegments RejectReason = "malformed_segments"
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidBackends lists all valid warehouse backends.
var ValidBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// ValidInputFormats lists all valid raw input formats.
var ValidInputFormats = map[InputFormat]struct{}{
	AutoFormat:    {},
	CSVFormat:     {},
	ParquetFormat: {},
}
