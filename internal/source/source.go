// Package source reads raw observation snapshots from local files.
package source

import (
	"github.com/mateuslg/flightmart/internal/contract"
	"github.com/mateuslg/flightmart/schema"
)

// NewFileSource returns a RawSource for the given path. The format should
// already be resolved (csv or parquet); auto falls back to CSV.
func NewFileSource(path string, format schema.InputFormat) contract.RawSource {
	if contract.ResolveFormat(path, format) == schema.ParquetFormat {
		return &parquetSource{path: path}
	}
	return &csvSource{path: path}
}
