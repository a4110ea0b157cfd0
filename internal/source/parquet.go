package source

import (
	"context"
	"fmt"
	"os"

	"github.com/mateuslg/flightmart/schema"
	"github.com/parquet-go/parquet-go"
)

// parquetSource reads raw observations from a Parquet file whose columns
// match the raw feed's CSV headers, the shape written by WriteRawParquet and
// by the upstream CSV-to-Parquet converter.
type parquetSource struct {
	path string
}

func (s *parquetSource) Read(ctx context.Context) ([]schema.RawObservation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rows, err := parquet.ReadFile[schema.RawObservation](s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read parquet input %q: %w", s.path, err)
	}
	return rows, nil
}

// WriteRawParquet writes raw observations to a Parquet file in the same
// column shape the parquet source reads. Used by tests and the demo
// generator.
func WriteRawParquet(rows []schema.RawObservation, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[schema.RawObservation](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(rows); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	return nil
}
