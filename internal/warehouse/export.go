package warehouse

import (
	"errors"
	"fmt"
	"os"

	"github.com/parquet-go/parquet-go"
)

// ExecuteWarehouseExport exports both warehouse tables to Parquet files.
func ExecuteWarehouseExport(outputFile string) error {
	// Validate that output file is specified
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	store := Store()

	// Check if there's any data to export
	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get warehouse status: %w", err)
	}

	if status.FactRows == 0 {
		return errors.New("no warehouse data found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Fact rows: %d\n", status.TableSizes[factTable])
	fmt.Printf("Segment rows: %d\n", status.TableSizes[segmentTable])

	facts, err := store.LoadFacts()
	if err != nil {
		return fmt.Errorf("failed to retrieve fact rows: %w", err)
	}

	segments, err := store.LoadSegments()
	if err != nil {
		return fmt.Errorf("failed to retrieve segment rows: %w", err)
	}

	// Write fact table to Parquet
	factsFile := outputFile + ".facts.parquet"
	if err := writeParquetFile(facts, factsFile); err != nil {
		return fmt.Errorf("failed to write fact rows: %w", err)
	}
	fmt.Printf("Exported %d fact rows to: %s\n", len(facts), factsFile)

	// Write dimension table to Parquet
	segmentsFile := outputFile + ".segments.parquet"
	if err := writeParquetFile(segments, segmentsFile); err != nil {
		return fmt.Errorf("failed to write segment rows: %w", err)
	}
	fmt.Printf("Exported %d segment rows to: %s\n", len(segments), segmentsFile)

	fmt.Println("\nExport complete! The Parquet files can be used with:")
	fmt.Println("  - Apache Spark")
	fmt.Println("  - Pandas (via pyarrow)")
	fmt.Println("  - DuckDB")
	fmt.Println("  - Any other Parquet-compatible tool")

	return nil
}

// writeParquetFile writes records of any row type to a Parquet file.
func writeParquetFile[T any](records []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[T](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(records); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	return nil
}
