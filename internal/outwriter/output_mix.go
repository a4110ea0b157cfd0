package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/mateuslg/flightmart/internal/contract"
	"github.com/mateuslg/flightmart/schema"
)

// WriteMixResults outputs the flight mix view, dispatching based on the output format configured.
func WriteMixResults(records []schema.FlightMixRecord, cfg *contract.Config, duration time.Duration) error {
	records = applyLimit(records, cfg.ResultLimit)

	_, intFmt := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeMixJSONResults(records, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeMixCSVResults(records, cfg, intFmt); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := writeParquet(records, cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing parquet output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeMixTable(records, cfg, intFmt, duration, w)
		}, "Wrote table")
	}
	return nil
}

// writeMixJSONResults handles opening the file and calling the JSON writer.
func writeMixJSONResults(records []schema.FlightMixRecord, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSONResultsForMix(w, records)
	}, "Wrote JSON")
}

// writeMixCSVResults handles opening the file and calling the CSV writer.
func writeMixCSVResults(records []schema.FlightMixRecord, cfg *contract.Config, intFmt string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		csvWriter := csv.NewWriter(w)
		defer csvWriter.Flush()
		return writeCSVResultsForMix(csvWriter, records, intFmt)
	}, "Wrote CSV")
}

// writeMixTable generates and writes the human-readable table.
func writeMixTable(records []schema.FlightMixRecord, cfg *contract.Config, intFmt string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	headers := []string{"Rank", "Flight", "Route", "NonStop", "Stops", "Economy", "NotEconomy", "NS+Eco", "Stop+Eco", "NS+NotEco", "Stop+NotEco", "Total"}
	table.Header(headers)

	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for i, r := range records {
		row := []string{
			strconv.Itoa(i + 1), // Rank
			r.FlightDate.Format(schema.DateLayout),
			fmt.Sprintf("%s-%s", r.StartingAirport, r.DestinationAirport),
			fmt.Sprintf(intFmt, r.NonStopFlights),
			fmt.Sprintf(intFmt, r.NotNonStopFlights),
			fmt.Sprintf(intFmt, r.BasicEconomyFlights),
			fmt.Sprintf(intFmt, r.NotBasicEconomyFlights),
			fmt.Sprintf(intFmt, r.NonStopEconomyFlights),
			fmt.Sprintf(intFmt, r.StopEconomyFlights),
			fmt.Sprintf(intFmt, r.NonStopNotEconomyFlights),
			fmt.Sprintf(intFmt, r.StopNotEconomyFlights),
			fmt.Sprintf(intFmt, r.TotalFlightsInGroup),
		}
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	// Compute summary stats
	totalFlights := 0
	for _, r := range records {
		totalFlights += r.TotalFlightsInGroup
	}
	if _, err := fmt.Fprintf(writer, "Showing %d route-date groups (total current flights: %d)\n", len(records), totalFlights); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Mix view computed in %v. Warehouse backend: %s\n", duration, cfg.Backend); err != nil {
		return err
	}
	return nil
}

// writeCSVResultsForMix writes the flight mix view in CSV format.
func writeCSVResultsForMix(w *csv.Writer, records []schema.FlightMixRecord, intFmt string) error {
	header := []string{
		"rank",
		"flightDate",
		"startingAirport",
		"destinationAirport",
		"non_stop_flights",
		"not_non_stop_flights",
		"basic_economy_flights",
		"not_basic_economy_flights",
		"non_stop_economic_flights",
		"stop_economic_flights",
		"non_stop_not_economic_flights",
		"stop_not_economic_flights",
		"total_flights_in_group",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for i, r := range records {
		rec := []string{
			strconv.Itoa(i + 1), // Rank
			r.FlightDate.Format(schema.DateLayout),
			r.StartingAirport,
			r.DestinationAirport,
			fmt.Sprintf(intFmt, r.NonStopFlights),
			fmt.Sprintf(intFmt, r.NotNonStopFlights),
			fmt.Sprintf(intFmt, r.BasicEconomyFlights),
			fmt.Sprintf(intFmt, r.NotBasicEconomyFlights),
			fmt.Sprintf(intFmt, r.NonStopEconomyFlights),
			fmt.Sprintf(intFmt, r.StopEconomyFlights),
			fmt.Sprintf(intFmt, r.NonStopNotEconomyFlights),
			fmt.Sprintf(intFmt, r.StopNotEconomyFlights),
			fmt.Sprintf(intFmt, r.TotalFlightsInGroup),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

// writeJSONResultsForMix writes the flight mix view in JSON format.
func writeJSONResultsForMix(w io.Writer, records []schema.FlightMixRecord) error {
	type JSONMixRecord struct {
		Rank int `json:"rank"`
		schema.FlightMixRecord
	}

	output := make([]JSONMixRecord, len(records))
	for i, r := range records {
		output[i] = JSONMixRecord{
			Rank:            i + 1,
			FlightMixRecord: r,
		}
	}

	return writeJSON(w, output)
}
