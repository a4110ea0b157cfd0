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

// WriteTrendResults outputs the price trend view, dispatching based on the output format configured.
func WriteTrendResults(records []schema.PriceTrendRecord, cfg *contract.Config, duration time.Duration) error {
	records = applyLimit(records, cfg.ResultLimit)

	// Create formatters using helper
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeTrendJSONResults(records, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeTrendCSVResults(records, cfg, fmtFloat, intFmt); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := writeParquet(records, cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing parquet output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeTrendTable(records, cfg, fmtFloat, intFmt, duration, w)
		}, "Wrote table")
	}
	return nil
}

// writeTrendJSONResults handles opening the file and calling the JSON writer.
func writeTrendJSONResults(records []schema.PriceTrendRecord, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSONResultsForTrends(w, records)
	}, "Wrote JSON")
}

// writeTrendCSVResults handles opening the file and calling the CSV writer.
func writeTrendCSVResults(records []schema.PriceTrendRecord, cfg *contract.Config, fmtFloat func(float64) string, intFmt string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		csvWriter := csv.NewWriter(w)
		defer csvWriter.Flush()
		return writeCSVResultsForTrends(csvWriter, records, fmtFloat, intFmt)
	}, "Wrote CSV")
}

// writeTrendTable generates and writes the human-readable table.
func writeTrendTable(records []schema.PriceTrendRecord, cfg *contract.Config, fmtFloat func(float64) string, intFmt string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	// 1. Define Headers
	headers := []string{"Rank", "Key", "Search", "Flight", "Route", "Fare", "Oldest", "Previous", "Change", "Seats"}
	if cfg.WithSegments {
		headers = append(headers, "Segments")
	}
	table.Header(headers)

	// 2. Configure Separators/Borders to match a minimal look
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Populate Rows
	var data [][]string
	for i, r := range records {
		previous := "-"
		if r.PreviousTotalFare != nil {
			previous = fmtFloat(*r.PreviousTotalFare)
		}
		change := contract.GetPlainChangeLabel(r.PriceChangeVsPrevious)
		if cfg.UseColors {
			change = contract.GetColorChangeLabel(r.PriceChangeVsPrevious)
		}
		row := []string{
			strconv.Itoa(i + 1), // Rank
			contract.TruncateKey(r.ItinerarySK, GetMaxTableKeyWidth(cfg)),
			r.SearchDate.Format(schema.DateLayout),
			r.FlightDate.Format(schema.DateLayout),
			fmt.Sprintf("%s-%s", r.StartingAirport, r.DestinationAirport),
			fmtFloat(r.TotalFare),
			fmtFloat(r.OldestTotalFare),
			previous,
			change,
			fmt.Sprintf(intFmt, r.SeatsRemaining),
		}
		if cfg.WithSegments {
			row = append(row, fmt.Sprintf(intFmt, len(r.Segments)))
		}
		data = append(data, row)
	}

	// 4. Render the table
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	// Compute summary stats
	numRecords := len(records)
	numDrops := 0
	numAlerts := 0
	for _, r := range records {
		if r.PriceChangeVsPrevious == schema.PriceChangeLower {
			numDrops++
		}
		if r.PriceDownAndLowSeatsVsOldest {
			numAlerts++
		}
	}
	if _, err := fmt.Fprintf(writer, "Showing %d observations (%d price drops, %d low-seat fare alerts)\n", numRecords, numDrops, numAlerts); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Trend view computed in %v. Warehouse backend: %s\n", duration, cfg.Backend); err != nil {
		return err
	}
	return nil
}

// writeCSVResultsForTrends writes the price trend view in CSV format.
func writeCSVResultsForTrends(w *csv.Writer, records []schema.PriceTrendRecord, fmtFloat func(float64) string, intFmt string) error {
	// CSV header
	header := []string{
		"rank",
		"itinerary_sk",
		"legId",
		"is_current",
		"searchDate",
		"flightDate",
		"startingAirport",
		"destinationAirport",
		"isBasicEconomy",
		"isRefundable",
		"isNonStop",
		"seatsRemaining",
		"totalFare",
		"oldest_total_fare",
		"previous_total_fare",
		"price_went_up_vs_oldest",
		"price_went_down_vs_oldest",
		"price_change_vs_previous",
		"price_down_and_low_seats_vs_oldest",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for i, r := range records {
		previous := ""
		if r.PreviousTotalFare != nil {
			previous = fmtFloat(*r.PreviousTotalFare)
		}
		rec := []string{
			strconv.Itoa(i + 1), // Rank
			r.ItinerarySK,
			r.LegID,
			strconv.FormatBool(r.IsCurrent),
			r.SearchDate.Format(schema.DateLayout),
			r.FlightDate.Format(schema.DateLayout),
			r.StartingAirport,
			r.DestinationAirport,
			strconv.FormatBool(r.IsBasicEconomy),
			strconv.FormatBool(r.IsRefundable),
			strconv.FormatBool(r.IsNonStop),
			fmt.Sprintf(intFmt, r.SeatsRemaining),
			fmtFloat(r.TotalFare),
			fmtFloat(r.OldestTotalFare),
			previous,
			strconv.FormatBool(r.PriceWentUpVsOldest),
			strconv.FormatBool(r.PriceWentDownVsOldest),
			contract.GetPlainChangeLabel(r.PriceChangeVsPrevious),
			strconv.FormatBool(r.PriceDownAndLowSeatsVsOldest),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

// writeJSONResultsForTrends writes the price trend view in JSON format.
func writeJSONResultsForTrends(w io.Writer, records []schema.PriceTrendRecord) error {
	// 1. Prepare the data structure for JSON with rank added
	type JSONTrendRecord struct {
		Rank int `json:"rank"`
		schema.PriceTrendRecord
	}

	output := make([]JSONTrendRecord, len(records))
	for i, r := range records {
		output[i] = JSONTrendRecord{
			Rank:             i + 1,
			PriceTrendRecord: r,
		}
	}

	// 2. Use the generic JSON writer
	return writeJSON(w, output)
}
