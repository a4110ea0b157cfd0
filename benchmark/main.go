// Package main provides a performance benchmarking tool for the flightmart CLI.
// It measures execution times across synthetic snapshots of different sizes and
// command types, running each test multiple times, treating the first
// successful run as cold and averaging the rest as warm, generating CSV output
// for performance analysis and documentation.
//
// Prerequisites:
// - flightmart binary installed and available in PATH
//
// Usage: go run benchmark/main.go [work-dir]
//
//	work-dir: Directory where snapshots and the benchmark warehouse are written
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// BenchmarkResult holds the result of a benchmark run (cold run and average of warm runs).
type BenchmarkResult struct {
	Snapshot string
	Command  string
	ColdTime string
	WarmTime string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	WorkDir       string
	Timeout       time.Duration
	Runs          int
	SnapshotSizes map[string]int
}

func main() {
	// Parse command line arguments
	if len(os.Args) != 2 {
		fmt.Printf("Usage: %s [work-dir]\n", os.Args[0])
		os.Exit(1)
	}
	workDir := os.Args[1]

	config := BenchmarkConfig{
		WorkDir: workDir,
		Timeout: 5 * time.Minute,
		Runs:    4,
		SnapshotSizes: map[string]int{
			"small":  1_000,
			"medium": 10_000,
			"large":  100_000,
		},
	}

	if err := checkPrerequisites(config); err != nil {
		fmt.Printf("Prerequisites check failed: %v\n", err)
		os.Exit(1)
	}

	results := runBenchmarks(config)

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(results)
}

// checkPrerequisites verifies that the flightmart binary and work directory exist
func checkPrerequisites(config BenchmarkConfig) error {
	if _, err := exec.LookPath("flightmart"); err != nil {
		return fmt.Errorf("flightmart binary not found in PATH")
	}

	if err := os.MkdirAll(config.WorkDir, 0o755); err != nil {
		return fmt.Errorf("cannot create work directory %s: %w", config.WorkDir, err)
	}

	return nil
}

// runBenchmarks executes all benchmark tests across configured snapshot sizes
func runBenchmarks(config BenchmarkConfig) []BenchmarkResult {
	var results []BenchmarkResult

	fmt.Printf("Starting benchmark: %d snapshots, %v timeout, %d runs per command\n",
		len(config.SnapshotSizes), config.Timeout, config.Runs)

	for _, name := range []string{"small", "medium", "large"} {
		size := config.SnapshotSizes[name]
		fmt.Printf("Benchmarking %s snapshot (%d rows)\n", name, size)

		snapshotPath := filepath.Join(config.WorkDir, fmt.Sprintf("snapshot_%s.csv", name))
		if err := generateSnapshot(snapshotPath, size); err != nil {
			fmt.Printf("  Failed to generate snapshot: %v\n", err)
			continue
		}
		dbPath := filepath.Join(config.WorkDir, fmt.Sprintf("benchmark_%s.db", name))

		// build must run first so trend and mix have a warehouse to read
		results = append(results, runBenchmarkSuite(config, name, "build", []string{"build", snapshotPath, "--db-connect", dbPath}))
		results = append(results, runBenchmarkSuite(config, name, "trend", []string{"trend", "--db-connect", dbPath}))
		results = append(results, runBenchmarkSuite(config, name, "mix", []string{"mix", "--db-connect", dbPath}))
	}

	return results
}

// runBenchmarkSuite runs one command multiple times and summarizes cold/warm timings
func runBenchmarkSuite(config BenchmarkConfig, snapshot, command string, args []string) BenchmarkResult {
	fmt.Printf("Running %s on %s snapshot (%d runs)\n", command, snapshot, config.Runs)

	cold, warmTimes := runBenchmark(config, args)

	coldStr := "TIMEOUT"
	if cold > 0 {
		coldStr = fmt.Sprintf("%.3fs", cold)
	}

	warmStr := "TIMEOUT"
	if len(warmTimes) > 0 {
		var sum float64
		for _, t := range warmTimes {
			sum += t
		}
		warmStr = fmt.Sprintf("%.3fs", sum/float64(len(warmTimes)))
	}

	fmt.Printf("  Cold time: %s, Warm average: %s\n", coldStr, warmStr)

	return BenchmarkResult{
		Snapshot: snapshot,
		Command:  command,
		ColdTime: coldStr,
		WarmTime: warmStr,
	}
}

// runBenchmark executes a flightmart command multiple times and returns cold time and warm times
func runBenchmark(config BenchmarkConfig, args []string) (coldTime float64, warmTimes []float64) {
	var times []float64
	for run := 1; run <= config.Runs; run++ {
		start := time.Now()

		cmd := exec.Command("flightmart", args...)

		done := make(chan bool)
		var output []byte
		var cmdErr error

		go func() {
			output, cmdErr = cmd.CombinedOutput()
			done <- true
		}()

		select {
		case <-done:
			if cmdErr == nil && isSuccess(output, args[0]) {
				times = append(times, time.Since(start).Seconds())
			}
		case <-time.After(config.Timeout):
			// Timeout - don't add to times
		}
	}

	if len(times) > 0 {
		coldTime = times[0]
		warmTimes = times[1:]
	}
	return
}

// isSuccess checks if command output indicates successful completion
func isSuccess(output []byte, command string) bool {
	outputStr := string(output)

	switch command {
	case "build":
		return strings.Contains(outputStr, "Build completed in")
	case "trend":
		return strings.Contains(outputStr, "Trend view computed in")
	case "mix":
		return strings.Contains(outputStr, "Mix view computed in")
	default:
		return false
	}
}

// generateSnapshot writes a synthetic raw CSV snapshot with the given row count.
// Legs repeat across several search days so the current-marking and trend logic
// have real work to do.
func generateSnapshot(path string, rows int) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close file %s: %v\n", path, closeErr)
		}
	}()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{
		"legId", "searchDate", "flightDate", "startingAirport", "destinationAirport",
		"fareBasisCode", "travelDuration", "elapsedDays", "isBasicEconomy", "isRefundable",
		"isNonStop", "baseFare", "totalFare", "seatsRemaining", "totalTravelDistance",
		"segmentsDepartureTimeEpochSeconds", "segmentsDepartureTimeRaw",
		"segmentsArrivalTimeEpochSeconds", "segmentsArrivalTimeRaw",
		"segmentsArrivalAirportCode", "segmentsDepartureAirportCode",
		"segmentsAirlineName", "segmentsAirlineCode", "segmentsEquipmentDescription",
		"segmentsDurationInSeconds", "segmentsDistance", "segmentsCabinCode",
	}
	if err := writer.Write(header); err != nil {
		return err
	}

	routes := [][2]string{{"JFK", "LAX"}, {"BOS", "SFO"}, {"ATL", "ORD"}, {"DEN", "SEA"}}
	baseDay := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	for i := range rows {
		route := routes[i%len(routes)]
		leg := fmt.Sprintf("LEG-%s-%s-%04d", route[0], route[1], i/16)
		searchDate := baseDay.AddDate(0, 0, -(i % 8)).Format("2006-01-02")
		flightDate := baseDay.AddDate(0, 0, 14+(i/16)%30).Format("2006-01-02")
		fare := strconv.FormatFloat(120.0+float64(i%300), 'f', 2, 64)
		seats := strconv.Itoa(1 + i%9)

		record := []string{
			leg, searchDate, flightDate, route[0], route[1],
			"QAA0AKEN", "PT6H15M", "0", strconv.FormatBool(i%3 == 0), "false",
			strconv.FormatBool(i%2 == 0), fare, fare, seats, "2475",
			"1757926800", "2026-09-15T09:00:00.000-04:00",
			"1757949300", "2026-09-15T12:15:00.000-07:00",
			route[1], route[0],
			"Delta", "DL", "Airbus A321",
			"22500", "2475", "coach",
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	return nil
}

// saveResults writes benchmark results to a timestamped CSV file
func saveResults(results []BenchmarkResult) error {
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("/tmp/flightmart_benchmark_%s.csv", timestamp)

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close file %s: %v\n", filename, closeErr)
		}
	}()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	// Write header
	if err := writer.Write([]string{"snapshot", "cmd", "cold_time", "warm_avg"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	// Write results
	for _, result := range results {
		if err := writer.Write([]string{result.Snapshot, result.Command, result.ColdTime, result.WarmTime}); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	fmt.Printf("Results saved to %s\n", filename)
	return nil
}

// printSummary displays the final benchmark results summary
func printSummary(results []BenchmarkResult) {
	fmt.Printf("Benchmark complete\n")

	printCommandSummary(results, "build", "Warehouse Build:")
	printCommandSummary(results, "trend", "Trend View:")
	printCommandSummary(results, "mix", "Mix View:")

	fmt.Printf("Benchmark script completed successfully\n")
}

// printCommandSummary displays results for a specific command type
func printCommandSummary(results []BenchmarkResult, command, title string) {
	fmt.Printf("%s\n", title)
	for _, result := range results {
		if result.Command == command {
			fmt.Printf("  %-8s: Cold: %s, Warm: %s\n", result.Snapshot, result.ColdTime, result.WarmTime)
		}
	}
}
