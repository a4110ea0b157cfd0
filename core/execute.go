package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mateuslg/flightmart/internal/contract"
	"github.com/mateuslg/flightmart/internal/outwriter"
	"github.com/mateuslg/flightmart/internal/source"
	"github.com/mateuslg/flightmart/internal/warehouse"
	"github.com/mateuslg/flightmart/schema"
)

// ExecutorFunc defines the function signature for executing different pipeline operations.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config) error

// GetBuildResults runs the full pipeline for one raw snapshot and materializes
// the result into the warehouse, returning the run summary.
func GetBuildResults(ctx context.Context, cfg *contract.Config) (*schema.RunSummary, error) {
	if cfg.InputPath == "" {
		return nil, errors.New("an input file is required: flightmart build <input-file>")
	}

	src := source.NewFileSource(cfg.InputPath, cfg.InputFormat)
	raws, err := src.Read(ctx)
	if err != nil {
		return nil, err
	}

	result, err := Run(raws)
	if err != nil {
		return nil, fmt.Errorf("pipeline aborted, warehouse left untouched: %w", err)
	}

	if err := warehouse.Store().ReplaceAll(result.Facts, result.Segments); err != nil {
		return nil, fmt.Errorf("failed to materialize warehouse: %w", err)
	}

	return result.Summary, nil
}

// GetPriceTrendResults loads the warehouse tables and computes the price trend view.
func GetPriceTrendResults(cfg *contract.Config) ([]schema.PriceTrendRecord, error) {
	facts, err := warehouse.Store().LoadFacts()
	if err != nil {
		return nil, fmt.Errorf("failed to load fact table: %w", err)
	}
	if len(facts) == 0 {
		return nil, errors.New("warehouse is empty; run 'flightmart build' first")
	}

	var segments []schema.FlightSegment
	if cfg.WithSegments {
		segments, err = warehouse.Store().LoadSegments()
		if err != nil {
			return nil, fmt.Errorf("failed to load segment table: %w", err)
		}
	}

	return PriceTrends(facts, segments), nil
}

// GetFlightMixResults loads the fact table and computes the flight mix view.
func GetFlightMixResults() ([]schema.FlightMixRecord, error) {
	facts, err := warehouse.Store().LoadFacts()
	if err != nil {
		return nil, fmt.Errorf("failed to load fact table: %w", err)
	}
	if len(facts) == 0 {
		return nil, errors.New("warehouse is empty; run 'flightmart build' first")
	}

	return FlightMix(facts), nil
}

// ExecuteWarehouseBuild runs the pipeline and prints the run summary.
// It serves as the main entry point for the 'build' command.
func ExecuteWarehouseBuild(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()

	fmt.Printf("🛫 flightmart: Building warehouse from %s\n", cfg.InputPath)

	summary, err := GetBuildResults(ctx, cfg)
	if err != nil {
		return err
	}

	summary.Duration = time.Since(start)
	return outwriter.NewOutWriter().WriteSummary(summary, cfg)
}

// ExecuteTrendView computes and prints the price trend view from the
// warehouse. It serves as the main entry point for the 'trend' command.
func ExecuteTrendView(_ context.Context, cfg *contract.Config) error {
	start := time.Now()

	records, err := GetPriceTrendResults(cfg)
	if err != nil {
		return err
	}

	duration := time.Since(start)
	return outwriter.NewOutWriter().WriteTrends(records, cfg, duration)
}

// ExecuteMixView computes and prints the flight mix view from the warehouse.
// It serves as the main entry point for the 'mix' command.
func ExecuteMixView(_ context.Context, cfg *contract.Config) error {
	start := time.Now()

	records, err := GetFlightMixResults()
	if err != nil {
		return err
	}

	duration := time.Since(start)
	return outwriter.NewOutWriter().WriteMix(records, cfg, duration)
}
