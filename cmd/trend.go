package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mateuslg/flightmart/core"
	"github.com/mateuslg/flightmart/internal/contract"
)

// trendCmd computes the price trend view over the warehouse.
var trendCmd = &cobra.Command{
	Use:   "trend",
	Short: "Show fare movement for every observation against its leg's history.",
	Long: `Compute the price analysis view over the fact table.

Each observation of a leg is compared against the oldest and the immediately
preceding observation of the same leg, flight date and route:
- Whether the fare went up or down versus the oldest observation
- HIGHER / LOWER / SAME versus the previous observation (N/A for the earliest)
- A flag when the fare dropped and fewer than 10 seats remain

Records are ordered by search date and flight date descending, then route
and leg ascending.

Examples:
  # Show the trend view as a table
  flightmart trend

  # Include per-segment flight details
  flightmart trend --segments --output json

  # Export the view for notebooks
  flightmart trend --output parquet --output-file trends.parquet`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteTrendView(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot compute trend view", err)
		}
	},
}
