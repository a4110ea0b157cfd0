package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mateuslg/flightmart/core"
	"github.com/mateuslg/flightmart/internal/contract"
)

// mixCmd computes the flight mix view over the warehouse.
var mixCmd = &cobra.Command{
	Use:   "mix",
	Short: "Show the stop and fare-class mix per route and flight date.",
	Long: `Compute the flight mix view over the current fact rows.

For every route and flight date, counts the current observations by stop and
fare-class combinations: non-stop versus with stops, basic economy versus
other fare classes, and the four combined buckets, plus the group total.

Only rows marked current (the latest observation of each leg) are counted,
so each flight contributes exactly once.

Examples:
  # Show the mix as a table
  flightmart mix

  # Export for spreadsheet analysis
  flightmart mix --output csv --output-file mix.csv`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteMixView(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot compute mix view", err)
		}
	},
}
