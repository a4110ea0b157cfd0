// Package cmd defines the command-line interface for flightmart.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mateuslg/flightmart/internal/contract"
	"github.com/mateuslg/flightmart/schema"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(trendCmd)
	rootCmd.AddCommand(mixCmd)
	rootCmd.AddCommand(warehouseCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the warehouse subcommands to the parent warehouse command
	warehouseCmd.AddCommand(warehouseStatusCmd)
	warehouseCmd.AddCommand(warehouseClearCmd)
	warehouseCmd.AddCommand(warehouseExportCmd)
	warehouseCmd.AddCommand(warehouseMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("format", string(schema.AutoFormat), "Input format: csv or parquet or auto")
	rootCmd.PersistentFlags().String("backend", string(schema.SQLiteBackend), "Warehouse backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().IntP("limit", "l", 0, "Number of results to display (0 = all)")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for fare columns")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("profile", "", "Enable profiling and write profiles to files with this prefix")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of trendCmd to Viper
	trendCmd.Flags().Bool("segments", false, "Attach per-segment flight details to each record")
	if err := viper.BindPFlags(trendCmd.Flags()); err != nil {
		contract.LogFatal("Error binding trend flags", err)
	}

	// Bind all flags of warehouseMigrateCmd to Viper
	warehouseMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(warehouseMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding warehouse migrate flags", err)
	}
}
