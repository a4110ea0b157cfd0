package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mateuslg/flightmart/internal/contract"
	"github.com/mateuslg/flightmart/internal/warehouse"
	"github.com/mateuslg/flightmart/schema"
)

// warehouseSetup loads minimal configuration needed for warehouse operations.
// This is used by commands that need store access without full shared setup.
func warehouseSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get warehouse-related config values
	backend := schema.DatabaseBackend(viper.GetString("backend"))
	connStr := viper.GetString("db-connect")

	// Basic validation for database backends
	if err := contract.ValidateConnectionString(backend, connStr); err != nil {
		return err
	}

	// Get output-related config values (used by export command)
	outputFile := viper.GetString("output-file")

	// Initialize the store with the loaded config
	if err := warehouse.InitStore(backend, connStr); err != nil {
		return fmt.Errorf("failed to initialize warehouse: %w", err)
	}

	cfg.Backend = backend
	cfg.DBConnect = connStr
	cfg.OutputFile = outputFile

	return nil
}

// warehouseSetupWrapper wraps warehouseSetup to provide PreRunE for warehouse commands.
func warehouseSetupWrapper(_ *cobra.Command, _ []string) error {
	return warehouseSetup()
}

// warehouseMigrateSetup loads minimal configuration needed for migrate operations.
// This is a specialized setup that does NOT initialize the store or create
// tables, allowing migrations to run on a fresh database.
func warehouseMigrateSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get warehouse-related config values
	backend := schema.DatabaseBackend(viper.GetString("backend"))
	connStr := viper.GetString("db-connect")

	// Basic validation for database backends
	if err := contract.ValidateConnectionString(backend, connStr); err != nil {
		return err
	}

	cfg.Backend = backend
	cfg.DBConnect = connStr

	return nil
}

// warehouseMigrateSetupWrapper wraps warehouseMigrateSetup to provide PreRunE for migrate command.
func warehouseMigrateSetupWrapper(_ *cobra.Command, _ []string) error {
	return warehouseMigrateSetup()
}

// warehouseCmd focused on warehouse management.
//
// Note: Warehouse subcommands use minimal initialization (warehouseSetup)
// instead of the full sharedSetup used by pipeline commands. This avoids input
// file handling and complex config processing for simple store operations.
var warehouseCmd = &cobra.Command{
	Use:   "warehouse",
	Short: "Manage the warehouse store (status, clear, export, migrate)",
	Long: `Manage the store holding the fact and segment tables.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (in-memory)

Subcommands:
  status  - Show table sizes and connection info
  clear   - Remove all warehouse data
  export  - Export both tables to Parquet for analytics
  migrate - Run database schema migrations

Examples:
  # Check warehouse status
  flightmart warehouse status

  # Export for analysis in pandas/DuckDB
  flightmart warehouse export --output-file warehouse-data`,
}

// warehouseStatusCmd shows warehouse status.
var warehouseStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display warehouse statistics and connection details",
	Long: `Show detailed information about the warehouse store.

Displays:
- Backend type and connection status
- Fact and segment table row counts

Use this to:
- Verify the warehouse is reachable
- Check how much data the last build materialized
- Debug connection issues

Examples:
  # Check warehouse status
  flightmart warehouse status`,
	PreRunE: warehouseSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		status, err := warehouse.Store().GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get warehouse status", err)
		}
		warehouse.PrintWarehouseStatus(status)
	},
}

// warehouseClearCmd clears the warehouse.
var warehouseClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all warehouse data",
	Long: `Delete all fact and segment rows from the configured backend.

WARNING: This action cannot be undone. Consider exporting data first.

For SQLite: Deletes the database file
For MySQL/PostgreSQL: Drops both warehouse tables

Examples:
  # Export before clearing
  flightmart warehouse export --output-file backup
  flightmart warehouse clear

  # Clear a MySQL warehouse (set connection string via env variable)
  FLIGHTMART_BACKEND=mysql FLIGHTMART_DB_CONNECT="..." flightmart warehouse clear`,
	PreRunE: warehouseSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		// For SQLite the connection string, when set, is the database file path.
		dbFilePath := cfg.DBConnect
		if dbFilePath == "" {
			dbFilePath = warehouse.GetWarehouseDBFilePath()
		}
		if err := warehouse.ClearWarehouse(cfg.Backend, dbFilePath, cfg.DBConnect); err != nil {
			contract.LogFatal("Failed to clear warehouse", err)
		}
		fmt.Println("Warehouse cleared successfully.")
	},
}

// warehouseExportCmd exports warehouse data to Parquet files.
var warehouseExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export both tables to Parquet for BI tools and analytics",
	Long: `Export the warehouse tables to Parquet format for use with analytics tools.

Exports two datasets:
- Fact rows: one row per retained itinerary observation
- Segment rows: one row per physical flight within an observation

Requires: --output-file parameter (used as the file name prefix)

Examples:
  # Export all data
  flightmart warehouse export --output-file flightmart-data

  # Use with DuckDB for analysis
  flightmart warehouse export --output-file data
  duckdb -c "SELECT * FROM read_parquet('data.facts.parquet') LIMIT 10"`,
	PreRunE: warehouseSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := warehouse.ExecuteWarehouseExport(cfg.OutputFile); err != nil {
			contract.LogFatal("Failed to export warehouse data", err)
		}
	},
}

// warehouseMigrateCmd runs database migrations for the warehouse store.
var warehouseMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the warehouse store.

Migrations allow:
- Upgrading to new schema versions when flightmart is updated
- Safely modifying database structure without data loss
- Rolling back schema changes if needed

By default, migrates to the latest version. Use --target-version for specific versions.

Examples:
  # Migrate to latest version (default)
  flightmart warehouse migrate

  # Migrate to specific version
  flightmart warehouse migrate --target-version 1

  # Rollback to initial state
  flightmart warehouse migrate --target-version 0`,
	PreRunE: warehouseMigrateSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := warehouse.MigrateWarehouse(cfg.Backend, cfg.DBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}
