// Package warehouse persists the itinerary fact and segment dimension tables.
package warehouse

import (
	"database/sql"
	"fmt"
	"os"
	"sync"

	"github.com/mateuslg/flightmart/internal/contract"
	"github.com/mateuslg/flightmart/schema"
)

// Table names for the warehouse.
const (
	factTable    = "itineraries_fact"
	segmentTable = "itinerary_dimension_segments"
)

// Global store instance for main logic.
var (
	store     contract.WarehouseStore
	storeMu   sync.RWMutex
	initOnce  sync.Once
	closeOnce sync.Once
)

// GetWarehouseDBFilePath returns the path to the default SQLite warehouse file.
func GetWarehouseDBFilePath() string {
	return contract.GetWarehouseDBFilePath()
}

// InitStore initializes the global warehouse store.
func InitStore(backend schema.DatabaseBackend, connStr string) error {
	var initErr error
	initOnce.Do(func() {
		s, err := NewStore(backend, connStr)
		if err != nil {
			initErr = fmt.Errorf("failed to initialize warehouse: %w", err)
			return
		}
		storeMu.Lock()
		store = s
		storeMu.Unlock()
	})
	return initErr
}

// Store returns the global warehouse store. It is nil until InitStore runs.
func Store() contract.WarehouseStore {
	storeMu.RLock()
	defer storeMu.RUnlock()
	return store
}

// CloseStore should be called on application shutdown.
func CloseStore() {
	closeOnce.Do(func() {
		storeMu.Lock()
		defer storeMu.Unlock()
		if store != nil {
			_ = store.Close()
		}
	})
}

// ClearWarehouse removes stored warehouse data for the specified backend.
// For SQLite it deletes the database file; for MySQL/PostgreSQL it drops the
// tables; for NoneBackend it does nothing.
func ClearWarehouse(backend schema.DatabaseBackend, dbFilePath, connStr string) error {
	switch backend {
	case schema.SQLiteBackend:
		if dbFilePath == "" {
			return fmt.Errorf("dbFilePath cannot be empty for SQLite backend")
		}
		if err := os.Remove(dbFilePath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove SQLite database file %s: %w", dbFilePath, err)
		}
		return nil

	case schema.MySQLBackend:
		return dropSQLTables("mysql", connStr)

	case schema.PostgreSQLBackend:
		return dropSQLTables("pgx", connStr)

	case schema.NoneBackend:
		return nil

	default:
		return fmt.Errorf("unsupported warehouse backend for clearing: %s", backend)
	}
}

// dropSQLTables connects to the SQL database and drops both warehouse tables.
func dropSQLTables(driverName, connStr string) error {
	db, err := sql.Open(driverName, connStr)
	if err != nil {
		return fmt.Errorf("failed to connect to %s database: %w", driverName, err)
	}
	defer func() { _ = db.Close() }()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to ping %s database: %w", driverName, err)
	}

	for _, table := range []string{segmentTable, factTable} {
		query := fmt.Sprintf("DROP TABLE IF EXISTS %s", table)
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("failed to drop table %s: %w", table, err)
		}
	}
	return nil
}
