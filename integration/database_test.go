//go:build database

package integration

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestFlightmartWithMySQL tests the flightmart CLI with a MySQL backend.
func TestFlightmartWithMySQL(t *testing.T) {
	ctx := context.Background()

	// Start MySQL container
	req := testcontainers.ContainerRequest{
		Image:        "mysql:8",
		ExposedPorts: []string{"3306:3306/tcp"},
		Env: map[string]string{
			"MYSQL_ROOT_PASSWORD": "secret123",
			"MYSQL_DATABASE":      "flightmart",
		},
		WaitingFor: wait.ForLog("port: 3306  MySQL Community Server").WithStartupTimeout(30 * time.Second),
	}
	mysqlC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = mysqlC.Terminate(ctx) }()

	// Get connection details
	host, err := mysqlC.Host(ctx)
	require.NoError(t, err)
	port, err := mysqlC.MappedPort(ctx, "3306")
	require.NoError(t, err)

	connStr := fmt.Sprintf("root:secret123@tcp(%s:%s)/flightmart?parseTime=true", host, port.Port())

	// Set environment variables
	_ = os.Setenv("FLIGHTMART_BACKEND", "mysql")
	_ = os.Setenv("FLIGHTMART_DB_CONNECT", connStr)
	defer func() { _ = os.Unsetenv("FLIGHTMART_BACKEND") }()
	defer func() { _ = os.Unsetenv("FLIGHTMART_DB_CONNECT") }()

	runWarehouseLifecycle(t)
}

// TestFlightmartWithPostgres tests the flightmart CLI with a PostgreSQL backend.
func TestFlightmartWithPostgres(t *testing.T) {
	ctx := context.Background()

	// Start Postgres container
	req := testcontainers.ContainerRequest{
		Image:        "postgres:18-alpine",
		ExposedPorts: []string{"5432:5432/tcp"},
		Env: map[string]string{
			"POSTGRES_HOST_AUTH_METHOD": "trust",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").WithStartupTimeout(30 * time.Second),
	}
	pgC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = pgC.Terminate(ctx) }()
	time.Sleep(5 * time.Second)

	// Get connection details
	host, err := pgC.Host(ctx)
	require.NoError(t, err)
	port, err := pgC.MappedPort(ctx, "5432")
	require.NoError(t, err)

	connStr := fmt.Sprintf("postgres://postgres@%s:%s/postgres", host, port.Port())

	// Set environment variables
	_ = os.Setenv("FLIGHTMART_BACKEND", "postgresql")
	_ = os.Setenv("FLIGHTMART_DB_CONNECT", connStr)
	defer func() { _ = os.Unsetenv("FLIGHTMART_BACKEND") }()
	defer func() { _ = os.Unsetenv("FLIGHTMART_DB_CONNECT") }()

	runWarehouseLifecycle(t)
}

// runWarehouseLifecycle exercises clear, build, trend, mix and status against
// the backend configured through the environment.
func runWarehouseLifecycle(t *testing.T) {
	snapshot := writeSnapshotCSV(t)

	err := runFlightmartCommand(t, "warehouse", "clear")
	require.NoError(t, err)

	err = runFlightmartCommand(t, "build", snapshot)
	require.NoError(t, err)

	err = runFlightmartCommand(t, "trend", "--limit", "5")
	require.NoError(t, err)

	err = runFlightmartCommand(t, "mix")
	require.NoError(t, err)

	err = runFlightmartCommand(t, "warehouse", "status")
	require.NoError(t, err)
}
