// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/mateuslg/flightmart/internal/contract"
)

// NewMCPServer initializes and configures the flightmart MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config) *server.MCPServer {
	s := server.NewMCPServer(
		"Flightmart Warehouse Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
	}

	// --- 1. Tool: build_warehouse ---
	s.AddTool(mcp.NewTool("build_warehouse",
		mcp.WithDescription("Run the itinerary pipeline on a raw observation file and materialize the warehouse tables."),
		mcp.WithString("input_path", mcp.Description("Path to the raw observation file (CSV or Parquet)."), mcp.Required()),
		mcp.WithString("format", mcp.Description("Input format (csv, parquet, auto). Defaults to 'auto'."), mcp.Enum("csv", "parquet", "auto")),
	), h.handleBuildWarehouse)

	// --- 2. Tool: get_price_trends ---
	s.AddTool(mcp.NewTool("get_price_trends",
		mcp.WithDescription("Compute the price trend view over the warehouse: per-observation fare movement against the oldest and previous observations of the same leg."),
		mcp.WithNumber("limit", mcp.Description("Limit the number of results returned.")),
		mcp.WithBoolean("segments", mcp.Description("Attach per-segment flight details to each record.")),
	), h.handleGetPriceTrends)

	// --- 3. Tool: get_flight_mix ---
	s.AddTool(mcp.NewTool("get_flight_mix",
		mcp.WithDescription("Compute the flight mix view: counts of current observations per route and flight date, split by stop and fare-class combinations."),
		mcp.WithNumber("limit", mcp.Description("Limit the number of results returned.")),
	), h.handleGetFlightMix)

	return s
}

// StartMCPServer starts the flightmart MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config) error {
	s := NewMCPServer(baseCfg)
	return server.ServeStdio(s)
}
