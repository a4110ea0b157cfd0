package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/mateuslg/flightmart/core"
	"github.com/mateuslg/flightmart/internal/contract"
	"github.com/mateuslg/flightmart/schema"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
}

func (h *toolHandler) handleBuildWarehouse(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	cfg.InputPath = request.GetString("input_path", "")
	if cfg.InputPath == "" {
		return mcp.NewToolResultError("input_path is required"), nil
	}
	if f := request.GetString("format", ""); f != "" {
		format := schema.InputFormat(f)
		if _, ok := schema.ValidInputFormats[format]; !ok {
			return mcp.NewToolResultError(fmt.Sprintf("invalid format %q: want csv, parquet or auto", f)), nil
		}
		cfg.InputFormat = format
	}

	summary, err := core.GetBuildResults(ctx, cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("build failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(summary, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetPriceTrends(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if l := request.GetInt("limit", 0); l > 0 {
		cfg.ResultLimit = l
	}
	cfg.WithSegments = request.GetBool("segments", cfg.WithSegments)

	records, err := core.GetPriceTrendResults(cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("trend view failed: %v", err)), nil
	}
	if cfg.ResultLimit > 0 && len(records) > cfg.ResultLimit {
		records = records[:cfg.ResultLimit]
	}

	jsonData, _ := json.MarshalIndent(records, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetFlightMix(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if l := request.GetInt("limit", 0); l > 0 {
		cfg.ResultLimit = l
	}

	records, err := core.GetFlightMixResults()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("mix view failed: %v", err)), nil
	}
	if cfg.ResultLimit > 0 && len(records) > cfg.ResultLimit {
		records = records[:cfg.ResultLimit]
	}

	jsonData, _ := json.MarshalIndent(records, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
