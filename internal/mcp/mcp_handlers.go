package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/archdrift/archdrift/core"
	"github.com/archdrift/archdrift/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	store   contract.BaselineStore
}

func (h *toolHandler) handleAnalyzeCoupling(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if a := request.GetString("app", ""); a != "" {
		cfg.ApplicationName = a
	}
	cfg.StaticFile = request.GetString("static_file", "")
	cfg.RuntimeFile = request.GetString("runtime_file", "")
	cfg.GraphFile = request.GetString("graph_file", "")
	if t := request.GetInt("afferent_threshold", 0); t > 0 {
		cfg.Coupling.AfferentHotspotThreshold = t
	}
	if t := request.GetInt("efferent_threshold", 0); t > 0 {
		cfg.Coupling.EfferentHotspotThreshold = t
	}

	result, err := core.GetCouplingResults(cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("coupling analysis failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(core.NewMetricsExport(result), "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleDetectDrift(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	cfg.CurrentFile = request.GetString("current_file", "")
	cfg.BaselineFiles = nil
	if a := request.GetString("app", ""); a != "" {
		cfg.ApplicationName = a
	}
	if l := request.GetInt("baselines", 0); l > 0 {
		cfg.BaselineLimit = l
	}
	if band := request.GetFloat("stable_band", 0); band > 0 {
		cfg.Drift.StableBandPct = band
		if err := cfg.Drift.Validate(); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid drift parameters: %v", err)), nil
		}
	}

	analysis, err := core.GetDriftResults(cfg, h.store)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("drift detection failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(analysis, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleListBaselines(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	applicationName := request.GetString("app", "")
	limit := request.GetInt("limit", h.baseCfg.BaselineLimit)

	snapshots, err := h.store.ListSnapshots(applicationName, limit)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list baselines: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(snapshots, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
