// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/archdrift/archdrift/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the Archdrift MCP server without
// starting it. This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, store contract.BaselineStore) *server.MCPServer {
	s := server.NewMCPServer(
		"Archdrift Analysis Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		store:   store,
	}

	// --- 1. Tool: analyze_coupling ---
	s.AddTool(mcp.NewTool("analyze_coupling",
		mcp.WithDescription("Compute coupling metrics, hotspots and migration complexity from dependency analysis files."),
		mcp.WithString("app", mcp.Description("Application name for the analysis.")),
		mcp.WithString("static_file", mcp.Description("Path to a static analyzer results JSON file.")),
		mcp.WithString("runtime_file", mcp.Description("Path to a runtime observation results JSON file.")),
		mcp.WithString("graph_file", mcp.Description("Path to a pre-built dependency graph JSON file.")),
		mcp.WithNumber("afferent_threshold", mcp.Description("Dependent count above which a component is a hotspot.")),
		mcp.WithNumber("efferent_threshold", mcp.Description("Dependency count above which a component is a hotspot.")),
	), h.handleAnalyzeCoupling)

	// --- 2. Tool: detect_drift ---
	s.AddTool(mcp.NewTool("detect_drift",
		mcp.WithDescription("Compare a current analysis snapshot against stored baselines and report architectural drift."),
		mcp.WithString("current_file", mcp.Description("Path to the current snapshot JSON file."), mcp.Required()),
		mcp.WithString("app", mcp.Description("Application name (defaults to the snapshot's application).")),
		mcp.WithNumber("baselines", mcp.Description("Maximum number of stored baselines to compare against.")),
		mcp.WithNumber("stable_band", mcp.Description("Percent change treated as stable (symmetric around zero).")),
	), h.handleDetectDrift)

	// --- 3. Tool: list_baselines ---
	s.AddTool(mcp.NewTool("list_baselines",
		mcp.WithDescription("List stored baseline snapshots for an application, newest first."),
		mcp.WithString("app", mcp.Description("Application name."), mcp.Required()),
		mcp.WithNumber("limit", mcp.Description("Maximum number of snapshots to return.")),
	), h.handleListBaselines)

	return s
}

// StartMCPServer starts the Archdrift MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, store contract.BaselineStore) error {
	s := NewMCPServer(baseCfg, store)
	return server.ServeStdio(s)
}
