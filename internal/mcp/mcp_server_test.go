package mcp_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/archdrift/archdrift/internal/basestore"
	"github.com/archdrift/archdrift/internal/contract"
	mcp_internal "github.com/archdrift/archdrift/internal/mcp"
	"github.com/archdrift/archdrift/schema"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBaseConfig() *contract.Config {
	return &contract.Config{
		ApplicationName: "billing",
		BaselineLimit:   contract.DefaultBaselineLimit,
		Precision:       contract.DefaultPrecision,
		Coupling:        contract.DefaultCouplingConfig(),
		Drift:           contract.DefaultDriftConfig(),
	}
}

func writeTempJSON(t *testing.T, name string, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestMCPServerHandlers_ValidationErrors(t *testing.T) {
	mockStore := &basestore.MockBaselineStore{}
	s := mcp_internal.NewMCPServer(testBaseConfig(), mockStore)

	ctx := context.Background()

	t.Run("analyze_coupling missing inputs", func(t *testing.T) {
		tool := s.GetTool("analyze_coupling")
		require.NotNil(t, tool, "Tool analyze_coupling should exist")

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name:      "analyze_coupling",
				Arguments: map[string]any{},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err, "The MCP handler should not return a raw error for tool logic failures")
		assert.True(t, res.IsError, "The response should indicate an error state")
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "dependency graph file is required")
	})

	t.Run("detect_drift missing current file", func(t *testing.T) {
		tool := s.GetTool("detect_drift")
		require.NotNil(t, tool, "Tool detect_drift should exist")

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "detect_drift",
				Arguments: map[string]any{
					"current_file": "",
				},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "current snapshot file is required")
	})

	t.Run("detect_drift invalid stable band", func(t *testing.T) {
		tool := s.GetTool("detect_drift")
		require.NotNil(t, tool)

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "detect_drift",
				Arguments: map[string]any{
					"current_file": "irrelevant.json",
					"stable_band":  90.0, // exceeds category thresholds
				},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "invalid drift parameters")
	})
}

func TestMCPServerHandlers_AnalyzeCoupling(t *testing.T) {
	mockStore := &basestore.MockBaselineStore{}
	s := mcp_internal.NewMCPServer(testBaseConfig(), mockStore)

	staticPath := writeTempJSON(t, "static.json", schema.StaticResults{
		DependencyAnalysis: schema.DependencyAnalysis{
			InternalDependencies: map[string][]string{
				"orders":   {"billing", "catalog"},
				"billing":  {"catalog"},
				"checkout": {"orders"},
			},
		},
	})

	tool := s.GetTool("analyze_coupling")
	require.NotNil(t, tool)

	req := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name: "analyze_coupling",
			Arguments: map[string]any{
				"static_file": staticPath,
				"app":         "storefront",
			},
		},
	}

	res, err := tool.Handler(context.Background(), req)
	require.NoError(t, err)
	require.False(t, res.IsError)

	text := res.Content[0].(mcp.TextContent).Text
	var export map[string]any
	require.NoError(t, json.Unmarshal([]byte(text), &export))
	assert.Equal(t, "storefront", export["application_name"])
	summary, ok := export["summary"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(4), summary["total_components"])
}

func TestMCPServerHandlers_DetectDrift(t *testing.T) {
	baseCfg := testBaseConfig()
	mockStore := &basestore.MockBaselineStore{}
	mockStore.On("ListSnapshots", "billing", contract.DefaultBaselineLimit).
		Return([]schema.AnalysisSnapshot(nil), nil)

	s := mcp_internal.NewMCPServer(baseCfg, mockStore)

	currentPath := writeTempJSON(t, "current.json", schema.AnalysisSnapshot{
		AnalysisID:      "run-now",
		Timestamp:       time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		ApplicationName: "billing",
	})

	tool := s.GetTool("detect_drift")
	require.NotNil(t, tool)

	req := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name: "detect_drift",
			Arguments: map[string]any{
				"current_file": currentPath,
			},
		},
	}

	res, err := tool.Handler(context.Background(), req)
	require.NoError(t, err)
	require.False(t, res.IsError)

	text := res.Content[0].(mcp.TextContent).Text
	var analysis schema.DriftAnalysis
	require.NoError(t, json.Unmarshal([]byte(text), &analysis))
	assert.Equal(t, "billing", analysis.ApplicationName)
	assert.Equal(t, 0, analysis.BaselinesAnalyzed)
	assert.Equal(t, 100.0, analysis.OverallHealthScore)
	mockStore.AssertExpectations(t)
}

func TestMCPServerHandlers_ListBaselines(t *testing.T) {
	mockStore := &basestore.MockBaselineStore{}
	mockStore.On("ListSnapshots", "billing", 2).Return([]schema.AnalysisSnapshot{
		{AnalysisID: "run-2", ApplicationName: "billing"},
		{AnalysisID: "run-1", ApplicationName: "billing"},
	}, nil)

	s := mcp_internal.NewMCPServer(testBaseConfig(), mockStore)

	tool := s.GetTool("list_baselines")
	require.NotNil(t, tool)

	req := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name: "list_baselines",
			Arguments: map[string]any{
				"app":   "billing",
				"limit": 2.0,
			},
		},
	}

	res, err := tool.Handler(context.Background(), req)
	require.NoError(t, err)
	require.False(t, res.IsError)

	var snaps []schema.AnalysisSnapshot
	require.NoError(t, json.Unmarshal([]byte(res.Content[0].(mcp.TextContent).Text), &snaps))
	require.Len(t, snaps, 2)
	assert.Equal(t, "run-2", snaps[0].AnalysisID)
	mockStore.AssertExpectations(t)
}
