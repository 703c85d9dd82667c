package drift

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/archdrift/archdrift/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportAnalysisRoundTrip(t *testing.T) {
	ts := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	baseline := snapshot("base-1", ts)
	current := snapshot("cur-1", ts.AddDate(0, 0, 14))
	current.PerformanceBaseline.ErrorRate = 0.05

	analysis, err := DetectDrift("legacy-erp", current, []*schema.AnalysisSnapshot{baseline}, nil)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "drift.json")
	require.NoError(t, ExportAnalysis(analysis, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var export AnalysisExport
	require.NoError(t, json.Unmarshal(data, &export))

	assert.Equal(t, "legacy-erp", export.ApplicationName)
	assert.Equal(t, analysis.AnalysisID, export.AnalysisID)
	assert.Equal(t, 1, export.BaselinesAnalyzed)
	require.Len(t, export.BaselineComparisons, 1)
	assert.Equal(t, "base-1", export.BaselineComparisons[0].BaselineID)
	assert.Equal(t, analysis.DriftPatterns, export.DriftPatterns)
	assert.Equal(t, analysis.OverallHealthScore, export.TrendSummary.OverallHealthScore)
	assert.Equal(t, analysis.TotalMetricsTracked, export.TrendSummary.TotalMetricsTracked)
	assert.Equal(t, analysis.CriticalAlerts, export.CriticalAlerts)
	assert.Equal(t, analysis.Recommendations, export.Recommendations)
}

func TestExportAnalysisBadPath(t *testing.T) {
	analysis, err := DetectDrift("app", nil, nil, nil)
	require.NoError(t, err)

	err = ExportAnalysis(analysis, filepath.Join(t.TempDir(), "missing", "out.json"))
	assert.Error(t, err)
}
