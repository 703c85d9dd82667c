package core

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportMetricsRoundTrip(t *testing.T) {
	result, err := AnalyzeCoupling("billing", staticFixture(map[string][]string{
		"a": {"b", "c"},
		"b": {"c"},
		"c": {"a"},
	}), nil, nil, nil)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "coupling.json")
	require.NoError(t, ExportMetrics(result, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var export MetricsExport
	require.NoError(t, json.Unmarshal(data, &export))

	assert.Equal(t, "billing", export.ApplicationName)
	assert.Equal(t, result.AnalysisID, export.AnalysisID)
	assert.Len(t, export.ComponentCoupling, 3)
	assert.Equal(t, result.AggregateMetrics, export.OverallMetrics)
	assert.Equal(t, 3, export.Summary.TotalComponents)
	assert.Equal(t, 4, export.Summary.TotalDependencies)
	assert.Equal(t, 1, export.Summary.CircularDependencyCount)
	assert.Equal(t, result.MigrationComplexityScore, export.Summary.MigrationComplexityScore)
	assert.Equal(t, result.OverallCouplingStrength, export.Summary.OverallCouplingStrength)
}

func TestExportMetricsBadPath(t *testing.T) {
	result, err := AnalyzeCoupling("app", nil, nil, nil, nil)
	require.NoError(t, err)

	err = ExportMetrics(result, filepath.Join(t.TempDir(), "missing", "out.json"))
	assert.Error(t, err)
}
