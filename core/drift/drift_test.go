package drift

import (
	"testing"
	"time"

	"github.com/archdrift/archdrift/internal/contract"
	"github.com/archdrift/archdrift/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectDriftNoBaselines(t *testing.T) {
	current := snapshot("cur-1", time.Now())

	analysis, err := DetectDrift("legacy-erp", current, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, "legacy-erp", analysis.ApplicationName)
	assert.NotEmpty(t, analysis.AnalysisID)
	assert.Zero(t, analysis.BaselinesAnalyzed)
	assert.Equal(t, 100.0, analysis.OverallHealthScore)
	assert.Empty(t, analysis.BaselineComparisons)
	assert.Empty(t, analysis.DriftPatterns)
	assert.Empty(t, analysis.CriticalAlerts)
	assert.NotEmpty(t, analysis.Recommendations)
}

func TestDetectDriftNilCurrent(t *testing.T) {
	baseline := snapshot("base-1", time.Now().AddDate(0, 0, -7))

	analysis, err := DetectDrift("legacy-erp", nil, []*schema.AnalysisSnapshot{baseline}, nil)
	require.NoError(t, err)

	assert.Zero(t, analysis.BaselinesAnalyzed)
	assert.Equal(t, 100.0, analysis.OverallHealthScore)
}

func TestDetectDriftInvalidConfig(t *testing.T) {
	cfg := contract.DefaultDriftConfig()
	cfg.StableBandPct = -1

	_, err := DetectDrift("app", snapshot("cur-1", time.Now()), nil, cfg)
	assert.Error(t, err)
}

func TestDetectDriftRegressionScenario(t *testing.T) {
	ts := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	baseline := snapshot("base-1", ts)
	current := snapshot("cur-1", ts.AddDate(0, 0, 14))
	current.PerformanceBaseline.ResponseTimeP95 = 400 // +33%
	current.PerformanceBaseline.ErrorRate = 0.05      // +150%
	current.PerformanceBaseline.RequestsPerSecond = 800

	analysis, err := DetectDrift("legacy-erp", current, []*schema.AnalysisSnapshot{baseline}, nil)
	require.NoError(t, err)

	require.Equal(t, 1, analysis.BaselinesAnalyzed)
	recent := analysis.MostRecentComparison()
	require.NotNil(t, recent)
	assert.Equal(t, schema.TrendDegrading, recent.OverallTrend)
	assert.Contains(t, []schema.Severity{schema.SeverityHigh, schema.SeverityCritical}, recent.OverallSeverity)

	assert.Less(t, analysis.OverallHealthScore, 50.0)
	assert.Contains(t, analysis.DriftPatterns, schema.PerformanceDegradationPattern)
	require.NotEmpty(t, analysis.CriticalAlerts)
	assert.Contains(t, analysis.CriticalAlerts[0], metricErrorRate)
	assert.NotEmpty(t, analysis.DegradationWarnings)
	assert.NotEmpty(t, analysis.Recommendations)
}

func TestDetectDriftUniformImprovement(t *testing.T) {
	ts := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	baseline := snapshot("base-1", ts)
	current := snapshot("cur-1", ts.AddDate(0, 0, 14))
	current.PerformanceBaseline.ResponseTimeP95 = 240 // -20%
	current.PerformanceBaseline.ErrorRate = 0.01      // -50%
	current.PerformanceBaseline.RequestsPerSecond = 1300
	current.QualityMetrics.TestCoverage = 80
	current.QualityMetrics.MaintainabilityIndex = 82

	analysis, err := DetectDrift("legacy-erp", current, []*schema.AnalysisSnapshot{baseline}, nil)
	require.NoError(t, err)

	recent := analysis.MostRecentComparison()
	require.NotNil(t, recent)
	assert.Equal(t, schema.TrendImproving, recent.OverallTrend)
	assert.Greater(t, analysis.OverallHealthScore, 80.0)
	assert.Contains(t, analysis.DriftPatterns, schema.SteadyImprovementPattern)
	assert.NotEmpty(t, analysis.ImprovementHighlights)
	assert.Empty(t, analysis.CriticalAlerts)
}

func TestDetectDriftCountsPartition(t *testing.T) {
	ts := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	baseline := snapshot("base-1", ts)
	current := snapshot("cur-1", ts.AddDate(0, 0, 7))
	current.PerformanceBaseline.ResponseTimeP95 = 360 // degrading
	current.QualityMetrics.TestCoverage = 75          // improving

	analysis, err := DetectDrift("legacy-erp", current, []*schema.AnalysisSnapshot{baseline}, nil)
	require.NoError(t, err)

	assert.Equal(t, 10, analysis.TotalMetricsTracked)
	assert.Equal(t, analysis.TotalMetricsTracked,
		analysis.ImprovedMetrics+analysis.DegradedMetrics+analysis.StableMetrics)
	assert.Equal(t, 1, analysis.DegradedMetrics)
	assert.Equal(t, 1, analysis.ImprovedMetrics)
	assert.Equal(t, 8, analysis.StableMetrics)
}

// TestDetectDriftMultipleBaselines counts trends against the newest baseline
// and averages the drift score over all of them.
func TestDetectDriftMultipleBaselines(t *testing.T) {
	ts := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	older := snapshot("base-old", ts.AddDate(0, -2, 0))
	older.PerformanceBaseline.ResponseTimeP95 = 200
	newer := snapshot("base-new", ts.AddDate(0, -1, 0))

	current := snapshot("cur-1", ts)

	analysis, err := DetectDrift("legacy-erp", current,
		[]*schema.AnalysisSnapshot{older, newer}, nil)
	require.NoError(t, err)

	assert.Equal(t, 2, analysis.BaselinesAnalyzed)
	recent := analysis.MostRecentComparison()
	require.NotNil(t, recent)
	assert.Equal(t, "base-new", recent.BaselineID)

	// current matches the newest baseline exactly
	assert.Zero(t, analysis.DegradedMetrics)
	assert.Equal(t, 10, analysis.StableMetrics)
}

func TestDetectDriftSkipsNilBaselines(t *testing.T) {
	ts := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	baseline := snapshot("base-1", ts)
	current := snapshot("cur-1", ts.AddDate(0, 0, 7))

	analysis, err := DetectDrift("legacy-erp", current,
		[]*schema.AnalysisSnapshot{nil, baseline, nil}, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, analysis.BaselinesAnalyzed)
}
