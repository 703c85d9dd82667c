package schema

import "time"

// MetricDrift records the change in a single tracked metric between a
// historical baseline snapshot and the current snapshot.
type MetricDrift struct {
	MetricName       string   `json:"metric_name"`
	BaselineValue    float64  `json:"baseline_value"`
	CurrentValue     float64  `json:"current_value"`
	ChangePercentage float64  `json:"change_percentage"`
	Trend            Trend    `json:"trend"`
	Severity         Severity `json:"severity"`
}

// BaselineComparison is the drift of the current snapshot against one
// historical baseline, grouped into the four tracked metric categories.
type BaselineComparison struct {
	BaselineID            string                 `json:"baseline_id"`
	BaselineTimestamp     time.Time              `json:"baseline_timestamp"`
	TimeSinceBaselineDays float64                `json:"time_since_baseline_days"`
	PerformanceDrift      map[string]MetricDrift `json:"performance_drift"`
	CouplingDrift         map[string]MetricDrift `json:"coupling_drift"`
	ComplexityDrift       map[string]MetricDrift `json:"complexity_drift"`
	QualityDrift          map[string]MetricDrift `json:"quality_drift"`
	OverallTrend          Trend                  `json:"overall_trend"`
	OverallSeverity       Severity               `json:"overall_severity"`
	OverallDriftScore     float64                `json:"overall_drift_score"` // 0-100, higher is worse
}

// AllDrifts returns every metric drift of the comparison across the four
// categories. Order is unspecified.
func (bc *BaselineComparison) AllDrifts() []MetricDrift {
	drifts := make([]MetricDrift, 0,
		len(bc.PerformanceDrift)+len(bc.CouplingDrift)+len(bc.ComplexityDrift)+len(bc.QualityDrift))
	for _, m := range []map[string]MetricDrift{bc.PerformanceDrift, bc.CouplingDrift, bc.ComplexityDrift, bc.QualityDrift} {
		for _, d := range m {
			drifts = append(drifts, d)
		}
	}
	return drifts
}

// DriftAnalysis is the full result of one drift detection run across N
// historical baselines. Values produced fresh per invocation; the improved,
// degraded and stable counts always partition TotalMetricsTracked exactly.
type DriftAnalysis struct {
	ApplicationName       string               `json:"application_name"`
	AnalysisID            string               `json:"analysis_id"`
	BaselinesAnalyzed     int                  `json:"baselines_analyzed"`
	BaselineComparisons   []BaselineComparison `json:"baseline_comparisons"`
	OverallHealthScore    float64              `json:"overall_health_score"` // 0-100, higher is healthier
	ImprovedMetrics       int                  `json:"improved_metrics"`
	DegradedMetrics       int                  `json:"degraded_metrics"`
	StableMetrics         int                  `json:"stable_metrics"`
	TotalMetricsTracked   int                  `json:"total_metrics_tracked"`
	DriftPatterns         []DriftPattern       `json:"drift_patterns"`
	CriticalAlerts        []string             `json:"critical_alerts"`
	DegradationWarnings   []string             `json:"degradation_warnings"`
	ImprovementHighlights []string             `json:"improvement_highlights"`
	Recommendations       []string             `json:"recommendations"`
	AnalysisMetadata      map[string]any       `json:"analysis_metadata"`
}

// MostRecentComparison returns the comparison against the newest baseline,
// or nil if no baselines were analyzed.
func (da *DriftAnalysis) MostRecentComparison() *BaselineComparison {
	var recent *BaselineComparison
	for i := range da.BaselineComparisons {
		bc := &da.BaselineComparisons[i]
		if recent == nil || bc.BaselineTimestamp.After(recent.BaselineTimestamp) {
			recent = bc
		}
	}
	return recent
}
