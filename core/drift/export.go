package drift

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/archdrift/archdrift/schema"
)

// TrendSummary is the counts block of the canonical drift export.
type TrendSummary struct {
	ImprovedMetrics     int     `json:"improved_metrics"`
	DegradedMetrics     int     `json:"degraded_metrics"`
	StableMetrics       int     `json:"stable_metrics"`
	TotalMetricsTracked int     `json:"total_metrics_tracked"`
	OverallHealthScore  float64 `json:"overall_health_score"`
}

// AnalysisExport is the canonical JSON document for a drift analysis.
type AnalysisExport struct {
	ApplicationName     string                      `json:"application_name"`
	AnalysisID          string                      `json:"analysis_id"`
	BaselinesAnalyzed   int                         `json:"baselines_analyzed"`
	BaselineComparisons []schema.BaselineComparison `json:"baseline_comparisons"`
	DriftPatterns       []schema.DriftPattern       `json:"drift_patterns"`
	TrendSummary        TrendSummary                `json:"trend_summary"`
	CriticalAlerts      []string                    `json:"critical_alerts"`
	DegradationWarnings []string                    `json:"degradation_warnings"`
	Recommendations     []string                    `json:"recommendations"`
}

// NewAnalysisExport shapes a drift analysis into its canonical export form.
func NewAnalysisExport(analysis *schema.DriftAnalysis) *AnalysisExport {
	return &AnalysisExport{
		ApplicationName:     analysis.ApplicationName,
		AnalysisID:          analysis.AnalysisID,
		BaselinesAnalyzed:   analysis.BaselinesAnalyzed,
		BaselineComparisons: analysis.BaselineComparisons,
		DriftPatterns:       analysis.DriftPatterns,
		TrendSummary: TrendSummary{
			ImprovedMetrics:     analysis.ImprovedMetrics,
			DegradedMetrics:     analysis.DegradedMetrics,
			StableMetrics:       analysis.StableMetrics,
			TotalMetricsTracked: analysis.TotalMetricsTracked,
			OverallHealthScore:  analysis.OverallHealthScore,
		},
		CriticalAlerts:      analysis.CriticalAlerts,
		DegradationWarnings: analysis.DegradationWarnings,
		Recommendations:     analysis.Recommendations,
	}
}

// ExportAnalysis writes the canonical JSON document for a drift analysis.
// Filesystem errors propagate unchanged to the caller.
func ExportAnalysis(analysis *schema.DriftAnalysis, path string) error {
	data, err := json.MarshalIndent(NewAnalysisExport(analysis), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal drift analysis: %w", err)
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}
