// Package drift compares the current analysis snapshot of an application
// against its stored historical baselines. Each baseline yields a
// per-category comparison; the comparisons aggregate into a health score,
// recognized drift patterns, alerts, and remediation recommendations.
//
// Detection is a pure function of its inputs. Concurrent invocations for
// different applications are safe; ordering runs for the same application
// is the caller's concern.
package drift

import (
	"fmt"
	"time"

	"github.com/archdrift/archdrift/internal/contract"
	"github.com/archdrift/archdrift/schema"
)

// DetectDrift compares the current snapshot against every provided baseline
// and aggregates the comparisons into a DriftAnalysis. A nil config uses
// DefaultDriftConfig; an invalid config is the only failure mode. Missing
// inputs degrade to an empty, healthy analysis.
func DetectDrift(applicationName string, current *schema.AnalysisSnapshot, baselines []*schema.AnalysisSnapshot, cfg *contract.DriftConfig) (*schema.DriftAnalysis, error) {
	if cfg == nil {
		cfg = contract.DefaultDriftConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid drift config: %w", err)
	}

	analysis := &schema.DriftAnalysis{
		ApplicationName:       applicationName,
		AnalysisID:            newAnalysisID(),
		OverallHealthScore:    100.0,
		BaselineComparisons:   []schema.BaselineComparison{},
		DriftPatterns:         []schema.DriftPattern{},
		CriticalAlerts:        []string{},
		DegradationWarnings:   []string{},
		ImprovementHighlights: []string{},
		AnalysisMetadata: map[string]any{
			"analyzed_at":               time.Now().UTC().Format(time.RFC3339),
			"stable_band_pct":           cfg.StableBandPct,
			"critical_threshold_pct":    cfg.CriticalThresholdPct,
			"improvement_highlight_pct": cfg.ImprovementHighlightPct,
		},
	}

	if current != nil {
		for _, baseline := range baselines {
			if baseline == nil {
				continue
			}
			analysis.BaselineComparisons = append(analysis.BaselineComparisons, compareSnapshots(current, baseline, cfg))
		}
	}
	analysis.BaselinesAnalyzed = len(analysis.BaselineComparisons)

	if analysis.BaselinesAnalyzed == 0 {
		analysis.Recommendations = []string{
			"No historical baselines available; record the current analysis as the first baseline.",
		}
		return analysis, nil
	}

	analysis.OverallHealthScore = healthScore(analysis.BaselineComparisons)

	recent := analysis.MostRecentComparison()
	countMetricTrends(analysis, recent)
	analysis.DriftPatterns = recognizePatterns(recent, cfg)
	collectFindings(analysis, recent, cfg)
	analysis.Recommendations = buildRecommendations(analysis.DriftPatterns)

	return analysis, nil
}

func newAnalysisID() string {
	return fmt.Sprintf("drift-%d", time.Now().UnixNano())
}

// healthScore decreases from 100 with the average drift score across
// comparisons.
func healthScore(comparisons []schema.BaselineComparison) float64 {
	var total float64
	for i := range comparisons {
		total += comparisons[i].OverallDriftScore
	}
	return schema.ClampScore(100 - total/float64(len(comparisons)))
}

// countMetricTrends partitions the most recent comparison's metrics into
// improved, degraded and stable. The three counts always sum to the total.
func countMetricTrends(analysis *schema.DriftAnalysis, recent *schema.BaselineComparison) {
	for _, d := range recent.AllDrifts() {
		switch d.Trend {
		case schema.TrendImproving:
			analysis.ImprovedMetrics++
		case schema.TrendDegrading:
			analysis.DegradedMetrics++
		default:
			analysis.StableMetrics++
		}
		analysis.TotalMetricsTracked++
	}
}

// recognizePatterns flags each category whose worst drift crossed its degrade
// threshold in the most recent comparison. With no degradation and a net
// improving comparison, the steady improvement pattern applies instead.
func recognizePatterns(recent *schema.BaselineComparison, cfg *contract.DriftConfig) []schema.DriftPattern {
	patterns := []schema.DriftPattern{}
	checks := []struct {
		drifts  map[string]schema.MetricDrift
		pattern schema.DriftPattern
	}{
		{recent.PerformanceDrift, schema.PerformanceDegradationPattern},
		{recent.CouplingDrift, schema.CouplingIncreasePattern},
		{recent.ComplexityDrift, schema.ComplexityGrowthPattern},
		{recent.QualityDrift, schema.QualityErosionPattern},
	}
	for _, check := range checks {
		if categoryDegraded(check.drifts) {
			patterns = append(patterns, check.pattern)
		}
	}
	if len(patterns) == 0 && recent.OverallTrend == schema.TrendImproving {
		patterns = append(patterns, schema.SteadyImprovementPattern)
	}
	return patterns
}

// categoryDegraded reports whether any drift in the category reached at least
// medium severity, i.e. crossed the category's configured threshold.
func categoryDegraded(drifts map[string]schema.MetricDrift) bool {
	for _, d := range drifts {
		if d.Severity.AtLeast(schema.SeverityMedium) {
			return true
		}
	}
	return false
}

// collectFindings fills the alert, warning and highlight lists from the most
// recent comparison, in deterministic metric order.
func collectFindings(analysis *schema.DriftAnalysis, recent *schema.BaselineComparison, cfg *contract.DriftConfig) {
	drifts := recent.AllDrifts()
	byName := make(map[string]schema.MetricDrift, len(drifts))
	for _, d := range drifts {
		byName[d.MetricName] = d
	}

	for _, name := range schema.SortedKeys(byName) {
		d := byName[name]
		switch {
		case d.Severity == schema.SeverityCritical:
			analysis.CriticalAlerts = append(analysis.CriticalAlerts,
				fmt.Sprintf("%s degraded %.1f%% since baseline %s (was %.2f, now %.2f)",
					d.MetricName, d.ChangePercentage, recent.BaselineID, d.BaselineValue, d.CurrentValue))
		case d.Severity.AtLeast(schema.SeverityMedium):
			analysis.DegradationWarnings = append(analysis.DegradationWarnings,
				fmt.Sprintf("%s drifted %.1f%% since baseline %s",
					d.MetricName, d.ChangePercentage, recent.BaselineID))
		case d.Trend == schema.TrendImproving && absPct(d.ChangePercentage) >= cfg.ImprovementHighlightPct:
			analysis.ImprovementHighlights = append(analysis.ImprovementHighlights,
				fmt.Sprintf("%s improved %.1f%% since baseline %s",
					d.MetricName, d.ChangePercentage, recent.BaselineID))
		}
	}
}

func absPct(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// recommendationTemplates keys remediation text to each recognized pattern.
var recommendationTemplates = map[schema.DriftPattern]string{
	schema.PerformanceDegradationPattern: "Profile the hot request paths and compare against the performance baseline before adding new services.",
	schema.CouplingIncreasePattern:       "Review recent dependency additions; rising coupling density makes future service extraction harder.",
	schema.ComplexityGrowthPattern:       "Re-estimate migration effort; the complexity score has grown past its baseline band.",
	schema.QualityErosionPattern:         "Shore up test coverage and maintainability before continuing decomposition work.",
	schema.SteadyImprovementPattern:      "Architecture health is improving; record a fresh baseline to lock in the gains.",
}

// buildRecommendations emits template text for each recognized pattern,
// leading with the dominant (first recognized) one.
func buildRecommendations(patterns []schema.DriftPattern) []string {
	if len(patterns) == 0 {
		return []string{"Architecture is stable against its baselines; no action needed."}
	}
	recommendations := make([]string, 0, len(patterns))
	for _, p := range patterns {
		if text, ok := recommendationTemplates[p]; ok {
			recommendations = append(recommendations, text)
		}
	}
	return recommendations
}
