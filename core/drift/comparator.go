package drift

import (
	"math"

	"github.com/archdrift/archdrift/internal/contract"
	"github.com/archdrift/archdrift/schema"
)

// Tracked metric names, stable across exports and stores.
const (
	metricP95ResponseTime = "p95_response_time"
	metricErrorRate       = "error_rate"
	metricThroughput      = "throughput"

	metricCouplingDensity = "coupling_density"
	metricAvgInstability  = "avg_instability"
	metricCircularDeps    = "circular_dependencies"

	metricComplexityScore = "complexity_score"
	metricEffortEstimate  = "effort_estimate"

	metricMaintainability = "maintainability"
	metricTestCoverage    = "test_coverage"
)

const hoursPerDay = 24.0

// metricSpec describes one tracked metric: how to read it from a snapshot,
// its direction, and the severity threshold of its category.
type metricSpec struct {
	name          string
	higherIsWorse bool
	read          func(*schema.AnalysisSnapshot) float64
}

func performanceSpecs() []metricSpec {
	return []metricSpec{
		{metricP95ResponseTime, true, func(s *schema.AnalysisSnapshot) float64 { return s.PerformanceBaseline.ResponseTimeP95 }},
		{metricErrorRate, true, func(s *schema.AnalysisSnapshot) float64 { return s.PerformanceBaseline.ErrorRate }},
		{metricThroughput, false, func(s *schema.AnalysisSnapshot) float64 { return s.PerformanceBaseline.RequestsPerSecond }},
	}
}

func couplingSpecs() []metricSpec {
	return []metricSpec{
		{metricCouplingDensity, true, func(s *schema.AnalysisSnapshot) float64 { return s.CouplingMetrics.CouplingDensity }},
		{metricAvgInstability, true, func(s *schema.AnalysisSnapshot) float64 { return s.CouplingMetrics.AverageInstability }},
		{metricCircularDeps, true, func(s *schema.AnalysisSnapshot) float64 { return float64(s.CouplingMetrics.CircularDependencyCount) }},
	}
}

func complexitySpecs() []metricSpec {
	return []metricSpec{
		{metricComplexityScore, true, func(s *schema.AnalysisSnapshot) float64 { return s.ComplexityScore.OverallScore }},
		{metricEffortEstimate, true, func(s *schema.AnalysisSnapshot) float64 { return s.ComplexityScore.EstimatedEffortWeeks }},
	}
}

func qualitySpecs() []metricSpec {
	return []metricSpec{
		{metricMaintainability, false, func(s *schema.AnalysisSnapshot) float64 { return s.QualityMetrics.MaintainabilityIndex }},
		{metricTestCoverage, false, func(s *schema.AnalysisSnapshot) float64 { return s.QualityMetrics.TestCoverage }},
	}
}

// buildCategoryDrift computes the drift map for one metric category.
// Non-finite values are skipped rather than aborting the comparison.
func buildCategoryDrift(current, baseline *schema.AnalysisSnapshot, specs []metricSpec, thresholdPct float64, cfg *contract.DriftConfig) map[string]schema.MetricDrift {
	drifts := make(map[string]schema.MetricDrift, len(specs))
	for _, spec := range specs {
		baseVal := spec.read(baseline)
		curVal := spec.read(current)
		if !isFinite(baseVal) || !isFinite(curVal) {
			continue
		}
		changePct := changePercentage(baseVal, curVal)
		drifts[spec.name] = schema.MetricDrift{
			MetricName:       spec.name,
			BaselineValue:    baseVal,
			CurrentValue:     curVal,
			ChangePercentage: changePct,
			Trend:            determineTrend(changePct, spec.higherIsWorse, cfg),
			Severity:         determineSeverity(changePct, spec.higherIsWorse, thresholdPct, cfg),
		}
	}
	return drifts
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// compareSnapshots drifts the current snapshot against one baseline across
// the four tracked categories and aggregates per-comparison figures.
func compareSnapshots(current, baseline *schema.AnalysisSnapshot, cfg *contract.DriftConfig) schema.BaselineComparison {
	comparison := schema.BaselineComparison{
		BaselineID:            baseline.AnalysisID,
		BaselineTimestamp:     baseline.Timestamp,
		TimeSinceBaselineDays: current.Timestamp.Sub(baseline.Timestamp).Hours() / hoursPerDay,
		PerformanceDrift:      buildCategoryDrift(current, baseline, performanceSpecs(), cfg.PerformanceDegradationPct, cfg),
		CouplingDrift:         buildCategoryDrift(current, baseline, couplingSpecs(), cfg.CouplingIncreasePct, cfg),
		ComplexityDrift:       buildCategoryDrift(current, baseline, complexitySpecs(), cfg.ComplexityIncreasePct, cfg),
		QualityDrift:          buildCategoryDrift(current, baseline, qualitySpecs(), cfg.QualityDeclinePct, cfg),
	}

	comparison.OverallSeverity = schema.WorstDriftSeverity(comparison.AllDrifts())
	comparison.OverallTrend = overallTrend(&comparison)
	comparison.OverallDriftScore = overallDriftScore(&comparison, cfg)
	return comparison
}

// overallTrend combines the drift directions of one comparison. A comparison
// carrying at least medium severity is degrading regardless of the counts.
func overallTrend(bc *schema.BaselineComparison) schema.Trend {
	var improving, degrading int
	for _, d := range bc.AllDrifts() {
		switch d.Trend {
		case schema.TrendImproving:
			improving++
		case schema.TrendDegrading:
			degrading++
		}
	}
	switch {
	case bc.OverallSeverity.AtLeast(schema.SeverityMedium) || degrading > improving:
		return schema.TrendDegrading
	case improving > degrading:
		return schema.TrendImproving
	default:
		return schema.TrendStable
	}
}

// overallDriftScore blends the weighted category scores with the worst
// category, so one severe regression keeps the score high even when every
// other category sits flat.
func overallDriftScore(bc *schema.BaselineComparison, cfg *contract.DriftConfig) float64 {
	categories := map[string]map[string]schema.MetricDrift{
		"performance": bc.PerformanceDrift,
		"coupling":    bc.CouplingDrift,
		"complexity":  bc.ComplexityDrift,
		"quality":     bc.QualityDrift,
	}

	var weighted, worst float64
	for name, drifts := range categories {
		score := categoryScore(drifts)
		weighted += cfg.CategoryWeights.Weight(name) * score
		if score > worst {
			worst = score
		}
	}
	blended := (1-cfg.DominanceWeight)*weighted + cfg.DominanceWeight*worst
	return schema.ClampScore(blended)
}

// categoryScore is the worst severity of a category on the 0-100 scale.
func categoryScore(drifts map[string]schema.MetricDrift) float64 {
	var worst float64
	for _, d := range drifts {
		if s := d.Severity.Score(); s > worst {
			worst = s
		}
	}
	return worst
}
