package schema

import "time"

// StaticResults is the payload produced by an external static analyzer.
// Only the dependency analysis section is consumed here.
type StaticResults struct {
	DependencyAnalysis DependencyAnalysis `json:"dependency_analysis"`
}

// DependencyAnalysis holds the dependency graph section of static results.
type DependencyAnalysis struct {
	InternalDependencies map[string][]string `json:"internal_dependencies"`
	CircularDependencies [][]string          `json:"circular_dependencies"`
}

// DependencyGraph is a pre-built graph object from an upstream collaborator.
// When present it takes precedence over StaticResults.
type DependencyGraph struct {
	InternalDependencies map[string][]string `json:"internal_dependencies"`
	CircularDependencies [][]string          `json:"circular_dependencies"`
	PackageDependencies  map[string][]string `json:"package_dependencies,omitempty"`
}

// RuntimeResults carries dependency edges observed by runtime tooling
// (load tests, tracing). Observed edges are unioned into the model.
type RuntimeResults struct {
	ObservedDependencies map[string][]string `json:"observed_dependencies"`
}

// PerformanceBaseline holds the runtime performance figures of a snapshot.
type PerformanceBaseline struct {
	ResponseTimeP95   float64 `json:"response_time_p95"` // milliseconds
	ErrorRate         float64 `json:"error_rate"`        // fraction of failed requests
	RequestsPerSecond float64 `json:"requests_per_second"`
}

// CouplingSummary holds the coupling aggregates of a snapshot.
type CouplingSummary struct {
	CouplingDensity         float64 `json:"coupling_density"`
	AverageInstability      float64 `json:"average_instability"`
	CircularDependencyCount int     `json:"circular_dependency_count"`
}

// ComplexitySummary holds the migration complexity figures of a snapshot.
type ComplexitySummary struct {
	OverallScore         float64 `json:"overall_score"`
	EstimatedEffortWeeks float64 `json:"estimated_effort_weeks"`
}

// QualityMetrics holds the code quality figures of a snapshot.
type QualityMetrics struct {
	MaintainabilityIndex float64 `json:"maintainability_index"`
	TestCoverage         float64 `json:"test_coverage"` // percent
}

// AnalysisSnapshot is one stored historical analysis, used both as the
// current state and as a baseline comparison point for drift detection.
type AnalysisSnapshot struct {
	AnalysisID          string              `json:"analysis_id"`
	Timestamp           time.Time           `json:"timestamp"`
	ApplicationName     string              `json:"application_name"`
	PerformanceBaseline PerformanceBaseline `json:"performance_baseline"`
	CouplingMetrics     CouplingSummary     `json:"coupling_metrics"`
	ComplexityScore     ComplexitySummary   `json:"complexity_score"`
	QualityMetrics      QualityMetrics      `json:"quality_metrics"`
}
