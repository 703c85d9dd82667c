package core

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/archdrift/archdrift/schema"
)

// MetricsSummary is the summary block of the canonical coupling export.
type MetricsSummary struct {
	TotalComponents          int                     `json:"total_components"`
	TotalDependencies        int                     `json:"total_dependencies"`
	CircularDependencyCount  int                     `json:"circular_dependency_count"`
	HotspotCount             int                     `json:"hotspot_count"`
	MigrationComplexityScore float64                 `json:"migration_complexity_score"`
	OverallCouplingStrength  schema.CouplingStrength `json:"overall_coupling_strength"`
}

// MetricsExport is the canonical JSON document for a coupling analysis.
type MetricsExport struct {
	ApplicationName      string                               `json:"application_name"`
	AnalysisID           string                               `json:"analysis_id"`
	ComponentCoupling    map[string]*schema.ComponentCoupling `json:"component_coupling"`
	OverallMetrics       schema.AggregateMetrics              `json:"overall_metrics"`
	CouplingHotspots     []schema.CouplingHotspot             `json:"coupling_hotspots"`
	CircularDependencies [][]string                           `json:"circular_dependencies"`
	Summary              MetricsSummary                       `json:"summary"`
}

// NewMetricsExport shapes an analysis result into its canonical export form.
func NewMetricsExport(result *schema.CouplingMetrics) *MetricsExport {
	return &MetricsExport{
		ApplicationName:      result.ApplicationName,
		AnalysisID:           result.AnalysisID,
		ComponentCoupling:    result.ComponentCoupling,
		OverallMetrics:       result.AggregateMetrics,
		CouplingHotspots:     result.CouplingHotspots,
		CircularDependencies: result.CircularDependencyChains,
		Summary: MetricsSummary{
			TotalComponents:          result.TotalComponents,
			TotalDependencies:        result.TotalDependencies,
			CircularDependencyCount:  result.CircularDependencyCount,
			HotspotCount:             len(result.CouplingHotspots),
			MigrationComplexityScore: result.MigrationComplexityScore,
			OverallCouplingStrength:  result.OverallCouplingStrength,
		},
	}
}

// ExportMetrics writes the canonical JSON document for a coupling analysis.
// Filesystem errors propagate unchanged to the caller.
func ExportMetrics(result *schema.CouplingMetrics, path string) error {
	data, err := json.MarshalIndent(NewMetricsExport(result), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal coupling metrics: %w", err)
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}
