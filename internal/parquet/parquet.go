// Package parquet provides data structures and functions for exporting
// coupling and drift analysis data to Parquet files using
// github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/archdrift/archdrift/schema"
	"github.com/parquet-go/parquet-go"
)

// ComponentCouplingRow is one component of a coupling analysis, flattened
// into a columnar record for warehouse ingestion.
type ComponentCouplingRow struct {
	// ApplicationName identifies the analyzed application
	ApplicationName string `parquet:"application_name,snappy"`

	// AnalysisID identifies the analysis run this row belongs to
	AnalysisID string `parquet:"analysis_id,snappy"`

	// Component is the component name
	Component string `parquet:"component,snappy"`

	// AfferentCoupling is the count of distinct dependents
	AfferentCoupling int32 `parquet:"afferent_coupling,snappy"`

	// EfferentCoupling is the count of distinct dependencies
	EfferentCoupling int32 `parquet:"efferent_coupling,snappy"`

	// Instability is Ce/(Ca+Ce), 0 when the component has no edges
	Instability float64 `parquet:"instability,snappy"`

	// DistanceFromMainSequence is |A+I-1|
	DistanceFromMainSequence float64 `parquet:"distance_from_main_sequence,snappy"`

	// RiskScore is the 0-100 weighted migration risk
	RiskScore float64 `parquet:"risk_score,snappy"`

	// CouplingStrength is the classified band of the risk score
	CouplingStrength string `parquet:"coupling_strength,snappy"`

	// IsHotspot flags components past a hotspot threshold
	IsHotspot bool `parquet:"is_hotspot,snappy"`
}

// MetricDriftRow is one tracked metric of one baseline comparison, flattened
// into a columnar record.
type MetricDriftRow struct {
	// ApplicationName identifies the analyzed application
	ApplicationName string `parquet:"application_name,snappy"`

	// AnalysisID identifies the drift analysis run this row belongs to
	AnalysisID string `parquet:"analysis_id,snappy"`

	// BaselineID identifies the historical baseline compared against
	BaselineID string `parquet:"baseline_id,snappy"`

	// BaselineTimestamp is when the baseline was recorded
	BaselineTimestamp time.Time `parquet:"baseline_timestamp,snappy"`

	// MetricName is the tracked metric name
	MetricName string `parquet:"metric_name,snappy"`

	// BaselineValue is the metric value in the baseline snapshot
	BaselineValue float64 `parquet:"baseline_value,snappy"`

	// CurrentValue is the metric value in the current snapshot
	CurrentValue float64 `parquet:"current_value,snappy"`

	// ChangePercentage is (current-baseline)/baseline*100
	ChangePercentage float64 `parquet:"change_percentage,snappy"`

	// Trend is improving, stable or degrading
	Trend string `parquet:"trend,snappy"`

	// Severity is none through critical
	Severity string `parquet:"severity,snappy"`
}

// ConvertCouplingMetrics flattens a coupling analysis into per-component
// rows, in component name order.
func ConvertCouplingMetrics(result *schema.CouplingMetrics) []ComponentCouplingRow {
	rows := make([]ComponentCouplingRow, 0, len(result.ComponentCoupling))
	for _, name := range schema.SortedKeys(result.ComponentCoupling) {
		cc := result.ComponentCoupling[name]
		rows = append(rows, ComponentCouplingRow{
			ApplicationName:          result.ApplicationName,
			AnalysisID:               result.AnalysisID,
			Component:                name,
			AfferentCoupling:         int32(cc.AfferentCoupling),
			EfferentCoupling:         int32(cc.EfferentCoupling),
			Instability:              cc.Instability,
			DistanceFromMainSequence: cc.DistanceFromMainSequence,
			RiskScore:                cc.RiskScore,
			CouplingStrength:         string(cc.CouplingStrength),
			IsHotspot:                cc.IsHotspot,
		})
	}
	return rows
}

// ConvertDriftAnalysis flattens a drift analysis into per-metric rows,
// ordered by baseline then metric name.
func ConvertDriftAnalysis(analysis *schema.DriftAnalysis) []MetricDriftRow {
	var rows []MetricDriftRow
	for i := range analysis.BaselineComparisons {
		bc := &analysis.BaselineComparisons[i]
		byName := make(map[string]schema.MetricDrift)
		for _, d := range bc.AllDrifts() {
			byName[d.MetricName] = d
		}
		for _, name := range schema.SortedKeys(byName) {
			d := byName[name]
			rows = append(rows, MetricDriftRow{
				ApplicationName:   analysis.ApplicationName,
				AnalysisID:        analysis.AnalysisID,
				BaselineID:        bc.BaselineID,
				BaselineTimestamp: bc.BaselineTimestamp,
				MetricName:        d.MetricName,
				BaselineValue:     d.BaselineValue,
				CurrentValue:      d.CurrentValue,
				ChangePercentage:  d.ChangePercentage,
				Trend:             string(d.Trend),
				Severity:          string(d.Severity),
			})
		}
	}
	return rows
}

// WriteComponentCouplingParquet writes coupling rows to a Parquet file.
func WriteComponentCouplingParquet(data []ComponentCouplingRow, outputPath string) error {
	return writeParquet(data, outputPath)
}

// WriteMetricDriftParquet writes drift rows to a Parquet file.
func WriteMetricDriftParquet(data []MetricDriftRow, outputPath string) error {
	return writeParquet(data, outputPath)
}

// writeParquet writes records to a Parquet file using struct schema
// inference from the row type's tags.
func writeParquet[T any](data []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[T](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}
