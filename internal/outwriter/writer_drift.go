package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/archdrift/archdrift/internal/contract"
	"github.com/archdrift/archdrift/schema"
)

// sortedDrifts returns a comparison's drifts in metric name order.
func sortedDrifts(bc *schema.BaselineComparison) []schema.MetricDrift {
	byName := make(map[string]schema.MetricDrift)
	for _, d := range bc.AllDrifts() {
		byName[d.MetricName] = d
	}
	drifts := make([]schema.MetricDrift, 0, len(byName))
	for _, name := range schema.SortedKeys(byName) {
		drifts = append(drifts, byName[name])
	}
	return drifts
}

// writeCSVResultsForDrift writes every baseline comparison's drifts in CSV format.
func writeCSVResultsForDrift(w *csv.Writer, analysis *schema.DriftAnalysis, fmtFloat func(float64) string) error {
	// CSV header
	header := []string{
		"baseline_id",
		"baseline_timestamp",
		"metric",
		"baseline_value",
		"current_value",
		"change_pct",
		"trend",
		"severity",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for i := range analysis.BaselineComparisons {
		bc := &analysis.BaselineComparisons[i]
		for _, d := range sortedDrifts(bc) {
			rec := []string{
				bc.BaselineID,
				bc.BaselineTimestamp.Format(time.RFC3339),
				d.MetricName,
				fmtFloat(d.BaselineValue),
				fmtFloat(d.CurrentValue),
				fmt.Sprintf("%+.1f", d.ChangePercentage),
				string(d.Trend),
				string(d.Severity),
			}
			if err := w.Write(rec); err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteBaselineList outputs stored baseline snapshots, newest first.
func WriteBaselineList(snapshots []*schema.AnalysisSnapshot, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, snapshots)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVWithHeader(w, []string{
				"analysis_id",
				"timestamp",
				"application",
				"p95_response_time",
				"error_rate",
				"coupling_density",
				"complexity_score",
				"test_coverage",
			}, func(csvWriter *csv.Writer) error {
				for _, s := range snapshots {
					rec := []string{
						s.AnalysisID,
						s.Timestamp.Format(time.RFC3339),
						s.ApplicationName,
						fmtFloat(s.PerformanceBaseline.ResponseTimeP95),
						fmtFloat(s.PerformanceBaseline.ErrorRate),
						fmtFloat(s.CouplingMetrics.CouplingDensity),
						fmtFloat(s.ComplexityScore.OverallScore),
						fmtFloat(s.QualityMetrics.TestCoverage),
					}
					if err := csvWriter.Write(rec); err != nil {
						return err
					}
				}
				return nil
			})
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			if len(snapshots) == 0 {
				_, err := fmt.Fprintf(w, "No baselines stored.\n")
				return err
			}
			for i, s := range snapshots {
				if _, err := fmt.Fprintf(w, "%d. %s  %s  (p95 %sms, coverage %s%%)\n",
					i+1, s.AnalysisID, s.Timestamp.Format(time.RFC3339),
					fmtFloat(s.PerformanceBaseline.ResponseTimeP95),
					fmtFloat(s.QualityMetrics.TestCoverage)); err != nil {
					return err
				}
			}
			return nil
		}, "Wrote list")
	}
}
