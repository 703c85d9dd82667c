package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/archdrift/archdrift/internal/contract"
	"github.com/archdrift/archdrift/internal/parquet"
	"github.com/archdrift/archdrift/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteDriftResults outputs the drift analysis, dispatching based on the output format configured.
func WriteDriftResults(analysis *schema.DriftAnalysis, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeDriftJSONResults(analysis, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeDriftCSVResults(analysis, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if cfg.OutputFile == "" {
			return fmt.Errorf("parquet output requires --output-file")
		}
		rows := parquet.ConvertDriftAnalysis(analysis)
		if err := parquet.WriteMetricDriftParquet(rows, cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
		fmt.Fprintf(os.Stderr, "💾 Wrote Parquet to %s\n", cfg.OutputFile)
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeDriftText(analysis, cfg, fmtFloat, duration, w)
		}, "Wrote table")
	}
	return nil
}

// writeDriftJSONResults handles opening the file and calling the JSON writer.
func writeDriftJSONResults(analysis *schema.DriftAnalysis, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, analysis)
	}, "Wrote JSON")
}

// writeDriftCSVResults handles opening the file and calling the CSV writer.
func writeDriftCSVResults(analysis *schema.DriftAnalysis, cfg *contract.Config, fmtFloat func(float64) string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		csvWriter := csv.NewWriter(w)
		defer csvWriter.Flush()
		return writeCSVResultsForDrift(csvWriter, analysis, fmtFloat)
	}, "Wrote CSV")
}

// writeDriftText generates and writes the human-readable drift report.
func writeDriftText(analysis *schema.DriftAnalysis, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration, writer io.Writer) error {
	if _, err := fmt.Fprintf(writer, "📉 Drift analysis for %s\n", analysis.ApplicationName); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Health score: %s | Baselines: %d | Metrics: %d improved / %d degraded / %d stable\n",
		fmtFloat(analysis.OverallHealthScore), analysis.BaselinesAnalyzed,
		analysis.ImprovedMetrics, analysis.DegradedMetrics, analysis.StableMetrics); err != nil {
		return err
	}

	if analysis.BaselinesAnalyzed == 0 {
		_, err := fmt.Fprintf(writer, "No baselines to compare against.\n")
		return err
	}

	recent := analysis.MostRecentComparison()
	if _, err := fmt.Fprintf(writer, "\nMost recent baseline: %s (%.1f days ago) | Trend: %s | Severity: %s\n",
		recent.BaselineID, recent.TimeSinceBaselineDays,
		contract.GetColorTrendLabel(recent.OverallTrend),
		contract.GetColorSeverityLabel(recent.OverallSeverity)); err != nil {
		return err
	}

	if err := writeDriftTable(recent, cfg, fmtFloat, writer); err != nil {
		return err
	}

	if err := writeFindings(analysis, writer); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(writer, "Analysis completed in %v\n", duration); err != nil {
		return err
	}
	return nil
}

// writeDriftTable renders the per-metric drifts of one comparison.
func writeDriftTable(bc *schema.BaselineComparison, cfg *contract.Config, fmtFloat func(float64) string, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Metric", "Baseline", "Current", "Change %", "Trend", "Severity"})

	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, d := range sortedDrifts(bc) {
		data = append(data, []string{
			contract.TruncateName(d.MetricName, getMaxTableNameWidth(cfg)),
			fmtFloat(d.BaselineValue),
			fmtFloat(d.CurrentValue),
			fmt.Sprintf("%+.1f", d.ChangePercentage),
			contract.GetColorTrendLabel(d.Trend),
			contract.GetColorSeverityLabel(d.Severity),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// writeFindings prints alerts, warnings, highlights and recommendations.
func writeFindings(analysis *schema.DriftAnalysis, writer io.Writer) error {
	sections := []struct {
		prefix string
		items  []string
	}{
		{"🚨", analysis.CriticalAlerts},
		{"⚠️ ", analysis.DegradationWarnings},
		{"✅", analysis.ImprovementHighlights},
		{"💡", analysis.Recommendations},
	}
	for _, section := range sections {
		for _, item := range section.items {
			if _, err := fmt.Fprintf(writer, "%s %s\n", section.prefix, item); err != nil {
				return err
			}
		}
	}
	return nil
}
