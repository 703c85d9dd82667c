package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/archdrift/archdrift/internal/contract"
	"github.com/archdrift/archdrift/internal/parquet"
	"github.com/archdrift/archdrift/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteCouplingResults outputs the coupling analysis, dispatching based on the output format configured.
func WriteCouplingResults(result *schema.CouplingMetrics, cfg *contract.Config, duration time.Duration) error {
	// Create formatters using helper
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeCouplingJSONResults(result, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeCouplingCSVResults(result, cfg, fmtFloat, intFmt); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if cfg.OutputFile == "" {
			return fmt.Errorf("parquet output requires --output-file")
		}
		rows := parquet.ConvertCouplingMetrics(result)
		if err := parquet.WriteComponentCouplingParquet(rows, cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
		fmt.Fprintf(os.Stderr, "💾 Wrote Parquet to %s\n", cfg.OutputFile)
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCouplingTable(result, cfg, fmtFloat, intFmt, duration, w)
		}, "Wrote table")
	}
	return nil
}

// writeCouplingJSONResults handles opening the file and calling the JSON writer.
func writeCouplingJSONResults(result *schema.CouplingMetrics, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSONResultsForCoupling(w, result)
	}, "Wrote JSON")
}

// writeCouplingCSVResults handles opening the file and calling the CSV writer.
func writeCouplingCSVResults(result *schema.CouplingMetrics, cfg *contract.Config, fmtFloat func(float64) string, intFmt string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		csvWriter := csv.NewWriter(w)
		defer csvWriter.Flush()
		return writeCSVResultsForCoupling(csvWriter, result, fmtFloat, intFmt)
	}, "Wrote CSV")
}

// writeCouplingTable generates and writes the human-readable table.
func writeCouplingTable(result *schema.CouplingMetrics, cfg *contract.Config, fmtFloat func(float64) string, intFmt string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	// 1. Define Headers
	headers := []string{"Rank", "Component", "Ca", "Ce", "Instability", "Distance", "Risk", "Strength", "Hotspot"}
	table.Header(headers)

	// 2. Configure Separators/Borders to match a minimal look
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Populate Rows, worst risk first
	var data [][]string
	for i, cc := range rankedComponents(result) {
		row := []string{
			strconv.Itoa(i + 1), // Rank
			contract.TruncateName(cc.Name, getMaxTableNameWidth(cfg)), // Component
			fmt.Sprintf(intFmt, cc.AfferentCoupling),                  // Ca
			fmt.Sprintf(intFmt, cc.EfferentCoupling),                  // Ce
			fmtFloat(cc.Instability),                                  // Instability
			fmtFloat(cc.DistanceFromMainSequence),                     // Distance
			fmtFloat(cc.RiskScore),                                    // Risk
			string(cc.CouplingStrength),                               // Strength
			formatHotspotFlag(cc.IsHotspot),                           // Hotspot
		}
		data = append(data, row)
	}

	// 4. Render the table
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	// Hotspot detail follows the main table
	if len(result.CouplingHotspots) > 0 {
		if err := writeHotspotTable(result.CouplingHotspots, writer); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(writer, "Analyzed %d components with %d dependencies (%d circular)\n",
		result.TotalComponents, result.TotalDependencies, result.CircularDependencyCount); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Migration complexity: %s (%s coupling)\n",
		fmtFloat(result.MigrationComplexityScore), result.OverallCouplingStrength); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Analysis completed in %v\n", duration); err != nil {
		return err
	}
	return nil
}

// writeHotspotTable renders the detected hotspots with their severity.
func writeHotspotTable(hotspots []schema.CouplingHotspot, writer io.Writer) error {
	if _, err := fmt.Fprintf(writer, "\n🔥 Coupling hotspots\n"); err != nil {
		return err
	}

	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Hotspot", "Type", "Severity", "Components", "Effort (days)"})

	var data [][]string
	for _, hs := range hotspots {
		data = append(data, []string{
			hs.HotspotID,
			string(hs.CouplingType),
			contract.GetColorSeverityLabel(hs.Severity),
			strings.Join(hs.Components, ", "),
			fmt.Sprintf("%.1f", hs.EffortEstimateDays),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// formatHotspotFlag renders the hotspot column marker.
func formatHotspotFlag(isHotspot bool) string {
	if isHotspot {
		return "yes"
	}
	return ""
}
