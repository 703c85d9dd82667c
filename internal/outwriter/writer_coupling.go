package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/archdrift/archdrift/schema"
)

// rankedComponents orders components by descending risk score, breaking ties
// by name for deterministic output.
func rankedComponents(result *schema.CouplingMetrics) []*schema.ComponentCoupling {
	ranked := make([]*schema.ComponentCoupling, 0, len(result.ComponentCoupling))
	for _, cc := range result.ComponentCoupling {
		ranked = append(ranked, cc)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].RiskScore != ranked[j].RiskScore {
			return ranked[i].RiskScore > ranked[j].RiskScore
		}
		return ranked[i].Name < ranked[j].Name
	})
	return ranked
}

// writeCSVResultsForCoupling writes the coupling analysis in CSV format.
func writeCSVResultsForCoupling(w *csv.Writer, result *schema.CouplingMetrics, fmtFloat func(float64) string, intFmt string) error {
	// CSV header
	header := []string{
		"rank",
		"component",
		"afferent_coupling",
		"efferent_coupling",
		"instability",
		"abstractness",
		"distance_from_main_sequence",
		"risk_score",
		"coupling_strength",
		"is_hotspot",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for i, cc := range rankedComponents(result) {
		rec := []string{
			strconv.Itoa(i + 1),                      // Rank
			cc.Name,                                  // Component
			fmt.Sprintf(intFmt, cc.AfferentCoupling), // Ca
			fmt.Sprintf(intFmt, cc.EfferentCoupling), // Ce
			fmtFloat(cc.Instability),                 // Instability
			fmtFloat(cc.Abstractness),                // Abstractness
			fmtFloat(cc.DistanceFromMainSequence),    // Distance
			fmtFloat(cc.RiskScore),                   // Risk score
			string(cc.CouplingStrength),              // Strength band
			strconv.FormatBool(cc.IsHotspot),         // Hotspot flag
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

// writeJSONResultsForCoupling writes the coupling analysis in JSON format.
func writeJSONResultsForCoupling(w io.Writer, result *schema.CouplingMetrics) error {
	// 1. Prepare the data structure for JSON with rank added
	type JSONComponentCoupling struct {
		Rank int `json:"rank"`
		schema.ComponentCoupling
	}

	ranked := rankedComponents(result)
	components := make([]JSONComponentCoupling, len(ranked))
	for i, cc := range ranked {
		components[i] = JSONComponentCoupling{
			Rank:              i + 1,
			ComponentCoupling: *cc,
		}
	}

	output := struct {
		ApplicationName          string                   `json:"application_name"`
		AnalysisID               string                   `json:"analysis_id"`
		Components               []JSONComponentCoupling  `json:"components"`
		OverallMetrics           schema.AggregateMetrics  `json:"overall_metrics"`
		CouplingHotspots         []schema.CouplingHotspot `json:"coupling_hotspots"`
		CircularDependencies     [][]string               `json:"circular_dependencies"`
		MigrationComplexityScore float64                  `json:"migration_complexity_score"`
		OverallCouplingStrength  schema.CouplingStrength  `json:"overall_coupling_strength"`
	}{
		ApplicationName:          result.ApplicationName,
		AnalysisID:               result.AnalysisID,
		Components:               components,
		OverallMetrics:           result.AggregateMetrics,
		CouplingHotspots:         result.CouplingHotspots,
		CircularDependencies:     result.CircularDependencyChains,
		MigrationComplexityScore: result.MigrationComplexityScore,
		OverallCouplingStrength:  result.OverallCouplingStrength,
	}

	// 2. Use the generic JSON writer
	return writeJSON(w, output)
}
