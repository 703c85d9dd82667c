package outwriter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/archdrift/archdrift/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func couplingFixture() *schema.CouplingMetrics {
	return &schema.CouplingMetrics{
		ApplicationName: "legacy-erp",
		AnalysisID:      "coupling-1",
		ComponentCoupling: map[string]*schema.ComponentCoupling{
			"orders": {
				Name:                     "orders",
				AfferentCoupling:         12,
				EfferentCoupling:         3,
				Instability:              0.2,
				DistanceFromMainSequence: 0.8,
				RiskScore:                68.4,
				CouplingStrength:         schema.StrongCoupling,
				IsHotspot:                true,
			},
			"billing": {
				Name:             "billing",
				AfferentCoupling: 1,
				EfferentCoupling: 2,
				Instability:      0.67,
				RiskScore:        22.1,
				CouplingStrength: schema.WeakCoupling,
			},
		},
		CouplingHotspots: []schema.CouplingHotspot{
			{
				HotspotID:          "afferent_orders",
				Components:         []string{"orders"},
				CouplingType:       schema.StructuralCoupling,
				Severity:           schema.SeverityMedium,
				EffortEstimateDays: 9.0,
			},
		},
		TotalComponents:          2,
		TotalDependencies:        5,
		MigrationComplexityScore: 41.3,
		OverallCouplingStrength:  schema.ModerateCoupling,
	}
}

func TestRankedComponents(t *testing.T) {
	ranked := rankedComponents(couplingFixture())
	require.Len(t, ranked, 2)

	// Worst risk first
	assert.Equal(t, "orders", ranked[0].Name)
	assert.Equal(t, "billing", ranked[1].Name)
}

func TestRankedComponentsTieBreak(t *testing.T) {
	result := &schema.CouplingMetrics{
		ComponentCoupling: map[string]*schema.ComponentCoupling{
			"b": {Name: "b", RiskScore: 10},
			"a": {Name: "a", RiskScore: 10},
		},
	}
	ranked := rankedComponents(result)
	assert.Equal(t, "a", ranked[0].Name)
	assert.Equal(t, "b", ranked[1].Name)
}

func TestWriteJSONResultsForCoupling(t *testing.T) {
	var buf bytes.Buffer
	err := writeJSONResultsForCoupling(&buf, couplingFixture())
	require.NoError(t, err)

	// Parse the JSON to verify structure
	var result map[string]interface{}
	err = json.Unmarshal(buf.Bytes(), &result)
	require.NoError(t, err)

	assert.Equal(t, "legacy-erp", result["application_name"])
	assert.Equal(t, "coupling-1", result["analysis_id"])
	assert.Equal(t, "moderate", result["overall_coupling_strength"])

	components, ok := result["components"].([]interface{})
	require.True(t, ok)
	require.Len(t, components, 2)

	first := components[0].(map[string]interface{})
	assert.Equal(t, float64(1), first["rank"])
	assert.Equal(t, "orders", first["name"])
	assert.Equal(t, true, first["is_hotspot"])
}

func TestWriteCSVResultsForCoupling(t *testing.T) {
	fmtFloat, intFmt := createFormatters(2)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	err := writeCSVResultsForCoupling(w, couplingFixture(), fmtFloat, intFmt)
	require.NoError(t, err)
	w.Flush()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3) // header + 2 rows

	// Check header
	assert.Contains(t, lines[0], "rank")
	assert.Contains(t, lines[0], "component")
	assert.Contains(t, lines[0], "risk_score")

	// Worst risk first
	assert.Contains(t, lines[1], "orders")
	assert.Contains(t, lines[1], "68.40")
	assert.Contains(t, lines[1], "true")
	assert.Contains(t, lines[2], "billing")
	assert.Contains(t, lines[2], "false")
}
