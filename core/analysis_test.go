package core

import (
	"fmt"
	"testing"

	"github.com/archdrift/archdrift/internal/contract"
	"github.com/archdrift/archdrift/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAnalyzeCouplingEmptyInput produces a valid zero-component result
// without raising.
func TestAnalyzeCouplingEmptyInput(t *testing.T) {
	result, err := AnalyzeCoupling("empty-app", nil, nil, nil, nil)
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, "empty-app", result.ApplicationName)
	assert.NotEmpty(t, result.AnalysisID)
	assert.Zero(t, result.TotalComponents)
	assert.Zero(t, result.TotalDependencies)
	assert.Empty(t, result.ComponentCoupling)
	assert.Empty(t, result.CouplingHotspots)
	assert.Zero(t, result.CircularDependencyCount)
	assert.GreaterOrEqual(t, result.MigrationComplexityScore, 0.0)
	assert.Equal(t, schema.VeryWeakCoupling, result.OverallCouplingStrength)
}

// TestAnalyzeCouplingInvalidConfig is the one failing path.
func TestAnalyzeCouplingInvalidConfig(t *testing.T) {
	cfg := contract.DefaultCouplingConfig()
	cfg.AfferentHotspotThreshold = 0

	_, err := AnalyzeCoupling("app", nil, nil, nil, cfg)
	assert.Error(t, err)
}

// TestAnalyzeCouplingAfferentHotspot flags a component with 11 distinct
// dependents under the default threshold of 10.
func TestAnalyzeCouplingAfferentHotspot(t *testing.T) {
	edges := map[string][]string{"shared": {}}
	for i := 0; i < 11; i++ {
		edges[fmt.Sprintf("svc%02d", i)] = []string{"shared"}
	}

	result, err := AnalyzeCoupling("app", staticFixture(edges), nil, nil, nil)
	require.NoError(t, err)

	cc := result.ComponentCoupling["shared"]
	require.NotNil(t, cc)
	assert.Equal(t, 11, cc.AfferentCoupling)
	assert.True(t, cc.IsHotspot)

	require.Len(t, result.CouplingHotspots, 1)
	hs := result.CouplingHotspots[0]
	assert.Equal(t, "afferent_shared", hs.HotspotID)
	assert.Equal(t, schema.StructuralCoupling, hs.CouplingType)
	assert.Greater(t, hs.EffortEstimateDays, 0.0)
	assert.NotEmpty(t, hs.ImpactOnMigration)
	assert.NotEmpty(t, hs.RemediationSuggestions)
}

// TestAnalyzeCouplingEfferentHotspot flags a component with 16 outgoing
// dependencies under the default threshold of 15.
func TestAnalyzeCouplingEfferentHotspot(t *testing.T) {
	var deps []string
	for i := 0; i < 16; i++ {
		deps = append(deps, fmt.Sprintf("dep%02d", i))
	}
	edges := map[string][]string{"god-object": deps}

	result, err := AnalyzeCoupling("app", staticFixture(edges), nil, nil, nil)
	require.NoError(t, err)

	cc := result.ComponentCoupling["god-object"]
	require.NotNil(t, cc)
	assert.Equal(t, 16, cc.EfferentCoupling)
	assert.True(t, cc.IsHotspot)

	require.Len(t, result.CouplingHotspots, 1)
	assert.Equal(t, "efferent_god-object", result.CouplingHotspots[0].HotspotID)
	assert.Greater(t, result.CouplingHotspots[0].EffortEstimateDays, 0.0)
}

// TestAnalyzeCouplingBelowThresholds leaves quiet components unflagged.
func TestAnalyzeCouplingBelowThresholds(t *testing.T) {
	edges := map[string][]string{"shared": {}}
	for i := 0; i < 10; i++ { // exactly at, not above, the afferent threshold
		edges[fmt.Sprintf("svc%02d", i)] = []string{"shared"}
	}

	result, err := AnalyzeCoupling("app", staticFixture(edges), nil, nil, nil)
	require.NoError(t, err)

	assert.False(t, result.ComponentCoupling["shared"].IsHotspot)
	assert.Empty(t, result.CouplingHotspots)
}

// TestAnalyzeCouplingTriangleCycle yields exactly one high-severity
// structural circular hotspot.
func TestAnalyzeCouplingTriangleCycle(t *testing.T) {
	result, err := AnalyzeCoupling("app", staticFixture(map[string][]string{
		"a": {"b"},
		"b": {"c"},
		"c": {"a"},
	}), nil, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, result.CircularDependencyCount)
	require.Len(t, result.CircularDependencyChains, 1)

	var circular []schema.CouplingHotspot
	for _, hs := range result.CouplingHotspots {
		if hs.HotspotID[:9] == "circular_" {
			circular = append(circular, hs)
		}
	}
	require.Len(t, circular, 1)
	assert.Equal(t, schema.SeverityHigh, circular[0].Severity)
	assert.Equal(t, schema.StructuralCoupling, circular[0].CouplingType)
	assert.ElementsMatch(t, []string{"a", "b", "c"}, circular[0].Components)
}

// TestAnalyzeCouplingSeverityScaling grows severity with threshold overshoot.
func TestAnalyzeCouplingSeverityScaling(t *testing.T) {
	tests := []struct {
		dependents int
		expected   schema.Severity
	}{
		{11, schema.SeverityLow},       // 1.1x
		{15, schema.SeverityMedium},    // 1.5x
		{20, schema.SeverityHigh},      // 2.0x
		{30, schema.SeverityCritical},  // 3.0x
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d dependents", tt.dependents), func(t *testing.T) {
			edges := map[string][]string{"shared": {}}
			for i := 0; i < tt.dependents; i++ {
				edges[fmt.Sprintf("svc%02d", i)] = []string{"shared"}
			}
			result, err := AnalyzeCoupling("app", staticFixture(edges), nil, nil, nil)
			require.NoError(t, err)
			require.Len(t, result.CouplingHotspots, 1)
			assert.Equal(t, tt.expected, result.CouplingHotspots[0].Severity)
		})
	}
}

// TestAnalyzeCouplingComponentKeysUnique guarantees one entry per component.
func TestAnalyzeCouplingComponentKeysUnique(t *testing.T) {
	result, err := AnalyzeCoupling("app", staticFixture(map[string][]string{
		"a": {"b", "b", "c"}, // duplicate edge collapses
		"b": {"c"},
	}), nil, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, 3, result.TotalComponents)
	assert.Equal(t, 3, result.TotalDependencies)
	assert.Equal(t, 2, result.ComponentCoupling["a"].EfferentCoupling)
}
