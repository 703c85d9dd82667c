package core

import (
	"math"
	"testing"

	"github.com/archdrift/archdrift/internal/contract"
	"github.com/archdrift/archdrift/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// modelFromLists builds a dependency model from plain adjacency lists.
func modelFromLists(t *testing.T, edges map[string][]string) schema.DependencyModel {
	t.Helper()
	return BuildDependencyModel(&schema.StaticResults{
		DependencyAnalysis: schema.DependencyAnalysis{InternalDependencies: edges},
	}, nil, nil)
}

// TestInstabilityFormula checks I = Ce / (Ca + Ce) for mixed nodes.
func TestInstabilityFormula(t *testing.T) {
	model := modelFromLists(t, map[string][]string{
		"api":     {"auth", "billing"}, // pure source: Ca=0, Ce=2
		"billing": {"auth"},            // mixed: Ca=1, Ce=1
		"auth":    {},                  // pure sink: Ca=2, Ce=0
	})
	components := buildComponentCoupling(model, contract.DefaultCouplingConfig())

	require.Len(t, components, 3)
	assert.InDelta(t, 1.0, components["api"].Instability, 0.0001, "pure source is maximally unstable")
	assert.InDelta(t, 0.5, components["billing"].Instability, 0.0001)
	assert.InDelta(t, 0.0, components["auth"].Instability, 0.0001, "pure sink is maximally stable")
}

// TestInstabilityIsolatedComponent treats an edge-free component as stable.
func TestInstabilityIsolatedComponent(t *testing.T) {
	model := modelFromLists(t, map[string][]string{"island": {}})
	components := buildComponentCoupling(model, contract.DefaultCouplingConfig())

	assert.InDelta(t, 0.0, components["island"].Instability, 0.0001)
	assert.Equal(t, 0, components["island"].AfferentCoupling)
	assert.Equal(t, 0, components["island"].EfferentCoupling)
}

// TestDistanceFromMainSequence checks D = |A + I - 1| with a pluggable
// abstractness provider and full bound coverage.
func TestDistanceFromMainSequence(t *testing.T) {
	cfg := contract.DefaultCouplingConfig()
	cfg.Abstractness = func(component string) float64 {
		if component == "auth" {
			return 0.8
		}
		return 0
	}

	model := modelFromLists(t, map[string][]string{
		"api":  {"auth"},
		"auth": {},
	})
	components := buildComponentCoupling(model, cfg)

	// api: A=0, I=1 -> D=0 (on the main sequence).
	assert.InDelta(t, 0.0, components["api"].DistanceFromMainSequence, 0.0001)
	// auth: A=0.8, I=0 -> D=0.2.
	assert.InDelta(t, 0.2, components["auth"].DistanceFromMainSequence, 0.0001)

	for _, cc := range components {
		assert.GreaterOrEqual(t, cc.DistanceFromMainSequence, 0.0)
		assert.LessOrEqual(t, cc.DistanceFromMainSequence, 2.0)
	}
}

// TestAbstractnessDefaultsToZero covers the nil-provider path.
func TestAbstractnessDefaultsToZero(t *testing.T) {
	model := modelFromLists(t, map[string][]string{"api": {"auth"}, "auth": {}})
	components := buildComponentCoupling(model, contract.DefaultCouplingConfig())

	for _, cc := range components {
		assert.Zero(t, cc.Abstractness)
		// With A=0, distance collapses to |I - 1|.
		assert.InDelta(t, math.Abs(cc.Instability-1), cc.DistanceFromMainSequence, 0.0001)
	}
}

// TestDependencyListsAreSorted keeps incoming/outgoing lists deterministic.
func TestDependencyListsAreSorted(t *testing.T) {
	model := modelFromLists(t, map[string][]string{
		"api":    {"zeta", "auth", "mid"},
		"worker": {"mid"},
	})
	components := buildComponentCoupling(model, contract.DefaultCouplingConfig())

	assert.Equal(t, []string{"auth", "mid", "zeta"}, components["api"].OutgoingDependencies)
	assert.Equal(t, []string{"api", "worker"}, components["mid"].IncomingDependencies)
}
