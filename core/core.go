// Package core implements the coupling analyzer: it normalizes dependency
// inputs into a canonical directed graph, computes per-component and
// aggregate coupling metrics, detects hotspots and circular dependencies,
// and scores migration complexity.
package core

import (
	"fmt"
	"time"

	"github.com/archdrift/archdrift/internal/contract"
	"github.com/archdrift/archdrift/schema"
)

// AnalyzeCoupling runs the full coupling analysis for one application.
// All of static, runtime and graph are optional; missing inputs degrade to an
// empty dependency model and a valid zero-component result. The only error
// condition is an invalid configuration.
func AnalyzeCoupling(
	applicationName string,
	static *schema.StaticResults,
	runtime *schema.RuntimeResults,
	graph *schema.DependencyGraph,
	cfg *contract.CouplingConfig,
) (*schema.CouplingMetrics, error) {
	if cfg == nil {
		cfg = contract.DefaultCouplingConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid coupling config: %w", err)
	}

	// --- 1. Normalization Phase ---
	model := BuildDependencyModel(static, runtime, graph)

	// --- 2. Per-Component Metrics ---
	components := buildComponentCoupling(model, cfg)

	// --- 3. Circular Dependencies ---
	cycles := collectCycles(model, static, graph)

	// --- 4. Hotspot Detection (also flags IsHotspot on components) ---
	hotspots := detectHotspots(components, cycles, cfg)

	// --- 5. Aggregates and Scoring ---
	aggregates := buildAggregates(model, components)
	for _, cc := range components {
		cc.RiskScore = scoreComponentRisk(cc, cfg.RiskWeights)
		cc.CouplingStrength = cfg.StrengthBands.Classify(cc.RiskScore)
	}
	complexity := scoreMigrationComplexity(aggregates, len(cycles), len(hotspots), len(components), cfg.ComplexityWeights)

	return &schema.CouplingMetrics{
		ApplicationName:          applicationName,
		AnalysisID:               newAnalysisID("coupling"),
		ComponentCoupling:        components,
		AggregateMetrics:         aggregates,
		CouplingHotspots:         hotspots,
		CircularDependencyCount:  len(cycles),
		CircularDependencyChains: cycles,
		MigrationComplexityScore: complexity,
		OverallCouplingStrength:  cfg.StrengthBands.Classify(complexity),
		TotalComponents:          len(components),
		TotalDependencies:        model.TotalEdges(),
		MetricsMetadata: map[string]any{
			"analyzed_at":        time.Now().UTC().Format(time.RFC3339),
			"afferent_threshold": cfg.AfferentHotspotThreshold,
			"efferent_threshold": cfg.EfferentHotspotThreshold,
			"sources": map[string]bool{
				"static_results":   static != nil,
				"runtime_results":  runtime != nil,
				"dependency_graph": graph != nil,
			},
		},
	}, nil
}

// buildAggregates computes the graph-wide coupling statistics.
func buildAggregates(model schema.DependencyModel, components map[string]*schema.ComponentCoupling) schema.AggregateMetrics {
	n := len(components)
	agg := schema.AggregateMetrics{}
	if n == 0 {
		return agg
	}

	var sumInstability, sumAbstractness, sumDistance float64
	for _, cc := range components {
		sumInstability += cc.Instability
		sumAbstractness += cc.Abstractness
		sumDistance += cc.DistanceFromMainSequence
		agg.MaxAfferentCoupling = max(agg.MaxAfferentCoupling, cc.AfferentCoupling)
		agg.MaxEfferentCoupling = max(agg.MaxEfferentCoupling, cc.EfferentCoupling)
	}

	agg.AverageInstability = sumInstability / float64(n)
	agg.AverageAbstractness = sumAbstractness / float64(n)
	agg.AverageDistance = sumDistance / float64(n)

	// Density over the n*(n-1) possible directed edges; degenerate for n<=1.
	if n > 1 {
		agg.CouplingDensity = float64(model.TotalEdges()) / float64(n*(n-1))
	}
	return agg
}

// newAnalysisID produces a reasonably unique identifier for a result value.
func newAnalysisID(kind string) string {
	return fmt.Sprintf("%s-%d", kind, time.Now().UnixNano())
}
