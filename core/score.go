package core

import (
	"github.com/archdrift/archdrift/internal/contract"
	"github.com/archdrift/archdrift/schema"
)

// Tunable maxima to normalize metrics; values beyond these saturate.
const (
	maxAfferent     = 25.0 // dependents beyond this saturate
	maxEfferent     = 25.0 // dependencies beyond this saturate
	maxDensity      = 0.3  // a density of 0.3 is already a tangled graph
	maxCycles       = 8.0  // distinct cycles beyond this saturate
	maxHotspotShare = 0.4  // 40% of components flagged is a saturated signal
)

// scoreComponentRisk calculates a component's migration risk score (0-100)
// as a weighted combination of normalized afferent coupling, efferent
// coupling, instability and distance from the main sequence. A hub with
// both high afferent and high efferent coupling accumulates both terms, so
// it always scores above a pure sink or pure source of similar magnitude.
func scoreComponentRisk(cc *schema.ComponentCoupling, w contract.RiskWeights) float64 {
	// --- Normalized Metrics [0,1] ---
	nAfferent := schema.Clamp01(float64(cc.AfferentCoupling) / maxAfferent)
	nEfferent := schema.Clamp01(float64(cc.EfferentCoupling) / maxEfferent)
	nInstability := schema.Clamp01(cc.Instability)
	nDistance := schema.Clamp01(cc.DistanceFromMainSequence)

	breakdown := map[schema.BreakdownKey]float64{
		schema.BreakdownAfferent:    w.Afferent * nAfferent,
		schema.BreakdownEfferent:    w.Efferent * nEfferent,
		schema.BreakdownInstability: w.Instability * nInstability,
		schema.BreakdownDistance:    w.Distance * nDistance,
	}

	var raw float64
	for _, value := range breakdown {
		raw += value
	}
	score := raw * 100.0

	// Save breakdown (scaled to percent contributions) for explain output.
	cc.Breakdown = make(map[schema.BreakdownKey]float64, len(breakdown))
	for k, v := range breakdown {
		cc.Breakdown[k] = v * 100.0
	}

	return schema.ClampScore(score)
}

// scoreMigrationComplexity calculates the graph-wide migration complexity
// score (0-100) as a weighted combination of coupling density, average
// instability, average distance, circular dependency count and hotspot
// density. The score is monotonically increasing in each term.
func scoreMigrationComplexity(agg schema.AggregateMetrics, cycleCount, hotspotCount, totalComponents int, w contract.ComplexityWeights) float64 {
	hotspotShare := 0.0
	if totalComponents > 0 {
		hotspotShare = float64(hotspotCount) / float64(totalComponents)
	}

	nDensity := schema.Clamp01(agg.CouplingDensity / maxDensity)
	nInstability := schema.Clamp01(agg.AverageInstability)
	nDistance := schema.Clamp01(agg.AverageDistance)
	nCycles := schema.Clamp01(float64(cycleCount) / maxCycles)
	nHotspots := schema.Clamp01(hotspotShare / maxHotspotShare)

	raw := w.Density*nDensity +
		w.Instability*nInstability +
		w.Distance*nDistance +
		w.Cycles*nCycles +
		w.HotspotDensity*nHotspots

	return schema.ClampScore(raw * 100.0)
}
