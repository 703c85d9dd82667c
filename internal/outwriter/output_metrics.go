package outwriter

import (
	"fmt"
	"strings"

	"github.com/archdrift/archdrift/internal/contract"
)

// weightTerm is one named factor in a scoring formula.
type weightTerm struct {
	name   string
	weight float64
}

// formatWeightFormula formats a weighted sum for display in formulas.
func formatWeightFormula(terms []weightTerm) string {
	var parts []string
	for _, t := range terms {
		if t.weight > 0 {
			parts = append(parts, fmt.Sprintf("%.2f*%s", t.weight, t.name))
		}
	}
	return strings.Join(parts, " + ")
}

// WriteScoringDefinitions displays the formal definitions of both scoring
// models: component risk and migration complexity for the coupling analyzer,
// and the drift score for the drift detector.
func WriteScoringDefinitions(cfg *contract.Config) error {
	coupling := cfg.Coupling
	if coupling == nil {
		coupling = contract.DefaultCouplingConfig()
	}
	driftCfg := cfg.Drift
	if driftCfg == nil {
		driftCfg = contract.DefaultDriftConfig()
	}

	fmt.Println("📐 Archdrift Scoring Models")
	fmt.Println("===========================")
	fmt.Println()
	fmt.Println("All scores = weighted sum of normalized factors, scaled to 0-100")
	fmt.Println()

	fmt.Println("🔗 COMPONENT RISK: extraction risk per component")
	fmt.Println("   Factors: Afferent, Efferent, Instability, Distance")
	riskFormula := formatWeightFormula([]weightTerm{
		{"afferent", coupling.RiskWeights.Afferent},
		{"efferent", coupling.RiskWeights.Efferent},
		{"instability", coupling.RiskWeights.Instability},
		{"distance", coupling.RiskWeights.Distance},
	})
	fmt.Printf("   Formula: Risk = %s\n", riskFormula)
	fmt.Println()

	fmt.Println("🧩 MIGRATION COMPLEXITY: whole-application decomposition effort")
	fmt.Println("   Factors: Density, Instability, Distance, Cycles, HotspotDensity")
	complexityFormula := formatWeightFormula([]weightTerm{
		{"density", coupling.ComplexityWeights.Density},
		{"instability", coupling.ComplexityWeights.Instability},
		{"distance", coupling.ComplexityWeights.Distance},
		{"cycles", coupling.ComplexityWeights.Cycles},
		{"hotspot_density", coupling.ComplexityWeights.HotspotDensity},
	})
	fmt.Printf("   Formula: Complexity = %s\n", complexityFormula)
	b := coupling.StrengthBands
	fmt.Printf("   Strength bands: weak>=%.0f moderate>=%.0f strong>=%.0f very_strong>=%.0f\n",
		b.Weak, b.Moderate, b.Strong, b.VeryStrong)
	fmt.Println()

	fmt.Println("📉 DRIFT SCORE: degradation against stored baselines")
	fmt.Println("   Factors: worst severity per category, weighted across categories")
	driftFormula := formatWeightFormula([]weightTerm{
		{"performance", driftCfg.CategoryWeights.Performance},
		{"coupling", driftCfg.CategoryWeights.Coupling},
		{"complexity", driftCfg.CategoryWeights.Complexity},
		{"quality", driftCfg.CategoryWeights.Quality},
	})
	fmt.Printf("   Formula: Drift = %.2f*(%s) + %.2f*worst_category\n",
		1-driftCfg.DominanceWeight, driftFormula, driftCfg.DominanceWeight)
	fmt.Printf("   Stable band: +/-%.1f%% | Critical threshold: %.1f%%\n",
		driftCfg.StableBandPct, driftCfg.CriticalThresholdPct)
	fmt.Printf("   Category thresholds: performance %.1f%% coupling %.1f%% complexity %.1f%% quality %.1f%%\n",
		driftCfg.PerformanceDegradationPct, driftCfg.CouplingIncreasePct,
		driftCfg.ComplexityIncreasePct, driftCfg.QualityDeclinePct)
	fmt.Println()

	fmt.Println("🔗 Special Relationship")
	fmt.Println("Health Score = 100 - mean Drift Score across baselines")
	fmt.Println("(Drift Score ↑ when any category degrades → Health Score ↓)")

	return nil
}
