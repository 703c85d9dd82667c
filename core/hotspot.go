package core

import (
	"fmt"
	"strings"

	"github.com/archdrift/archdrift/internal/contract"
	"github.com/archdrift/archdrift/schema"
)

// detectHotspots flags components whose afferent or efferent coupling
// strictly exceeds the configured thresholds and emits one hotspot per trip,
// plus one structural hotspot per unique circular dependency chain.
// It mutates the IsHotspot flag on the affected components.
func detectHotspots(components map[string]*schema.ComponentCoupling, cycles [][]string, cfg *contract.CouplingConfig) []schema.CouplingHotspot {
	var hotspots []schema.CouplingHotspot

	for _, name := range schema.SortedKeys(components) {
		cc := components[name]

		if cc.AfferentCoupling > cfg.AfferentHotspotThreshold {
			cc.IsHotspot = true
			hotspots = append(hotspots, afferentHotspot(cc, cfg.AfferentHotspotThreshold))
		}
		if cc.EfferentCoupling > cfg.EfferentHotspotThreshold {
			cc.IsHotspot = true
			hotspots = append(hotspots, efferentHotspot(cc, cfg.EfferentHotspotThreshold))
		}
	}

	for i, cycle := range cycles {
		hotspots = append(hotspots, circularHotspot(i+1, cycle))
	}

	return hotspots
}

// overshootSeverity scales severity with how far a value exceeds its
// threshold: 3x critical, 2x high, 1.5x medium, otherwise low.
func overshootSeverity(value, threshold int) schema.Severity {
	ratio := float64(value) / float64(threshold)
	switch {
	case ratio >= 3.0:
		return schema.SeverityCritical
	case ratio >= 2.0:
		return schema.SeverityHigh
	case ratio >= 1.5:
		return schema.SeverityMedium
	default:
		return schema.SeverityLow
	}
}

func afferentHotspot(cc *schema.ComponentCoupling, threshold int) schema.CouplingHotspot {
	return schema.CouplingHotspot{
		HotspotID:    "afferent_" + cc.Name,
		Components:   []string{cc.Name},
		CouplingType: schema.StructuralCoupling,
		Severity:     overshootSeverity(cc.AfferentCoupling, threshold),
		Description: fmt.Sprintf("%s has %d dependent components (threshold %d)",
			cc.Name, cc.AfferentCoupling, threshold),
		Metrics: map[string]float64{
			"afferent_coupling": float64(cc.AfferentCoupling),
			"threshold":         float64(threshold),
		},
		ImpactOnMigration: fmt.Sprintf("Extracting %s requires coordinating %d consumers; any interface change fans out to all of them.",
			cc.Name, cc.AfferentCoupling),
		RemediationSuggestions: []string{
			fmt.Sprintf("Introduce a stable facade or API contract in front of %s before extraction", cc.Name),
			"Split the component by consumer group to reduce the blast radius of changes",
			"Version the exposed interface so consumers can migrate independently",
		},
		// Coordination effort grows with the number of consumers to migrate.
		EffortEstimateDays: schema.RoundTo(3.0+0.5*float64(cc.AfferentCoupling), 1),
	}
}

func efferentHotspot(cc *schema.ComponentCoupling, threshold int) schema.CouplingHotspot {
	return schema.CouplingHotspot{
		HotspotID:    "efferent_" + cc.Name,
		Components:   []string{cc.Name},
		CouplingType: schema.StructuralCoupling,
		Severity:     overshootSeverity(cc.EfferentCoupling, threshold),
		Description: fmt.Sprintf("%s depends on %d components (threshold %d)",
			cc.Name, cc.EfferentCoupling, threshold),
		Metrics: map[string]float64{
			"efferent_coupling": float64(cc.EfferentCoupling),
			"threshold":         float64(threshold),
		},
		ImpactOnMigration: fmt.Sprintf("%s cannot be extracted until its %d outgoing dependencies are reachable over service boundaries.",
			cc.Name, cc.EfferentCoupling),
		RemediationSuggestions: []string{
			fmt.Sprintf("Audit the outgoing dependencies of %s and drop the incidental ones", cc.Name),
			"Replace direct calls with an anti-corruption layer where dependencies cross domain boundaries",
			"Group the remaining dependencies into a small set of client interfaces",
		},
		EffortEstimateDays: schema.RoundTo(2.0+0.4*float64(cc.EfferentCoupling), 1),
	}
}

func circularHotspot(ordinal int, cycle []string) schema.CouplingHotspot {
	chain := strings.Join(append(append([]string(nil), cycle...), cycle[0]), " -> ")
	return schema.CouplingHotspot{
		HotspotID:    fmt.Sprintf("circular_%03d", ordinal),
		Components:   append([]string(nil), cycle...),
		CouplingType: schema.StructuralCoupling,
		Severity:     schema.SeverityHigh,
		Description:  fmt.Sprintf("Circular dependency: %s", chain),
		Metrics: map[string]float64{
			"cycle_length": float64(len(cycle)),
		},
		ImpactOnMigration: "Members of a dependency cycle cannot be extracted independently; the cycle must be broken first.",
		RemediationSuggestions: []string{
			"Invert one edge of the cycle behind an interface owned by the callee",
			"Extract the shared concern into a new component both sides depend on",
			"Replace the weakest synchronous call in the cycle with an event",
		},
		EffortEstimateDays: schema.RoundTo(5.0+2.0*float64(len(cycle)), 1),
	}
}
