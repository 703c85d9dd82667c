package core

import (
	"math"

	"github.com/archdrift/archdrift/internal/contract"
	"github.com/archdrift/archdrift/schema"
)

// buildComponentCoupling derives the per-component coupling metrics from the
// normalized model: afferent/efferent counts, instability, abstractness and
// distance from the main sequence. Hotspot flags and risk scores are filled
// in by later passes.
func buildComponentCoupling(model schema.DependencyModel, cfg *contract.CouplingConfig) map[string]*schema.ComponentCoupling {
	// Reverse index for afferent coupling.
	incoming := make(map[string]schema.DependencySet, len(model))
	for component, deps := range model {
		for dep := range deps {
			if _, ok := incoming[dep]; !ok {
				incoming[dep] = schema.DependencySet{}
			}
			incoming[dep][component] = struct{}{}
		}
	}

	components := make(map[string]*schema.ComponentCoupling, len(model))
	for name, deps := range model {
		afferent := len(incoming[name])
		efferent := len(deps)

		// A component with no edges at all is treated as maximally stable.
		instability := 0.0
		if afferent+efferent > 0 {
			instability = float64(efferent) / float64(afferent+efferent)
		}

		abstractness := 0.0
		if cfg.Abstractness != nil {
			abstractness = schema.Clamp01(cfg.Abstractness(name))
		}

		// Martin's distance from the main sequence: |A + I - 1|.
		distance := math.Abs(abstractness + instability - 1)
		if distance > 2 {
			distance = 2
		}

		components[name] = &schema.ComponentCoupling{
			Name:                     name,
			AfferentCoupling:         afferent,
			EfferentCoupling:         efferent,
			Instability:              instability,
			Abstractness:             abstractness,
			DistanceFromMainSequence: distance,
			IncomingDependencies:     schema.SetToSorted(incoming[name]),
			OutgoingDependencies:     schema.SetToSorted(deps),
		}
	}
	return components
}
