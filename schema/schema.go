// Package schema has configs, models and shared constants for all parts of archdrift.
package schema

// DependencySet is the set of components a single component depends on.
type DependencySet map[string]struct{}

// DependencyModel is the canonical directed graph consumed by the coupling
// analyzer: component name -> set of components it depends on. Components
// with no outgoing edges are present with an empty set.
type DependencyModel map[string]DependencySet

// Add inserts a dependency edge, creating the target set if needed.
func (m DependencyModel) Add(component, dependency string) {
	if _, ok := m[component]; !ok {
		m[component] = DependencySet{}
	}
	if dependency != "" && dependency != component {
		m[component][dependency] = struct{}{}
	}
}

// Ensure registers a component as a node even if it has no outgoing edges.
func (m DependencyModel) Ensure(component string) {
	if _, ok := m[component]; !ok {
		m[component] = DependencySet{}
	}
}

// TotalEdges returns the number of directed edges in the model.
func (m DependencyModel) TotalEdges() int {
	total := 0
	for _, deps := range m {
		total += len(deps)
	}
	return total
}

// ComponentCoupling holds the per-component coupling metrics derived from the
// dependency model. Instability and abstractness live in [0,1]; distance from
// the main sequence in [0,2]; risk score in [0,100].
type ComponentCoupling struct {
	Name                     string                   `json:"name"`
	AfferentCoupling         int                      `json:"afferent_coupling"`
	EfferentCoupling         int                      `json:"efferent_coupling"`
	Instability              float64                  `json:"instability"`
	Abstractness             float64                  `json:"abstractness"`
	DistanceFromMainSequence float64                  `json:"distance_from_main_sequence"`
	IncomingDependencies     []string                 `json:"incoming_dependencies"`
	OutgoingDependencies     []string                 `json:"outgoing_dependencies"`
	CouplingStrength         CouplingStrength         `json:"coupling_strength"`
	RiskScore                float64                  `json:"risk_score"`
	IsHotspot                bool                     `json:"is_hotspot"`
	Breakdown                map[BreakdownKey]float64 `json:"breakdown,omitempty"` // Normalized contribution of each factor for debugging/tuning
}

// CouplingHotspot flags a component or cycle whose coupling exceeds a
// configured threshold, with migration guidance attached.
type CouplingHotspot struct {
	HotspotID              string             `json:"hotspot_id"`
	Components             []string           `json:"components"`
	CouplingType           CouplingType       `json:"coupling_type"`
	Severity               Severity           `json:"severity"`
	Description            string             `json:"description"`
	Metrics                map[string]float64 `json:"metrics"`
	ImpactOnMigration      string             `json:"impact_on_migration"`
	RemediationSuggestions []string           `json:"remediation_suggestions"`
	EffortEstimateDays     float64            `json:"effort_estimate_days"` // Always > 0
}

// AggregateMetrics holds graph-wide coupling statistics.
type AggregateMetrics struct {
	CouplingDensity     float64 `json:"coupling_density"`
	AverageInstability  float64 `json:"average_instability"`
	AverageAbstractness float64 `json:"average_abstractness"`
	AverageDistance     float64 `json:"average_distance"`
	MaxAfferentCoupling int     `json:"max_afferent_coupling"`
	MaxEfferentCoupling int     `json:"max_efferent_coupling"`
}

// CouplingMetrics is the full result of one coupling analysis run. It is a
// value produced fresh per invocation and immutable once returned.
type CouplingMetrics struct {
	ApplicationName          string                        `json:"application_name"`
	AnalysisID               string                        `json:"analysis_id"`
	ComponentCoupling        map[string]*ComponentCoupling `json:"component_coupling"`
	AggregateMetrics         AggregateMetrics              `json:"aggregate_metrics"`
	CouplingHotspots         []CouplingHotspot             `json:"coupling_hotspots"`
	CircularDependencyCount  int                           `json:"circular_dependency_count"`
	CircularDependencyChains [][]string                    `json:"circular_dependency_chains"`
	MigrationComplexityScore float64                       `json:"migration_complexity_score"`
	OverallCouplingStrength  CouplingStrength              `json:"overall_coupling_strength"`
	TotalComponents          int                           `json:"total_components"`
	TotalDependencies        int                           `json:"total_dependencies"`
	MetricsMetadata          map[string]any                `json:"metrics_metadata"`
}

// HotspotComponents returns the names of all components flagged as hotspots,
// in stable sorted order of the component map.
func (cm *CouplingMetrics) HotspotComponents() []string {
	var names []string
	for name, cc := range cm.ComponentCoupling {
		if cc.IsHotspot {
			names = append(names, name)
		}
	}
	SortStrings(names)
	return names
}
