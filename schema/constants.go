package schema

// Custom string types for type safety.
type (
	// Severity represents how serious a drift or hotspot finding is.
	Severity string

	// Trend represents the direction of a metric between snapshots.
	Trend string

	// CouplingStrength classifies coupling magnitude against ordinal bands.
	CouplingStrength string

	// CouplingType represents the nature of a coupling hotspot.
	CouplingType string

	// DriftPattern represents a recognized cross-metric drift shape.
	DriftPattern string

	// BreakdownKey represents keys used in scoring breakdowns.
	BreakdownKey string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for baseline storage.
	DatabaseBackend string
)

// Severity levels, ascending.
const (
	SeverityNone     Severity = "none"
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Trend directions.
const (
	TrendImproving Trend = "improving"
	TrendStable    Trend = "stable"
	TrendDegrading Trend = "degrading"
)

// Coupling strength bands, ascending.
const (
	VeryWeakCoupling   CouplingStrength = "very_weak"
	WeakCoupling       CouplingStrength = "weak"
	ModerateCoupling   CouplingStrength = "moderate"
	StrongCoupling     CouplingStrength = "strong"
	VeryStrongCoupling CouplingStrength = "very_strong"
)

// Coupling hotspot types.
const (
	StructuralCoupling CouplingType = "structural"
	TemporalCoupling   CouplingType = "temporal"
	DataCoupling       CouplingType = "data"
)

// Recognized drift patterns.
const (
	PerformanceDegradationPattern DriftPattern = "performance_degradation"
	CouplingIncreasePattern       DriftPattern = "coupling_increase"
	ComplexityGrowthPattern       DriftPattern = "complexity_growth"
	QualityErosionPattern         DriftPattern = "quality_erosion"
	SteadyImprovementPattern      DriftPattern = "steady_improvement"
)

// Breakdown keys used in the scoring logic.
const (
	BreakdownAfferent    BreakdownKey = "afferent"    // nAfferent
	BreakdownEfferent    BreakdownKey = "efferent"    // nEfferent
	BreakdownInstability BreakdownKey = "instability" // raw instability
	BreakdownDistance    BreakdownKey = "distance"    // normalized distance

	BreakdownDensity  BreakdownKey = "density"  // nDensity (complexity score)
	BreakdownCycles   BreakdownKey = "cycles"   // nCycles (complexity score)
	BreakdownHotspots BreakdownKey = "hotspots" // hotspot density (complexity score)
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All baseline store backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// severityRanks orders severities for comparison.
var severityRanks = map[Severity]int{
	SeverityNone:     0,
	SeverityLow:      1,
	SeverityMedium:   2,
	SeverityHigh:     3,
	SeverityCritical: 4,
}

// Rank returns the ordinal position of a severity (unknown values rank lowest).
func (s Severity) Rank() int {
	return severityRanks[s]
}

// AtLeast reports whether s is at least as severe as other.
func (s Severity) AtLeast(other Severity) bool {
	return s.Rank() >= other.Rank()
}

// MaxSeverity returns the more severe of two severities.
func MaxSeverity(a, b Severity) Severity {
	if b.Rank() > a.Rank() {
		return b
	}
	return a
}

// Score maps a severity onto a 0-100 scale for weighted aggregation.
func (s Severity) Score() float64 {
	switch s {
	case SeverityLow:
		return 25
	case SeverityMedium:
		return 50
	case SeverityHigh:
		return 75
	case SeverityCritical:
		return 100
	default:
		return 0
	}
}
