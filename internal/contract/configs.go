package contract

import (
	"fmt"
	"math"
	"strings"

	"github.com/archdrift/archdrift/schema"
)

// Default values for configuration.
const (
	DefaultBaselineLimit = 5
	MaxBaselineLimit     = 100
	DefaultPrecision     = 1

	// Default hotspot thresholds: components with 10+ dependents or 15+
	// dependencies are flagged for migration-risk review.
	DefaultAfferentThreshold = 10
	DefaultEfferentThreshold = 15

	// DefaultStableBandPct is the symmetric band around zero within which a
	// metric change classifies as stable.
	DefaultStableBandPct = 2.0
)

// weightEpsilon is the tolerance when checking that weight sets sum to 1.0.
const weightEpsilon = 0.01

// ProfileConfig holds profiling settings.
type ProfileConfig struct {
	Enabled bool
	Prefix  string
}

// ProcessProfilingConfig enables profiling when a prefix is provided.
func ProcessProfilingConfig(profile *ProfileConfig, profilePrefix string) error {
	if profilePrefix != "" {
		profile.Enabled = true
		profile.Prefix = profilePrefix
	}
	return nil
}

// RiskWeights holds the per-component risk score weights. The four fields
// must sum to approximately 1.0.
type RiskWeights struct {
	Afferent    float64 `mapstructure:"afferent"`
	Efferent    float64 `mapstructure:"efferent"`
	Instability float64 `mapstructure:"instability"`
	Distance    float64 `mapstructure:"distance"`
}

// Sum returns the total of all risk weights.
func (w RiskWeights) Sum() float64 {
	return w.Afferent + w.Efferent + w.Instability + w.Distance
}

// ComplexityWeights holds the migration complexity score weights. The five
// fields must sum to approximately 1.0.
type ComplexityWeights struct {
	Density        float64 `mapstructure:"density"`
	Instability    float64 `mapstructure:"instability"`
	Distance       float64 `mapstructure:"distance"`
	Cycles         float64 `mapstructure:"cycles"`
	HotspotDensity float64 `mapstructure:"hotspot_density"`
}

// Sum returns the total of all complexity weights.
func (w ComplexityWeights) Sum() float64 {
	return w.Density + w.Instability + w.Distance + w.Cycles + w.HotspotDensity
}

// StrengthBands holds the ascending lower cut points, on the 0-100 complexity
// scale, for classifying coupling strength. Scores below Weak classify as
// very_weak; scores at or above VeryStrong classify as very_strong.
type StrengthBands struct {
	Weak       float64 `mapstructure:"weak"`
	Moderate   float64 `mapstructure:"moderate"`
	Strong     float64 `mapstructure:"strong"`
	VeryStrong float64 `mapstructure:"very_strong"`
}

// Classify maps a 0-100 score onto a coupling strength band.
func (b StrengthBands) Classify(score float64) schema.CouplingStrength {
	switch {
	case score >= b.VeryStrong:
		return schema.VeryStrongCoupling
	case score >= b.Strong:
		return schema.StrongCoupling
	case score >= b.Moderate:
		return schema.ModerateCoupling
	case score >= b.Weak:
		return schema.WeakCoupling
	default:
		return schema.VeryWeakCoupling
	}
}

// AbstractnessProvider estimates the [0,1] interface-to-implementation ratio
// for a component. There is no universal source for this signal, so it is
// pluggable; a nil provider means abstractness 0 for every component.
type AbstractnessProvider func(component string) float64

// CouplingConfig holds the validated tuning parameters for the coupling
// analyzer: hotspot thresholds, scoring weights and strength bands.
type CouplingConfig struct {
	AfferentHotspotThreshold int
	EfferentHotspotThreshold int
	RiskWeights              RiskWeights
	ComplexityWeights        ComplexityWeights
	StrengthBands            StrengthBands
	Abstractness             AbstractnessProvider
}

// DefaultCouplingConfig returns a coupling configuration with documented
// defaults that satisfy Validate.
func DefaultCouplingConfig() *CouplingConfig {
	return &CouplingConfig{
		AfferentHotspotThreshold: DefaultAfferentThreshold,
		EfferentHotspotThreshold: DefaultEfferentThreshold,
		RiskWeights: RiskWeights{
			Afferent:    0.30, // dependents make extraction risky
			Efferent:    0.25,
			Instability: 0.20,
			Distance:    0.25,
		},
		ComplexityWeights: ComplexityWeights{
			Density:        0.30,
			Instability:    0.20,
			Distance:       0.15,
			Cycles:         0.20,
			HotspotDensity: 0.15,
		},
		StrengthBands: StrengthBands{Weak: 10, Moderate: 30, Strong: 55, VeryStrong: 75},
	}
}

// Validate checks thresholds, weight sums and band ordering.
func (c *CouplingConfig) Validate() error {
	if c.AfferentHotspotThreshold <= 0 {
		return fmt.Errorf("afferent hotspot threshold must be positive (received %d)", c.AfferentHotspotThreshold)
	}
	if c.EfferentHotspotThreshold <= 0 {
		return fmt.Errorf("efferent hotspot threshold must be positive (received %d)", c.EfferentHotspotThreshold)
	}
	if math.Abs(c.RiskWeights.Sum()-1.0) > weightEpsilon {
		return fmt.Errorf("risk weights must sum to 1.0 (received %.3f)", c.RiskWeights.Sum())
	}
	if math.Abs(c.ComplexityWeights.Sum()-1.0) > weightEpsilon {
		return fmt.Errorf("complexity weights must sum to 1.0 (received %.3f)", c.ComplexityWeights.Sum())
	}
	b := c.StrengthBands
	if !(b.Weak < b.Moderate && b.Moderate < b.Strong && b.Strong < b.VeryStrong) {
		return fmt.Errorf("strength bands must be strictly ascending (received %.1f/%.1f/%.1f/%.1f)",
			b.Weak, b.Moderate, b.Strong, b.VeryStrong)
	}
	return nil
}

// CategoryWeights holds the drift category weights used when combining the
// four tracked categories. The four fields must sum to approximately 1.0.
type CategoryWeights struct {
	Performance float64 `mapstructure:"performance"`
	Coupling    float64 `mapstructure:"coupling"`
	Complexity  float64 `mapstructure:"complexity"`
	Quality     float64 `mapstructure:"quality"`
}

// Sum returns the total of all category weights.
func (w CategoryWeights) Sum() float64 {
	return w.Performance + w.Coupling + w.Complexity + w.Quality
}

// DriftConfig holds the validated tuning parameters for the drift detector:
// the stable band, per-category severity thresholds and aggregation weights.
type DriftConfig struct {
	StableBandPct             float64 // symmetric band around zero treated as stable
	PerformanceDegradationPct float64 // unfavorable change beyond this is at least medium
	CouplingIncreasePct       float64
	ComplexityIncreasePct     float64
	QualityDeclinePct         float64
	CriticalThresholdPct      float64 // unfavorable change at or beyond this is critical
	ImprovementHighlightPct   float64 // improving changes beyond this are highlighted
	CategoryWeights           CategoryWeights
	DominanceWeight           float64 // share of the drift score driven by the worst category
}

// DefaultDriftConfig returns a drift configuration with documented defaults
// that satisfy Validate.
func DefaultDriftConfig() *DriftConfig {
	return &DriftConfig{
		StableBandPct:             DefaultStableBandPct,
		PerformanceDegradationPct: 15.0,
		CouplingIncreasePct:       10.0,
		ComplexityIncreasePct:     10.0,
		QualityDeclinePct:         5.0,
		CriticalThresholdPct:      50.0,
		ImprovementHighlightPct:   10.0,
		CategoryWeights: CategoryWeights{
			Performance: 0.35,
			Coupling:    0.25,
			Complexity:  0.20,
			Quality:     0.20,
		},
		DominanceWeight: 0.4,
	}
}

// Validate checks band widths, threshold ordering and weight sums.
func (c *DriftConfig) Validate() error {
	if c.StableBandPct <= 0 {
		return fmt.Errorf("stable band must be positive (received %.2f)", c.StableBandPct)
	}
	for name, v := range map[string]float64{
		"performance_degradation_pct": c.PerformanceDegradationPct,
		"coupling_increase_pct":       c.CouplingIncreasePct,
		"complexity_increase_pct":     c.ComplexityIncreasePct,
		"quality_decline_pct":         c.QualityDeclinePct,
	} {
		if v <= c.StableBandPct {
			return fmt.Errorf("%s must exceed the stable band of %.2f%% (received %.2f)", name, c.StableBandPct, v)
		}
		if v >= c.CriticalThresholdPct {
			return fmt.Errorf("%s must be below the critical threshold of %.2f%% (received %.2f)", name, c.CriticalThresholdPct, v)
		}
	}
	if c.ImprovementHighlightPct <= 0 {
		return fmt.Errorf("improvement highlight threshold must be positive (received %.2f)", c.ImprovementHighlightPct)
	}
	if math.Abs(c.CategoryWeights.Sum()-1.0) > weightEpsilon {
		return fmt.Errorf("category weights must sum to 1.0 (received %.3f)", c.CategoryWeights.Sum())
	}
	if c.DominanceWeight < 0 || c.DominanceWeight > 1 {
		return fmt.Errorf("dominance weight must be within [0,1] (received %.2f)", c.DominanceWeight)
	}
	return nil
}

// Weight returns the configured weight for a drift category name.
func (w CategoryWeights) Weight(category string) float64 {
	switch category {
	case "performance":
		return w.Performance
	case "coupling":
		return w.Coupling
	case "complexity":
		return w.Complexity
	case "quality":
		return w.Quality
	default:
		return 0
	}
}

// ValidateDatabaseConnectionString validates connection string format for
// database backends that require one.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("store-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("store-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") && !strings.HasPrefix(connStr, "postgres://") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter or use a postgres:// URL")
		}
	default:
		return fmt.Errorf("unsupported backend: %s", backend)
	}
	return nil
}

// Config holds the runtime configuration for the CLI.
// This struct remains the "final, validated" config.
type Config struct {
	ApplicationName string
	StaticFile      string
	RuntimeFile     string
	GraphFile       string
	CurrentFile     string
	BaselineFiles   []string
	BaselineLimit   int
	Output          schema.OutputMode
	OutputFile      string
	Precision       int
	Width           int
	Color           bool
	StoreBackend    schema.DatabaseBackend
	StoreConnect    string

	Coupling *CouplingConfig
	Drift    *DriftConfig
}

// Clone returns a deep enough copy for per-request mutation (MCP handlers).
func (c *Config) Clone() *Config {
	clone := *c
	clone.BaselineFiles = append([]string(nil), c.BaselineFiles...)
	if c.Coupling != nil {
		coupling := *c.Coupling
		clone.Coupling = &coupling
	}
	if c.Drift != nil {
		drift := *c.Drift
		clone.Drift = &drift
	}
	return &clone
}

// ConfigRawInput holds the raw, unvalidated configuration from all sources
// (file, env, flags). Viper unmarshals into this struct.
type ConfigRawInput struct {
	App               string  `mapstructure:"app"`
	Output            string  `mapstructure:"output"`
	OutputFile        string  `mapstructure:"output-file"`
	Precision         int     `mapstructure:"precision"`
	Width             int     `mapstructure:"width"`
	Color             string  `mapstructure:"color"`
	Baselines         int     `mapstructure:"baselines"`
	StoreBackend      string  `mapstructure:"store-backend"`
	StoreConnect      string  `mapstructure:"store-connect"`
	AfferentThreshold int     `mapstructure:"afferent-threshold"`
	EfferentThreshold int     `mapstructure:"efferent-threshold"`
	StableBand        float64 `mapstructure:"stable-band"`
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	cfg.ApplicationName = input.App

	// --- 1. Output Validation ---
	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	switch cfg.Output {
	case schema.TextOut, schema.CSVOut, schema.JSONOut, schema.ParquetOut:
	default:
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", input.Output)
	}
	cfg.OutputFile = input.OutputFile

	// --- 2. Precision and Width Validation ---
	if input.Precision < 1 || input.Precision > 4 {
		return fmt.Errorf("precision must be between 1 and 4 (received %d)", input.Precision)
	}
	cfg.Precision = input.Precision
	if input.Width < 0 {
		return fmt.Errorf("width cannot be negative (received %d)", input.Width)
	}
	cfg.Width = input.Width

	switch strings.ToLower(input.Color) {
	case "yes", "true", "1", "":
		cfg.Color = true
	case "no", "false", "0":
		cfg.Color = false
	default:
		return fmt.Errorf("invalid color setting '%s'. must be yes/no/true/false/1/0", input.Color)
	}

	// --- 3. Baseline Limit Validation ---
	if input.Baselines <= 0 || input.Baselines > MaxBaselineLimit {
		return fmt.Errorf("baselines must be greater than 0 and cannot exceed %d (received %d)", MaxBaselineLimit, input.Baselines)
	}
	cfg.BaselineLimit = input.Baselines

	// --- 4. Store Backend Validation ---
	cfg.StoreBackend = schema.DatabaseBackend(strings.ToLower(input.StoreBackend))
	switch cfg.StoreBackend {
	case schema.SQLiteBackend, schema.MySQLBackend, schema.PostgreSQLBackend, schema.NoneBackend:
	default:
		return fmt.Errorf("invalid store backend '%s'. must be sqlite, mysql, postgresql, or none", input.StoreBackend)
	}
	cfg.StoreConnect = input.StoreConnect

	// --- 5. Engine Configs ---
	coupling := DefaultCouplingConfig()
	if input.AfferentThreshold > 0 {
		coupling.AfferentHotspotThreshold = input.AfferentThreshold
	}
	if input.EfferentThreshold > 0 {
		coupling.EfferentHotspotThreshold = input.EfferentThreshold
	}
	if err := coupling.Validate(); err != nil {
		return err
	}
	cfg.Coupling = coupling

	drift := DefaultDriftConfig()
	if input.StableBand > 0 {
		drift.StableBandPct = input.StableBand
	}
	if err := drift.Validate(); err != nil {
		return err
	}
	cfg.Drift = drift

	return nil
}
