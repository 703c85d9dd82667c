package cmd

import (
	"github.com/archdrift/archdrift/core"
	"github.com/archdrift/archdrift/internal/contract"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// driftCmd runs drift detection against stored or explicit baselines.
var driftCmd = &cobra.Command{
	Use:   "drift <current-file>",
	Short: "Detect architectural drift against historical baselines.",
	Long: `Compare a current analysis snapshot against historical baselines.

Tracks four metric categories across snapshots:
- Performance: p95 response time, error rate, throughput
- Coupling: density, average instability, circular dependencies
- Complexity: migration complexity score, effort estimate
- Quality: maintainability index, test coverage

Produces per-baseline comparisons with trend and severity per metric, an
overall health score, recognized drift patterns and actionable
recommendations.

Baselines come from the configured store (newest first, up to --baselines),
or from explicit files via --baseline-file, which bypasses the store.

Examples:
  # Compare against the 5 most recent stored baselines
  archdrift drift current.json --app billing

  # Compare against explicit snapshot files
  archdrift drift current.json --baseline-file last-month.json --baseline-file last-quarter.json

  # Widen the stable band to 5%
  archdrift drift current.json --stable-band 5`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, args []string) {
		cfg.CurrentFile = args[0]
		cfg.BaselineFiles = viper.GetStringSlice("baseline-file")
		if err := core.ExecuteDrift(cfg, baselineStore); err != nil {
			contract.LogFatal("Cannot run drift detection", err)
		}
	},
}
