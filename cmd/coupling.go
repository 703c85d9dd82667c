package cmd

import (
	"github.com/archdrift/archdrift/core"
	"github.com/archdrift/archdrift/internal/contract"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// couplingCmd runs the coupling analysis over analyzer-produced inputs.
var couplingCmd = &cobra.Command{
	Use:   "coupling [static-file]",
	Short: "Score dependency coupling and migration complexity.",
	Long: `Analyze dependency data to compute per-component and aggregate coupling metrics.

Consumes JSON produced by upstream analyzers and computes:
- Afferent/efferent coupling, instability and distance from the main sequence
- Coupling hotspots with severity, effort and remediation suggestions
- Circular dependency chains
- A 0-100 migration complexity score with a coupling strength label

Inputs are composable: static analyzer results (positional), runtime
observations (--runtime-file) and a pre-built dependency graph (--graph-file)
are merged into one model. At least one of the static results or the graph
is required.

Examples:
  # Analyze static analyzer output
  archdrift coupling static.json --app billing

  # Merge in runtime-observed edges
  archdrift coupling static.json --runtime-file runtime.json

  # Use a pre-built graph and custom hotspot thresholds
  archdrift coupling --graph-file graph.json --afferent-threshold 20

  # Export findings for tracking
  archdrift coupling static.json --output csv --output-file coupling.csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, args []string) {
		if len(args) == 1 {
			cfg.StaticFile = args[0]
		}
		cfg.RuntimeFile = viper.GetString("runtime-file")
		cfg.GraphFile = viper.GetString("graph-file")
		if err := core.ExecuteCoupling(cfg); err != nil {
			contract.LogFatal("Cannot run coupling analysis", err)
		}
	},
}
