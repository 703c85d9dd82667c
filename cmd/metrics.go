package cmd

import (
	"github.com/archdrift/archdrift/core"
	"github.com/archdrift/archdrift/internal/contract"
	"github.com/spf13/cobra"
)

// metricsCmd displays the formal definitions of the scoring models.
var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Display mathematical formulas and definitions for all scoring models",
	Long: `Show the formal definitions, formulas and factor weights for all scoring models.

Provides complete transparency into how results are computed, including:
- Component risk factor weights
- Migration complexity factor weights and strength bands
- Drift score category weights, stable band and severity thresholds

No analysis is performed - this is purely informational.

Examples:
  # Show default scoring formulas
  archdrift metrics

  # View with custom thresholds from config file
  archdrift metrics --config .archdrift.yaml`,
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteScoringInfo(cfg); err != nil {
			contract.LogFatal("Cannot display metrics", err)
		}
	},
}
