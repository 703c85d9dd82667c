// Package cmd defines the command-line interface for archdrift.
package cmd

import (
	"github.com/archdrift/archdrift/internal/contract"
	"github.com/archdrift/archdrift/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(couplingCmd)
	rootCmd.AddCommand(driftCmd)
	rootCmd.AddCommand(baselineCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(metricsCmd)

	// Add the baseline subcommands to the parent baseline command
	baselineCmd.AddCommand(baselineAddCmd)
	baselineCmd.AddCommand(baselineListCmd)
	baselineCmd.AddCommand(baselineStatusCmd)
	baselineCmd.AddCommand(baselineClearCmd)
	baselineCmd.AddCommand(baselineMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().StringP("app", "a", "", "Application name for analysis and baseline storage")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().IntP("baselines", "b", contract.DefaultBaselineLimit, "Number of stored baselines to compare against")
	rootCmd.PersistentFlags().String("store-backend", string(schema.SQLiteBackend), "Baseline store backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("store-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().Int("afferent-threshold", 0, "Dependent count above which a component is a hotspot (0 = default)")
	rootCmd.PersistentFlags().Int("efferent-threshold", 0, "Dependency count above which a component is a hotspot (0 = default)")
	rootCmd.PersistentFlags().Float64("stable-band", 0, "Percent change treated as stable (0 = default)")
	rootCmd.PersistentFlags().String("profile", "", "Enable profiling and write profiles to files with this prefix")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of couplingCmd to Viper
	couplingCmd.Flags().String("runtime-file", "", "Path to runtime observation results JSON")
	couplingCmd.Flags().String("graph-file", "", "Path to a pre-built dependency graph JSON")
	if err := viper.BindPFlags(couplingCmd.Flags()); err != nil {
		contract.LogFatal("Error binding coupling flags", err)
	}

	// Bind all flags of driftCmd to Viper
	driftCmd.Flags().StringSlice("baseline-file", nil, "Baseline snapshot JSON file (repeatable; bypasses the store)")
	if err := viper.BindPFlags(driftCmd.Flags()); err != nil {
		contract.LogFatal("Error binding drift flags", err)
	}

	// Bind all flags of baselineMigrateCmd to Viper
	baselineMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(baselineMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding baseline migrate flags", err)
	}
}
