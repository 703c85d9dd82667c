package cmd

import (
	"fmt"

	"github.com/archdrift/archdrift/core"
	"github.com/archdrift/archdrift/internal/basestore"
	"github.com/archdrift/archdrift/internal/contract"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// baselineCmd focused on baseline snapshot management.
var baselineCmd = &cobra.Command{
	Use:   "baseline",
	Short: "Manage stored analysis snapshots used as drift baselines",
	Long: `Manage the historical snapshots that drift detection compares against.

Each snapshot captures the performance, coupling, complexity and quality
figures of one analysis run. Drift detection loads the most recent snapshots
for an application and measures how the current state moved against them.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (disabled)

Subcommands:
  add     - Store a snapshot file as a baseline
  list    - List stored snapshots, newest first
  status  - Show store statistics and connection info
  clear   - Remove all stored snapshots
  migrate - Run database schema migrations

Examples:
  # Store this week's snapshot
  archdrift baseline add snapshot.json --app billing

  # See what drift will compare against
  archdrift baseline list --app billing`,
}

// baselineAddCmd stores one snapshot as a baseline.
var baselineAddCmd = &cobra.Command{
	Use:   "add <snapshot-file>",
	Short: "Store a snapshot file as a drift baseline",
	Long: `Persist one analysis snapshot so future drift runs can compare against it.

The snapshot keeps its own analysis ID; storing the same ID again replaces
the previous copy. Use --app to override the application name recorded in
the file.

Examples:
  # Store a snapshot under its own application name
  archdrift baseline add snapshot.json

  # Store it under a different application
  archdrift baseline add snapshot.json --app billing`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, args []string) {
		cfg.CurrentFile = args[0]
		if err := core.ExecuteBaselineAdd(cfg, baselineStore); err != nil {
			contract.LogFatal("Failed to store baseline", err)
		}
	},
}

// baselineListCmd lists stored baselines.
var baselineListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored baseline snapshots, newest first",
	Long: `Print the stored snapshots for an application, newest first.

Respects --baselines for the maximum count and the usual --output formats.

Examples:
  # Show the 5 most recent baselines
  archdrift baseline list --app billing

  # Export the full baseline history as CSV
  archdrift baseline list --app billing --baselines 100 --output csv`,
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteBaselineList(cfg, baselineStore); err != nil {
			contract.LogFatal("Failed to list baselines", err)
		}
	},
}

// baselineStatusCmd shows baseline store status.
var baselineStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display baseline store statistics and connection details",
	Long: `Show detailed information about the baseline snapshot store.

Displays:
- Backend type and connection status
- Total number of stored snapshots and distinct applications
- Last and oldest snapshot timestamps

Examples:
  # Check store status
  archdrift baseline status`,
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		status, err := baselineStore.GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get baseline store status", err)
		}
		basestore.PrintStoreStatus(status)
	},
}

// baselineClearCmd clears the baseline store.
var baselineClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all stored baseline snapshots",
	Long: `Delete every stored snapshot from the configured backend.

WARNING: This action cannot be undone and removes the history that drift
detection depends on.

Examples:
  # Clear all stored baselines
  archdrift baseline clear`,
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := baselineStore.Clear(); err != nil {
			contract.LogFatal("Failed to clear baselines", err)
		}
		fmt.Println("Baseline data cleared successfully.")
	},
}

// baselineMigrateCmd runs database migrations for the baseline store.
var baselineMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the baseline snapshot store.

By default, migrates to the latest version. Use --target-version for
specific versions.

Examples:
  # Migrate to latest version (default)
  archdrift baseline migrate

  # Rollback to initial state
  archdrift baseline migrate --target-version 0`,
	PreRunE: migrateSetup,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := basestore.MigrateBaselines(cfg.StoreBackend, cfg.StoreConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}
