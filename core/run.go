package core

import (
	"errors"
	"fmt"
	"time"

	"github.com/archdrift/archdrift/core/drift"
	"github.com/archdrift/archdrift/internal/contract"
	"github.com/archdrift/archdrift/internal/outwriter"
	"github.com/archdrift/archdrift/schema"
)

// GetCouplingResults loads the configured dependency inputs and runs the
// coupling analysis. At least one of the static results or a pre-built
// dependency graph must be configured.
func GetCouplingResults(cfg *contract.Config) (*schema.CouplingMetrics, error) {
	if cfg.StaticFile == "" && cfg.GraphFile == "" {
		return nil, errors.New("a static results file or a dependency graph file is required")
	}

	var static *schema.StaticResults
	var runtime *schema.RuntimeResults
	var graph *schema.DependencyGraph
	var err error

	if cfg.StaticFile != "" {
		static, err = contract.LoadJSONFile[schema.StaticResults](cfg.StaticFile)
		if err != nil {
			return nil, err
		}
	}
	if cfg.RuntimeFile != "" {
		runtime, err = contract.LoadJSONFile[schema.RuntimeResults](cfg.RuntimeFile)
		if err != nil {
			return nil, err
		}
	}
	if cfg.GraphFile != "" {
		graph, err = contract.LoadJSONFile[schema.DependencyGraph](cfg.GraphFile)
		if err != nil {
			return nil, err
		}
	}

	return AnalyzeCoupling(cfg.ApplicationName, static, runtime, graph, cfg.Coupling)
}

// ExecuteCoupling runs the coupling analysis and prints results.
// It serves as the main entry point for the 'coupling' command.
func ExecuteCoupling(cfg *contract.Config) error {
	start := time.Now()
	result, err := GetCouplingResults(cfg)
	if err != nil {
		return err
	}
	duration := time.Since(start)
	return outwriter.NewOutWriter().WriteCoupling(result, cfg, duration)
}

// GetDriftResults loads the current snapshot, gathers baselines and runs
// drift detection. Baselines come from explicit files when configured,
// otherwise from the baseline store.
func GetDriftResults(cfg *contract.Config, store contract.BaselineStore) (*schema.DriftAnalysis, error) {
	if cfg.CurrentFile == "" {
		return nil, errors.New("a current snapshot file is required")
	}
	current, err := contract.LoadJSONFile[schema.AnalysisSnapshot](cfg.CurrentFile)
	if err != nil {
		return nil, err
	}

	applicationName := cfg.ApplicationName
	if applicationName == "" {
		applicationName = current.ApplicationName
	}

	baselines, err := gatherBaselines(cfg, store, applicationName, current.AnalysisID)
	if err != nil {
		return nil, err
	}

	return drift.DetectDrift(applicationName, current, baselines, cfg.Drift)
}

// gatherBaselines resolves the baseline snapshots for a drift run. Explicit
// baseline files take precedence over the store.
func gatherBaselines(cfg *contract.Config, store contract.BaselineStore, applicationName, currentID string) ([]*schema.AnalysisSnapshot, error) {
	if len(cfg.BaselineFiles) > 0 {
		baselines := make([]*schema.AnalysisSnapshot, 0, len(cfg.BaselineFiles))
		for _, path := range cfg.BaselineFiles {
			snap, err := contract.LoadJSONFile[schema.AnalysisSnapshot](path)
			if err != nil {
				return nil, err
			}
			baselines = append(baselines, snap)
		}
		return baselines, nil
	}

	if store == nil {
		return nil, nil
	}
	stored, err := store.ListSnapshots(applicationName, cfg.BaselineLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load baselines from store: %w", err)
	}
	baselines := make([]*schema.AnalysisSnapshot, 0, len(stored))
	for i := range stored {
		// The current run may already be stored; never compare it to itself.
		if stored[i].AnalysisID == currentID {
			continue
		}
		baselines = append(baselines, &stored[i])
	}
	return baselines, nil
}

// ExecuteDrift runs the drift detection and prints results.
// It serves as the main entry point for the 'drift' command.
func ExecuteDrift(cfg *contract.Config, store contract.BaselineStore) error {
	start := time.Now()
	analysis, err := GetDriftResults(cfg, store)
	if err != nil {
		return err
	}
	duration := time.Since(start)
	return outwriter.NewOutWriter().WriteDrift(analysis, cfg, duration)
}

// ExecuteBaselineAdd stores one snapshot file as a drift baseline.
func ExecuteBaselineAdd(cfg *contract.Config, store contract.BaselineStore) error {
	if cfg.CurrentFile == "" {
		return errors.New("a snapshot file is required")
	}
	snap, err := contract.LoadJSONFile[schema.AnalysisSnapshot](cfg.CurrentFile)
	if err != nil {
		return err
	}
	if cfg.ApplicationName != "" {
		snap.ApplicationName = cfg.ApplicationName
	}
	if err := store.SaveSnapshot(snap); err != nil {
		return err
	}
	fmt.Printf("Stored baseline %s for %s\n", snap.AnalysisID, snap.ApplicationName)
	return nil
}

// ExecuteBaselineList prints the stored baselines for an application.
func ExecuteBaselineList(cfg *contract.Config, store contract.BaselineStore) error {
	stored, err := store.ListSnapshots(cfg.ApplicationName, cfg.BaselineLimit)
	if err != nil {
		return err
	}
	snapshots := make([]*schema.AnalysisSnapshot, 0, len(stored))
	for i := range stored {
		snapshots = append(snapshots, &stored[i])
	}
	return outwriter.NewOutWriter().WriteBaselines(snapshots, cfg)
}

// ExecuteScoringInfo displays the formal definitions of the scoring models.
// This is a static display that does not require any analysis inputs.
func ExecuteScoringInfo(cfg *contract.Config) error {
	return outwriter.WriteScoringDefinitions(cfg)
}
