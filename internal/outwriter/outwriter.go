// Package outwriter has output and writer logic.
package outwriter

import (
	"time"

	"github.com/archdrift/archdrift/internal/contract"
	"github.com/archdrift/archdrift/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteCoupling prints coupling analysis results using the configured output format.
func (ow *OutWriter) WriteCoupling(result *schema.CouplingMetrics, cfg *contract.Config, duration time.Duration) error {
	return WriteCouplingResults(result, cfg, duration)
}

// WriteDrift prints drift analysis results using the configured output format.
func (ow *OutWriter) WriteDrift(analysis *schema.DriftAnalysis, cfg *contract.Config, duration time.Duration) error {
	return WriteDriftResults(analysis, cfg, duration)
}

// WriteBaselines prints stored baseline snapshots using the configured output format.
func (ow *OutWriter) WriteBaselines(snapshots []*schema.AnalysisSnapshot, cfg *contract.Config) error {
	return WriteBaselineList(snapshots, cfg)
}
