// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"time"

	"github.com/archdrift/archdrift/schema"
)

// BaselineStore defines the persistence operations for analysis snapshots.
// This allows the drift detector and CLI to be tested against a mock store.
type BaselineStore interface {
	// SaveSnapshot persists one analysis snapshot as a drift baseline.
	SaveSnapshot(snap *schema.AnalysisSnapshot) error

	// ListSnapshots returns up to limit snapshots for an application,
	// newest first. A limit <= 0 returns all snapshots.
	ListSnapshots(applicationName string, limit int) ([]schema.AnalysisSnapshot, error)

	// GetStatus returns store health and volume information.
	GetStatus() (StoreStatus, error)

	// Clear removes all stored snapshots.
	Clear() error

	// Close releases the underlying connection.
	Close() error
}

// StoreStatus holds status information about a baseline store.
type StoreStatus struct {
	Backend            string    `json:"backend"`
	Connected          bool      `json:"connected"`
	TotalSnapshots     int       `json:"total_snapshots"`
	Applications       int       `json:"applications"`
	OldestSnapshotTime time.Time `json:"oldest_snapshot_time,omitzero"`
	LastSnapshotTime   time.Time `json:"last_snapshot_time,omitzero"`
}
