//go:build basic || database

package integration

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/archdrift/archdrift/schema"
)

var (
	// sharedBinaryPath holds the path to a shared archdrift binary built once for all tests.
	sharedBinaryPath string

	// buildOnce ensures we only build the binary once.
	buildOnce sync.Once

	// buildMutex protects the shared binary path.
	buildMutex sync.Mutex

	// tempDir holds the temp directory for cleanup.
	tempDir string
)

// TestMain handles setup and cleanup for all integration tests.
func TestMain(m *testing.M) {
	// Run all tests
	code := m.Run()

	// Cleanup the shared binary after all tests
	if tempDir != "" {
		_ = os.RemoveAll(tempDir)
	}

	os.Exit(code)
}

// getArchdriftBinary returns the path to the archdrift binary, building it once if needed.
func getArchdriftBinary() string {
	buildMutex.Lock()
	defer buildMutex.Unlock()

	buildOnce.Do(func() {
		// Create a temp directory for the binary
		var err error
		tempDir, err = os.MkdirTemp("", "archdrift-integration-*")
		if err != nil {
			panic(fmt.Sprintf("failed to create temp dir: %v", err))
		}

		binaryPath := filepath.Join(tempDir, "archdrift")
		buildCmd := exec.Command("go", "build", "-o", binaryPath, ".")
		buildCmd.Dir = ".." // Build from parent directory (project root)
		err = buildCmd.Run()
		if err != nil {
			panic(fmt.Sprintf("failed to build archdrift: %v", err))
		}

		sharedBinaryPath = binaryPath
	})

	return sharedBinaryPath
}

func runArchdriftCommand(t *testing.T, args ...string) error {
	binaryPath := getArchdriftBinary()
	cmd := exec.Command(binaryPath, args...)
	cmd.Dir = "../" // Run from project root
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Logf("Command failed: %s\nOutput: %s", cmd.String(), string(output))
		return err
	}
	return nil
}

// writeSnapshotFile writes a snapshot fixture for baseline and drift commands.
func writeSnapshotFile(t *testing.T, dir, analysisID string) string {
	t.Helper()
	snap := schema.AnalysisSnapshot{
		AnalysisID:      analysisID,
		Timestamp:       time.Now().UTC(),
		ApplicationName: "billing",
		PerformanceBaseline: schema.PerformanceBaseline{
			ResponseTimeP95:   300,
			ErrorRate:         0.02,
			RequestsPerSecond: 1000,
		},
		CouplingMetrics: schema.CouplingSummary{
			CouplingDensity:         0.12,
			AverageInstability:      0.45,
			CircularDependencyCount: 2,
		},
		ComplexityScore: schema.ComplexitySummary{
			OverallScore:         40,
			EstimatedEffortWeeks: 12,
		},
		QualityMetrics: schema.QualityMetrics{
			MaintainabilityIndex: 70,
			TestCoverage:         65,
		},
	}
	data, err := json.Marshal(snap)
	if err != nil {
		t.Fatalf("failed to marshal snapshot: %v", err)
	}
	path := filepath.Join(dir, analysisID+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("failed to write snapshot: %v", err)
	}
	return path
}

// writeStaticFile writes a static analyzer fixture for the coupling command.
func writeStaticFile(t *testing.T, dir string) string {
	t.Helper()
	static := schema.StaticResults{
		DependencyAnalysis: schema.DependencyAnalysis{
			InternalDependencies: map[string][]string{
				"orders":   {"billing", "catalog"},
				"billing":  {"catalog"},
				"checkout": {"orders", "billing"},
			},
			CircularDependencies: [][]string{},
		},
	}
	data, err := json.Marshal(static)
	if err != nil {
		t.Fatalf("failed to marshal static results: %v", err)
	}
	path := filepath.Join(dir, "static.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("failed to write static results: %v", err)
	}
	return path
}
