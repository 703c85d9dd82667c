// Package main provides a performance benchmarking tool for the Archdrift CLI.
// It generates synthetic dependency graphs of increasing size, measures
// execution times for coupling and drift analysis, treating the first
// successful run as cold and averaging the rest as warm, and generates CSV
// output for performance analysis and documentation.
//
// Prerequisites:
// - archdrift binary installed and available in PATH
//
// Usage: go run benchmark/main.go [work-dir]
//
//	work-dir: Directory for generated input files (created if missing)
package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/archdrift/archdrift/schema"
)

// BenchmarkResult holds the result of a benchmark run (cold run and average of warm runs).
type BenchmarkResult struct {
	Graph    string
	Command  string
	ColdTime string
	WarmTime string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	WorkDir    string
	Timeout    time.Duration
	Runs       int
	GraphNames []string
	GraphSizes map[string]int
	MaxFanout  int
	Baselines  int
}

func main() {
	// Parse command line arguments
	if len(os.Args) != 2 {
		fmt.Printf("Usage: %s [work-dir]\n", os.Args[0])
		os.Exit(1)
	}
	workDir := os.Args[1]

	config := BenchmarkConfig{
		WorkDir:    workDir,
		Timeout:    5 * time.Minute,
		Runs:       5,
		GraphNames: []string{"small", "medium", "large", "huge"},
		GraphSizes: map[string]int{
			"small":  50,
			"medium": 500,
			"large":  5000,
			"huge":   20000,
		},
		MaxFanout: 8,
		Baselines: 10,
	}

	if err := checkPrerequisites(config); err != nil {
		fmt.Printf("Prerequisites check failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Generating synthetic inputs in %s...\n", config.WorkDir)
	if err := generateInputs(config); err != nil {
		fmt.Printf("Failed to generate inputs: %v\n", err)
		os.Exit(1)
	}

	results := runBenchmarks(config)

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(results)
}

// checkPrerequisites verifies that the archdrift binary exists and the work
// directory is usable
func checkPrerequisites(config BenchmarkConfig) error {
	if _, err := exec.LookPath("archdrift"); err != nil {
		return fmt.Errorf("archdrift binary not found in PATH")
	}
	if err := os.MkdirAll(config.WorkDir, 0o755); err != nil {
		return fmt.Errorf("cannot create work directory %s: %w", config.WorkDir, err)
	}
	return nil
}

// generateInputs writes one dependency graph file per configured size plus a
// current snapshot and a set of baseline snapshots for drift runs.
func generateInputs(config BenchmarkConfig) error {
	for _, name := range config.GraphNames {
		size := config.GraphSizes[name]
		graph := generateGraph(size, config.MaxFanout)
		if err := writeJSON(graphPath(config, name), graph); err != nil {
			return err
		}
	}

	current := generateSnapshot("bench-current", 0)
	if err := writeJSON(snapshotPath(config, "current"), current); err != nil {
		return err
	}
	for i := range config.Baselines {
		snap := generateSnapshot(fmt.Sprintf("bench-baseline-%02d", i), i+1)
		if err := writeJSON(snapshotPath(config, fmt.Sprintf("baseline-%02d", i)), snap); err != nil {
			return err
		}
	}
	return nil
}

// generateGraph builds a pseudo-random dependency graph with a fixed seed so
// repeated benchmark runs analyze identical inputs. Edges point from higher
// to lower component indices, plus one injected back edge to form a cycle.
func generateGraph(size, maxFanout int) *schema.DependencyGraph {
	rng := rand.New(rand.NewSource(int64(size)))
	deps := make(map[string][]string, size)

	for i := range size {
		name := componentName(i)
		deps[name] = nil
		if i == 0 {
			continue
		}
		fanout := rng.Intn(maxFanout) + 1
		seen := make(map[int]bool, fanout)
		for range fanout {
			target := rng.Intn(i)
			if seen[target] {
				continue
			}
			seen[target] = true
			deps[name] = append(deps[name], componentName(target))
		}
	}

	// Back edge from the sink to the densest node keeps cycle detection honest.
	if size > 1 {
		deps[componentName(0)] = append(deps[componentName(0)], componentName(size-1))
	}

	return &schema.DependencyGraph{InternalDependencies: deps}
}

// generateSnapshot builds an analysis snapshot with metrics that degrade
// slightly per age step so drift runs produce non-trivial comparisons.
func generateSnapshot(analysisID string, age int) *schema.AnalysisSnapshot {
	drift := float64(age)
	return &schema.AnalysisSnapshot{
		AnalysisID:      analysisID,
		Timestamp:       time.Now().UTC().Add(-time.Duration(age) * 24 * time.Hour),
		ApplicationName: "benchmark-app",
		PerformanceBaseline: schema.PerformanceBaseline{
			ResponseTimeP95:   250 + drift*5,
			ErrorRate:         0.01 + drift*0.001,
			RequestsPerSecond: 1200 - drift*10,
		},
		CouplingMetrics: schema.CouplingSummary{
			CouplingDensity:         0.12 + drift*0.002,
			AverageInstability:      0.45 + drift*0.005,
			CircularDependencyCount: 1 + age/3,
		},
		ComplexityScore: schema.ComplexitySummary{
			OverallScore:         40 + drift,
			EstimatedEffortWeeks: 10 + drift*0.5,
		},
		QualityMetrics: schema.QualityMetrics{
			MaintainabilityIndex: 75 - drift,
			TestCoverage:         70 - drift*0.5,
		},
	}
}

func componentName(i int) string {
	return fmt.Sprintf("svc-%05d", i)
}

func graphPath(config BenchmarkConfig, name string) string {
	return filepath.Join(config.WorkDir, fmt.Sprintf("graph_%s.json", name))
}

func snapshotPath(config BenchmarkConfig, name string) string {
	return filepath.Join(config.WorkDir, fmt.Sprintf("snapshot_%s.json", name))
}

func writeJSON(path string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// runBenchmarks executes all benchmark tests across configured graph sizes
func runBenchmarks(config BenchmarkConfig) []BenchmarkResult {
	var results []BenchmarkResult

	fmt.Printf("Starting benchmark: %d graphs, %v timeout, %d runs each\n",
		len(config.GraphNames), config.Timeout, config.Runs)

	for _, name := range config.GraphNames {
		fmt.Printf("Benchmarking %s graph (%d components)\n", name, config.GraphSizes[name])

		// Coupling analysis, text output
		args := []string{"coupling", "--graph-file", graphPath(config, name), "--store-backend", "none"}
		result := runBenchmarkSuite(config, name, "coupling", "coupling analysis", args)
		results = append(results, result)

		// Coupling analysis, JSON output
		args = append(args, "--output", "json")
		result = runBenchmarkSuite(config, name, "coupling-json", "coupling analysis (json)", args)
		results = append(results, result)
	}

	// Drift analysis is graph-independent; run it once against file baselines.
	fmt.Printf("Benchmarking drift (%d baselines)\n", config.Baselines)
	args := []string{"drift", snapshotPath(config, "current"), "--store-backend", "none"}
	for i := range config.Baselines {
		args = append(args, "--baseline-file", snapshotPath(config, fmt.Sprintf("baseline-%02d", i)))
	}
	result := runBenchmarkSuite(config, "n/a", "drift", "drift analysis", args)
	results = append(results, result)

	return results
}

// runBenchmarkSuite runs the cold/warm benchmark phases for a command
func runBenchmarkSuite(config BenchmarkConfig, graph, command, description string, args []string) BenchmarkResult {
	fmt.Printf("Running %s on %s\n", description, graph)

	coldTime, warmTimes := runBenchmark(config, args)

	coldTimeStr := "TIMEOUT"
	if coldTime > 0 {
		coldTimeStr = fmt.Sprintf("%.3fs", coldTime)
	}

	warmAvg := "TIMEOUT"
	if len(warmTimes) > 0 {
		var sum float64
		for _, t := range warmTimes {
			sum += t
		}
		warmAvg = fmt.Sprintf("%.3fs", sum/float64(len(warmTimes)))
	}

	fmt.Printf("  Cold time: %s, Warm average: %s\n", coldTimeStr, warmAvg)

	return BenchmarkResult{
		Graph:    graph,
		Command:  command,
		ColdTime: coldTimeStr,
		WarmTime: warmAvg,
	}
}

// runBenchmark executes an archdrift command multiple times and returns the
// cold time and warm times
func runBenchmark(config BenchmarkConfig, args []string) (coldTime float64, warmTimes []float64) {
	var times []float64
	for run := 1; run <= config.Runs; run++ {
		start := time.Now()

		cmd := exec.Command("archdrift", args...)

		done := make(chan bool)
		var output []byte
		var cmdErr error

		go func() {
			output, cmdErr = cmd.CombinedOutput()
			done <- true
		}()

		select {
		case <-done:
			if cmdErr == nil && isSuccess(output) {
				times = append(times, time.Since(start).Seconds())
			}
		case <-time.After(config.Timeout):
			// Timeout - don't add to times
		}
	}

	if len(times) > 0 {
		coldTime = times[0]
		warmTimes = times[1:]
	}
	return
}

// isSuccess checks if command output indicates successful completion
func isSuccess(output []byte) bool {
	outputStr := string(output)
	return strings.Contains(outputStr, "Analysis completed in") ||
		strings.Contains(outputStr, "\"analysis_id\"")
}

// saveResults writes benchmark results to a timestamped CSV file
func saveResults(results []BenchmarkResult) error {
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("/tmp/archdrift_benchmark_%s.csv", timestamp)

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close file %s: %v\n", filename, closeErr)
		}
	}()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	// Write header
	if err := writer.Write([]string{"graph", "cmd", "cold_time", "warm_avg"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	// Write results
	for _, result := range results {
		if err := writer.Write([]string{result.Graph, result.Command, result.ColdTime, result.WarmTime}); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	fmt.Printf("Results saved to %s\n", filename)
	return nil
}

// printSummary displays the final benchmark results summary
func printSummary(results []BenchmarkResult) {
	fmt.Printf("Benchmark complete\n")

	printCommandSummary(results, "coupling", "Coupling Analysis:")
	printCommandSummary(results, "coupling-json", "Coupling Analysis (JSON):")
	printCommandSummary(results, "drift", "Drift Analysis:")

	fmt.Printf("Benchmark script completed successfully\n")
}

// printCommandSummary displays results for a specific command type
func printCommandSummary(results []BenchmarkResult, command, title string) {
	fmt.Printf("%s\n", title)
	for _, result := range results {
		if result.Command == command {
			fmt.Printf("  %-8s: Cold: %s, Warm: %s\n", result.Graph, result.ColdTime, result.WarmTime)
		}
	}
}
