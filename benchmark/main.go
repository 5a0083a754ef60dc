// Package main provides a performance benchmarking tool for the DiaWell CLI.
// It measures batch scoring times across different panel counts and worker
// counts, running each test multiple times, treating the first successful run
// as cold and averaging the rest as warm, generating CSV output for
// performance analysis and documentation.
//
// Prerequisites:
// - diawell binary installed and available in PATH
//
// Usage: go run benchmark/main.go [workdir]
//
//	workdir: Directory for generated panel CSV files
package main

import (
	"encoding/csv"
	"fmt"
	"math/rand"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// BenchmarkResult holds the result of a benchmark run (no-store average, cold run and average of warm runs).
type BenchmarkResult struct {
	Panels      int
	Workers     int
	NoStoreTime string
	ColdTime    string
	WarmTime    string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	WorkDir     string
	Timeout     time.Duration
	NoStoreRuns int
	StoreRuns   int
	PanelCounts []int
	WorkerSet   []int
}

func main() {
	// Parse command line arguments
	if len(os.Args) != 2 {
		fmt.Printf("Usage: %s [workdir]\n", os.Args[0])
		os.Exit(1)
	}
	workDir := os.Args[1]

	config := BenchmarkConfig{
		WorkDir:     workDir,
		Timeout:     5 * time.Minute,
		NoStoreRuns: 3,
		StoreRuns:   4,
		PanelCounts: []int{1000, 10000, 100000},
		WorkerSet:   []int{1, 4, 8},
	}

	if err := checkPrerequisites(config); err != nil {
		fmt.Printf("Prerequisites check failed: %v\n", err)
		os.Exit(1)
	}

	// Clear run history so store-backed runs start from an empty table
	fmt.Printf("Clearing run history...\n")
	clearCmd := exec.Command("diawell", "runs", "clear")
	if output, err := clearCmd.CombinedOutput(); err != nil {
		fmt.Printf("Warning: failed to clear run history: %v\nOutput: %s\n", err, string(output))
	} else {
		fmt.Printf("Run history cleared successfully\n")
	}

	results := runBenchmarks(config)

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(results)
}

// checkPrerequisites verifies that the diawell binary and work directory exist
func checkPrerequisites(config BenchmarkConfig) error {
	// Check if diawell is available
	if _, err := exec.LookPath("diawell"); err != nil {
		return fmt.Errorf("diawell binary not found in PATH")
	}

	if err := os.MkdirAll(config.WorkDir, 0o755); err != nil {
		return fmt.Errorf("cannot create work directory %s: %w", config.WorkDir, err)
	}

	return nil
}

// runBenchmarks executes all benchmark tests across configured panel counts
func runBenchmarks(config BenchmarkConfig) []BenchmarkResult {
	var results []BenchmarkResult

	fmt.Printf("Starting benchmark: panel counts %v, workers %v, %v timeout, no-store: %d runs, store: %d runs\n",
		config.PanelCounts, config.WorkerSet, config.Timeout, config.NoStoreRuns, config.StoreRuns)

	for _, panels := range config.PanelCounts {
		csvPath, err := generatePanelsCSV(config.WorkDir, panels)
		if err != nil {
			fmt.Printf("Skipping %d panels: %v\n", panels, err)
			continue
		}

		for _, workers := range config.WorkerSet {
			fmt.Printf("Benchmarking %d panels with %d workers\n", panels, workers)
			result := runBenchmarkSuite(config, csvPath, panels, workers)
			results = append(results, result)
		}
	}

	return results
}

// generatePanelsCSV writes a deterministic synthetic batch file with the
// requested number of panels.
func generatePanelsCSV(workDir string, panels int) (string, error) {
	path := filepath.Join(workDir, fmt.Sprintf("panels_%d.csv", panels))
	file, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer func() { _ = file.Close() }()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{
		"name", "age", "sex", "date",
		"neutrophils", "lymphocytes", "platelets", "monocytes",
		"glucose", "triglycerides", "hdl", "bmi", "waist", "hba1c",
		"hypertension", "diabetes",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	// Fixed seed keeps runs comparable
	rng := rand.New(rand.NewSource(42))
	sexes := []string{"M", "F"}
	yesNo := []string{"yes", "no"}

	f := func(lo, hi float64) string {
		return strconv.FormatFloat(lo+rng.Float64()*(hi-lo), 'f', 1, 64)
	}
	for i := 0; i < panels; i++ {
		rec := []string{
			fmt.Sprintf("Patient %06d", i+1),
			strconv.Itoa(20 + rng.Intn(60)),
			sexes[rng.Intn(2)],
			"2026-08-01",
			f(1.5, 9.0),   // neutrophils
			f(0.8, 4.0),   // lymphocytes
			f(130, 420),   // platelets
			f(0.2, 1.0),   // monocytes
			f(70, 200),    // glucose
			f(60, 400),    // triglycerides
			f(25, 80),     // hdl
			f(18, 42),     // bmi
			f(60, 130),    // waist
			f(4.8, 11.0),  // hba1c
			yesNo[rng.Intn(2)],
			yesNo[rng.Intn(2)],
		}
		if err := writer.Write(rec); err != nil {
			return "", err
		}
	}
	writer.Flush()
	return path, writer.Error()
}

// runBenchmarkSuite runs both no-store and store benchmarks for one setting
func runBenchmarkSuite(config BenchmarkConfig, csvPath string, panels, workers int) BenchmarkResult {
	// Helper to run a benchmark phase
	runPhase := func(runBackend string, numRuns int, phaseName string) (coldTime float64, avgTime string) {
		fmt.Printf("  %s phase (%d runs)\n", phaseName, numRuns)
		cold, times := runBenchmark(config, csvPath, workers, runBackend, numRuns)
		if len(times) == 0 {
			avgTime = "TIMEOUT"
		} else {
			var sum float64
			for _, t := range times {
				sum += t
			}
			avg := sum / float64(len(times))
			avgTime = fmt.Sprintf("%.3fs", avg)
		}
		return cold, avgTime
	}

	// Phase 1: No-store runs
	_, noStoreAvg := runPhase("none", config.NoStoreRuns, "No-store")

	// Phase 2: Store runs
	coldTime, warmAvg := runPhase("sqlite", config.StoreRuns, "Store")

	coldTimeStr := "TIMEOUT"
	if coldTime > 0 {
		coldTimeStr = fmt.Sprintf("%.3fs", coldTime)
	}

	fmt.Printf("  No-store average: %s, Cold time: %s, Warm average: %s\n", noStoreAvg, coldTimeStr, warmAvg)

	return BenchmarkResult{
		Panels:      panels,
		Workers:     workers,
		NoStoreTime: noStoreAvg,
		ColdTime:    coldTimeStr,
		WarmTime:    warmAvg,
	}
}

// runBenchmark executes a diawell batch command multiple times with the given run backend and returns cold time and warm times
func runBenchmark(config BenchmarkConfig, csvPath string, workers int, runBackend string, numRuns int) (coldTime float64, warmTimes []float64) {
	args := []string{
		"batch", csvPath,
		"--workers", strconv.Itoa(workers),
		"--run-backend", runBackend,
		"--color", "no",
	}

	var times []float64
	for run := 1; run <= numRuns; run++ {
		start := time.Now()

		cmd := exec.Command("diawell", args...)

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
	return strings.Contains(outputStr, "Batch scoring completed in") &&
		strings.Contains(outputStr, "workers")
}

// saveResults writes benchmark results to a timestamped CSV file
func saveResults(results []BenchmarkResult) error {
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("/tmp/diawell_benchmark_%s.csv", timestamp)

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
	if err := writer.Write([]string{"panels", "workers", "no_store_avg", "cold_time", "warm_avg"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	// Write results
	for _, result := range results {
		rec := []string{
			strconv.Itoa(result.Panels),
			strconv.Itoa(result.Workers),
			result.NoStoreTime,
			result.ColdTime,
			result.WarmTime,
		}
		if err := writer.Write(rec); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	fmt.Printf("Results saved to %s\n", filename)
	return nil
}

// printSummary displays the final benchmark results summary
func printSummary(results []BenchmarkResult) {
	fmt.Printf("Benchmark complete\n")

	for _, result := range results {
		fmt.Printf("  %6d panels / %d workers: No-store: %s, Cold: %s, Warm: %s\n",
			result.Panels, result.Workers, result.NoStoreTime, result.ColdTime, result.WarmTime)
	}

	fmt.Printf("Benchmark script completed successfully\n")
}
