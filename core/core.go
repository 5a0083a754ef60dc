// Package core has core logic for index computation, scoring and reporting.
package core

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/Pari-mal/diawell-cbc-metabolic-app/internal/contract"
	"github.com/Pari-mal/diawell-cbc-metabolic-app/internal/outwriter"
	"github.com/Pari-mal/diawell-cbc-metabolic-app/schema"
)

// ExecutorFunc defines the function signature for executing different scoring modes.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config, mgr contract.RunManager) error

// panelFile is the on-disk JSON shape for a single panel. The patient block
// is optional; flag values already loaded into the config act as defaults.
type panelFile struct {
	Patient schema.Patient   `json:"patient"`
	Inputs  schema.LabInputs `json:"inputs"`
}

// loadPanel resolves the panel and patient for single-panel commands.
// When an input file is given it wins over individual flags.
func loadPanel(cfg *contract.Config) (schema.Patient, schema.LabInputs, error) {
	if cfg.InputFile == "" {
		return cfg.Patient, cfg.Panel, nil
	}
	data, err := os.ReadFile(cfg.InputFile)
	if err != nil {
		return schema.Patient{}, schema.LabInputs{}, fmt.Errorf("cannot read panel file: %w", err)
	}
	var pf panelFile
	if err := json.Unmarshal(data, &pf); err != nil {
		return schema.Patient{}, schema.LabInputs{}, fmt.Errorf("cannot parse panel file %s: %w", cfg.InputFile, err)
	}
	patient := pf.Patient
	if patient.Name == "" {
		patient = cfg.Patient
	}
	return patient, pf.Inputs, nil
}

// RecordRun persists the run audit entry for a command, if a run store is
// configured. Failures are warnings; they never abort the scoring itself.
func RecordRun(mgr contract.RunManager, command string, start time.Time, panels int, cfg *contract.Config) {
	if mgr == nil {
		return
	}
	store := mgr.GetRunStore()
	if store == nil {
		return
	}
	params := map[string]any{
		"output":    string(cfg.Output),
		"precision": cfg.Precision,
		"workers":   cfg.Workers,
		"limit":     cfg.ResultLimit,
	}
	runID, err := store.BeginRun(start, command, params)
	if err != nil {
		contract.LogWarn("recording run start", err)
		return
	}
	if err := store.EndRun(runID, time.Now(), panels); err != nil {
		contract.LogWarn("recording run end", err)
	}
}

// ExecuteScore scores a single panel and prints the summary table.
// It serves as the main entry point for the 'score' command.
func ExecuteScore(_ context.Context, cfg *contract.Config, mgr contract.RunManager) error {
	start := time.Now()
	patient, panel, err := loadPanel(cfg)
	if err != nil {
		return err
	}
	report := AssembleReport(patient, panel, cfg.Thresholds)
	RecordRun(mgr, "score", start, 1, cfg)
	duration := time.Since(start)
	return outwriter.PrintScoreResults(report, cfg, duration)
}

// ExecuteReport scores a single panel and renders the full sectioned
// document: patient block, summary, domain interpretation, key indices,
// full forms and disclaimer.
func ExecuteReport(_ context.Context, cfg *contract.Config, mgr contract.RunManager) error {
	start := time.Now()
	patient, panel, err := loadPanel(cfg)
	if err != nil {
		return err
	}
	report := AssembleReport(patient, panel, cfg.Thresholds)
	RecordRun(mgr, "report", start, 1, cfg)
	duration := time.Since(start)
	return outwriter.PrintReportDocument(report, cfg, duration)
}

// ExecuteBatch scores every panel in a CSV file concurrently and prints the
// ranked results.
func ExecuteBatch(ctx context.Context, cfg *contract.Config, mgr contract.RunManager) error {
	start := time.Now()
	if cfg.BatchFile == "" {
		return fmt.Errorf("a batch CSV file is required")
	}
	f, err := os.Open(cfg.BatchFile)
	if err != nil {
		return fmt.Errorf("cannot open batch file: %w", err)
	}
	defer func() { _ = f.Close() }()

	panels, err := ParsePanels(f)
	if err != nil {
		return fmt.Errorf("cannot parse batch file %s: %w", cfg.BatchFile, err)
	}
	results := ScorePanels(panels, cfg.Thresholds, cfg.Workers)
	ranked := RankResults(results, cfg.ResultLimit)
	RecordRun(mgr, "batch", start, len(panels), cfg)
	duration := time.Since(start)
	return outwriter.PrintBatchResults(ranked, cfg, duration)
}

// ExecuteIndices displays the formal definitions of all indices and their
// severity thresholds. This is a static display that scores nothing.
func ExecuteIndices(_ context.Context, cfg *contract.Config, _ contract.RunManager) error {
	return outwriter.PrintThresholdDefinitions(cfg)
}
