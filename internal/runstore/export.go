package runstore

import (
	"errors"
	"fmt"

	"github.com/Pari-mal/diawell-cbc-metabolic-app/internal/parquet"
)

// ExecuteRunsExport performs the actual export of run-audit data to a Parquet file.
func ExecuteRunsExport(outputFile string) error {
	// Validate that output file is specified
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	store := Manager.GetRunStore()
	if store == nil {
		return errors.New("run store is not initialized")
	}

	// Check if there's any data to export
	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get run status: %w", err)
	}

	if status.TotalRuns == 0 {
		return errors.New("no run data found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total runs: %d\n", status.TotalRuns)

	runs, err := store.GetRuns()
	if err != nil {
		return fmt.Errorf("failed to retrieve runs: %w", err)
	}

	// Convert to Parquet format and write
	rows := parquet.ConvertRunRecords(runs)
	if err := parquet.WriteRunRowsParquet(rows, outputFile); err != nil {
		return fmt.Errorf("failed to write runs: %w", err)
	}
	fmt.Printf("Exported %d runs to: %s\n", len(rows), outputFile)

	return nil
}
