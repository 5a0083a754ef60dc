// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"time"

	"github.com/Pari-mal/diawell-cbc-metabolic-app/schema"
)

// RunManager defines the interface for managing the run-audit store.
// This allows the store layer to be mocked for testing.
type RunManager interface {
	GetRunStore() RunStore
}

// RunStore defines the interface for tracking scoring runs. Implementations
// persist run metadata only; panels and patients never touch the store.
type RunStore interface {
	// BeginRun creates a new run and returns its unique ID.
	BeginRun(startTime time.Time, command string, configParams map[string]any) (int64, error)

	// EndRun updates the run with completion data.
	EndRun(runID int64, endTime time.Time, panelsScored int) error

	// GetRuns returns every recorded run, newest first.
	GetRuns() ([]schema.RunRecord, error)

	// GetStatus returns status information about the store.
	GetStatus() (schema.RunStatus, error)

	// Close closes the underlying connection.
	Close() error
}
