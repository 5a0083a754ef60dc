package schema

import "time"

// RunStatus represents the status of the run-audit store.
type RunStatus struct {
	Backend       string    `json:"backend"`
	Connected     bool      `json:"connected"`
	TotalRuns     int       `json:"total_runs"`
	LastRunID     int64     `json:"last_run_id"`
	LastRunTime   time.Time `json:"last_run_time"`
	OldestRunTime time.Time `json:"oldest_run_time"`
	TotalPanels   int       `json:"total_panels"`
}

// RunRecord is one row from the diawell_runs table. It holds run metadata
// only; lab values and patient identity are never persisted.
type RunRecord struct {
	RunID        int64      `json:"run_id"`
	Command      string     `json:"command"`
	StartTime    time.Time  `json:"start_time"`
	EndTime      *time.Time `json:"end_time,omitempty"`
	PanelsScored int        `json:"panels_scored"`
	ConfigParams string     `json:"config_params"` // JSON-encoded parameters
}
