package runstore

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pari-mal/diawell-cbc-metabolic-app/schema"
)

// newTestStore opens a SQLite run store backed by a temp file.
func newTestStore(t *testing.T) *RunStoreImpl {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "runs.db")
	store, err := NewRunStore(schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store.(*RunStoreImpl)
}

// TestBeginEndRun verifies the full begin/end lifecycle and the stored fields.
func TestBeginEndRun(t *testing.T) {
	store := newTestStore(t)

	start := time.Now().Add(-time.Second)
	params := map[string]any{"output": "text", "workers": 4}

	runID, err := store.BeginRun(start, "score", params)
	assert.NoError(t, err)
	assert.Greater(t, runID, int64(0))

	assert.NoError(t, store.EndRun(runID, time.Now(), 1))

	runs, err := store.GetRuns()
	assert.NoError(t, err)
	require.Len(t, runs, 1)

	run := runs[0]
	assert.Equal(t, runID, run.RunID)
	assert.Equal(t, "score", run.Command)
	assert.Equal(t, 1, run.PanelsScored)
	assert.NotNil(t, run.EndTime)
	assert.Contains(t, run.ConfigParams, "\"output\":\"text\"")
	assert.WithinDuration(t, start, run.StartTime, time.Second)
}

// TestGetRunsOrdering verifies newest-first ordering.
func TestGetRunsOrdering(t *testing.T) {
	store := newTestStore(t)

	base := time.Now().Add(-time.Hour)
	for i, cmd := range []string{"score", "batch", "report"} {
		runID, err := store.BeginRun(base.Add(time.Duration(i)*time.Minute), cmd, nil)
		require.NoError(t, err)
		require.NoError(t, store.EndRun(runID, base.Add(time.Duration(i)*time.Minute+time.Second), i+1))
	}

	runs, err := store.GetRuns()
	assert.NoError(t, err)
	require.Len(t, runs, 3)
	assert.Equal(t, "report", runs[0].Command)
	assert.Equal(t, "score", runs[2].Command)
}

// TestGetStatus verifies aggregate statistics.
func TestGetStatus(t *testing.T) {
	store := newTestStore(t)

	status, err := store.GetStatus()
	assert.NoError(t, err)
	assert.True(t, status.Connected)
	assert.Equal(t, string(schema.SQLiteBackend), status.Backend)
	assert.Equal(t, 0, status.TotalRuns)

	for i := range 3 {
		runID, err := store.BeginRun(time.Now(), "batch", nil)
		require.NoError(t, err)
		require.NoError(t, store.EndRun(runID, time.Now(), 10*(i+1)))
	}

	status, err = store.GetStatus()
	assert.NoError(t, err)
	assert.Equal(t, 3, status.TotalRuns)
	assert.Equal(t, 60, status.TotalPanels)
	assert.False(t, status.LastRunTime.IsZero())
}

// TestNoneBackendNoOp verifies the disabled store accepts calls silently.
func TestNoneBackendNoOp(t *testing.T) {
	store, err := NewRunStore(schema.NoneBackend, "")
	require.NoError(t, err)

	runID, err := store.BeginRun(time.Now(), "score", nil)
	assert.NoError(t, err)
	assert.NoError(t, store.EndRun(runID, time.Now(), 1))

	runs, err := store.GetRuns()
	assert.NoError(t, err)
	assert.Empty(t, runs)

	status, err := store.GetStatus()
	assert.NoError(t, err)
	assert.False(t, status.Connected)

	assert.NoError(t, store.Close())
}

// TestUnsupportedBackend verifies the constructor rejects unknown backends.
func TestUnsupportedBackend(t *testing.T) {
	_, err := NewRunStore(schema.DatabaseBackend("oracle"), "")
	assert.Error(t, err)
}

// TestValidateTableName covers the identifier pattern.
func TestValidateTableName(t *testing.T) {
	assert.NoError(t, validateTableName("diawell_runs"))
	assert.NoError(t, validateTableName("_private"))
	assert.Error(t, validateTableName(""))
	assert.Error(t, validateTableName("bad-name"))
	assert.Error(t, validateTableName("drop table;"))
	assert.Error(t, validateTableName("1starts_with_digit"))
}

// TestQuoteTableName verifies per-backend quoting.
func TestQuoteTableName(t *testing.T) {
	assert.Equal(t, "`runs`", quoteTableName("runs", schema.MySQLBackend))
	assert.Equal(t, `"runs"`, quoteTableName("runs", schema.SQLiteBackend))
	assert.Equal(t, `"runs"`, quoteTableName("runs", schema.PostgreSQLBackend))
}
