package runstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pari-mal/diawell-cbc-metabolic-app/schema"
)

// TestClearRunsSQLite verifies the database file is removed, and that a
// missing file is not an error.
func TestClearRunsSQLite(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "runs.db")
	store, err := NewRunStore(schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	_, err = os.Stat(dbPath)
	require.NoError(t, err)

	assert.NoError(t, ClearRuns(schema.SQLiteBackend, dbPath, ""))
	_, err = os.Stat(dbPath)
	assert.True(t, os.IsNotExist(err))

	// Clearing again is a no-op.
	assert.NoError(t, ClearRuns(schema.SQLiteBackend, dbPath, ""))
}

// TestClearRunsValidation covers the argument checks.
func TestClearRunsValidation(t *testing.T) {
	assert.Error(t, ClearRuns(schema.SQLiteBackend, "", ""))
	assert.NoError(t, ClearRuns(schema.NoneBackend, "", ""))
	assert.Error(t, ClearRuns(schema.DatabaseBackend("oracle"), "", ""))
}

// TestRunStoreManager verifies the guarded store accessor.
func TestRunStoreManager(t *testing.T) {
	mgr := &RunStoreManager{}
	assert.Nil(t, mgr.GetRunStore())

	store, err := NewRunStore(schema.NoneBackend, "")
	require.NoError(t, err)
	mgr.runs = store
	assert.Equal(t, store, mgr.GetRunStore())
}
