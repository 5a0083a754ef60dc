package parquet

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pari-mal/diawell-cbc-metabolic-app/schema"
)

// TestConvertBatchResults verifies the flat row conversion, including nullable
// index columns for absent values.
func TestConvertBatchResults(t *testing.T) {
	results := []schema.BatchResult{
		{
			Row: 1,
			Report: schema.ReportRecord{
				Patient:  schema.Patient{Name: "Alice", Age: 50, Sex: "F", Date: "2026-08-01"},
				Diabetes: true,
				Indices: []schema.IndexResult{
					{ID: schema.NLRIndex, Value: 2.5, Available: true},
					{ID: schema.PLRIndex, Value: 130, Available: true},
					{ID: schema.TyGIndex, Available: false},
					{ID: schema.METSIRIndex, Available: false},
					{ID: schema.EGDRIndex, Value: 9.48, Available: true},
				},
				Domains: []schema.DomainResult{
					{Domain: schema.InflammationDomain, Score: 8.33},
					{Domain: schema.OxidativeDomain, Score: 12.5},
					{Domain: schema.EndothelialDomain, Score: 12.5},
					{Domain: schema.MetabolicDomain, Score: 16.67},
				},
				TotalScore: 50,
				RiskLabel:  schema.ModerateRisk,
			},
		},
	}

	rows := ConvertBatchResults(results)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, int32(1), row.Row)
	assert.Equal(t, "Alice", row.PatientName)
	assert.True(t, row.Diabetes)

	require.NotNil(t, row.NLR)
	assert.InDelta(t, 2.5, *row.NLR, 0.001)
	assert.Nil(t, row.TyG)
	assert.Nil(t, row.METSIR)
	require.NotNil(t, row.EGDR)

	assert.InDelta(t, 8.33, row.InflammationScore, 0.001)
	assert.InDelta(t, 12.5, row.OxidativeScore, 0.001)
	assert.Equal(t, "Moderate", row.RiskLabel)
}

// TestConvertRunRecords verifies nullable params and end-time mapping.
func TestConvertRunRecords(t *testing.T) {
	end := time.Now()
	records := []schema.RunRecord{
		{RunID: 1, Command: "score", StartTime: end.Add(-time.Second), EndTime: &end, PanelsScored: 1, ConfigParams: `{"output":"text"}`},
		{RunID: 2, Command: "batch", StartTime: end},
	}

	rows := ConvertRunRecords(records)
	require.Len(t, rows, 2)

	assert.Equal(t, int64(1), rows[0].RunID)
	require.NotNil(t, rows[0].ConfigParams)
	assert.Equal(t, `{"output":"text"}`, *rows[0].ConfigParams)
	assert.NotNil(t, rows[0].EndTime)

	assert.Nil(t, rows[1].ConfigParams)
	assert.Nil(t, rows[1].EndTime)
	assert.Equal(t, int32(0), rows[1].PanelsScored)
}

// TestWritePanelRowsParquet round-trips rows through a real file.
func TestWritePanelRowsParquet(t *testing.T) {
	nlr := 2.5
	rows := []PanelRow{
		{Row: 1, PatientName: "Alice", NLR: &nlr, TotalScore: 33.3, RiskLabel: "Mild"},
		{Row: 2, PatientName: "Bob", TotalScore: 25, RiskLabel: "Mild"},
	}

	path := filepath.Join(t.TempDir(), "panels.parquet")
	require.NoError(t, WritePanelRowsParquet(rows, path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	reader := parquet.NewGenericReader[PanelRow](f)
	defer func() { _ = reader.Close() }()

	got := make([]PanelRow, 2)
	n, err := reader.Read(got)
	require.Equal(t, 2, n)
	_ = err // may be io.EOF at end of file

	assert.Equal(t, "Alice", got[0].PatientName)
	require.NotNil(t, got[0].NLR)
	assert.InDelta(t, 2.5, *got[0].NLR, 0.001)
	assert.Nil(t, got[1].NLR)
}

// TestWriteRunRowsParquet writes run rows to a real file.
func TestWriteRunRowsParquet(t *testing.T) {
	params := `{"workers":4}`
	rows := []RunRow{
		{RunID: 1, Command: "score", StartTime: time.Now(), PanelsScored: 1, ConfigParams: &params},
	}

	path := filepath.Join(t.TempDir(), "runs.parquet")
	require.NoError(t, WriteRunRowsParquet(rows, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
