package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Pari-mal/diawell-cbc-metabolic-app/schema"
)

const batchHeader = "name,age,sex,date,neutrophils,lymphocytes,platelets,monocytes,glucose,triglycerides,hdl,bmi,waist,hba1c,hypertension,diabetes"

// TestParsePanels verifies header validation and row parsing, including empty
// numeric fields meaning "not drawn".
func TestParsePanels(t *testing.T) {
	csvData := batchHeader + "\n" +
		"Alice,50,F,2026-08-01,5,2,260,0.5,100,150,45,27,95,5.8,no,no\n" +
		"Bob,61,M,2026-08-02,6,1.5,,,110,,,,,,yes,yes\n"

	panels, err := ParsePanels(strings.NewReader(csvData))
	assert.NoError(t, err)
	assert.Len(t, panels, 2)

	assert.Equal(t, 1, panels[0].Row)
	assert.Equal(t, "Alice", panels[0].Patient.Name)
	assert.Equal(t, 50, panels[0].Patient.Age)
	assert.InDelta(t, 5.0, panels[0].Inputs.Neutrophils, 0.001)
	assert.False(t, panels[0].Inputs.Hypertension)

	// Empty numeric fields parse as 0 so the calculators treat them as absent.
	assert.Equal(t, 2, panels[1].Row)
	assert.InDelta(t, 0.0, panels[1].Inputs.Platelets, 0.001)
	assert.InDelta(t, 0.0, panels[1].Inputs.Triglycerides, 0.001)
	assert.True(t, panels[1].Inputs.Hypertension)
	assert.True(t, panels[1].Inputs.Diabetes)
}

// TestParsePanelsHeaderErrors verifies malformed headers are rejected.
func TestParsePanelsHeaderErrors(t *testing.T) {
	tests := []struct {
		name string
		csv  string
	}{
		{
			name: "wrong column name",
			csv:  strings.Replace(batchHeader, "glucose", "sugar", 1) + "\nAlice,50,F,d,5,2,260,0.5,100,150,45,27,95,5.8,no,no\n",
		},
		{
			name: "too few columns",
			csv:  "name,age,sex\nAlice,50,F\n",
		},
		{
			name: "empty input",
			csv:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePanels(strings.NewReader(tt.csv))
			assert.Error(t, err)
		})
	}
}

// TestParsePanelsBadValues verifies malformed fields report their row.
func TestParsePanelsBadValues(t *testing.T) {
	csvData := batchHeader + "\n" +
		"Alice,50,F,2026-08-01,notanumber,2,260,0.5,100,150,45,27,95,5.8,no,no\n"

	_, err := ParsePanels(strings.NewReader(csvData))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "row 1")

	csvData = batchHeader + "\n" +
		"Alice,50,F,2026-08-01,5,2,260,0.5,100,150,45,27,95,5.8,maybe,no\n"
	_, err = ParsePanels(strings.NewReader(csvData))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "hypertension")
}

// TestScorePanels verifies every row comes back scored regardless of worker
// count.
func TestScorePanels(t *testing.T) {
	panels := []Panel{
		{Row: 1, Patient: schema.Patient{Name: "Alice"}, Inputs: schema.LabInputs{Neutrophils: 5, Lymphocytes: 2}},
		{Row: 2, Patient: schema.Patient{Name: "Bob"}, Inputs: schema.LabInputs{Neutrophils: 12, Lymphocytes: 1}},
		{Row: 3, Patient: schema.Patient{Name: "Cara"}, Inputs: schema.LabInputs{}},
	}

	for _, workers := range []int{0, 1, 4} {
		results := ScorePanels(panels, schema.GetDefaultThresholds(), workers)
		assert.Len(t, results, 3)

		rows := make(map[int]bool)
		for _, r := range results {
			rows[r.Row] = true
			assert.Len(t, r.Report.Indices, 5)
		}
		assert.Len(t, rows, 3)
	}
}

// TestRankResults verifies descending ordering, the row tie-break and limit
// handling.
func TestRankResults(t *testing.T) {
	mk := func(row int, total float64) schema.BatchResult {
		return schema.BatchResult{Row: row, Report: schema.ReportRecord{TotalScore: total}}
	}

	results := []schema.BatchResult{mk(1, 30), mk(2, 60), mk(3, 30), mk(4, 90)}

	ranked := RankResults(results, 0)
	assert.Len(t, ranked, 4)
	assert.Equal(t, 4, ranked[0].Row)
	assert.Equal(t, 2, ranked[1].Row)
	// Equal totals keep input row order.
	assert.Equal(t, 1, ranked[2].Row)
	assert.Equal(t, 3, ranked[3].Row)

	limited := RankResults(results, 2)
	assert.Len(t, limited, 2)
	assert.Equal(t, 4, limited[0].Row)
}
