package core

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Pari-mal/diawell-cbc-metabolic-app/schema"
)

// fullPanel returns a panel with every lab value drawn.
func fullPanel() schema.LabInputs {
	return schema.LabInputs{
		Neutrophils:   5,
		Lymphocytes:   2,
		Platelets:     260,
		Monocytes:     0.5,
		Glucose:       100,
		Triglycerides: 150,
		HDL:           45,
		BMI:           27,
		Waist:         95,
		HbA1c:         5.8,
		Hypertension:  false,
		Diabetes:      false,
	}
}

// TestAssembleReportStructure verifies the fixed shapes: five indices in
// report order, four domains in report order, and patient passthrough.
func TestAssembleReportStructure(t *testing.T) {
	patient := schema.Patient{Name: "Jordan Smith", Age: 52, Sex: "F", Date: "2026-08-01"}
	report := AssembleReport(patient, fullPanel(), schema.GetDefaultThresholds())

	assert.Equal(t, patient, report.Patient)
	assert.False(t, report.Diabetes)

	wantIndices := []schema.IndexID{
		schema.NLRIndex, schema.PLRIndex, schema.TyGIndex, schema.METSIRIndex, schema.EGDRIndex,
	}
	assert.Len(t, report.Indices, len(wantIndices))
	for i, id := range wantIndices {
		assert.Equal(t, id, report.Indices[i].ID)
	}

	assert.Len(t, report.Domains, 4)
	for i, d := range schema.AllDomains {
		assert.Equal(t, d, report.Domains[i].Domain)
	}
}

// TestAssembleReportPLRNoSeverity verifies PLR is reported as a value only,
// with no severity attached even when its value is present.
func TestAssembleReportPLRNoSeverity(t *testing.T) {
	report := AssembleReport(schema.Patient{}, fullPanel(), schema.GetDefaultThresholds())

	plr := report.Indices[1]
	assert.Equal(t, schema.PLRIndex, plr.ID)
	assert.True(t, plr.Available)
	assert.Equal(t, "130.0", plr.DisplayValue)
	assert.Equal(t, schema.NotAvailableMarker, plr.SeverityText)
}

// TestAssembleReportDisplayFormats pins the per-index display precision and
// the eGDR unit suffix.
func TestAssembleReportDisplayFormats(t *testing.T) {
	report := AssembleReport(schema.Patient{}, fullPanel(), schema.GetDefaultThresholds())

	byID := make(map[schema.IndexID]schema.IndexResult)
	for _, idx := range report.Indices {
		byID[idx.ID] = idx
	}

	assert.Equal(t, "2.50", byID[schema.NLRIndex].DisplayValue)
	assert.Equal(t, "130.0", byID[schema.PLRIndex].DisplayValue)
	// ln(150*100/2) = ln(7500) = 8.92...
	assert.Equal(t, "8.92", byID[schema.TyGIndex].DisplayValue)
	assert.Contains(t, byID[schema.EGDRIndex].DisplayValue, " mg/kg/min")
}

// TestAssembleReportMissingInputs verifies absent indices render the marker
// and still leave the report well-formed.
func TestAssembleReportMissingInputs(t *testing.T) {
	inputs := schema.LabInputs{Neutrophils: 5, Lymphocytes: 2}
	report := AssembleReport(schema.Patient{}, inputs, schema.GetDefaultThresholds())

	byID := make(map[schema.IndexID]schema.IndexResult)
	for _, idx := range report.Indices {
		byID[idx.ID] = idx
	}

	assert.True(t, byID[schema.NLRIndex].Available)
	assert.False(t, byID[schema.TyGIndex].Available)
	assert.Equal(t, schema.NotAvailableMarker, byID[schema.TyGIndex].DisplayValue)
	assert.Equal(t, schema.NotAvailableMarker, byID[schema.TyGIndex].SeverityText)

	// Metabolic domain scores 0 with no metabolic inputs; placeholders still
	// hold the total at 25.
	assert.InDelta(t, 25+25.0/3, report.TotalScore, 0.01)
}

// TestAssembleReportPlaceholderDomains verifies oxidative and endothelial are
// flagged as placeholders with the fixed neutral score.
func TestAssembleReportPlaceholderDomains(t *testing.T) {
	report := AssembleReport(schema.Patient{}, fullPanel(), schema.GetDefaultThresholds())

	for _, d := range report.Domains {
		switch d.Domain {
		case schema.OxidativeDomain, schema.EndothelialDomain:
			assert.True(t, d.Placeholder)
			assert.Equal(t, schema.NeutralDomainScore, d.Score)
		default:
			assert.False(t, d.Placeholder)
		}
		assert.NotEmpty(t, d.Comment)
	}
}
